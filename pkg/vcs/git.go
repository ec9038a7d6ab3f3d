package vcs

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// commit identity recorded in ephemeral workspaces, so commits succeed
// regardless of the host's git configuration
var commitIdent = []string{
	"-c", "user.name=stash2d",
	"-c", "user.email=stash2d@localhost",
}

type runResult struct {
	out    []byte
	exit   int
	errOut string
}

type runFunc func(ctx context.Context, dir string, args ...string) (runResult, error)

// Git drives the git executable. It implements System.
type Git struct {
	bin     string
	workDir string
	l       *zap.Logger
	run     runFunc
}

var _ System = &Git{}

// GitOption is a functor to build a Git system with some options
type GitOption func(*Git)

// GitBinary overrides the git executable to invoke
func GitBinary(bin string) GitOption {
	return func(g *Git) {
		if bin != "" {
			g.bin = bin
		}
	}
}

// WorkDir sets the working tree directory for apply operations
// (default: the current directory)
func WorkDir(dir string) GitOption {
	return func(g *Git) {
		g.workDir = dir
	}
}

// Logger sets a zap logger on git invocations
func Logger(l *zap.Logger) GitOption {
	return func(g *Git) {
		if l != nil {
			g.l = l
		}
	}
}

// NewGit builds a git-backed System
func NewGit(opts ...GitOption) *Git {
	g := &Git{
		bin: "git",
		l:   zap.NewNop(),
	}
	for _, apply := range opts {
		apply(g)
	}
	if g.run == nil {
		g.run = g.execGit
	}
	return g
}

// execGit spawns one git command and captures its output. A non-nil error
// means the command could not run at all; command failures are conveyed
// through the exit code.
func (g *Git) execGit(ctx context.Context, dir string, args ...string) (runResult, error) {
	cmd := exec.CommandContext(ctx, g.bin, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	t0 := time.Now()
	err := cmd.Run()
	res := runResult{out: stdout.Bytes(), errOut: strings.TrimSpace(stderr.String())}
	if err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			return res, errors.Wrapf(err, "spawning %s %s", g.bin, strings.Join(args, " "))
		}
		res.exit = ee.ExitCode()
	}
	g.l.Debug("git",
		zap.Strings("args", args),
		zap.String("dir", dir),
		zap.Int("exit", res.exit),
		zap.Duration("took", time.Since(t0)),
	)
	return res, nil
}

// runOK runs a git command and fails on any non-zero exit
func (g *Git) runOK(ctx context.Context, dir string, args ...string) ([]byte, error) {
	res, err := g.run(ctx, dir, args...)
	if err != nil {
		return nil, err
	}
	if res.exit != 0 {
		return nil, errors.Errorf("git %s exited %d: %s", strings.Join(args, " "), res.exit, res.errOut)
	}
	return res.out, nil
}

// IsAncestor reports whether ancestor is reachable from descendant's history
func (g *Git) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	res, err := g.run(ctx, g.workDir, "merge-base", "--is-ancestor", ancestor, descendant)
	if err != nil {
		return false, err
	}
	switch res.exit {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, errors.Errorf("ancestry test %s..%s exited %d: %s", ancestor, descendant, res.exit, res.errOut)
	}
}

// ListChanges classifies the paths differing between the two revisions.
//
// Rename and copy detection is disabled, so a renamed file decomposes
// into an independent delete of the old path plus an add of the new one.
func (g *Git) ListChanges(ctx context.Context, baseline, code, subtree string) (Changes, error) {
	list := func(filter string) ([]string, error) {
		out, err := g.runOK(ctx, g.workDir, diffArgs(filter, baseline, code, subtree)...)
		if err != nil {
			return nil, err
		}
		return splitLines(out), nil
	}

	var (
		changes Changes
		err     error
	)
	if changes.Deleted, err = list("D"); err != nil {
		return Changes{}, err
	}
	if changes.Added, err = list("A"); err != nil {
		return Changes{}, err
	}
	if changes.Modified, err = list("MT"); err != nil {
		return Changes{}, err
	}
	return changes, nil
}

func diffArgs(filter, baseline, code, subtree string) []string {
	args := []string{"diff", "--name-only", "--no-renames", "--diff-filter=" + filter}
	if subtree != "" {
		args = append(args, "--relative="+strings.TrimSuffix(subtree, "/")+"/")
	}
	args = append(args, baseline, code)
	if subtree != "" {
		args = append(args, "--", subtree)
	}
	return args
}

func splitLines(out []byte) []string {
	var res []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			res = append(res, line)
		}
	}
	return res
}

// ReadBlob streams the content of path at revision
func (g *Git) ReadBlob(ctx context.Context, revision, subtree, path string) (io.ReadCloser, error) {
	out, err := g.runOK(ctx, g.workDir, "show", blobSpec(revision, subtree, path))
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(out)), nil
}

func blobSpec(revision, subtree, path string) string {
	full := path
	if subtree != "" {
		full = strings.TrimSuffix(subtree, "/") + "/" + path
	}
	return revision + ":" + full
}

// InitWorkspace initializes an empty repository at dir
func (g *Git) InitWorkspace(ctx context.Context, dir string) error {
	_, err := g.runOK(ctx, "", "init", "-q", dir)
	return err
}

// CommitAll stages everything under dir and commits, allowing an empty commit
func (g *Git) CommitAll(ctx context.Context, dir, message string) error {
	if _, err := g.runOK(ctx, dir, "add", "-A", "."); err != nil {
		return err
	}
	args := append(append([]string{}, commitIdent...),
		"commit", "-q", "--allow-empty", "--no-verify", "-m", message)
	_, err := g.runOK(ctx, dir, args...)
	return err
}

// ApplyForeignHead fetches foreignRepo's history and cherry-picks its head
// commit onto the current working tree
func (g *Git) ApplyForeignHead(ctx context.Context, foreignRepo string) (PickOutcome, error) {
	if _, err := g.runOK(ctx, g.workDir, "fetch", "-q", foreignRepo); err != nil {
		return PickFatal, err
	}

	args := append(append([]string{}, commitIdent...),
		"cherry-pick", "--allow-empty", "FETCH_HEAD")
	res, err := g.run(ctx, g.workDir, args...)
	if err != nil {
		return PickFatal, err
	}
	if res.exit == 0 {
		return PickClean, nil
	}

	// a non-zero exit is a content conflict only when paths are left unmerged
	unmerged, uerr := g.run(ctx, g.workDir, "ls-files", "--unmerged")
	if uerr == nil && unmerged.exit == 0 && len(bytes.TrimSpace(unmerged.out)) > 0 {
		return PickConflict, nil
	}
	return PickFatal, errors.Errorf("cherry-pick exited %d: %s", res.exit, res.errOut)
}
