package stash

import (
	"context"
	"path/filepath"

	"github.com/oneconcern/stash2d/internal/rand"
	"github.com/oneconcern/stash2d/pkg/stash/status"
	"github.com/oneconcern/stash2d/pkg/storage"
	"github.com/oneconcern/stash2d/pkg/storage/localfs"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// buildTempRepo materializes a throwaway two-commit repository from a stash:
// the first commit holds the baseline tree, the second the code tree, both
// rooted at the subtree filter path. The returned repoDir is the workspace
// holding the second commit; rootDir is the ephemeral parent the caller must
// remove when done.
func (s *Stash) buildTempRepo(ctx context.Context, stashPath string) (repoDir string, rootDir string, err error) {
	baselinePath := filepath.Join(stashPath, s.naming.BaselineDir)
	codePath := filepath.Join(stashPath, s.naming.CodeDir)
	for _, dir := range []string{baselinePath, codePath} {
		ok, derr := afero.DirExists(s.fs, dir)
		if derr != nil {
			return "", "", derr
		}
		if !ok {
			return "", "", status.ErrBadStash
		}
	}

	rootDir, err = afero.TempDir(s.fs, s.tmpRoot, "stash2d-")
	if err != nil {
		return "", "", status.ErrTempRepoCreation.Wrap(err)
	}
	defer func() {
		if err != nil {
			// best effort: a partially built repository must not leak
			_ = s.removeTempRepo(rootDir)
		}
	}()

	ws1 := filepath.Join(rootDir, "baseline-"+rand.LetterString(8))
	ws2 := filepath.Join(rootDir, "code-"+rand.LetterString(8))
	s.l.Debug("building temporary repository",
		zap.String("stash", stashPath),
		zap.String("baselineWorkspace", ws1),
		zap.String("codeWorkspace", ws2),
	)

	// first workspace: baseline tree, first commit
	if err = s.fs.MkdirAll(s.subtreeIn(ws1), 0755); err != nil {
		return "", "", status.ErrTempRepoCreation.Wrap(err)
	}
	if err = s.sys.InitWorkspace(ctx, ws1); err != nil {
		return "", "", status.ErrTempRepoCreation.Wrap(err)
	}
	if err = s.copyTree(ctx, baselinePath, s.subtreeIn(ws1)); err != nil {
		return "", "", status.ErrTempRepoCreation.Wrap(err)
	}
	if err = s.sys.CommitAll(ctx, ws1, "baseline"); err != nil {
		return "", "", status.ErrTempRepoCreation.Wrap(err)
	}

	// second workspace: transplant the metadata so the code commit is
	// recorded as a child of the baseline commit, then commit the code tree
	if err = s.fs.MkdirAll(s.subtreeIn(ws2), 0755); err != nil {
		return "", "", status.ErrTempRepoCreation.Wrap(err)
	}
	if err = s.fs.Rename(filepath.Join(ws1, s.naming.MetadataDir), filepath.Join(ws2, s.naming.MetadataDir)); err != nil {
		return "", "", status.ErrTempRepoCreation.Wrap(err)
	}
	if err = s.copyTree(ctx, codePath, s.subtreeIn(ws2)); err != nil {
		return "", "", status.ErrTempRepoCreation.Wrap(err)
	}
	if err = s.sys.CommitAll(ctx, ws2, "code"); err != nil {
		return "", "", status.ErrTempRepoCreation.Wrap(err)
	}

	// the first workspace only held working files now, metadata moved on
	if err = s.fs.RemoveAll(ws1); err != nil {
		return "", "", status.ErrTempRepoCreation.Wrap(err)
	}
	return ws2, rootDir, nil
}

// subtreeIn roots the subtree filter path inside a workspace
func (s *Stash) subtreeIn(workspace string) string {
	if s.subtree == "" {
		return workspace
	}
	return filepath.Join(workspace, filepath.FromSlash(s.subtree))
}

// copyTree replicates every file under srcDir into dstDir
func (s *Stash) copyTree(ctx context.Context, srcDir, dstDir string) error {
	src := localfs.New(afero.NewBasePathFs(s.fs, srcDir))
	dst := localfs.New(afero.NewBasePathFs(s.fs, dstDir))
	keys, err := src.Keys(ctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := storage.Copy(ctx, src, k, dst, k); err != nil {
			return err
		}
	}
	return nil
}
