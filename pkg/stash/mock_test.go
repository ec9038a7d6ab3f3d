package stash

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oneconcern/stash2d/pkg/storage"
	"github.com/oneconcern/stash2d/pkg/storage/localfs"
	"github.com/oneconcern/stash2d/pkg/vcs"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// fakeVCS scripts the host version-control surface for tests. It shares an
// afero fs with the Stash under test so workspace construction is observable.
type fakeVCS struct {
	fs afero.Fs

	// ancestry holds "ancestor..descendant" pairs; a revision is always
	// its own ancestor
	ancestry map[string]bool

	// blobs maps "revision:full/path" to content
	blobs map[string]string

	// changes maps "baseline..code@subtree" to a scripted listing
	changes map[string]vcs.Changes

	pick    vcs.PickOutcome
	pickErr error

	initErr   error
	commitErr error

	inits   []string
	commits []commitRec
	applied []string
}

type commitRec struct {
	dir     string
	message string
	files   map[string]string
}

func newFakeVCS(fs afero.Fs) *fakeVCS {
	return &fakeVCS{
		fs:       fs,
		ancestry: map[string]bool{},
		blobs:    map[string]string{},
		changes:  map[string]vcs.Changes{},
	}
}

func (f *fakeVCS) addAncestry(ancestor, descendant string) {
	f.ancestry[ancestor+".."+descendant] = true
}

func (f *fakeVCS) addChanges(baseline, code, subtree string, c vcs.Changes) {
	f.changes[baseline+".."+code+"@"+subtree] = c
}

func (f *fakeVCS) addBlob(revision, subtree, path, content string) {
	full := path
	if subtree != "" {
		full = subtree + "/" + path
	}
	f.blobs[revision+":"+full] = content
}

func (f *fakeVCS) IsAncestor(_ context.Context, ancestor, descendant string) (bool, error) {
	if ancestor == descendant {
		return true, nil
	}
	return f.ancestry[ancestor+".."+descendant], nil
}

func (f *fakeVCS) ListChanges(_ context.Context, baseline, code, subtree string) (vcs.Changes, error) {
	return f.changes[baseline+".."+code+"@"+subtree], nil
}

func (f *fakeVCS) ReadBlob(_ context.Context, revision, subtree, path string) (io.ReadCloser, error) {
	full := path
	if subtree != "" {
		full = subtree + "/" + path
	}
	content, ok := f.blobs[revision+":"+full]
	if !ok {
		return nil, errors.Errorf("unreadable blob %s:%s", revision, full)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func (f *fakeVCS) InitWorkspace(_ context.Context, dir string) error {
	if f.initErr != nil {
		return f.initErr
	}
	f.inits = append(f.inits, dir)
	// metadata is a single marker file in the fake
	return afero.WriteFile(f.fs, filepath.Join(dir, ".git"), []byte("metadata"), 0600)
}

func (f *fakeVCS) CommitAll(_ context.Context, dir, message string) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	ok, err := afero.Exists(f.fs, filepath.Join(dir, ".git"))
	if err != nil || !ok {
		return errors.Errorf("not a repository: %s", dir)
	}
	rec := commitRec{dir: dir, message: message, files: map[string]string{}}
	err = afero.Walk(f.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, rerr := filepath.Rel(dir, p)
		if rerr != nil {
			return rerr
		}
		rel = filepath.ToSlash(rel)
		if rel == ".git" {
			return nil
		}
		b, rerr := afero.ReadFile(f.fs, p)
		if rerr != nil {
			return rerr
		}
		rec.files[rel] = string(b)
		return nil
	})
	if err != nil {
		return err
	}
	f.commits = append(f.commits, rec)
	return nil
}

func (f *fakeVCS) ApplyForeignHead(_ context.Context, foreignRepo string) (vcs.PickOutcome, error) {
	ok, err := afero.Exists(f.fs, filepath.Join(foreignRepo, ".git"))
	if err != nil || !ok {
		return vcs.PickFatal, errors.Errorf("not a repository: %s", foreignRepo)
	}
	f.applied = append(f.applied, foreignRepo)
	return f.pick, f.pickErr
}

var _ vcs.System = &fakeVCS{}

func localfsStore(fs afero.Fs, dir string) storage.Store {
	return localfs.New(afero.NewBasePathFs(fs, dir))
}

// keysOf lists the file keys below dir
func keysOf(ctx context.Context, fs afero.Fs, dir string) ([]string, error) {
	return localfsStore(fs, dir).Keys(ctx)
}
