package stash

import (
	"context"
	"os"

	"github.com/oneconcern/stash2d/pkg/stash/status"
	"github.com/oneconcern/stash2d/pkg/vcs"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Apply merges the change captured in the stash at stashPath onto the
// current working tree.
//
// The returned outcome is tri-state: clean, conflict (the working tree is
// left with conflict markers for manual resolution), or fatal. The
// temporary repository is removed regardless of outcome; a cleanup failure
// is reported through status.ErrCleanup without changing the outcome.
func (s *Stash) Apply(ctx context.Context, stashPath string) (vcs.PickOutcome, error) {
	repoDir, rootDir, err := s.buildTempRepo(ctx, stashPath)
	if err != nil {
		return vcs.PickFatal, err
	}

	outcome, mergeErr := s.sys.ApplyForeignHead(ctx, repoDir)
	s.l.Debug("merge attempted", zap.String("repo", repoDir), zap.Stringer("outcome", outcome))

	cleanupErr := s.removeTempRepo(rootDir)
	if mergeErr != nil {
		return vcs.PickFatal, status.ErrMergeFatal.Wrap(mergeErr)
	}
	if cleanupErr != nil {
		return outcome, status.ErrCleanup.Wrap(cleanupErr)
	}
	return outcome, nil
}

// removeTempRepo deletes an ephemeral workspace tree. Version-control
// metadata is commonly stored write-protected, so permissions are forced
// writable first.
func (s *Stash) removeTempRepo(dir string) error {
	_ = afero.Walk(s.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		mode := os.FileMode(0600)
		if info.IsDir() {
			mode = 0700
		}
		_ = s.fs.Chmod(p, mode)
		return nil
	})
	return s.fs.RemoveAll(dir)
}
