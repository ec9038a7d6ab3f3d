package stash

import (
	"context"
	"path/filepath"

	"github.com/oneconcern/stash2d/pkg/stash/status"
	"github.com/oneconcern/stash2d/pkg/storage/localfs"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Save captures the delta between two revisions as a new stash directory
// under destDir and returns its path.
//
// The two revisions may be given in either order: the ancestor is taken as
// the baseline. Unrelated revisions fail with status.ErrUnrelatedRevisions
// before anything is written.
func (s *Stash) Save(ctx context.Context, revA, revB, destDir string) (string, error) {
	baseline, code, err := s.orderRevisions(ctx, revA, revB)
	if err != nil {
		return "", err
	}

	changes, err := s.sys.ListChanges(ctx, baseline, code, s.subtree)
	if err != nil {
		return "", err
	}
	s.l.Debug("changes enumerated",
		zap.String("baseline", baseline),
		zap.String("code", code),
		zap.String("subtree", s.subtree),
		zap.Int("deleted", len(changes.Deleted)),
		zap.Int("added", len(changes.Added)),
		zap.Int("modified", len(changes.Modified)),
	)

	stashPath := filepath.Join(destDir, s.naming.StashDirName(s.now()))
	baselinePath := filepath.Join(stashPath, s.naming.BaselineDir)
	codePath := filepath.Join(stashPath, s.naming.CodeDir)
	for _, dir := range []string{baselinePath, codePath} {
		if err = s.fs.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	// deleted and modified content at the baseline revision,
	// added and modified content at the code revision
	baselineStore := localfs.New(afero.NewBasePathFs(s.fs, baselinePath))
	codeStore := localfs.New(afero.NewBasePathFs(s.fs, codePath))
	if err = s.extract(ctx, baseline, append(append([]string{}, changes.Deleted...), changes.Modified...), baselineStore); err != nil {
		return "", err
	}
	if err = s.extract(ctx, code, append(append([]string{}, changes.Added...), changes.Modified...), codeStore); err != nil {
		return "", err
	}

	s.l.Info("stash saved", zap.String("path", stashPath), zap.Int("files", changes.Count()))
	return stashPath, nil
}

// orderRevisions normalizes a pair of revisions into ancestry order,
// swapping a descendant-first pair silently
func (s *Stash) orderRevisions(ctx context.Context, revA, revB string) (baseline string, code string, err error) {
	ok, err := s.sys.IsAncestor(ctx, revA, revB)
	if err != nil {
		return "", "", err
	}
	if ok {
		return revA, revB, nil
	}
	ok, err = s.sys.IsAncestor(ctx, revB, revA)
	if err != nil {
		return "", "", err
	}
	if ok {
		s.l.Debug("revisions given in reverse order, swapping", zap.String("baseline", revB), zap.String("code", revA))
		return revB, revA, nil
	}
	return "", "", status.ErrUnrelatedRevisions
}
