package stash

import (
	"context"

	"github.com/oneconcern/stash2d/pkg/stash/status"
	"github.com/oneconcern/stash2d/pkg/storage"
)

// extract writes each path's exact content at revision into dest,
// preserving relative path structure. The first failing path aborts:
// content already written stays on disk and the caller treats the
// destination as unreliable.
func (s *Stash) extract(ctx context.Context, revision string, paths []string, dest storage.Store) error {
	for _, p := range paths {
		rdr, err := s.sys.ReadBlob(ctx, revision, s.subtree, p)
		if err != nil {
			return status.ErrExtraction.Wrap(err)
		}
		err = dest.Put(ctx, p, rdr)
		_ = rdr.Close()
		if err != nil {
			return status.ErrExtraction.Wrap(err)
		}
	}
	return nil
}
