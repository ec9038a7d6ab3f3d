// Package vcs abstracts the narrow surface of the host version-control
// system that stash operations depend on.
//
// The default implementation shells out to the git executable, but the
// interface allows alternative implementations (e.g. a fake for tests)
// without changing callers.
package vcs

import (
	"context"
	"io"
)

// Changes partitions the paths touched between two revisions into three
// disjoint classes. Paths are slash-separated, relative to the subtree
// filter the listing was produced with.
type Changes struct {
	Deleted  []string
	Added    []string
	Modified []string
}

// IsEmpty indicates no path differs between the two revisions
func (c Changes) IsEmpty() bool {
	return len(c.Deleted) == 0 && len(c.Added) == 0 && len(c.Modified) == 0
}

// Count of all touched paths
func (c Changes) Count() int {
	return len(c.Deleted) + len(c.Added) + len(c.Modified)
}

// PickOutcome is the tri-state result of applying a foreign commit
// onto the current working tree.
type PickOutcome int

const (
	// PickClean means all changes applied without conflict
	PickClean PickOutcome = iota

	// PickConflict means conflict markers were left in the working tree
	// for manual resolution. This is a regular outcome, not a failure.
	PickConflict

	// PickFatal means the merge machinery itself errored. Any result
	// not recognized as clean or conflicting maps here.
	PickFatal
)

func (o PickOutcome) String() string {
	switch o {
	case PickClean:
		return "clean"
	case PickConflict:
		return "conflict"
	default:
		return "fatal"
	}
}

// System is the host version-control surface required by stash save and apply.
//
// Revisions are opaque reference strings (hashes or symbolic names) resolved
// by the implementation. Methods taking a subtree expect a normalized,
// slash-separated relative path, or "" for the whole tree.
type System interface {
	// IsAncestor reports whether ancestor is reachable from descendant's history
	IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error)

	// ListChanges classifies the paths that differ between the two revisions,
	// restricted to the subtree, with paths reported relative to the subtree root
	ListChanges(ctx context.Context, baseline, code, subtree string) (Changes, error)

	// ReadBlob streams the exact byte content of path (relative to subtree)
	// as recorded at the given revision
	ReadBlob(ctx context.Context, revision, subtree, path string) (io.ReadCloser, error)

	// InitWorkspace initializes an empty repository workspace at dir
	InitWorkspace(ctx context.Context, dir string) error

	// CommitAll stages every file under dir and records a commit,
	// including an empty one when nothing is staged
	CommitAll(ctx context.Context, dir, message string) error

	// ApplyForeignHead imports foreignRepo's history into the current working
	// tree's repository and applies its head commit's change-set onto the
	// working tree, allowing an empty result
	ApplyForeignHead(ctx context.Context, foreignRepo string) (PickOutcome, error)
}
