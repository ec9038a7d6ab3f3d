// Package status exports errors produced by the stash package.
package status

import (
	"github.com/oneconcern/stash2d/pkg/errors"
)

var (
	// ErrUnrelatedRevisions indicates that neither of the two revisions given to
	// save is an ancestor of the other, so no baseline ordering exists
	ErrUnrelatedRevisions = errors.New("revisions are not related by ancestry")

	// ErrExtraction indicates a failure to materialize blob content from a revision
	ErrExtraction = errors.New("failed to extract file content from revision")

	// ErrTempRepoCreation indicates a failure while building the ephemeral
	// two-commit repository used to drive the merge
	ErrTempRepoCreation = errors.New("failed to build temporary repository")

	// ErrMergeFatal indicates the merge machinery itself errored, as opposed to
	// a content conflict, which is a regular outcome
	ErrMergeFatal = errors.New("merge failed fatally")

	// ErrBadStash indicates the stash directory does not carry the expected
	// baseline/code subdirectory pair
	ErrBadStash = errors.New("not a stash directory")

	// ErrCleanup indicates the temporary repository could not be fully removed.
	// It never masks a merge outcome that was already reached.
	ErrCleanup = errors.New("failed to clean up temporary repository")
)
