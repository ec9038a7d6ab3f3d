// Package stash captures the delta between two revisions of a
// version-controlled tree as a pair of directory snapshots, and re-applies
// such a pair to a working tree through a synthetic two-commit repository
// and a cherry-pick style merge.
package stash

import (
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/oneconcern/stash2d/pkg/vcs"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Stash performs save and apply operations against a host version-control
// system. Operations share no state: each call derives everything it needs
// from its inputs.
type Stash struct {
	sys     vcs.System
	naming  Naming
	subtree string
	fs      afero.Fs
	tmpRoot string
	l       *zap.Logger
	now     func() time.Time
}

// Option is a functor to build a Stash with some options
type Option func(*Stash)

// Subtree restricts all operations to files at or below the given
// normalized relative path. Empty means the whole tree.
func Subtree(p string) Option {
	return func(s *Stash) {
		s.subtree = NormalizeSubtree(p)
	}
}

// WithNaming overrides the default directory naming conventions
func WithNaming(n Naming) Option {
	return func(s *Stash) {
		s.naming = n
	}
}

// Logger sets a zap logger on stash operations
func Logger(l *zap.Logger) Option {
	return func(s *Stash) {
		if l != nil {
			s.l = l
		}
	}
}

// Filesystem overrides the file system used for snapshot and workspace IO
func Filesystem(fs afero.Fs) Option {
	return func(s *Stash) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// TempRoot sets the parent directory for ephemeral workspaces
// (default: the system temp location)
func TempRoot(dir string) Option {
	return func(s *Stash) {
		s.tmpRoot = dir
	}
}

// Clock overrides the time source used for stash directory names
func Clock(now func() time.Time) Option {
	return func(s *Stash) {
		if now != nil {
			s.now = now
		}
	}
}

// New builds a Stash driving the given version-control system
func New(sys vcs.System, opts ...Option) *Stash {
	s := &Stash{
		sys:    sys,
		naming: DefaultNaming(),
		fs:     afero.NewOsFs(),
		l:      zap.NewNop(),
		now:    time.Now,
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// NormalizeSubtree brings a subtree filter to its canonical form:
// slash-separated, relative, no trailing slash. Empty or "." means
// the whole tree and normalizes to "".
func NormalizeSubtree(p string) string {
	p = path.Clean(filepath.ToSlash(strings.TrimSpace(p)))
	if p == "." || p == "/" {
		return ""
	}
	return strings.Trim(p, "/")
}
