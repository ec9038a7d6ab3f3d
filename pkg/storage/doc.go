// Copyright © 2018 One Concern

// Package storage provides an interface to handle flat trees of stored objects.
//
// Stash snapshots and ephemeral workspaces are written and read through this
// interface, keyed by slash-separated relative paths, so the core algorithms
// never touch the operating system file tree directly.
package storage
