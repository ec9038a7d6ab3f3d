// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
)

type errString string

func (e errString) Error() string { return string(e) }

const (
	ErrNotFound     errString = "not found"
	ErrNotSupported errString = "not supported"
	ErrExists       errString = "exists already"
)

// Store implementations know how to read and write entries of a flat tree.
//
// Keys are slash-separated relative paths. Implementations of this interface
// are assumed to be fairly simple; the local file system one is the only
// production backend.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
	Clear(context.Context) error
}

// PipeIO copies the reader to the writer until exhaustion
func PipeIO(writer io.Writer, reader io.Reader) (n int64, err error) {
	buf := make([]byte, 32*1024)
	return io.CopyBuffer(writer, reader, buf)
}

// Copy transfers one entry between two stores
func Copy(ctx context.Context, src Store, srcKey string, dst Store, dstKey string) error {
	rdr, err := src.Get(ctx, srcKey)
	if err != nil {
		return err
	}
	defer rdr.Close()
	return dst.Put(ctx, dstKey, rdr)
}
