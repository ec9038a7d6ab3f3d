// Copyright © 2018 One Concern

package localfs

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/oneconcern/stash2d/pkg/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHas(t *testing.T) {
	bs := setupStore(t)

	has, err := bs.Has(context.Background(), "src/main.c")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "README")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "src/other.c")
	require.NoError(t, err)
	require.False(t, has)
}

func TestGet(t *testing.T) {
	bs := setupStore(t)

	rdr, err := bs.Get(context.Background(), "src/main.c")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, "int main() {}", string(b))

	_, err = bs.Get(context.Background(), "src/other.c")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPut(t *testing.T) {
	bs := setupStore(t)

	content := bytes.NewBufferString("here we go once again")
	err := bs.Put(context.Background(), "deep/nested/dir/file.txt", content)
	require.NoError(t, err)

	rdr, err := bs.Get(context.Background(), "deep/nested/dir/file.txt")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())

	assert.Equal(t, "here we go once again", string(b))

	k, _ := bs.Keys(context.Background())
	assert.Len(t, k, 3)
}

func TestKeys(t *testing.T) {
	bs := setupStore(t)

	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Contains(t, keys, "src/main.c")
	assert.Contains(t, keys, "README")
}

func TestDelete(t *testing.T) {
	bs := setupStore(t)

	require.NoError(t, bs.Delete(context.Background(), "README"))
	k, _ := bs.Keys(context.Background())
	assert.Len(t, k, 1)

	// deleting a missing key is not an error
	require.NoError(t, bs.Delete(context.Background(), "README"))
}

func TestClear(t *testing.T) {
	bs := setupStore(t)

	require.NoError(t, bs.Clear(context.Background()))
	k, _ := bs.Keys(context.Background())
	require.Empty(t, k)
}

func TestCopy(t *testing.T) {
	src := setupStore(t)
	dst := New(afero.NewMemMapFs())

	require.NoError(t, storage.Copy(context.Background(), src, "src/main.c", dst, "Baseline/src/main.c"))
	rdr, err := dst.Get(context.Background(), "Baseline/src/main.c")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, "int main() {}", string(b))
}

func setupStore(t testing.TB) storage.Store {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("src", 0755))
	fakeFile(t, fs, "src/main.c", "int main() {}")
	fakeFile(t, fs, "README", "this is the text")

	return New(fs)
}

func fakeFile(t testing.TB, fs afero.Fs, file, content string) {
	t.Helper()
	f, err := fs.Create(file)
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}
