package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ddvk/ppl/config"
	"github.com/ddvk/ppl/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(infos []Info) []string {
	out := make([]string, len(infos))
	for i, in := range infos {
		out[i] = in.Key
	}
	return out
}

func read(t *testing.T, s Store, key string) (Info, string) {
	t.Helper()
	info, rc, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return info, string(b)
}

// exercise runs the behaviour every driver shares.
func exercise(t *testing.T, s Store) {
	ctx := context.Background()
	opts := PutOptions{ContentType: ContentType, Metadata: map[string]string{"source": "main-st.hcl"}}

	info, err := s.Put(ctx, "feeder-12/pole-1.ppl", strings.NewReader("<PPL/>"), opts)
	require.NoError(t, err)
	assert.Equal(t, "feeder-12/pole-1.ppl", info.Key)
	assert.Equal(t, int64(6), info.Size)
	assert.NotEmpty(t, info.ETag)

	got, body := read(t, s, "feeder-12/pole-1.ppl")
	assert.Equal(t, "<PPL/>", body)
	assert.Equal(t, ContentType, got.ContentType)
	assert.Equal(t, "main-st.hcl", got.Metadata["source"])

	head, err := s.Head(ctx, "feeder-12/pole-1.ppl")
	require.NoError(t, err)
	assert.Equal(t, info.ETag, head.ETag)

	_, err = s.Put(ctx, "feeder-12/pole-1.ppl", strings.NewReader("<PPL></PPL>"), opts)
	assert.ErrorIs(t, err, ErrExists)
	_, body = read(t, s, "feeder-12/pole-1.ppl")
	assert.Equal(t, "<PPL/>", body)

	opts.Overwrite = true
	replaced, err := s.Put(ctx, "feeder-12/pole-1.ppl", strings.NewReader("<PPL></PPL>"), opts)
	require.NoError(t, err)
	assert.NotEqual(t, info.ETag, replaced.ETag)
	_, body = read(t, s, "feeder-12/pole-1.ppl")
	assert.Equal(t, "<PPL></PPL>", body)

	for _, k := range []string{"feeder-12/pole-2.ppl", "feeder-9/pole-1.ppl", "index.ppl"} {
		_, err := s.Put(ctx, k, strings.NewReader(k), PutOptions{})
		require.NoError(t, err)
	}
	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"feeder-12/pole-1.ppl", "feeder-12/pole-2.ppl", "feeder-9/pole-1.ppl", "index.ppl"}, keys(all))
	sub, err := s.List(ctx, "feeder-12/")
	require.NoError(t, err)
	assert.Equal(t, []string{"feeder-12/pole-1.ppl", "feeder-12/pole-2.ppl"}, keys(sub))
	assert.Equal(t, int64(len("feeder-12/pole-2.ppl")), sub[1].Size)

	existed, err := s.Delete(ctx, "feeder-12/pole-2.ppl")
	require.NoError(t, err)
	assert.True(t, existed)
	existed, err = s.Delete(ctx, "feeder-12/pole-2.ppl")
	require.NoError(t, err)
	assert.False(t, existed)

	_, _, err = s.Get(ctx, "feeder-12/pole-2.ppl")
	assert.ErrorIs(t, err, ErrNotExist)
	_, err = s.Head(ctx, "missing.ppl")
	assert.ErrorIs(t, err, ErrNotExist)

	for _, bad := range []string{"", "  ", "/etc/passwd", "../up.ppl", "a/../../up.ppl"} {
		_, err := s.Put(ctx, bad, strings.NewReader("x"), PutOptions{})
		assert.ErrorIs(t, err, ErrBadKey, "key %q", bad)
	}
}

func TestFS(t *testing.T) {
	root := filepath.Join(t.TempDir(), "docs")
	s, err := NewFS(root)
	require.NoError(t, err)
	assert.Equal(t, DriverFS, s.Driver())
	exercise(t, s)

	b, err := os.ReadFile(filepath.Join(root, "feeder-12", "pole-1.ppl"))
	require.NoError(t, err)
	assert.Equal(t, "<PPL></PPL>", string(b))
	_, err = os.Stat(filepath.Join(root, "feeder-12", "pole-1.ppl.meta"))
	assert.NoError(t, err)

	// no temporary files are left next to the objects
	entries, err := os.ReadDir(filepath.Join(root, "feeder-12"))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), e.Name())
	}

	_, err = s.Put(context.Background(), "x.ppl.meta", strings.NewReader(""), PutOptions{})
	assert.ErrorIs(t, err, ErrBadKey)
}

func TestFS_OverwriteKeepsCreation(t *testing.T) {
	root := t.TempDir()
	s, err := NewFS(root)
	require.NoError(t, err)
	ctx := context.Background()
	_, err = s.Put(ctx, "a.ppl", strings.NewReader("1"), PutOptions{})
	require.NoError(t, err)
	first, err := readMeta(filepath.Join(root, "a.ppl.meta"))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = s.Put(ctx, "a.ppl", strings.NewReader("2"), PutOptions{Overwrite: true})
	require.NoError(t, err)
	second, err := readMeta(filepath.Join(root, "a.ppl.meta"))
	require.NoError(t, err)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestFS_MissingMetadata(t *testing.T) {
	ctx := context.Background()
	s, err := NewFS(t.TempDir())
	require.NoError(t, err)
	_, err = s.Put(ctx, "a.ppl", strings.NewReader("<PPL/>"), PutOptions{})
	require.NoError(t, err)

	dataPath, metaPath, err := s.paths("a.ppl")
	require.NoError(t, err)
	require.NoError(t, os.Remove(metaPath))
	require.FileExists(t, dataPath)

	_, rc, err := s.Get(ctx, "a.ppl")
	assert.ErrorIs(t, err, ErrNotExist)
	assert.Nil(t, rc)
	_, err = s.Head(ctx, "a.ppl")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestMemory(t *testing.T) {
	s := NewMemory()
	assert.Equal(t, DriverMemory, s.Driver())
	exercise(t, s)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	_, err := s.Put(ctx, "a.ppl", strings.NewReader("x"), PutOptions{Metadata: map[string]string{"k": "v"}})
	require.NoError(t, err)
	info, err := s.Head(ctx, "a.ppl")
	require.NoError(t, err)
	info.Metadata["k"] = "changed"
	again, err := s.Head(ctx, "a.ppl")
	require.NoError(t, err)
	assert.Equal(t, "v", again.Metadata["k"])
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, config.Store{Driver: config.DriverFS, FSRoot: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, DriverFS, s.Driver())

	s, err = Open(ctx, config.Store{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, s.Driver())

	_, err = Open(ctx, config.Store{Driver: config.DriverS3})
	assert.ErrorContains(t, err, "bucket")

	_, err = Open(ctx, config.Store{Driver: "ftp"})
	assert.ErrorContains(t, err, "ftp")
}

func TestInstrument(t *testing.T) {
	rec := metrics.NewPrometheus()
	s := Instrument(NewMemory(), rec)
	assert.Equal(t, DriverMemory, s.Driver())
	exercise(t, s)

	n, err := testutil.GatherAndCount(rec.Registry(), "ppl_operations_total")
	require.NoError(t, err)
	// five operations succeed; put, get and head also fail
	assert.GreaterOrEqual(t, n, 7)

	plain := NewMemory()
	assert.Same(t, plain, Instrument(plain, nil))
}
