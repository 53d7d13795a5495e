package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ddvk/ppl/catalog"
	"github.com/ddvk/ppl/element"
	"github.com/ddvk/ppl/ppl"
	"github.com/ddvk/ppl/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *ppl.Document {
	t.Helper()
	scene := element.New(element.Scene)
	pole := element.New(element.WoodPole)
	require.NoError(t, pole.Set("Pole_Number", "17"))
	require.NoError(t, scene.AddChild(pole))
	require.NoError(t, pole.AddChild(element.New(element.Insulator)))
	return ppl.New(scene)
}

func TestRun_File(t *testing.T) {
	doc := sample(t)
	path := filepath.Join(t.TempDir(), "pole.ppl")
	require.NoError(t, doc.Save(path))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, []string{"-a", path}))
	s := out.String()
	assert.Contains(t, s, "PPLScene "+doc.Root.ID().String())
	assert.Contains(t, s, "\tWoodPole ")
	assert.Contains(t, s, "Pole Number (String): 17")
	assert.Contains(t, s, "Insulator")
	assert.Regexp(t, `WoodPole\s+1\n`, s)
}

func TestRun_FileWithoutStamp(t *testing.T) {
	doc := sample(t)
	doc.Metadata = func() ppl.Metadata { return ppl.Metadata{} }
	path := filepath.Join(t.TempDir(), "bare.ppl")
	require.NoError(t, doc.Save(path))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, []string{path}))
	assert.Contains(t, out.String(), "Saved: - by - on -\n")
	assert.NotContains(t, out.String(), "0001-01-01")
}

func TestRun_Store(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "pplgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output:\n  driver: fs\n  fs_root: "+dir+"\n"), 0o644))
	st, err := store.NewFS(dir)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = sample(t).WriteTo(&buf)
	require.NoError(t, err)
	_, err = st.Put(context.Background(), "feeder/a.ppl", &buf, store.PutOptions{ContentType: store.ContentType})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, []string{"-config", cfg, "-key", "feeder/a.ppl"}))
	assert.Contains(t, out.String(), "WoodPole")

	err = run(context.Background(), &out, []string{"-config", cfg, "-key", "missing.ppl"})
	assert.ErrorIs(t, err, store.ErrNotExist)
}

func TestRun_Catalog(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := catalog.Open(path)
	require.NoError(t, err)
	doc := sample(t)
	require.NoError(t, c.Index(ctx, "a.ppl", doc))
	require.NoError(t, c.Close())

	var out bytes.Buffer
	require.NoError(t, run(ctx, &out, []string{"-catalog", path}))
	assert.Contains(t, out.String(), "a.ppl\tPPLScene")

	out.Reset()
	require.NoError(t, run(ctx, &out, []string{"-catalog", path, "-find", "Pole Number=17"}))
	assert.Equal(t, "a.ppl\t"+doc.Root.Children()[0].ID().String()+"\n", out.String())

	assert.Error(t, run(ctx, &out, []string{"-catalog", path, "-find", "nonsense"}))
}
