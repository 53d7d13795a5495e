package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	w := &Watcher{cfg: Config{
		Patterns: []string{"/defs/**/*.hcl"},
		Excludes: []string{"draft/**"},
	}}
	assert.True(t, w.Match("/defs/a.hcl"))
	assert.True(t, w.Match("/defs/feeder/12/a.hcl"))
	assert.False(t, w.Match("/defs/a.txt"))
	assert.False(t, w.Match("/other/a.hcl"))
	assert.False(t, w.Match("/defs/draft/a.hcl"))
}

func TestNew_NoPatterns(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "feeder"), 0o755))

	w, err := New(Config{
		Patterns: []string{filepath.Join(root, "**", "*.hcl")},
		Debounce: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	batches := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, changed []string) {
			batches <- changed
		})
	}()

	a := filepath.Join(root, "a.hcl")
	b := filepath.Join(root, "feeder", "b.hcl")
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(a, []byte("PPLScene {}\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("PPLScene {}\n"), 0o644))

	seen := map[string]bool{}
	deadline := time.After(5 * time.Second)
	for len(seen) < 2 {
		select {
		case got := <-batches:
			for _, p := range got {
				seen[p] = true
			}
		case <-deadline:
			t.Fatalf("batches incomplete: %v", seen)
		}
	}
	assert.Equal(t, map[string]bool{a: true, b: true}, seen)

	// directories created later are picked up
	sub := filepath.Join(root, "feeder", "new")
	require.NoError(t, os.Mkdir(sub, 0o755))
	time.Sleep(100 * time.Millisecond)
	c := filepath.Join(sub, "c.hcl")
	require.NoError(t, os.WriteFile(c, []byte("PPLScene {}\n"), 0o644))

	select {
	case got := <-batches:
		assert.Equal(t, []string{c}, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no batch for the new directory")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}
