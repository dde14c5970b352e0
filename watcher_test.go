package glhelpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shaders.toml"), testManifest)
	writeFile(t, filepath.Join(dir, "sprite.vert"), "vs")
	writeFile(t, filepath.Join(dir, "sprite.frag"), "fs")
	writeFile(t, filepath.Join(dir, "post", "blur.comp"), "cs")

	m, err := LoadManifest(filepath.Join(dir, "shaders.toml"))
	require.NoError(t, err)

	w, err := NewWatcher(m, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, filepath.Join(dir, "sprite.frag"), "fs2")
	writeFile(t, filepath.Join(dir, "unrelated.txt"), "x")

	select {
	case ev := <-w.Events():
		require.NoError(t, ev.Err)
		assert.Equal(t, "sprite", ev.Program)
		src, _ := ev.Code.Get(FragmentShader)
		assert.Equal(t, "fs2", src)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event")
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.vert"), "vs")
	m, err := ParseManifest([]byte("[program.a]\nvertex = \"a.vert\"\n"), dir)
	require.NoError(t, err)

	w, err := NewWatcher(m)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events()
	assert.False(t, ok)
}

func TestWatcherDebounce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shaders.toml"), testManifest)
	writeFile(t, filepath.Join(dir, "sprite.vert"), "vs")
	writeFile(t, filepath.Join(dir, "sprite.frag"), "fs")
	writeFile(t, filepath.Join(dir, "post", "blur.comp"), "cs")

	m, err := LoadManifest(filepath.Join(dir, "shaders.toml"))
	require.NoError(t, err)

	const debounce = 200 * time.Millisecond
	w, err := NewWatcher(m, WithDebounce(debounce))
	require.NoError(t, err)
	defer w.Close()

	for _, src := range []string{"fs1", "fs2", "fs3", "fs4"} {
		writeFile(t, filepath.Join(dir, "sprite.frag"), src)
	}
	writeFile(t, filepath.Join(dir, "sprite.vert"), "vs2")

	select {
	case ev := <-w.Events():
		require.NoError(t, ev.Err)
		assert.Equal(t, "sprite", ev.Program)
		vs, _ := ev.Code.Get(VertexShader)
		fs, _ := ev.Code.Get(FragmentShader)
		assert.Equal(t, "vs2", vs)
		assert.Equal(t, "fs4", fs)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event")
	}

	select {
	case ev := <-w.Events():
		t.Fatalf("burst gave a second reload for %q", ev.Program)
	case <-time.After(3 * debounce):
	}
}

func TestWatcherReadError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.vert"), "vs")
	writeFile(t, filepath.Join(dir, "a.frag"), "fs")
	m, err := ParseManifest([]byte("[program.a]\nvertex = \"a.vert\"\nfragment = \"a.frag\"\n"), dir)
	require.NoError(t, err)

	w, err := NewWatcher(m, WithDebounce(100*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	frag := filepath.Join(dir, "a.frag")
	require.NoError(t, os.Rename(frag, frag+".bak"))

	select {
	case ev := <-w.Events():
		assert.Equal(t, "a", ev.Program)
		require.Error(t, ev.Err)
		assert.True(t, os.IsNotExist(errors.Cause(ev.Err)))
		assert.True(t, ev.Code.Empty())
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event")
	}

	// the watcher keeps running after a failed read
	writeFile(t, frag, "fs2")
	select {
	case ev, ok := <-w.Events():
		require.True(t, ok)
		require.NoError(t, ev.Err)
		src, _ := ev.Code.Get(FragmentShader)
		assert.Equal(t, "fs2", src)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event after recovery")
	}
}
