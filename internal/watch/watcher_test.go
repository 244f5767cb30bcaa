package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, opts Options) (cancel func()) {
	t.Helper()

	w, err := New(opts)
	require.NoError(t, err)

	ctx, cancelFn := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, w.Run(ctx))
	}()

	// Give the watcher time to register its directories.
	time.Sleep(100 * time.Millisecond)

	return func() {
		cancelFn()
		<-done
	}
}

func TestWatcher_FiresOnMatchingChange(t *testing.T) {
	dir := t.TempDir()
	fired := make(chan struct{}, 10)

	stop := startWatcher(t, Options{
		Dirs:     []string{dir},
		Debounce: 50 * time.Millisecond,
		Match:    HasExt(".html"),
		OnChange: func() { fired <- struct{}{} },
	})
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte("x"), 0644))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change callback")
	}
}

func TestWatcher_Debounces(t *testing.T) {
	dir := t.TempDir()
	var count atomic.Int32

	stop := startWatcher(t, Options{
		Dirs:     []string{dir},
		Debounce: 300 * time.Millisecond,
		OnChange: func() { count.Add(1) },
	})
	defer stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte{byte(i)}, 0644))
		time.Sleep(20 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return count.Load() == 1 }, 3*time.Second, 50*time.Millisecond)
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load())
}

func TestWatcher_IgnoresNonMatching(t *testing.T) {
	dir := t.TempDir()
	var count atomic.Int32

	stop := startWatcher(t, Options{
		Dirs:     []string{dir},
		Debounce: 20 * time.Millisecond,
		Match:    HasExt(".html"),
		OnChange: func() { count.Add(1) },
	})
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), count.Load())
}

func TestWatcher_MissingDir(t *testing.T) {
	stop := startWatcher(t, Options{
		Dirs:     []string{filepath.Join(t.TempDir(), "nope")},
		Debounce: time.Millisecond,
		OnChange: func() {},
	})
	stop()
}

func TestHasExt(t *testing.T) {
	match := HasExt(".jpg", ".png")
	assert.True(t, match("images/tokyo.jpg"))
	assert.True(t, match("tokyo.png"))
	assert.False(t, match("tokyo.jpeg"))
	assert.False(t, match("tokyo"))
}

func TestWatcher_RunWaitsForPassInProgress(t *testing.T) {
	dir := t.TempDir()
	started := make(chan struct{}, 1)
	release := make(chan struct{})

	w, err := New(Options{
		Dirs:     []string{dir},
		Debounce: 20 * time.Millisecond,
		OnChange: func() {
			select {
			case started <- struct{}{}:
			default:
			}
			<-release
		},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, w.Run(ctx))
	}()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte("x"), 0644))
	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change callback")
	}

	cancel()
	select {
	case <-done:
		t.Fatal("Run returned while a pass was still running")
	case <-time.After(150 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after the pass finished")
	}
}

func TestWatcher_PassesDoNotOverlap(t *testing.T) {
	dir := t.TempDir()
	var active, overlaps, count atomic.Int32

	stop := startWatcher(t, Options{
		Dirs:     []string{dir},
		Debounce: 10 * time.Millisecond,
		OnChange: func() {
			if active.Add(1) > 1 {
				overlaps.Add(1)
			}
			time.Sleep(100 * time.Millisecond)
			active.Add(-1)
			count.Add(1)
		},
	})
	defer stop()

	for i := 0; i < 4; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte{byte(i)}, 0644))
		time.Sleep(40 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return count.Load() >= 2 }, 3*time.Second, 50*time.Millisecond)
	assert.Equal(t, int32(0), overlaps.Load())
}
