package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) record(files []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, files)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logrus.NewEntry(logger)
}

func TestWatcherReportsChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	watched := filepath.Join(dir, "nav.yml")
	other := filepath.Join(dir, "other.yml")
	require.NoError(t, os.WriteFile(watched, []byte("entries: []\n"), 0o600))

	rec := &recorder{}
	w, err := New([]string{watched}, 50*time.Millisecond, quietLogger(), rec.record)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.NoError(t, os.WriteFile(other, []byte("ignored\n"), 0o600))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(watched, []byte("entries: [1]\n"), 0o600))
	}

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) > 0
	}, 2*time.Second, 20*time.Millisecond)

	calls := rec.snapshot()
	assert.Equal(t, []string{watched}, calls[0], "only the watched file is reported")

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, err := New([]string{filepath.Join(t.TempDir(), "missing", "nav.yml")}, 0, quietLogger(), nil)
	assert.Error(t, err)
}

func TestWatcherCloseTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := New([]string{filepath.Join(t.TempDir(), "nav.yml")}, 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
