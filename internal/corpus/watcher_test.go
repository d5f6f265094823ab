package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const watchDebounce = 20 * time.Millisecond

func contains(t *testing.T, m *Memory, id string) bool {
	t.Helper()
	found, err := m.Contains(context.Background(), id)
	require.NoError(t, err)
	return found
}

func TestWatcherAddsCreatedFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	scanner := NewScanner(root, nil, nil)
	mem := NewMemory()

	w, err := NewWatcher(mem, scanner, watchDebounce)
	require.NoError(t, err)
	require.NoError(t, w.Start(root))
	defer func() {
		assert.NoError(t, w.Stop())
	}()

	writeTree(t, root, "main.ts")

	require.Eventually(t, func() bool {
		return contains(t, mem, "main.ts")
	}, 2*time.Second, 10*time.Millisecond, "created file should enter the corpus")
}

func TestWatcherRemovesDeletedFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	writeTree(t, root, "src/main.ts")

	scanner := NewScanner(root, nil, nil)
	mem, err := scanner.Scan(context.Background())
	require.NoError(t, err)
	require.True(t, contains(t, mem, "src/main.ts"))

	w, err := NewWatcher(mem, scanner, watchDebounce)
	require.NoError(t, err)
	require.NoError(t, w.Start(root))
	defer func() {
		assert.NoError(t, w.Stop())
	}()

	require.NoError(t, os.Remove(filepath.Join(root, "src", "main.ts")))

	require.Eventually(t, func() bool {
		return !contains(t, mem, "src/main.ts")
	}, 2*time.Second, 10*time.Millisecond, "deleted file should leave the corpus")
}

func TestWatcherIgnoresExcluded(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	scanner := NewScanner(root, nil, []string{"**/*.log"})
	mem := NewMemory()

	w, err := NewWatcher(mem, scanner, watchDebounce)
	require.NoError(t, err)
	require.NoError(t, w.Start(root))
	defer func() {
		assert.NoError(t, w.Stop())
	}()

	writeTree(t, root, "debug.log", "main.ts")

	require.Eventually(t, func() bool {
		return contains(t, mem, "main.ts")
	}, 2*time.Second, 10*time.Millisecond)
	assert.False(t, contains(t, mem, "debug.log"))
}

func TestWatcherStartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	scanner := NewScanner(root, nil, nil)

	w, err := NewWatcher(NewMemory(), scanner, watchDebounce)
	require.NoError(t, err)
	require.NoError(t, w.Start(root))
	assert.NoError(t, w.Stop())
}
