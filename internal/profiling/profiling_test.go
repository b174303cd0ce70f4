package profiling

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_WritesBothProfiles(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.prof")
	heap := filepath.Join(dir, "heap.prof")

	s, err := Start(cpu, heap)
	require.NoError(t, err)

	sum := 0
	for i := 0; i < 1000000; i++ {
		sum += i
	}
	_ = sum

	require.NoError(t, s.Stop())
	for _, p := range []string{cpu, heap} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), p)
	}

	assert.NoError(t, s.Stop(), "second Stop is a no-op")
}

func TestSession_NoPathsIsNoop(t *testing.T) {
	s, err := Start("", "")
	require.NoError(t, err)

	assert.NoError(t, s.Stop())
}

func TestStart_BadCPUPath(t *testing.T) {
	_, err := Start(filepath.Join(t.TempDir(), "missing", "cpu.prof"), "")

	assert.ErrorContains(t, err, "create CPU profile file")
}

func TestStop_BadHeapPath(t *testing.T) {
	s, err := Start("", filepath.Join(t.TempDir(), "missing", "heap.prof"))
	require.NoError(t, err)

	assert.ErrorContains(t, s.Stop(), "create heap profile file")
}
