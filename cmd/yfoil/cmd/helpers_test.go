package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yfoil/yfoil/internal/config"
)

// sandbox is an isolated working directory with its own HOME and no
// YFOIL_* variables.
type sandbox struct {
	t        *testing.T
	dir      string
	home     string
	testdata string
}

func newSandbox(t *testing.T) *sandbox {
	t.Helper()
	testdata, err := filepath.Abs(filepath.Join("..", "..", "..", "internal", "geometry", "testdata"))
	require.NoError(t, err)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("NO_COLOR", "1")
	for _, key := range []string{config.EnvInputFile, config.EnvPlotOutput, config.EnvPlotTitle,
		config.EnvPlotWidth, config.EnvPlotHeight, config.EnvLogLevel} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	dir := t.TempDir()
	prevWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	return &sandbox{t: t, dir: dir, home: home, testdata: testdata}
}

// copyFixture copies a geometry fixture into the sandbox under name.
func (s *sandbox) copyFixture(fixture, name string) string {
	s.t.Helper()
	data, err := os.ReadFile(filepath.Join(s.testdata, fixture))
	require.NoError(s.t, err)
	require.NoError(s.t, os.WriteFile(filepath.Join(s.dir, name), data, 0o644))
	return name
}

func (s *sandbox) write(name, content string) {
	s.t.Helper()
	path := filepath.Join(s.dir, name)
	require.NoError(s.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(s.t, os.WriteFile(path, []byte(content), 0o644))
}

func (s *sandbox) read(name string) string {
	s.t.Helper()
	return readFile(s.t, filepath.Join(s.dir, name))
}

func (s *sandbox) homeDir() string {
	return s.home
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// run executes yfoil with args the way main does.
func run(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	err = execute(args, &out, &errOut)
	return out.String(), errOut.String(), err
}
