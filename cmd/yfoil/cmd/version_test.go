package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yfoil/yfoil/pkg/version"
)

func runVersion(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newVersionCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestVersionCmd_Default(t *testing.T) {
	out := runVersion(t)

	assert.True(t, strings.HasPrefix(out, "yfoil "+version.Version))
	assert.Contains(t, out, "commit:")
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, version.Version+"\n", runVersion(t, "--short"))
}

func TestVersionCmd_ShortWinsOverJSON(t *testing.T) {
	assert.Equal(t, version.Version+"\n", runVersion(t, "--short", "--json"))
}

func TestVersionCmd_JSON(t *testing.T) {
	var info version.BuildInfo
	require.NoError(t, json.Unmarshal([]byte(runVersion(t, "--json")), &info))

	assert.Equal(t, version.GetInfo(), info)
}
