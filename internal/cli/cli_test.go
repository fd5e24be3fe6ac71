package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCatalog(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RISKSCAN_HOME", t.TempDir())
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"catalog"}, args...))
	err := root.Execute()
	return ansi.Strip(out.String()), err
}

func TestCatalogCmd_Default(t *testing.T) {
	out, err := runCatalog(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Hidden Financial Risk")
	assert.Contains(t, out, "High Risk")
	assert.Contains(t, out, "total risks: 3")
}

func TestCatalogCmd_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	data := "findings:\n  - id: 7\n    category: Custom\n    count: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := runCatalog(t, "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Custom")
	assert.Contains(t, out, "total risks: 4")
}

func TestCatalogCmd_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("findings:\n  - id: 1\n    category: A\n    count: -1\n"), 0o644))

	_, err := runCatalog(t, "--catalog", path)
	assert.Error(t, err)
}
