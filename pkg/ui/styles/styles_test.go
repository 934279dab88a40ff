package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/nmk-dotfiles/nmk/pkg/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{"Header", "Error", "Warning", "Success", "Key", "Value", "Muted", "Notice"} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, styles.Has(name))
		})
	}
	assert.False(t, styles.Has("Nope"))
}

func TestRenderKeepsText(t *testing.T) {
	assert.Contains(t, styles.Render("Error", "boom"), "boom")
	assert.Contains(t, styles.Render("Nope", "plain"), "plain")
}

func TestKeyStyleWidth(t *testing.T) {
	out := styles.GetStyle("Key").Render("tmux")
	assert.GreaterOrEqual(t, len(out), 20)
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, styles.LoadStylesFromData(mustRead(t, "styles.yaml")))
	})

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles:\n  Only:\n    bold: true\n"), 0644))

	require.NoError(t, styles.LoadStyles(path))
	assert.True(t, styles.Has("Only"))
	assert.False(t, styles.Has("Header"))

	err := styles.LoadStyles(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	err = styles.LoadStylesFromData([]byte("styles: [unclosed"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
