package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/engine"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("registrations under fixed key", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, `
server:
  addr: ":8080"
notifications:
  html: true
  humane:
    theme: bigbox
    timeout: 4000
`)
		cfg, err := engine.LoadConfig(path)
		require.NoError(t, err)
		require.Len(t, cfg, 2)
		assert.Equal(t, true, cfg["html"])

		humane, ok := cfg["humane"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "bigbox", humane["theme"])
		assert.Equal(t, 4000, humane["timeout"])
	})

	t.Run("missing key yields empty config", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, "server:\n  addr: \":8080\"\n")
		cfg, err := engine.LoadConfig(path)
		require.NoError(t, err)
		assert.Empty(t, cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := engine.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, "notifications: [unclosed")
		_, err := engine.LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfig_Merge(t *testing.T) {
	t.Parallel()

	programmatic := engine.Config{
		"html": true,
		"json": map[string]any{"field": "messages"},
	}
	external := engine.Config{
		"json":   map[string]any{"field": "alerts"},
		"humane": true,
	}

	merged := programmatic.Merge(external)

	// External config wins on collision; programmatic fills the rest.
	assert.Equal(t, true, merged["html"])
	assert.Equal(t, true, merged["humane"])
	jsonCfg, ok := merged["json"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alerts", jsonCfg["field"])

	// Inputs are untouched.
	assert.Equal(t, "messages", programmatic["json"].(map[string]any)["field"])
}

func TestConfig_MergeBuildRoundTrip(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
notifications:
  alertify:
    theme: dark
`)
	external, err := engine.LoadConfig(path)
	require.NoError(t, err)

	r := engine.NewRegistry()
	require.NoError(t, r.Build(engine.Config{"html": true}.Merge(external)))
	assert.Equal(t, []string{"alertify", "html"}, r.Names())
}
