package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/goto/catalogindex/core/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cfg *Config, args ...string) (string, error) {
	t.Helper()

	root := New(cfg)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	root := New(&Config{})

	for _, path := range [][]string{
		{"index", "rebuild"},
		{"index", "prepare"},
		{"index", "install"},
		{"index", "copy"},
		{"index", "retune"},
		{"history", "list"},
		{"changelog", "subscribe"},
		{"synonyms", "add"},
		{"migrate"},
		{"config", "list"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestIndexNameCommand(t *testing.T) {
	cfg := &Config{Index: index.Config{Alias: "catalog", NamePattern: "{{YYYYMMdd}}-{{HHmmss}}"}}

	out, err := execute(t, cfg, "index", "name", "--at", "2024-03-12T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "catalog-20240312-143000\n", out)

	_, err = execute(t, cfg, "index", "name", "--at", "yesterday")
	assert.ErrorContains(t, err, "invalid --at")
}

func TestIndexRetuneRequiresSetting(t *testing.T) {
	_, err := execute(t, &Config{}, "index", "retune", "catalog-20240312-143000")
	assert.ErrorContains(t, err, "nothing to change")
}

func TestVersionCommand(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v0.4.0"
	out, err := execute(t, &Config{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "catalogindex version v0.4.0\n", out)
}

func TestConfigListCommand(t *testing.T) {
	cfg := &Config{LogLevel: "debug", Index: index.Config{Alias: "catalog"}}

	out, err := execute(t, cfg, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "log_level: debug")
	assert.Contains(t, out, "alias: catalog")
}

func TestEnvironmentHelpTopic(t *testing.T) {
	cmd, _, err := New(&Config{}).Find([]string{"environment"})
	require.NoError(t, err)
	assert.Equal(t, "List of supported environment variables", cmd.Short)
	assert.Contains(t, cmd.Long, "CATALOGINDEX_INDEX_ALIAS")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOTOCOMPANY_CONFIG_DIR", dir)
	writeFile(t, filepath.Join(dir, appName+".yml"), "log_level: debug\nindex:\n  alias: from_file\n  bulk_size: 500\n")
	t.Setenv("CATALOGINDEX_INDEX_ALIAS", "from_env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "from_env", cfg.Index.Alias)
	assert.Equal(t, 500, cfg.Index.BulkSize)
	assert.Equal(t, "./mappings", cfg.MappingsDir)
}
