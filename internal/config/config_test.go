package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Create a temporary config file
	configContent := `
output = "out.json"

[browser]
headless = false
timeout_sec = 60

[scroll]
max_rounds = 10
settle_ms = 500
stall_rounds = 2

[detection]
keywords = ["super thanks", "süper teşekkürler"]
thanks_words = ["thanks", "teşekkür"]
`

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	// Load the config
	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	// Verify config values
	assert.Equal(t, "out.json", config.Output)

	assert.False(t, config.Browser.Headless)
	assert.Equal(t, 60, config.Browser.TimeoutSec)

	assert.Equal(t, 10, config.Scroll.MaxRounds)
	assert.Equal(t, 500, config.Scroll.SettleMs)
	assert.Equal(t, 2, config.Scroll.StallRounds)

	assert.Equal(t, []string{"super thanks", "süper teşekkürler"}, config.Detection.Keywords)
	assert.Equal(t, []string{"thanks", "teşekkür"}, config.Detection.ThanksWords)
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "superthanks.json", config.Output)
	assert.True(t, config.Browser.Headless)
	assert.Equal(t, 180, config.Browser.TimeoutSec)
	assert.Equal(t, 60, config.Scroll.MaxRounds)
	assert.Equal(t, 1500, config.Scroll.SettleMs)
	assert.Equal(t, 3, config.Scroll.StallRounds)
	assert.Empty(t, config.Detection.Keywords)
	assert.Empty(t, config.Detection.ThanksWords)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.toml")

	err := os.WriteFile(configPath, []byte("output = \"only.json\"\n"), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "only.json", config.Output)
	assert.True(t, config.Browser.Headless)
	assert.Equal(t, 60, config.Scroll.MaxRounds)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	config, err := LoadConfig("nonexistent.toml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config file")
}
