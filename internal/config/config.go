package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Output    string          `mapstructure:"output"`
	Browser   BrowserConfig   `mapstructure:"browser"`
	Scroll    ScrollConfig    `mapstructure:"scroll"`
	Detection DetectionConfig `mapstructure:"detection"`
}

// BrowserConfig defines how the scraping browser is launched
type BrowserConfig struct {
	Headless   bool `mapstructure:"headless"`
	TimeoutSec int  `mapstructure:"timeout_sec"` // whole-run deadline
}

// ScrollConfig defines the comment-loading scroll loop
type ScrollConfig struct {
	MaxRounds   int `mapstructure:"max_rounds"`
	SettleMs    int `mapstructure:"settle_ms"`
	StallRounds int `mapstructure:"stall_rounds"` // stop after this many rounds without growth
}

// DetectionConfig overrides the built-in donation keyword lists
type DetectionConfig struct {
	Keywords    []string `mapstructure:"keywords"`
	ThanksWords []string `mapstructure:"thanks_words"`
}

// LoadConfig loads configuration from a TOML file. An empty path yields
// the defaults, so the tool runs with zero setup.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	// Set defaults
	v.SetDefault("output", "superthanks.json")
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.timeout_sec", 180)
	v.SetDefault("scroll.max_rounds", 60)
	v.SetDefault("scroll.settle_ms", 1500)
	v.SetDefault("scroll.stall_rounds", 3)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
