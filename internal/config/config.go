package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/kata-cli/internal/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by the output key.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Global configuration structure.
type Global struct {
	Output          string `mapstructure:"output" yaml:"output" json:"output"`
	HistogramCounts bool   `mapstructure:"histogram_counts" yaml:"histogram_counts" json:"histogram_counts"`
	LogLevel        string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
}

// Validate checks enumerated keys.
func (c *Global) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output: %s (use text, json or yaml)", c.Output)
	}
	return nil
}

// NormalizeOutput lowercases a user supplied output format name.
func NormalizeOutput(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.kata/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return utils.SafeWriteFile(path, b)
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("KATA")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("output", OutputText)
	v.SetDefault("histogram_counts", false)
	v.SetDefault("log_level", "warn")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Output = NormalizeOutput(c.Output)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".kata"), nil
}
