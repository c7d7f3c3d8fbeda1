package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// OutputDefault is the report path used when --output is not given.
	OutputDefault string `mapstructure:"output_default" yaml:"output_default"`
	// DistinctThreshold separates enumerable from open value domains.
	DistinctThreshold int `mapstructure:"distinct_threshold" yaml:"distinct_threshold"`
	// SniffDepth bounds the nested-JSON content sniff.
	SniffDepth int `mapstructure:"sniff_depth" yaml:"sniff_depth"`
	// SampleSize caps the per-column random sample.
	SampleSize int `mapstructure:"sample_size" yaml:"sample_size"`
	// Sequential disables parallel per-column profiling.
	Sequential bool `mapstructure:"sequential" yaml:"sequential"`
}

// Save writes the configuration to cfgFile, or to ~/.datadoc/config.yaml if
// cfgFile is empty, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".datadoc")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATADOC")
	v.AutomaticEnv()

	v.SetDefault("output_default", "data_documentation.md")
	v.SetDefault("distinct_threshold", 20)
	v.SetDefault("sniff_depth", 10)
	v.SetDefault("sample_size", 5)
	v.SetDefault("sequential", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".datadoc")
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
	return &c, nil
}
