package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/coregx/strsearch/selector"
)

// EnvPrefix is the prefix of environment variable overrides, for example
// STRSEARCH_BENCH_ITERATIONS.
const EnvPrefix = "STRSEARCH"

// DefaultFile is the configuration file read from the working directory
// when no explicit path is given.
const DefaultFile = "strsearch.toml"

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	s := selector.DefaultConfig()
	v.SetDefault("selector.very_short_pattern", s.VeryShortPattern)
	v.SetDefault("selector.short_pattern", s.ShortPattern)
	v.SetDefault("selector.medium_pattern", s.MediumPattern)
	v.SetDefault("selector.long_pattern", s.LongPattern)
	v.SetDefault("selector.tiny_text", s.TinyText)
	v.SetDefault("selector.small_text", s.SmallText)
	v.SetDefault("selector.medium_text", s.MediumText)
	v.SetDefault("selector.repetition_ratio", s.RepetitionRatio)
	v.SetDefault("selector.min_repetition_check", s.MinRepetitionCheck)
	v.SetDefault("selector.min_tiling_check", s.MinTilingCheck)
	v.SetDefault("selector.pattern_sample", s.PatternSample)
	v.SetDefault("selector.text_sample", s.TextSample)
	v.SetDefault("selector.small_alphabet", s.SmallAlphabet)

	v.SetDefault("search.default_algorithm", AutoAlgorithm)

	v.SetDefault("bench.iterations", 5)
	v.SetDefault("bench.warmup", 1)
	v.SetDefault("bench.verify", true)

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}

// NewViper returns a Viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		if cfg.Source != "" {
			return nil, errors.Wrapf(err, "invalid config %s", cfg.Source)
		}
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Load reads the configuration. An explicit path must exist; with an empty
// path ./strsearch.toml is read when present and defaults apply otherwise.
func Load(path string) (*Config, error) {
	v := NewViper()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(err, "failed to read config file %s", path),
				"the config file must be TOML, see 'strsearch config show'")
		}
	}

	return LoadWithViper(v)
}

// Default returns the configuration with every default applied and no
// environment or file overrides.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		panic(err)
	}
	return cfg
}
