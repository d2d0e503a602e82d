// Package config loads the strsearch command configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (STRSEARCH_* prefix, "." replaced by "_")
//  2. The file given with --config, or ./strsearch.toml when present
//  3. Default values
//
// Example strsearch.toml:
//
//	[selector]
//	small_text = 4096
//
//	[bench]
//	iterations = 20
package config

import (
	"github.com/cockroachdb/errors"

	"github.com/coregx/strsearch/engine"
	"github.com/coregx/strsearch/selector"
)

// Config is the effective configuration of the strsearch command.
type Config struct {
	Selector SelectorConfig `mapstructure:"selector" toml:"selector" json:"selector" yaml:"selector"`
	Search   SearchConfig   `mapstructure:"search" toml:"search" json:"search" yaml:"search"`
	Bench    BenchConfig    `mapstructure:"bench" toml:"bench" json:"bench" yaml:"bench"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`

	// Source is the configuration file that was read, or "" for none.
	Source string `mapstructure:"-" toml:"-" json:"-" yaml:"-"`
}

// SelectorConfig holds the thresholds of the heuristic selector.
// See selector.Config for their meaning.
type SelectorConfig struct {
	VeryShortPattern   int     `mapstructure:"very_short_pattern" toml:"very_short_pattern" json:"very_short_pattern" yaml:"very_short_pattern"`
	ShortPattern       int     `mapstructure:"short_pattern" toml:"short_pattern" json:"short_pattern" yaml:"short_pattern"`
	MediumPattern      int     `mapstructure:"medium_pattern" toml:"medium_pattern" json:"medium_pattern" yaml:"medium_pattern"`
	LongPattern        int     `mapstructure:"long_pattern" toml:"long_pattern" json:"long_pattern" yaml:"long_pattern"`
	TinyText           int     `mapstructure:"tiny_text" toml:"tiny_text" json:"tiny_text" yaml:"tiny_text"`
	SmallText          int     `mapstructure:"small_text" toml:"small_text" json:"small_text" yaml:"small_text"`
	MediumText         int     `mapstructure:"medium_text" toml:"medium_text" json:"medium_text" yaml:"medium_text"`
	RepetitionRatio    float64 `mapstructure:"repetition_ratio" toml:"repetition_ratio" json:"repetition_ratio" yaml:"repetition_ratio"`
	MinRepetitionCheck int     `mapstructure:"min_repetition_check" toml:"min_repetition_check" json:"min_repetition_check" yaml:"min_repetition_check"`
	MinTilingCheck     int     `mapstructure:"min_tiling_check" toml:"min_tiling_check" json:"min_tiling_check" yaml:"min_tiling_check"`
	PatternSample      int     `mapstructure:"pattern_sample" toml:"pattern_sample" json:"pattern_sample" yaml:"pattern_sample"`
	TextSample         int     `mapstructure:"text_sample" toml:"text_sample" json:"text_sample" yaml:"text_sample"`
	SmallAlphabet      int     `mapstructure:"small_alphabet" toml:"small_alphabet" json:"small_alphabet" yaml:"small_alphabet"`
}

// SearchConfig holds settings of the search command.
type SearchConfig struct {
	// DefaultAlgorithm is used when no --algorithm flag is given. "auto"
	// lets the selector decide.
	DefaultAlgorithm string `mapstructure:"default_algorithm" toml:"default_algorithm" json:"default_algorithm" yaml:"default_algorithm"`
}

// BenchConfig holds settings of the bench command.
type BenchConfig struct {
	Iterations int  `mapstructure:"iterations" toml:"iterations" json:"iterations" yaml:"iterations"`
	Warmup     int  `mapstructure:"warmup" toml:"warmup" json:"warmup" yaml:"warmup"`
	Verify     bool `mapstructure:"verify" toml:"verify" json:"verify" yaml:"verify"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	JSON    bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
	Verbose bool `mapstructure:"verbose" toml:"verbose" json:"verbose" yaml:"verbose"`
}

// AutoAlgorithm is the search.default_algorithm value that defers to the
// selector.
const AutoAlgorithm = "auto"

// SelectorConfig converts the thresholds to a selector.Config.
func (c *Config) SelectorConfig() selector.Config {
	s := c.Selector
	return selector.Config{
		VeryShortPattern:   s.VeryShortPattern,
		ShortPattern:       s.ShortPattern,
		MediumPattern:      s.MediumPattern,
		LongPattern:        s.LongPattern,
		TinyText:           s.TinyText,
		SmallText:          s.SmallText,
		MediumText:         s.MediumText,
		RepetitionRatio:    s.RepetitionRatio,
		MinRepetitionCheck: s.MinRepetitionCheck,
		MinTilingCheck:     s.MinTilingCheck,
		PatternSample:      s.PatternSample,
		TextSample:         s.TextSample,
		SmallAlphabet:      s.SmallAlphabet,
	}
}

// NewSelector builds the heuristic selector described by c.
func (c *Config) NewSelector() (*selector.Heuristic, error) {
	h, err := selector.New(c.SelectorConfig())
	if err != nil {
		return nil, errors.Wrap(err, "selector thresholds")
	}
	return h, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := c.SelectorConfig().Validate(); err != nil {
		return errors.WithHint(
			errors.Wrap(err, "selector thresholds"),
			"pattern thresholds must increase: very_short < short < medium < long")
	}

	if c.Search.DefaultAlgorithm != AutoAlgorithm {
		if _, err := engine.ParseAlgorithm(c.Search.DefaultAlgorithm); err != nil {
			return errors.WithHintf(
				errors.Wrap(err, "search.default_algorithm"),
				"use %q or one of: Naive, KMP, RabinKarp, BoyerMoore, Horspool", AutoAlgorithm)
		}
	}

	if c.Bench.Iterations < 1 {
		return errors.Newf("bench.iterations must be at least 1, got %d", c.Bench.Iterations)
	}
	if c.Bench.Warmup < 0 {
		return errors.Newf("bench.warmup must not be negative, got %d", c.Bench.Warmup)
	}
	return nil
}
