package selector

import "fmt"

// Config holds the thresholds of the heuristic decision procedure.
//
// Pattern lengths partition patterns into very short, short, medium, long
// and very long. Text lengths decide whether a matcher's preprocessing is
// amortized by the scan. The remaining fields bound the cost of the content
// statistics.
//
// Example:
//
//	config := selector.DefaultConfig()
//	config.SmallText = 4096 // prefer lighter matchers on larger inputs
//	h, err := selector.New(config)
type Config struct {
	// VeryShortPattern is the largest pattern length handled by the
	// very-short rule (Naive or Horspool).
	// Default: 3
	VeryShortPattern int

	// ShortPattern is the largest pattern length handled by the short rule.
	// Default: 8
	ShortPattern int

	// MediumPattern is the largest pattern length handled by the medium rule.
	// Default: 20
	MediumPattern int

	// LongPattern is the largest pattern length handled by the long rule.
	// Longer patterns always use RabinKarp.
	// Default: 50
	LongPattern int

	// TinyText is the text length below which no preprocessing pays off.
	// Default: 100
	TinyText int

	// SmallText is the text length from which BoyerMoore's good-suffix table
	// is worth building.
	// Default: 1000
	SmallText int

	// MediumText is the text length from which RabinKarp wins for long
	// patterns.
	// Default: 10000
	MediumText int

	// RepetitionRatio is the share of the pattern sample that its most
	// frequent byte must reach for the pattern to count as repetitive.
	// Default: 0.4
	RepetitionRatio float64

	// MinRepetitionCheck is the shortest pattern checked for repetition.
	// Default: 4
	MinRepetitionCheck int

	// MinTilingCheck is the shortest pattern checked for a repeating unit.
	// Default: 6
	MinTilingCheck int

	// PatternSample caps the number of pattern bytes in the frequency count.
	// Default: 256
	PatternSample int

	// TextSample caps the number of text bytes in the alphabet estimate.
	// Default: 4096
	TextSample int

	// SmallAlphabet is the largest alphabet for which medium patterns on
	// small texts still use BoyerMoore.
	// Default: 4 (DNA)
	SmallAlphabet int
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		VeryShortPattern:   3,
		ShortPattern:       8,
		MediumPattern:      20,
		LongPattern:        50,
		TinyText:           100,
		SmallText:          1000,
		MediumText:         10000,
		RepetitionRatio:    0.4,
		MinRepetitionCheck: 4,
		MinTilingCheck:     6,
		PatternSample:      256,
		TextSample:         4096,
		SmallAlphabet:      4,
	}
}

// Validate checks if the configuration is valid.
//
// Valid configurations have:
//   - 1 <= VeryShortPattern < ShortPattern < MediumPattern < LongPattern
//   - 0 <= TinyText < SmallText < MediumText
//   - 0 < RepetitionRatio <= 1
//   - MinRepetitionCheck >= 1, MinTilingCheck >= 4
//   - PatternSample >= 1, TextSample >= 1
//   - SmallAlphabet between 0 and 256
func (c Config) Validate() error {
	if c.VeryShortPattern < 1 {
		return &ConfigError{Field: "VeryShortPattern", Message: "must be at least 1"}
	}
	if c.ShortPattern <= c.VeryShortPattern {
		return &ConfigError{Field: "ShortPattern", Message: "must be greater than VeryShortPattern"}
	}
	if c.MediumPattern <= c.ShortPattern {
		return &ConfigError{Field: "MediumPattern", Message: "must be greater than ShortPattern"}
	}
	if c.LongPattern <= c.MediumPattern {
		return &ConfigError{Field: "LongPattern", Message: "must be greater than MediumPattern"}
	}

	if c.TinyText < 0 {
		return &ConfigError{Field: "TinyText", Message: "must not be negative"}
	}
	if c.SmallText <= c.TinyText {
		return &ConfigError{Field: "SmallText", Message: "must be greater than TinyText"}
	}
	if c.MediumText <= c.SmallText {
		return &ConfigError{Field: "MediumText", Message: "must be greater than SmallText"}
	}

	if c.RepetitionRatio <= 0 || c.RepetitionRatio > 1 {
		return &ConfigError{Field: "RepetitionRatio", Message: "must be in (0, 1]"}
	}
	if c.MinRepetitionCheck < 1 {
		return &ConfigError{Field: "MinRepetitionCheck", Message: "must be at least 1"}
	}
	// A repeating unit is at least 2 bytes and must occur twice.
	if c.MinTilingCheck < 4 {
		return &ConfigError{Field: "MinTilingCheck", Message: "must be at least 4"}
	}

	if c.PatternSample < 1 {
		return &ConfigError{Field: "PatternSample", Message: "must be at least 1"}
	}
	if c.TextSample < 1 {
		return &ConfigError{Field: "TextSample", Message: "must be at least 1"}
	}
	if c.SmallAlphabet < 0 || c.SmallAlphabet > 256 {
		return &ConfigError{Field: "SmallAlphabet", Message: "must be between 0 and 256"}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("selector: invalid config: %s: %s", e.Field, e.Message)
}
