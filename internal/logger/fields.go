package logger

// Structured field names shared by the driver's log lines.
const (
	FieldAlgorithm  = "algorithm"
	FieldRule       = "rule"
	FieldPattern    = "pattern"
	FieldTextLen    = "text_len"
	FieldPatternLen = "pattern_len"
	FieldCount      = "count"
	FieldDurationNS = "duration_ns"
	FieldIterations = "iterations"
	FieldConfigFile = "config_file"
	FieldError      = "error"
)
