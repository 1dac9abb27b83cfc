package oslg

// DefaultTrimLength is the maximum stored message length when none is
// configured.
const DefaultTrimLength = 60

// Config defines the configuration structure for a diagnostics session.
type Config struct {
	// Level is the minimum severity a log call must carry to be stored.
	// Accepted values: "debug", "info", "warning" (or "warn"), "error",
	// "fatal". Anything else falls back to "info".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "level" key
	//   - Environment variable OSLG_LEVEL
	Level string `yaml:"level" envconfig:"OSLG_LEVEL"`

	// TrimLength caps the length of stored messages. Messages are
	// stripped of surrounding whitespace and truncated to this many
	// characters before storage. Zero or negative values select the
	// default of 60.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "trim_length" key
	//   - Environment variable OSLG_TRIM_LENGTH
	TrimLength int `yaml:"trim_length" envconfig:"OSLG_TRIM_LENGTH"`

	// Console mirrors every stored entry to a structured Zap logger on
	// stderr. The mirror is purely observational: it never filters,
	// never mutates session state, and never terminates the process
	// (fatal entries are mirrored at Zap's error level).
	//
	// This setting can be configured via:
	//   - YAML configuration with the "console" key
	//   - Environment variable OSLG_CONSOLE
	Console bool `yaml:"console" envconfig:"OSLG_CONSOLE"`
}
