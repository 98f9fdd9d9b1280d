package config

// Defaults for the CLI configuration.
const (
	// DefaultPrecision is the working precision in bits for
	// arbitrary-precision output when none is configured.
	DefaultPrecision uint = 256

	// DefaultOutput auto-detects the output format from the terminal.
	DefaultOutput = "auto"
)

// Config holds the resolved CLI configuration after merging defaults,
// the config file, environment variables, and flags.
type Config struct {
	// Precision is the working precision in bits for
	// arbitrary-precision values.
	Precision uint `koanf:"precision"`

	// Output selects the output format: auto, text, markdown, or json.
	Output string `koanf:"output"`

	// Verbose enables debug logging on stderr.
	Verbose bool `koanf:"verbose"`
}
