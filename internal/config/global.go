package config

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed into every sub-command
// constructor.
type GlobalConfig struct {
	// Loader produced Config and knows where each value came from.
	Loader *Loader

	// Config is the loaded configuration before flag overrides.
	Config *Config

	// ConfigPath is the resolved config file path.
	ConfigPath string

	// Verbose is the --verbose flag.
	Verbose bool
}
