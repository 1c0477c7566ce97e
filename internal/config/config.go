// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps"`
}

// OutputConfig controls where new modules are written.
type OutputConfig struct {
	// Dir is the parent directory of the generated module.
	// Env: MODGEN_OUTPUT_DIR, Default: "."
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// CloneConfig controls how the template is fetched.
type CloneConfig struct {
	// Depth is the history depth of the clone. Zero fetches everything.
	// Env: MODGEN_CLONE_DEPTH, Default: 1
	Depth int `mapstructure:"depth" yaml:"depth"`
}

// Config represents the modgen configuration.
// Loaded from $XDG_CONFIG_HOME/modgen/config.yaml.
type Config struct {
	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Output contains output location settings.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Clone contains template clone settings.
	Clone CloneConfig `mapstructure:"clone" yaml:"clone"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `modgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Log:    LogConfig{Timestamps: &timestamps},
		Output: OutputConfig{Dir: "."},
		Clone:  CloneConfig{Depth: 1},
	}
}

// Validate checks values that viper cannot constrain.
func (c *Config) Validate() error {
	var errs ValidationErrors
	if c.Clone.Depth < 0 {
		errs = append(errs, ValidationError{Field: KeyCloneDepth, Message: "must not be negative"})
	}
	if c.Output.Dir == "" {
		errs = append(errs, ValidationError{Field: KeyOutputDir, Message: "must not be empty"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
