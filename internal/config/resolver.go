package config

import (
	"fmt"
	"os"

	"github.com/mikopbx/modgen/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records the winning value of one key.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// Overrides holds flag values. Nil fields were not set on the command line.
type Overrides struct {
	OutputDir  *string
	CloneDepth *int
	Timestamps *bool
}

// Resolve applies overrides on top of cfg using precedence:
// (1) flag, (2) env, (3) config file, (4) default.
// cfg must come from l.Load. It returns the effective config and how each
// key was resolved.
func (l *Loader) Resolve(cfg *Config, o Overrides) (*Config, []ResolvedValue) {
	out := *cfg
	values := make([]ResolvedValue, 0, 3)

	if o.OutputDir != nil {
		out.Output.Dir = *o.OutputDir
	}
	values = append(values, l.resolved(KeyOutputDir, out.Output.Dir, cfg.Output.Dir, o.OutputDir != nil))

	if o.CloneDepth != nil {
		out.Clone.Depth = *o.CloneDepth
	}
	values = append(values, l.resolved(KeyCloneDepth,
		fmt.Sprint(out.Clone.Depth), fmt.Sprint(cfg.Clone.Depth), o.CloneDepth != nil))

	if o.Timestamps != nil {
		out.Log.Timestamps = o.Timestamps
	}
	values = append(values, l.resolved(KeyLogTimestamps,
		formatBoolPtr(out.Log.Timestamps), formatBoolPtr(cfg.Log.Timestamps), o.Timestamps != nil))

	return &out, values
}

func (l *Loader) resolved(key, value, loaded string, fromFlag bool) ResolvedValue {
	rv := ResolvedValue{
		Key:      key,
		Value:    value,
		Source:   l.Source(key),
		Shadowed: make(map[ConfigSource]string),
	}
	if fromFlag {
		rv.Shadowed[rv.Source] = loaded
		rv.Source = SourceFlag
	}
	return rv
}

func formatBoolPtr(b *bool) string {
	if b == nil {
		return ""
	}
	return fmt.Sprint(*b)
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) MODGEN_CONFIG env, (3) XDG default.
func ResolveConfigPath(opts ResolveConfigPathOptions) ResolveConfigPathResult {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)
	defaultPath := DefaultPaths().ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
