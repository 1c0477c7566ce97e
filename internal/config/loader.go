package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for modgen configuration.
const envPrefix = "MODGEN"

// Configuration keys.
const (
	KeyLogTimestamps = "log.timestamps"
	KeyOutputDir     = "output.dir"
	KeyCloneDepth    = "clone.depth"
)

// Environment variables bound to configuration keys.
const (
	EnvConfig     = "MODGEN_CONFIG"
	EnvOutputDir  = "MODGEN_OUTPUT_DIR"
	EnvCloneDepth = "MODGEN_CLONE_DEPTH"
)

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader with defaults and
// environment bindings in place.
func NewLoader() *Loader {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeyLogTimestamps, *defaults.Log.Timestamps)
	v.SetDefault(KeyOutputDir, defaults.Output.Dir)
	v.SetDefault(KeyCloneDepth, defaults.Clone.Depth)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv(KeyOutputDir, EnvOutputDir)
	_ = v.BindEnv(KeyCloneDepth, EnvCloneDepth)

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default path is used. A missing file is not an
// error. Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = DefaultPaths().ConfigFile
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Source reports where the loaded value of key came from.
func (l *Loader) Source(key string) ConfigSource {
	env := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if _, ok := os.LookupEnv(env); ok {
		return SourceEnv
	}
	if l.v.InConfig(key) {
		return SourceConfig
	}
	return SourceDefault
}
