package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// appName names the configuration directory.
const appName = "modgen"

// Paths contains standard filesystem paths for modgen.
type Paths struct {
	// ConfigFile is the path to the config file ($XDG_CONFIG_HOME/modgen/config.yaml).
	ConfigFile string

	// ConfigDir is the directory holding ConfigFile.
	ConfigDir string
}

// DefaultPaths returns the default paths for modgen. Nothing is created.
func DefaultPaths() *Paths {
	dir := filepath.Join(xdg.ConfigHome, appName)
	return &Paths{
		ConfigFile: filepath.Join(dir, "config.yaml"),
		ConfigDir:  dir,
	}
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported.
	return path, nil
}
