package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Marshal renders cfg as a config file.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# modgen configuration\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	return buf.Bytes(), nil
}

// Write stores cfg at path, creating parent directories with 0700 and the
// file with 0600. Without force an existing file is left alone and the
// returned error wraps os.ErrExist.
func Write(fsys afero.Fs, path string, cfg *Config, force bool) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("%s: %w", path, os.ErrExist)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
