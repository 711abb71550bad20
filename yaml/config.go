// Package yaml loads pipeline configuration from YAML files.
package yaml

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/kamar"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the configuration file at path. Fields missing from the
// file keep their defaults; lists given in the file replace the defaults.
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot be
// parsed, names an unknown field or fails validation.
func LoadConfig(path string) (kamar.Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return kamar.Config{}, kamar.Errorf(kamar.ENOTFOUND, "config file %s not found", path)
	} else if err != nil {
		return kamar.Config{}, err
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig reads a configuration from r on top of kamar.DefaultConfig.
// An empty document yields the defaults.
func DecodeConfig(r io.Reader) (kamar.Config, error) {
	cfg := kamar.DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return kamar.Config{}, kamar.Errorf(kamar.EINVALID, "parsing config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return kamar.Config{}, err
	}
	return cfg, nil
}
