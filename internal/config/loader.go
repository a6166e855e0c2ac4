// Package config loads safe-ascii defaults from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/eykd/safe-ascii/internal/safeascii"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "SAFE_ASCII_CONFIG"

// File is the on-disk configuration. Unset fields leave the built-in
// defaults alone.
type File struct {
	// Mode is one of mnemonic, escape or suppress.
	Mode string `yaml:"mode"`
	// Truncate is the per-stream output cap; -1 disables it.
	Truncate *int64 `yaml:"truncate"`
	// Exclude replaces the default exclude set. An empty list excludes nothing.
	Exclude *[]int `yaml:"exclude"`
}

// Load reads and parses the config file at path. Unknown keys are rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data. Empty input yields an empty File.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &f, nil
}

// Apply overlays the fields set in f onto cfg.
func (f *File) Apply(cfg *safeascii.Config) error {
	if f.Mode != "" {
		mode, err := safeascii.ParseMode(f.Mode)
		if err != nil {
			return fmt.Errorf("config mode: %w", err)
		}
		cfg.Mode = mode
	}
	if f.Truncate != nil {
		cfg.Truncate = *f.Truncate
	}
	if f.Exclude != nil {
		var set safeascii.ExcludeSet
		for _, v := range *f.Exclude {
			if v < 0 || v > 255 {
				return fmt.Errorf("config exclude: %w", &safeascii.ExcludeError{
					Value:  strconv.Itoa(v),
					Reason: "out of range 0-255",
				})
			}
			set[v] = true
		}
		cfg.Exclude = set
	}
	return cfg.Validate()
}
