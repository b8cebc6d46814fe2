// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open returns a new [Config] with default values,
// overwritten by the settings in the given TOML files in order,
// so that later files overwrite the settings of earlier ones.
func Open(files ...string) (*Config, error) {
	c := New()
	for _, fn := range files {
		if err := c.OpenFile(fn); err != nil {
			return c, err
		}
	}
	return c, nil
}

// OpenFile reads the settings in the given TOML file into the config.
func (c *Config) OpenFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	if err := c.Read(f); err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return nil
}

// Read reads TOML settings from the given reader into the config.
// Unknown settings are an error.
func (c *Config) Read(r io.Reader) error {
	return toml.NewDecoder(r).DisallowUnknownFields().Decode(c)
}

// Write writes the config as TOML to the given writer.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save saves the config as TOML to the given file.
func (c *Config) Save(filename string) error {
	var b bytes.Buffer
	if err := c.Write(&b); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(filename, b.Bytes(), 0644)
}
