// Package config reads .closed.yaml files.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sumcheck/closed"
)

// FileName is the name Find looks for.
const FileName = ".closed.yaml"

// Config holds the settings of a run.
type Config struct {
	// Marker is the directive that marks a closed type.
	Marker string `yaml:"marker"`
	// Generated includes generated files.
	Generated bool `yaml:"generated"`
	// Exclude are doublestar patterns of files to skip.
	Exclude []string `yaml:"exclude"`
	// Tests includes test files.
	Tests bool `yaml:"tests"`
	// ShowSuppressed prints suppressed findings with their justification.
	ShowSuppressed bool `yaml:"show_suppressed"`

	// Path the config was read from, if any.
	Path string `yaml:"-"`
}

// Default returns the settings used without a config file.
func Default() *Config {
	return &Config{Marker: closed.DefaultMarker}
}

// Decode a config from r.
// Unknown keys are an error.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load the config at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// Find the nearest FileName in dir or one of its parents.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		p := filepath.Join(dir, FileName)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, true
		}
		up := filepath.Dir(dir)
		if up == dir {
			return "", false
		}
		dir = up
	}
}

func (c *Config) normalize() error {
	c.Marker = strings.TrimPrefix(strings.TrimSpace(c.Marker), "//")
	if c.Marker == "" {
		c.Marker = closed.DefaultMarker
	}
	if strings.ContainsAny(c.Marker, " \t") || !strings.Contains(c.Marker, ":") {
		return fmt.Errorf("marker %q is not a directive name like %q", c.Marker, closed.DefaultMarker)
	}
	return nil
}

// Apply sets the analyzer flags in fs from c.
func (c *Config) Apply(fs *flag.FlagSet) error {
	set := func(name, value string) error {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("config: -%s=%s: %w", name, value, err)
		}
		return nil
	}
	if err := set("marker", c.Marker); err != nil {
		return err
	}
	if err := set("generated", strconv.FormatBool(c.Generated)); err != nil {
		return err
	}
	if err := set("exclude", ""); err != nil {
		return err
	}
	for _, pat := range c.Exclude {
		if err := set("exclude", pat); err != nil {
			return err
		}
	}
	return nil
}
