// Package config loads pplgen.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "pplgen.yaml"

const (
	DriverFS     = "fs"
	DriverMemory = "memory"
	DriverS3     = "s3"
)

const (
	envLogLevel = "PPL_LOG_LEVEL"
	envDriver   = "PPL_OUTPUT_DRIVER"
	envBucket   = "PPL_S3_BUCKET"
)

const defaultYAML = `# pplgen configuration
log_level: info

# Structure definitions to build. ** matches any number of directories.
inputs:
  - "**/*.hcl"
exclude:
  - ".git/**"

output:
  driver: fs
  fs_root: out
  prefix: ""
  overwrite: true
  # s3:
  #   bucket: poles
  #   region: us-east-1

# Element catalog, empty to disable.
catalog: out/catalog.db

# Prometheus textfile written after each run, empty to disable.
metrics_file: ""

watch:
  debounce: 300ms

document:
  format_version: 4
  selected_load_case: 0
`

type S3 struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region,omitempty"`
	Endpoint  string `yaml:"endpoint,omitempty"`
	PathStyle bool   `yaml:"path_style,omitempty"`

	AccessKeyID     string `yaml:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty"`
}

// Store selects where exported documents go.
type Store struct {
	Driver    string `yaml:"driver"`
	FSRoot    string `yaml:"fs_root,omitempty"`
	Prefix    string `yaml:"prefix"`
	Overwrite bool   `yaml:"overwrite"`
	S3        S3     `yaml:"s3,omitempty"`
}

type Watch struct {
	Debounce time.Duration `yaml:"debounce"`
}

type Document struct {
	FormatVersion    int `yaml:"format_version"`
	SelectedLoadCase int `yaml:"selected_load_case"`
}

// Config models pplgen.yaml.
type Config struct {
	LogLevel    string   `yaml:"log_level"`
	Inputs      []string `yaml:"inputs"`
	Exclude     []string `yaml:"exclude"`
	Output      Store    `yaml:"output"`
	Catalog     string   `yaml:"catalog"`
	MetricsFile string   `yaml:"metrics_file"`
	Watch       Watch    `yaml:"watch"`
	Document    Document `yaml:"document"`
}

// Default returns the configuration written by WriteDefault.
func Default() Config {
	var c Config
	if err := yaml.Unmarshal([]byte(defaultYAML), &c); err != nil {
		panic(fmt.Sprintf("config: bad default: %v", err))
	}
	return c
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("path", path).Debug("no config file, using defaults")
	case err != nil:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	c.applyEnv()
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// WriteDefault creates path with the default configuration unless it
// already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultYAML), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(envDriver); v != "" {
		c.Output.Driver = v
	}
	if v := os.Getenv(envBucket); v != "" {
		c.Output.S3.Bucket = v
	}
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.Output.Driver = strings.ToLower(strings.TrimSpace(c.Output.Driver))
	if c.Output.Driver == "" {
		c.Output.Driver = DriverFS
	}
	if c.Output.Driver == DriverFS && c.Output.FSRoot == "" {
		c.Output.FSRoot = "."
	}
	if c.Document.FormatVersion == 0 {
		c.Document.FormatVersion = 4
	}
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Output.Driver {
	case DriverFS, DriverMemory:
	case DriverS3:
		if strings.TrimSpace(c.Output.S3.Bucket) == "" {
			return fmt.Errorf("output.s3.bucket is required for the s3 driver")
		}
	default:
		return fmt.Errorf("output.driver %q is not one of fs, memory, s3", c.Output.Driver)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	if c.Document.FormatVersion < 1 {
		return fmt.Errorf("document.format_version must be >= 1")
	}
	if c.Document.SelectedLoadCase < 0 {
		return fmt.Errorf("document.selected_load_case must not be negative")
	}
	return nil
}
