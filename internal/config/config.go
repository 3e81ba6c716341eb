// Package config holds runtime configuration: defaults, the optional YAML
// config file, and validation. A Config is constructed once per run and
// passed explicitly to every component; there is no global state.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/filenorm/internal/naming"
)

// DefaultFile is the config file looked up in the working directory when
// --config is not given. A missing file is not an error.
const DefaultFile = ".filenorm.yaml"

// Config holds all settings for one normalization run. Defaults come from
// [Default], then the YAML file, then CLI flags, in that order.
type Config struct {
	// Path is the file or directory to process (positional argument).
	Path string `yaml:"-"`

	// Recursive processes directory trees instead of a single level.
	Recursive bool `yaml:"recursive"`

	// DryRun previews the plan without touching the filesystem.
	DryRun bool `yaml:"dry_run"`

	// AddDatePrefix prefixes the file creation date when the name carries
	// no date of its own.
	AddDatePrefix bool `yaml:"add_date"`

	// Granularity selects how much of a date is rendered: day, month, year.
	Granularity naming.Granularity `yaml:"granularity"`

	// Extensions is an allow-list filter; empty means all files. Entries
	// are accepted with or without the leading dot, case-insensitively.
	Extensions []string `yaml:"extensions"`

	// IncludeDirs also normalizes directory names, deepest first.
	IncludeDirs bool `yaml:"include_dirs"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when nothing else is specified:
// current directory, single level, day granularity, no filter.
func Default() *Config {
	return &Config{
		Path:        ".",
		Granularity: naming.GranularityDay,
	}
}

// Load reads a YAML config file over the defaults. A nonexistent path
// returns the defaults without error; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enum fields and canonicalizes the extension filter.
func (c *Config) Validate() error {
	switch c.Granularity {
	case naming.GranularityDay, naming.GranularityMonth, naming.GranularityYear:
		// valid
	case "":
		c.Granularity = naming.GranularityDay
	default:
		return fmt.Errorf("invalid granularity %q (use 'day', 'month' or 'year')", c.Granularity)
	}

	for i, ext := range c.Extensions {
		e := strings.ToLower(strings.TrimSpace(ext))
		if e == "" || e == "." {
			return fmt.Errorf("invalid extension filter entry %q", ext)
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		c.Extensions[i] = e
	}
	return nil
}

// ExtensionSet returns the canonicalized allow-list as a set keyed by
// lowercase extension with leading dot, or nil when no filter is active.
func (c *Config) ExtensionSet() map[string]struct{} {
	if len(c.Extensions) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(c.Extensions))
	for _, e := range c.Extensions {
		set[e] = struct{}{}
	}
	return set
}
