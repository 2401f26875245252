package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"project/ip-filter/address"
)

// View kinds.
const (
	KindAll      = "all"
	KindFirst    = "first"
	KindFirstTwo = "firstTwo"
	KindAny      = "any"
)

// Output formats.
const (
	FormatDotted = "dotted"
	FormatPTR    = "ptr"
)

// valueCount is the number of values each view kind takes.
var valueCount = map[string]int{
	KindAll:      0,
	KindFirst:    1,
	KindFirstTwo: 2,
	KindAny:      1,
}

// View is one output section: the sorted pool, optionally filtered.
type View struct {
	// Kind selects the filter: all, first, firstTwo or any.
	Kind string `yaml:"kind"`
	// Values are the filter arguments. Values outside [0, 255] match nothing.
	Values []int `yaml:"values"`
}

// Apply returns the part of p selected by the view. An "all" view returns p itself.
// A view with too few values selects nothing.
func (v View) Apply(p address.Pool) address.Pool {
	if len(v.Values) < valueCount[v.Kind] {
		return address.Pool{}
	}
	switch v.Kind {
	case KindFirst:
		return address.FilterByFirst(p, v.Values[0])
	case KindFirstTwo:
		return address.FilterByFirstTwo(p, v.Values[0], v.Values[1])
	case KindAny:
		return address.FilterAny(p, v.Values[0])
	default:
		return p
	}
}

// Config holds the application configuration loaded from a YAML file.
type Config struct {
	// Format is the rendering of each address line: dotted or ptr.
	Format string `yaml:"format"`
	// Views are printed in order, one address per line.
	Views []View `yaml:"views"`
}

// DefaultViews are the sections printed when no configuration is given.
func DefaultViews() []View {
	return []View{
		{Kind: KindAll},
		{Kind: KindFirst, Values: []int{1}},
		{Kind: KindFirstTwo, Values: []int{46, 70}},
		{Kind: KindAny, Values: []int{46}},
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Format: FormatDotted, Views: DefaultViews()}
}

// LoadConfig reads and unmarshals the configuration from the specified YAML file path.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", filePath)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config file %s", filePath)
	}

	if cfg.Format == "" {
		cfg.Format = FormatDotted
	}
	if len(cfg.Views) == 0 {
		cfg.Views = DefaultViews()
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", filePath)
	}
	return &cfg, nil
}

// Validate checks the format and that every view has a known kind and the right number of values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatDotted, FormatPTR:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}

	for i, v := range c.Views {
		n, ok := valueCount[v.Kind]
		if !ok {
			return errors.Errorf("view %d: unknown kind %q", i, v.Kind)
		}
		if len(v.Values) != n {
			return errors.Errorf("view %d: kind %q takes %d values, got %d", i, v.Kind, n, len(v.Values))
		}
	}
	return nil
}
