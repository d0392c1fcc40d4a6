package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RuleConfig describes one quadrature rule as it appears in a rule table:
// a registry name, the unnormalized coefficients, and whether the nodes
// are placed strictly inside the interval.
type RuleConfig struct {
	Name         string    `yaml:"name"`
	Coefficients []float64 `yaml:"coefficients"`
	Open         bool      `yaml:"open"`
}

// Config is the top-level document of a YAML rule table.
type Config struct {
	Rules []RuleConfig `yaml:"rules"`
}

// Parse decodes a YAML rule table.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parsing rule table: %w", err)
	}
	return &c, nil
}

// Validate checks the structural fields of the table. Coefficient tables
// themselves are validated when the rules are constructed.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Rules))
	for i, r := range c.Rules {
		if r.Name == "" {
			return fmt.Errorf("catalog: rule %d has no name", i)
		}
		if seen[r.Name] {
			return fmt.Errorf("catalog: duplicate rule name %q", r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}
