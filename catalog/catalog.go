// Package catalog keeps a registry of quadrature rules addressable by
// name. A new catalog holds the built-in Newton-Cotes methods and can be
// extended with coefficient tables loaded from YAML or with rules
// registered programmatically.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/stephens999/quadrature/quad"
	"github.com/stephens999/quadrature/quad/nc"
)

// Catalog maps rule names to rules. It is not safe for concurrent
// mutation; populate it first, then share it read-only.
type Catalog struct {
	rules map[string]quad.Rule
}

// New returns a catalog seeded with every built-in method under its
// String name.
func New() *Catalog {
	c := &Catalog{rules: make(map[string]quad.Rule)}
	for m := nc.Method(0); int(m) < nc.NumberOfMethods; m++ {
		r, err := nc.New(m)
		if err != nil {
			panic(fmt.Sprintf("catalog: built-in %v: %v", m, err))
		}
		c.rules[m.String()] = r
	}
	return c
}

// Register adds a rule under a previously unused name.
func (c *Catalog) Register(name string, r quad.Rule) error {
	if name == "" {
		return fmt.Errorf("catalog: empty rule name")
	}
	if r == nil {
		return fmt.Errorf("catalog: rule %q is nil", name)
	}
	if _, ok := c.rules[name]; ok {
		return fmt.Errorf("catalog: rule %q already registered", name)
	}
	c.rules[name] = r
	return nil
}

// LoadYAML parses a rule table and registers every entry. The catalog is
// unchanged if any entry fails to parse, validate, or construct.
func (c *Catalog) LoadYAML(data []byte) error {
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	built := make(map[string]quad.Rule, len(cfg.Rules))
	for _, rc := range cfg.Rules {
		if _, ok := c.rules[rc.Name]; ok {
			return fmt.Errorf("catalog: rule %q already registered", rc.Name)
		}
		r, err := nc.NewtonCotes(rc.Coefficients, rc.Open)
		if err != nil {
			return fmt.Errorf("catalog: rule %q: %w", rc.Name, err)
		}
		built[rc.Name] = r
	}
	for name, r := range built {
		c.rules[name] = r
	}
	return nil
}

// LoadFile reads a YAML rule table from disk and registers its entries.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	return c.LoadYAML(data)
}

// Lookup returns the rule registered under name.
func (c *Catalog) Lookup(name string) (quad.Rule, bool) {
	r, ok := c.rules[name]
	return r, ok
}

// Names lists the registered rule names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.rules))
	for name := range c.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
