// Package catalog assembles the subject registries served by the
// generator.
package catalog

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gokatarajesh/qcm-math/internal/algebra"
	"github.com/gokatarajesh/qcm-math/internal/arithmetic"
	"github.com/gokatarajesh/qcm-math/internal/geometry"
	"github.com/gokatarajesh/qcm-math/internal/question"
	"github.com/gokatarajesh/qcm-math/internal/trigonometry"
)

// Wildcard selects every subject.
const Wildcard = "*"

// Config gathers the per-subject settings.
type Config struct {
	Arithmetic   arithmetic.Config   `yaml:"arithmetic"`
	Trigonometry trigonometry.Config `yaml:"trigonometry"`
	Geometry     geometry.Config     `yaml:"geometry"`
	Algebra      algebra.Config      `yaml:"algebra"`
}

func DefaultConfig() Config {
	return Config{
		Arithmetic:   arithmetic.DefaultConfig(),
		Trigonometry: trigonometry.DefaultConfig(),
		Geometry:     geometry.DefaultConfig(),
		Algebra:      algebra.DefaultConfig(),
	}
}

// LoadFile reads a YAML override on top of the defaults. Keys missing from
// the file keep their default; unknown keys are rejected.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read subjects file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse subjects file %s: %w", path, err)
	}
	return cfg, nil
}

// Catalog is the ordered set of known subjects.
type Catalog struct {
	names []string
	sets  map[string]*question.Set
}

// New builds every subject; the order is Arithmetic, Trigonometry,
// Geometry, Algebra.
func New(cfg Config) (*Catalog, error) {
	builders := []func() (*question.Set, error){
		func() (*question.Set, error) { return arithmetic.New(cfg.Arithmetic) },
		func() (*question.Set, error) { return trigonometry.New(cfg.Trigonometry) },
		func() (*question.Set, error) { return geometry.New(cfg.Geometry) },
		func() (*question.Set, error) { return algebra.New(cfg.Algebra) },
	}
	sets := make([]*question.Set, 0, len(builders))
	for _, build := range builders {
		set, err := build()
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return FromSets(sets...), nil
}

// FromSets builds a catalog from ready-made registries.
func FromSets(sets ...*question.Set) *Catalog {
	c := &Catalog{sets: make(map[string]*question.Set, len(sets))}
	for _, s := range sets {
		if _, dup := c.sets[s.Subject()]; dup {
			continue
		}
		c.names = append(c.names, s.Subject())
		c.sets[s.Subject()] = s
	}
	return c
}

// Names lists the subjects in catalog order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

func (c *Catalog) Lookup(name string) (*question.Set, bool) {
	s, ok := c.sets[name]
	return s, ok
}

// Resolve keeps the requested subjects the catalog knows, in request
// order. A wildcard, an empty request or a request with only unknown names
// selects every subject.
func (c *Catalog) Resolve(requested []string) []*question.Set {
	var out []*question.Set
	for _, name := range requested {
		if name == Wildcard {
			out = nil
			break
		}
		if s, ok := c.sets[name]; ok && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	if len(out) > 0 {
		return out
	}
	all := make([]*question.Set, len(c.names))
	for i, name := range c.names {
		all[i] = c.sets[name]
	}
	return all
}
