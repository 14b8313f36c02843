// Package config reads and writes golt.toml, the project manifest the CLI
// keeps component and system bookkeeping in.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/golt-ecs/golt/pkg/ecs/schema"
)

// FileName is the manifest file the CLI looks for.
const FileName = "golt.toml"

var (
	ErrNotFound         = errors.New("no golt.toml found in current directory or parents")
	ErrUnknownFieldType = errors.New("unknown field type")
	ErrComponentExists  = errors.New("component already declared")
	ErrSystemExists     = errors.New("system already declared")
)

type Config struct {
	Project    Project     `toml:"project"`
	Components []Component `toml:"components,omitempty"`
	Systems    []System    `toml:"systems,omitempty"`
}

type Project struct {
	Name          string `toml:"name"`
	Version       string `toml:"version"`
	ComponentsDir string `toml:"components_dir"`
	SystemsDir    string `toml:"systems_dir"`
	KeypairsDir   string `toml:"keypairs_dir"`
}

type Component struct {
	Name      string  `toml:"name"`
	Seed      string  `toml:"seed"`
	ProgramId string  `toml:"program_id,omitempty"`
	Fields    []Field `toml:"fields,omitempty"`
}

type Field struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
	Bump bool   `toml:"is_bump,omitempty"`
}

type System struct {
	Name      string `toml:"name"`
	ProgramId string `toml:"program_id,omitempty"`
}

// Default returns the manifest written by `golt init`.
func Default(name string) *Config {
	return &Config{
		Project: Project{
			Name:          name,
			Version:       "0.1.0",
			ComponentsDir: "programs/components",
			SystemsDir:    "programs/systems",
			KeypairsDir:   "keypairs",
		},
	}
}

// Load parses a manifest file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse golt.toml")
	}
	return &cfg, nil
}

// Save writes the manifest.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to write golt.toml")
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return errors.Wrap(err, "failed to encode golt.toml")
	}
	return nil
}

// Find walks from dir upward until it finds a manifest, returning the parsed
// config and the project root.
func Find(dir string) (*Config, string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}

	for {
		path := filepath.Join(current, FileName)
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			if err != nil {
				return nil, "", err
			}
			return cfg, current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return nil, "", ErrNotFound
		}
		current = parent
	}
}

// AddComponent appends a component declaration, rejecting duplicates.
func (c *Config) AddComponent(component Component) error {
	for _, existing := range c.Components {
		if existing.Name == component.Name {
			return errors.Wrap(ErrComponentExists, component.Name)
		}
	}
	c.Components = append(c.Components, component)
	return nil
}

// AddSystem appends a system declaration, rejecting duplicates.
func (c *Config) AddSystem(system System) error {
	for _, existing := range c.Systems {
		if existing.Name == system.Name {
			return errors.Wrap(ErrSystemExists, system.Name)
		}
	}
	c.Systems = append(c.Systems, system)
	return nil
}

// GetComponent looks a component up by name.
func (c *Config) GetComponent(name string) (Component, bool) {
	for _, component := range c.Components {
		if component.Name == name {
			return component, true
		}
	}
	return Component{}, false
}

// Schema materializes the record schema a component declares.
func (component Component) Schema() (*schema.Schema, error) {
	fields := make([]schema.Field, 0, len(component.Fields))
	for _, f := range component.Fields {
		kind, ok := schema.KindFromString(f.Type)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownFieldType, "%s: %s", f.Name, f.Type)
		}

		field := schema.NewField(f.Name, kind)
		field.IsBump = f.Bump
		fields = append(fields, field)
	}
	return schema.New(component.Name, []byte(component.Seed), fields...)
}

// SchemaRegistry builds the registry of every component schema in the
// project, surfacing discriminator collisions between components.
func (c *Config) SchemaRegistry() (*schema.Registry, error) {
	registry, err := schema.NewRegistry()
	if err != nil {
		return nil, err
	}
	for _, component := range c.Components {
		s, err := component.Schema()
		if err != nil {
			return nil, err
		}
		if err := registry.Register(s); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
