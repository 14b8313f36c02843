package schema

import (
	"sort"

	"github.com/pkg/errors"
)

var (
	ErrDiscriminatorCollision = errors.New("discriminator collision")
	ErrSchemaExists           = errors.New("schema already registered")
	ErrSchemaNotFound         = errors.New("schema not found")
)

// Registry holds every schema a program works with. It is constructed once
// at startup (or generation time) and passed explicitly to whatever needs
// schema lookups; there is no ambient global registry.
//
// Registration rejects two schemas whose seeds truncate to the same 8 byte
// discriminator, since records of one type would then unpack as the other.
type Registry struct {
	byName          map[string]*Schema
	byDiscriminator map[[DiscriminatorSize]byte]*Schema
}

// NewRegistry builds a registry from the given schemas.
func NewRegistry(schemas ...*Schema) (*Registry, error) {
	r := &Registry{
		byName:          make(map[string]*Schema, len(schemas)),
		byDiscriminator: make(map[[DiscriminatorSize]byte]*Schema, len(schemas)),
	}
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a schema, rejecting name and discriminator collisions.
func (r *Registry) Register(s *Schema) error {
	if _, exists := r.byName[s.Name()]; exists {
		return errors.Wrap(ErrSchemaExists, s.Name())
	}
	if other, exists := r.byDiscriminator[s.Discriminator()]; exists {
		return errors.Wrapf(ErrDiscriminatorCollision,
			"seeds %q and %q share an 8 byte prefix", other.Seed(), s.Seed())
	}

	r.byName[s.Name()] = s
	r.byDiscriminator[s.Discriminator()] = s
	return nil
}

// Get returns the schema registered under name.
func (r *Registry) Get(name string) (*Schema, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, errors.Wrap(ErrSchemaNotFound, name)
	}
	return s, nil
}

// Identify resolves stored account data to its schema by discriminator.
func (r *Registry) Identify(data []byte) (*Schema, error) {
	if len(data) < DiscriminatorSize {
		return nil, ErrSchemaNotFound
	}
	var discriminator [DiscriminatorSize]byte
	copy(discriminator[:], data)

	s, ok := r.byDiscriminator[discriminator]
	if !ok {
		return nil, errors.Wrapf(ErrSchemaNotFound, "discriminator %x", discriminator)
	}
	return s, nil
}

// Names returns the registered schema names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
