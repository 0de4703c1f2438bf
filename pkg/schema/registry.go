// Package schema defines the option descriptors and the ordered registry that
// the rest of the resolution pipeline consults. A Registry never changes after
// construction; accessors hand out copies.
package schema

import (
	"errors"
	"fmt"
)

// Registry stores descriptors by name and remembers their declaration order,
// which drives display order and the order prompts are derived in.
type Registry struct {
	order       []string
	descriptors map[string]Descriptor
}

// New builds a registry from descriptors in the given order. Empty or
// duplicate names are rejected.
func New(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		order:       make([]string, 0, len(descriptors)),
		descriptors: make(map[string]Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.Name == "" {
			return nil, errors.New("schema: descriptor name is required")
		}
		if _, exists := r.descriptors[d.Name]; exists {
			return nil, fmt.Errorf("schema: option %q already registered", d.Name)
		}
		switch d.Type {
		case TypeString, TypeBoolean, TypeStringList:
		default:
			return nil, fmt.Errorf("schema: option %q has unsupported type %q", d.Name, d.Type)
		}
		r.order = append(r.order, d.Name)
		r.descriptors[d.Name] = d.clone()
	}
	return r, nil
}

// MustNew panics on construction failure. Useful for package-level tables.
func MustNew(descriptors ...Descriptor) *Registry {
	r, err := New(descriptors...)
	if err != nil {
		panic(err)
	}
	return r
}

// Get retrieves a descriptor by name.
func (r *Registry) Get(name string) (Descriptor, error) {
	d, ok := r.descriptors[name]
	if !ok {
		return Descriptor{}, &UnknownOptionError{Name: name}
	}
	return d.clone(), nil
}

// Has reports whether name is a known option.
func (r *Registry) Has(name string) bool {
	_, ok := r.descriptors[name]
	return ok
}

// All returns every descriptor in registry order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.descriptors[name].clone())
	}
	return out
}

// Names returns the option names in registry order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.order)
}
