// Package registry holds the ordered sequence of examples for a run.
//
// A Registry is write-once, read-many: examples are appended with Register and
// read back with All. There is no removal and no duplicate-name validation;
// names are documentation labels, not keys.
package registry

import (
	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

type Registry struct {
	examples []domain.Example
}

func New() *Registry {
	return &Registry{}
}

var _ ports.ExampleSource = (*Registry)(nil)

// Register appends an example without a suite label.
func (r *Registry) Register(name string, body domain.Body) {
	r.RegisterExample(domain.Example{Name: name, Body: body})
}

// RegisterExample appends a fully specified example.
func (r *Registry) RegisterExample(ex domain.Example) {
	r.examples = append(r.examples, ex)
}

// All returns the examples in registration order. The slice is a copy.
func (r *Registry) All() []domain.Example {
	out := make([]domain.Example, len(r.examples))
	copy(out, r.examples)
	return out
}

func (r *Registry) Len() int {
	return len(r.examples)
}

// Refs returns body-less references, useful for listing.
func (r *Registry) Refs() []domain.ExampleRef {
	refs := make([]domain.ExampleRef, 0, len(r.examples))
	for i, ex := range r.examples {
		refs = append(refs, domain.ExampleRef{Index: i, Suite: ex.Suite, Name: ex.Name})
	}
	return refs
}

// Suite returns a helper that registers examples under the given suite label.
func (r *Registry) Suite(name string) *Suite {
	return &Suite{reg: r, name: name}
}

// Suite registers examples that share a label.
type Suite struct {
	reg  *Registry
	name string
}

func (s *Suite) Name() string { return s.name }

func (s *Suite) Register(name string, body domain.Body) {
	s.reg.RegisterExample(domain.Example{Name: name, Suite: s.name, Body: body})
}
