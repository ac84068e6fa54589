package usecase

import (
	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

type ListExamples struct{}

func NewListExamples() *ListExamples {
	return &ListExamples{}
}

// Execute returns references to the examples a run with the same filter would execute,
// in registration order. Nothing is executed.
func (uc *ListExamples) Execute(source ports.ExampleSource, filter string) ([]domain.ExampleRef, error) {
	match, err := compileFilter(filter)
	if err != nil {
		return nil, err
	}

	var refs []domain.ExampleRef
	for i, ex := range source.All() {
		if match != nil && !match.MatchString(ex.ID()) {
			continue
		}
		refs = append(refs, domain.ExampleRef{Index: i, Suite: ex.Suite, Name: ex.Name})
	}
	return refs, nil
}
