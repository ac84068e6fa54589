package ports

import "github.com/aalvaropc/primer/internal/domain"

// ExampleSource yields examples in registration order.
type ExampleSource interface {
	All() []domain.Example
}
