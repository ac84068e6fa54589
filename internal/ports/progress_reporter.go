package ports

import "github.com/aalvaropc/primer/internal/domain"

// ProgressReporter receives one event per completed example when a run is verbose.
type ProgressReporter interface {
	ExampleDone(res domain.ExampleResult)
}
