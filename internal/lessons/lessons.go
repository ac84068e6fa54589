// Package lessons holds the built-in examples: short facts about Go, each
// verified by checks when the example runs.
//
// Every example owns its state. Anything two examples need to share is built
// by an explicit fixture inside the body, never by package variables.
package lessons

import "github.com/aalvaropc/primer/internal/registry"

type lesson struct {
	suite    string
	register func(s *registry.Suite)
}

var lessons = []lesson{
	{"scope", registerScope},
	{"conversion", registerConversion},
	{"flow", registerFlow},
	{"containers", registerContainers},
	{"errors", registerErrors},
	{"types", registerTypes},
	{"json", registerJSON},
}

// Register adds every built-in suite to r, in a fixed order.
func Register(r *registry.Registry) {
	for _, l := range lessons {
		l.register(r.Suite(l.suite))
	}
}

// Suites lists the suite names in registration order.
func Suites() []string {
	out := make([]string, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, l.suite)
	}
	return out
}
