package domain

// Body is the executable part of an example. It returns nil when every check
// inside it passed. A returned *CheckFailure keeps its details; any other error
// (or a panic) is converted into a CheckFailure by the runner.
type Body func() error

// Example is one named, self-contained unit of demonstration logic.
// It is immutable once registered.
type Example struct {
	Name string

	// Suite is an optional grouping label (one per lesson file or doctest file).
	Suite string

	Body Body
}

// ID returns "suite/name", or just the name when the example has no suite.
// Filters match against this value.
func (e Example) ID() string {
	if e.Suite == "" {
		return e.Name
	}
	return e.Suite + "/" + e.Name
}

// ExampleRef is a lightweight, body-less view of a registered example.
type ExampleRef struct {
	Index int
	Suite string
	Name  string
}
