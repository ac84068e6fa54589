package lessons

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/aalvaropc/primer/internal/registry"
	"github.com/aalvaropc/primer/internal/usecase/check"
)

type notFoundError struct{ name string }

func (e *notFoundError) Error() string { return e.name + " not found" }

func registerErrors(s *registry.Suite) {
	s.Register("wrapping with %w", func() error {
		c := check.New()
		base := errors.New("disk full")
		err := fmt.Errorf("save report: %w", base)
		c.Equal("message", "save report: disk full", err.Error())
		c.ErrorIs("errors.Is sees through the wrap", err, base)
		c.True("Unwrap returns the cause", errors.Unwrap(err) == base)

		flat := fmt.Errorf("save report: %v", base)
		c.False("%v does not wrap", errors.Is(flat, base))
		return c.Err()
	})

	s.Register("errors.As finds typed errors", func() error {
		c := check.New()
		err := fmt.Errorf("lookup: %w", &notFoundError{name: "scope.go"})

		var nf *notFoundError
		if c.True("errors.As", errors.As(err, &nf)) {
			c.Equal("name", "scope.go", nf.name)
		}
		return c.Err()
	})

	s.Register("standard library sentinels", func() error {
		c := check.New()
		_, err := os.Open("/definitely/not/here")
		c.ErrorIs("missing file", err, fs.ErrNotExist)

		var pathErr *fs.PathError
		c.True("error is a *fs.PathError", errors.As(err, &pathErr))
		return c.Err()
	})

	s.Register("errors.Join keeps every cause", func() error {
		c := check.New()
		a, b := errors.New("a"), errors.New("b")
		joined := errors.Join(a, nil, b)
		c.ErrorIs("joined has a", joined, a)
		c.ErrorIs("joined has b", joined, b)
		c.Equal("message", "a\nb", joined.Error())
		c.Nil("Join of nils", errors.Join(nil, nil))
		return c.Err()
	})

	s.Register("recover stops a panic", func() error {
		c := check.New()
		q, err := safeDiv(6, 3)
		c.Nil("6/3 error", err)
		c.Equal("6/3", 2, q)

		_, err = safeDiv(1, 0)
		if c.True("1/0 returns an error", err != nil) {
			c.True("message mentions the cause", strings.Contains(err.Error(), "integer divide by zero"))
		}
		return c.Err()
	})

	s.Register("a typed nil is not a nil error", func() error {
		c := check.New()
		var p *notFoundError
		var err error = p
		c.True("interface holding a nil pointer is non-nil", err != nil)
		c.True("the pointer itself is nil", p == nil)
		return c.Err()
	})
}

func safeDiv(a, b int) (q int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return a / b, nil
}
