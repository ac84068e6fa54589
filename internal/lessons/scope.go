package lessons

import (
	"github.com/aalvaropc/primer/internal/registry"
	"github.com/aalvaropc/primer/internal/usecase/check"
)

func registerScope(s *registry.Suite) {
	s.Register("block shadowing", func() error {
		c := check.New()
		x := 1
		{
			x := 2
			c.Equal("x inside the block", 2, x)
		}
		c.Equal("x after the block", 1, x)
		return c.Err()
	})

	s.Register("if statement scope", func() error {
		v := 1
		if v := 2; v > 1 {
			check.Assert(v == 2, "v declared in the if header shadows the outer v")
		}
		check.Assert(v == 1, "outer v is untouched")
		return nil
	})

	s.Register("assignment reaches the outer variable", func() error {
		c := check.New()
		x := 1
		{
			x = 2
		}
		c.Equal("x after assigning in a block", 2, x)
		return c.Err()
	})

	s.Register("closures capture variables", func() error {
		c := check.New()
		next := counter()
		next()
		next()
		c.Equal("third call", 3, next())

		other := counter()
		c.Equal("independent counter", 1, other())
		return c.Err()
	})

	s.Register("loop variables are per iteration", func() error {
		c := check.New()
		var fns []func() int
		for i := 0; i < 3; i++ {
			fns = append(fns, func() int { return i })
		}
		got := make([]int, 0, len(fns))
		for _, f := range fns {
			got = append(got, f())
		}
		c.Equal("values seen by closures", []int{0, 1, 2}, got)
		return c.Err()
	})

	s.Register("untyped constants", func() error {
		c := check.New()
		const huge = 1 << 100
		c.Equal("huge >> 98", 4, huge>>98)

		const ratio = 7 / 2
		const fratio = 7 / 2.0
		c.Equal("integer constant division", 3, ratio)
		c.Equal("float constant division", 3.5, fratio)
		return c.Err()
	})

	s.Register("state is opt-in", func() error {
		c := check.New()
		a := newTally()
		a.add(2)
		a.add(3)
		b := newTally()
		c.Equal("first tally", 5, a.total)
		c.Equal("fresh tally starts empty", 0, b.total)
		return c.Err()
	})
}

func counter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

// tally is a fixture an example builds for itself.
type tally struct{ total int }

func newTally() *tally { return &tally{} }

func (t *tally) add(n int) { t.total += n }
