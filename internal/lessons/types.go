package lessons

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/primer/internal/registry"
	"github.com/aalvaropc/primer/internal/usecase/check"
)

type animal struct{ name string }

func (a animal) Describe() string { return "I am " + a.name }

type dog struct {
	animal
	breed string
}

type loudDog struct{ dog }

func (l loudDog) Describe() string { return strings.ToUpper(l.dog.Describe()) }

type describer interface{ Describe() string }

type tallyCounter struct{ n int }

func (c *tallyCounter) Inc() { c.n++ }

type incrementer interface{ Inc() }

type point struct{ X, Y int }

func registerTypes(s *registry.Suite) {
	s.Register("embedding promotes fields and methods", func() error {
		c := check.New()
		d := dog{animal: animal{name: "rex"}, breed: "lab"}
		c.Equal("promoted method", "I am rex", d.Describe())
		c.Equal("promoted field", "rex", d.name)
		c.Equal("own field", "lab", d.breed)
		return c.Err()
	})

	s.Register("outer methods shadow embedded ones", func() error {
		c := check.New()
		l := loudDog{dog{animal: animal{name: "rex"}}}
		c.Equal("outer method", "I AM REX", l.Describe())
		c.Equal("embedded method stays reachable", "I am rex", l.animal.Describe())
		return c.Err()
	})

	s.Register("interfaces are satisfied implicitly", func() error {
		c := check.New()
		all := []describer{
			animal{name: "cat"},
			dog{animal: animal{name: "rex"}},
			loudDog{dog{animal: animal{name: "max"}}},
		}
		var got []string
		for _, d := range all {
			got = append(got, d.Describe())
		}
		c.Equal("descriptions", []string{"I am cat", "I am rex", "I AM MAX"}, got)
		return c.Err()
	})

	s.Register("pointer receivers and method sets", func() error {
		c := check.New()
		var byValue any = tallyCounter{}
		_, ok := byValue.(incrementer)
		c.False("value is not an incrementer", ok)

		p := &tallyCounter{}
		var byPointer any = p
		inc, ok := byPointer.(incrementer)
		if c.True("pointer is an incrementer", ok) {
			inc.Inc()
			inc.Inc()
			c.Equal("count", 2, p.n)
		}
		return c.Err()
	})

	s.Register("type switch", func() error {
		c := check.New()
		c.Equal("int", "int 3", kind(3))
		c.Equal("string", "string of 2 bytes", kind("go"))
		c.Equal("describer", "describer: I am rex", kind(animal{name: "rex"}))
		c.Equal("nil", "nil", kind(nil))
		c.Equal("other", "other float64", kind(1.5))
		return c.Err()
	})

	s.Register("structs compare field by field", func() error {
		c := check.New()
		c.True("equal points", point{1, 2} == point{X: 1, Y: 2})
		c.False("different points", point{1, 2} == point{2, 1})

		seen := map[point]bool{{1, 2}: true}
		c.True("struct as map key", seen[point{1, 2}])
		return c.Err()
	})

	s.Register("generic functions", func() error {
		c := check.New()
		c.Equal("mapSlice ints", []string{"1", "2"}, mapSlice([]int{1, 2}, func(n int) string { return fmt.Sprint(n) }))
		c.Equal("sumOf ints", 6, sumOf([]int{1, 2, 3}))
		c.Equal("sumOf floats", 1.5, sumOf([]float64{0.5, 1}))
		return c.Err()
	})
}

func kind(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case int:
		return fmt.Sprintf("int %d", t)
	case string:
		return fmt.Sprintf("string of %d bytes", len(t))
	case describer:
		return "describer: " + t.Describe()
	default:
		return fmt.Sprintf("other %T", t)
	}
}

func mapSlice[T, U any](xs []T, f func(T) U) []U {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		out = append(out, f(x))
	}
	return out
}

type number interface {
	~int | ~int64 | ~float64
}

func sumOf[T number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}
