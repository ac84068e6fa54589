package lessons

import (
	"slices"

	"github.com/aalvaropc/primer/internal/registry"
	"github.com/aalvaropc/primer/internal/usecase/check"
)

func registerContainers(s *registry.Suite) {
	s.Register("slices share a backing array", func() error {
		c := check.New()
		a := []int{1, 2, 3, 4}
		b := a[1:3]
		b[0] = 20
		c.Equal("a after writing through b", []int{1, 20, 3, 4}, a)
		c.Equal("len(b)", 2, len(b))
		c.Equal("cap(b)", 3, cap(b))
		return c.Err()
	})

	s.Register("append within capacity aliases", func() error {
		c := check.New()
		a := make([]int, 3, 10)
		b := append(a, 4)
		d := append(a, 5)
		c.Equal("b sees the second append", 5, b[3])
		c.Equal("d", []int{0, 0, 0, 5}, d)
		return c.Err()
	})

	s.Register("append past capacity copies", func() error {
		c := check.New()
		a := []int{1, 2, 3}
		b := append(a, 4)
		b[0] = 99
		c.Equal("a is unchanged", []int{1, 2, 3}, a)
		c.Equal("b", []int{99, 2, 3, 4}, b)
		return c.Err()
	})

	s.Register("copy copies the shorter length", func() error {
		c := check.New()
		dst := make([]int, 2)
		n := copy(dst, []int{1, 2, 3})
		c.Equal("copied", 2, n)
		c.Equal("dst", []int{1, 2}, dst)
		return c.Err()
	})

	s.Register("arrays are values", func() error {
		c := check.New()
		a := [3]int{1, 2, 3}
		b := a
		b[0] = 9
		c.Equal("a[0]", 1, a[0])
		c.True("arrays compare with ==", a == [3]int{1, 2, 3})
		return c.Err()
	})

	s.Register("missing map keys read as zero", func() error {
		c := check.New()
		m := map[string]int{"a": 1}
		c.Equal("m[z]", 0, m["z"])
		_, ok := m["z"]
		c.False("comma ok for a missing key", ok)
		return c.Err()
	})

	s.Register("nil maps can be read but not written", func() error {
		c := check.New()
		var m map[string]int
		c.Equal("len(nil map)", 0, len(m))
		c.Equal("read from nil map", 0, m["x"])
		c.Panics("write to nil map", func() { m["x"] = 1 })
		return c.Err()
	})

	s.Register("maps are references", func() error {
		c := check.New()
		m := map[string]int{}
		set := func(mm map[string]int) { mm["k"] = 1 }
		set(m)
		c.Equal("m[k] after call", 1, m["k"])

		for k := range m {
			delete(m, k)
		}
		c.Equal("len after deleting during range", 0, len(m))
		return c.Err()
	})

	s.Register("slices package helpers", func() error {
		c := check.New()
		xs := []string{"go", "sql", "js"}
		c.True("Contains", slices.Contains(xs, "sql"))
		c.Equal("Index", 2, slices.Index(xs, "js"))

		sorted := slices.Clone(xs)
		slices.Sort(sorted)
		c.Equal("Sort on a clone", []string{"go", "js", "sql"}, sorted)
		c.Equal("original order kept", []string{"go", "sql", "js"}, xs)
		return c.Err()
	})

	s.Register("index out of range panics", func() error {
		c := check.New()
		xs := []int{1}
		i := 3
		r := c.Panics("xs[3]", func() { _ = xs[i] })
		if err, ok := r.(error); ok {
			c.Equal("panic message", "runtime error: index out of range [3] with length 1", err.Error())
		}
		return c.Err()
	})
}
