package lessons

import (
	"maps"
	"slices"

	"github.com/aalvaropc/primer/internal/registry"
	"github.com/aalvaropc/primer/internal/usecase/check"
)

func registerFlow(s *registry.Suite) {
	s.Register("switch cases do not fall through", func() error {
		c := check.New()
		c.Equal("classify(1)", []string{"one"}, classify(1))
		c.Equal("classify(2) falls into 3", []string{"two", "three"}, classify(2))
		c.Equal("classify(9)", []string{"other"}, classify(9))
		return c.Err()
	})

	s.Register("switch without a tag", func() error {
		c := check.New()
		c.Equal("grade(95)", "A", grade(95))
		c.Equal("grade(85)", "B", grade(85))
		c.Equal("grade(10)", "F", grade(10))
		return c.Err()
	})

	s.Register("labeled break", func() error {
		c := check.New()
		var found []int
	outer:
		for i := 1; i <= 4; i++ {
			for j := 1; j <= 4; j++ {
				if i*j == 6 {
					found = []int{i, j}
					break outer
				}
			}
		}
		c.Equal("first pair with product 6", []int{2, 3}, found)
		return c.Err()
	})

	s.Register("labeled continue", func() error {
		c := check.New()
		n := 0
	rows:
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if j > i {
					continue rows
				}
				n++
			}
		}
		c.Equal("cells on or below the diagonal", 6, n)
		return c.Err()
	})

	s.Register("for is the only loop", func() error {
		c := check.New()
		x := 0
		for x < 5 {
			x++
		}
		c.Equal("while-style loop", 5, x)

		// do-while: the body runs once even though the condition is false.
		for {
			x++
			if x >= 5 {
				break
			}
		}
		c.Equal("do-while-style loop", 6, x)
		return c.Err()
	})

	s.Register("range over a string yields runes", func() error {
		c := check.New()
		var idx []int
		var runes []rune
		for i, r := range "aé!" {
			idx = append(idx, i)
			runes = append(runes, r)
		}
		c.Equal("byte offsets", []int{0, 1, 3}, idx)
		c.Equal("runes", []rune{'a', 'é', '!'}, runes)
		return c.Err()
	})

	s.Register("range over a map has no order", func() error {
		c := check.New()
		m := map[string]int{"C": 5, "A": 1, "B": 3}
		c.Equal("sorted keys", []string{"A", "B", "C"}, slices.Sorted(maps.Keys(m)))

		sum := 0
		for _, v := range m {
			sum += v
		}
		c.Equal("sum of values", 9, sum)
		return c.Err()
	})

	s.Register("range over an integer", func() error {
		c := check.New()
		sum := 0
		for i := range 5 {
			sum += i
		}
		c.Equal("0+1+2+3+4", 10, sum)
		return c.Err()
	})

	s.Register("deferred calls run last in first out", func() error {
		c := check.New()
		var out []int
		func() {
			for i := range 3 {
				defer func() { out = append(out, i) }()
			}
		}()
		c.Equal("defer order", []int{2, 1, 0}, out)
		return c.Err()
	})
}

func classify(n int) []string {
	var out []string
	switch n {
	case 1:
		out = append(out, "one")
	case 2:
		out = append(out, "two")
		fallthrough
	case 3:
		out = append(out, "three")
	default:
		out = append(out, "other")
	}
	return out
}

func grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	default:
		return "F"
	}
}
