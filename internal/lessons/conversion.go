package lessons

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/aalvaropc/primer/internal/registry"
	"github.com/aalvaropc/primer/internal/usecase/check"
)

func registerConversion(s *registry.Suite) {
	s.Register("strconv round trip", func() error {
		c := check.New()
		c.Equal("Itoa", "42", strconv.Itoa(42))

		n, err := strconv.Atoi("42")
		c.Nil("Atoi error", err)
		c.Equal("Atoi value", 42, n)

		_, err = strconv.Atoi("4x2")
		c.ErrorIs("Atoi on garbage", err, strconv.ErrSyntax)
		return c.Err()
	})

	s.Register("ParseInt base and range", func() error {
		c := check.New()
		v, err := strconv.ParseInt("ff", 16, 64)
		c.Nil("hex parse error", err)
		c.Equal("0xff", int64(255), v)

		v, err = strconv.ParseInt("300", 10, 8)
		c.ErrorIs("300 does not fit in int8", err, strconv.ErrRange)
		c.Equal("value is clamped to the int8 maximum", int64(127), v)
		return c.Err()
	})

	s.Register("ParseBool accepts a fixed vocabulary", func() error {
		c := check.New()
		for _, in := range []string{"1", "t", "T", "true", "TRUE", "True"} {
			b, err := strconv.ParseBool(in)
			c.Nil("ParseBool("+in+") error", err)
			c.True("ParseBool("+in+")", b)
		}
		_, err := strconv.ParseBool("yes")
		c.ErrorIs("ParseBool(yes)", err, strconv.ErrSyntax)
		return c.Err()
	})

	s.Register("float to int truncates toward zero", func() error {
		c := check.New()
		pos, neg := 2.9, -2.9
		c.Equal("int(2.9)", 2, int(pos))
		c.Equal("int(-2.9)", -2, int(neg))
		return c.Err()
	})

	s.Register("integer overflow wraps", func() error {
		c := check.New()
		var b uint8 = 255
		b++
		c.Equal("uint8 255+1", uint8(0), b)

		var i int8 = 127
		i++
		c.Equal("int8 127+1", int8(-128), i)
		return c.Err()
	})

	s.Register("string of an integer is a rune", func() error {
		c := check.New()
		c.Equal("string(rune(65))", "A", string(rune(65)))
		c.Equal("fmt.Sprint(65)", "65", fmt.Sprint(65))
		c.Equal("FormatFloat", "0.1", strconv.FormatFloat(0.1, 'f', -1, 64))
		return c.Err()
	})

	s.Register("strings are bytes", func() error {
		c := check.New()
		word := "héllo"
		c.Equal("len counts bytes", 6, len(word))
		c.Equal("rune count", 5, utf8.RuneCountInString(word))
		c.Equal("second rune", 'é', []rune(word)[1])
		c.Equal("second byte", byte(0xc3), word[1])
		return c.Err()
	})
}
