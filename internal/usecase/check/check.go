// Package check provides the checks used inside example bodies.
//
// A Checks collector records the first failing check and ignores the rest,
// so a body can state its expectations linearly and finish with
// `return c.Err()`. Assert is the throw-style alternative: it panics with a
// *domain.CheckFailure, which the runner treats exactly like a returned one.
package check

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/primer/internal/domain"
)

type Checks struct {
	failure *domain.CheckFailure
	count   int
}

func New() *Checks {
	return &Checks{}
}

// Err returns the first recorded failure, or nil.
func (c *Checks) Err() error {
	if c.failure == nil {
		return nil
	}
	return c.failure
}

// Failed reports whether a check has failed so far.
func (c *Checks) Failed() bool {
	return c.failure != nil
}

// Count is the number of checks evaluated (checks after a failure are not counted).
func (c *Checks) Count() int {
	return c.count
}

// Equal checks that got equals want using cmp.Equal.
func (c *Checks) Equal(desc string, want, got any, opts ...cmp.Option) bool {
	if !c.begin() {
		return false
	}
	if cmp.Equal(want, got, opts...) {
		return true
	}
	c.record(&domain.CheckFailure{
		Check:    desc,
		Expected: formatValue(want),
		Actual:   formatValue(got),
		Diff:     cmp.Diff(want, got, opts...),
		Location: callerLocation(2),
	})
	return false
}

// NotEqual checks that got differs from unwanted.
func (c *Checks) NotEqual(desc string, unwanted, got any, opts ...cmp.Option) bool {
	if !c.begin() {
		return false
	}
	if !cmp.Equal(unwanted, got, opts...) {
		return true
	}
	c.record(&domain.CheckFailure{
		Check:    desc,
		Expected: "anything but " + formatValue(unwanted),
		Actual:   formatValue(got),
		Location: callerLocation(2),
	})
	return false
}

func (c *Checks) True(desc string, cond bool) bool {
	return c.boolean(desc, true, cond)
}

func (c *Checks) False(desc string, cond bool) bool {
	return c.boolean(desc, false, cond)
}

func (c *Checks) boolean(desc string, want, got bool) bool {
	if !c.begin() {
		return false
	}
	if want == got {
		return true
	}
	c.record(&domain.CheckFailure{
		Check:    desc,
		Expected: fmt.Sprint(want),
		Actual:   fmt.Sprint(got),
		Location: callerLocation(3),
	})
	return false
}

// Nil checks that v is nil (including typed nils held in an interface).
func (c *Checks) Nil(desc string, v any) bool {
	if !c.begin() {
		return false
	}
	if isNil(v) {
		return true
	}
	c.record(&domain.CheckFailure{
		Check:    desc,
		Expected: "nil",
		Actual:   formatValue(v),
		Location: callerLocation(2),
	})
	return false
}

// ErrorIs checks errors.Is(err, target).
func (c *Checks) ErrorIs(desc string, err, target error) bool {
	if !c.begin() {
		return false
	}
	if errors.Is(err, target) {
		return true
	}
	actual := "nil"
	if err != nil {
		actual = err.Error()
	}
	c.record(&domain.CheckFailure{
		Check:    desc,
		Expected: fmt.Sprintf("error matching %q", target),
		Actual:   actual,
		Location: callerLocation(2),
	})
	return false
}

// Panics checks that fn panics and returns the recovered value.
func (c *Checks) Panics(desc string, fn func()) (recovered any) {
	if !c.begin() {
		return nil
	}
	panicked := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
				recovered = r
			}
		}()
		fn()
	}()
	if !panicked {
		c.record(&domain.CheckFailure{
			Check:    desc,
			Expected: "panic",
			Actual:   "no panic",
			Location: callerLocation(2),
		})
	}
	return recovered
}

// Fail records a failure unconditionally.
func (c *Checks) Fail(desc string) {
	if !c.begin() {
		return
	}
	c.record(&domain.CheckFailure{Check: desc, Location: callerLocation(2)})
}

// begin counts a check unless a previous one already failed.
func (c *Checks) begin() bool {
	if c.failure != nil {
		return false
	}
	c.count++
	return true
}

func (c *Checks) record(f *domain.CheckFailure) {
	c.failure = f
}

// Assert panics with a *domain.CheckFailure when cond is false.
func Assert(cond bool, desc string) {
	if cond {
		return
	}
	panic(&domain.CheckFailure{
		Check:    desc,
		Expected: "true",
		Actual:   "false",
		Location: callerLocation(2),
	})
}

// Skip returns an error marking the example as skipped.
func Skip(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.ErrSkipped
	}
	return fmt.Errorf("%w: %s", domain.ErrSkipped, reason)
}

func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", t)
	case error:
		return t.Error()
	default:
		return fmt.Sprintf("%v", t)
	}
}
