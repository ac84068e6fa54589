package check

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/primer/internal/domain"
)

// JSONPathExists checks that expr selects a non-empty value in doc.
// doc may be raw JSON ([]byte, string, json.RawMessage) or an already decoded value.
func (c *Checks) JSONPathExists(desc string, doc any, expr string) bool {
	if !c.begin() {
		return false
	}
	val, err := lookup(doc, expr)
	if err != nil {
		c.record(&domain.CheckFailure{
			Check:    desc,
			Expected: fmt.Sprintf("jsonpath %q to exist", expr),
			Actual:   err.Error(),
			Location: callerLocation(2),
		})
		return false
	}
	if isEmptyJSONPathValue(val) {
		c.record(&domain.CheckFailure{
			Check:    desc,
			Expected: fmt.Sprintf("jsonpath %q to exist", expr),
			Actual:   "empty",
			Location: callerLocation(2),
		})
		return false
	}
	return true
}

// JSONPathEq checks that expr selects a value equal to want.
// want is normalized through encoding/json so Go ints compare equal to JSON numbers.
func (c *Checks) JSONPathEq(desc string, doc any, expr string, want any) bool {
	if !c.begin() {
		return false
	}
	val, err := lookup(doc, expr)
	if err != nil {
		c.record(&domain.CheckFailure{
			Check:    desc,
			Expected: formatValue(want),
			Actual:   fmt.Sprintf("jsonpath %q: %v", expr, err),
			Location: callerLocation(2),
		})
		return false
	}
	norm, err := normalizeJSON(want)
	if err != nil {
		c.record(&domain.CheckFailure{
			Check:    desc,
			Expected: formatValue(want),
			Actual:   fmt.Sprintf("expected value is not JSON-encodable: %v", err),
			Location: callerLocation(2),
		})
		return false
	}
	if cmp.Equal(norm, val) {
		return true
	}
	c.record(&domain.CheckFailure{
		Check:    desc,
		Expected: formatValue(norm),
		Actual:   formatValue(val),
		Diff:     cmp.Diff(norm, val),
		Location: callerLocation(2),
	})
	return false
}

func lookup(doc any, expr string) (any, error) {
	decoded, err := decodeDoc(doc)
	if err != nil {
		return nil, err
	}
	return jsonpath.Get(expr, decoded)
}

func decodeDoc(doc any) (any, error) {
	var raw []byte
	switch d := doc.(type) {
	case []byte:
		raw = d
	case json.RawMessage:
		raw = d
	case string:
		raw = []byte(d)
	default:
		return normalizeJSON(doc)
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("document is not valid JSON: %w", err)
	}
	return out, nil
}

func normalizeJSON(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func isEmptyJSONPathValue(v any) bool {
	if v == nil {
		return true
	}

	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
