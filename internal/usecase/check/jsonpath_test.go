package check

import (
	"strings"
	"testing"

	"github.com/aalvaropc/primer/internal/domain"
)

const doc = `{"data":{"id":7,"name":"Ada","tags":["go","sql"],"empty":""}}`

func TestJSONPathExists(t *testing.T) {
	c := New()
	c.JSONPathExists("data", doc, "$.data")
	c.JSONPathExists("tags", []byte(doc), "$.data.tags")
	if c.Err() != nil {
		t.Fatalf("unexpected failure: %v", c.Err())
	}
}

func TestJSONPathExists_Empty(t *testing.T) {
	c := New()
	c.JSONPathExists("empty", doc, "$.data.empty")

	cf := c.Err().(*domain.CheckFailure)
	if cf.Actual != "empty" {
		t.Fatalf("expected actual=empty, got %q", cf.Actual)
	}
}

func TestJSONPathExists_Missing(t *testing.T) {
	c := New()
	c.JSONPathExists("missing", doc, "$.data.nope")
	if c.Err() == nil {
		t.Fatalf("expected failure for missing key")
	}
}

func TestJSONPathEq_NormalizesNumbers(t *testing.T) {
	c := New()
	c.JSONPathEq("id", doc, "$.data.id", 7)
	c.JSONPathEq("name", doc, "$.data.name", "Ada")
	c.JSONPathEq("tags", doc, "$.data.tags", []string{"go", "sql"})
	if c.Err() != nil {
		t.Fatalf("unexpected failure: %v", c.Err())
	}
}

func TestJSONPathEq_DecodedDocument(t *testing.T) {
	type user struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	c := New()
	c.JSONPathEq("struct field", user{ID: 1, Name: "Bob"}, "$.name", "Bob")
	if c.Err() != nil {
		t.Fatalf("unexpected failure: %v", c.Err())
	}
}

func TestJSONPathEq_Mismatch(t *testing.T) {
	c := New()
	c.JSONPathEq("name", doc, "$.data.name", "Grace")

	cf := c.Err().(*domain.CheckFailure)
	if cf.Expected != `"Grace"` || cf.Actual != `"Ada"` {
		t.Fatalf("unexpected values: %s / %s", cf.Expected, cf.Actual)
	}
}

func TestJSONPathEq_InvalidJSON(t *testing.T) {
	c := New()
	c.JSONPathEq("bad doc", "{not json", "$.a", 1)

	cf := c.Err().(*domain.CheckFailure)
	if !strings.Contains(cf.Actual, "not valid JSON") {
		t.Fatalf("expected invalid JSON message, got %q", cf.Actual)
	}
}
