package lessons

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aalvaropc/primer/internal/registry"
	"github.com/aalvaropc/primer/internal/usecase/check"
)

const storeDoc = `{
  "store": {
    "book": [
      {"title": "Sayings of the Century", "price": 8.95, "tags": ["quotes"]},
      {"title": "Moby Dick", "price": 12.99, "isbn": "0-553-21311-3"}
    ],
    "open": true
  }
}`

type person struct {
	Name    string    `json:"name"`
	Age     int       `json:"age,omitempty"`
	Email   string    `json:"-"`
	Joined  time.Time `json:"joined"`
	private string
}

func registerJSON(s *registry.Suite) {
	s.Register("struct tags name the fields", func() error {
		c := check.New()
		p := person{
			Name:    "Ada",
			Email:   "ada@example.com",
			Joined:  time.Date(1843, 7, 1, 0, 0, 0, 0, time.UTC),
			private: "hidden",
		}
		b, err := json.Marshal(p)
		if !c.Nil("marshal error", err) {
			return c.Err()
		}
		c.Equal("encoded", `{"name":"Ada","joined":"1843-07-01T00:00:00Z"}`, string(b))
		c.JSONPathEq("name via jsonpath", b, "$.name", "Ada")
		return c.Err()
	})

	s.Register("jsonpath selects into documents", func() error {
		c := check.New()
		c.JSONPathEq("second title", storeDoc, "$.store.book[1].title", "Moby Dick")
		c.JSONPathEq("all titles", storeDoc, "$.store.book[*].title", []string{"Sayings of the Century", "Moby Dick"})
		c.JSONPathEq("cheap books", storeDoc, "$.store.book[?(@.price < 10)].title", []string{"Sayings of the Century"})
		c.JSONPathExists("isbn present", storeDoc, "$.store.book[1].isbn")
		c.JSONPathEq("flag", storeDoc, "$.store.open", true)
		return c.Err()
	})

	s.Register("numbers decode as float64", func() error {
		c := check.New()
		var v map[string]any
		if !c.Nil("unmarshal error", json.Unmarshal([]byte(`{"n": 1}`), &v)) {
			return c.Err()
		}
		c.Equal("dynamic type", "float64", fmt.Sprintf("%T", v["n"]))

		dec := json.NewDecoder(bytes.NewReader([]byte(`{"n": 12345678901234567890}`)))
		dec.UseNumber()
		var w map[string]any
		if c.Nil("decode error", dec.Decode(&w)) {
			c.Equal("UseNumber keeps the literal", json.Number("12345678901234567890"), w["n"])
		}
		return c.Err()
	})

	s.Register("unknown fields", func() error {
		c := check.New()
		in := `{"name": "Ada", "shoe_size": 38}`

		var lax person
		c.Nil("ignored by default", json.Unmarshal([]byte(in), &lax))
		c.Equal("name", "Ada", lax.Name)

		dec := json.NewDecoder(bytes.NewReader([]byte(in)))
		dec.DisallowUnknownFields()
		var strict person
		err := dec.Decode(&strict)
		c.True("rejected when disallowed", err != nil)
		return c.Err()
	})

	s.Register("raw messages defer decoding", func() error {
		c := check.New()
		var env struct {
			Kind    string          `json:"kind"`
			Payload json.RawMessage `json:"payload"`
		}
		in := `{"kind": "point", "payload": {"X": 1, "Y": 2}}`
		if !c.Nil("envelope", json.Unmarshal([]byte(in), &env)) {
			return c.Err()
		}
		c.Equal("kind", "point", env.Kind)
		c.JSONPathEq("payload.X", env.Payload, "$.X", 1)

		var pt point
		if c.Nil("payload", json.Unmarshal(env.Payload, &pt)) {
			c.Equal("decoded point", point{X: 1, Y: 2}, pt)
		}
		return c.Err()
	})
}
