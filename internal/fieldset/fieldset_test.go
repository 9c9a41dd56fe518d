package fieldset

import (
	"encoding/json"
	"reflect"
	"testing"
)

type roles struct {
	Query    string `endpoint:"query"`
	Body     string `endpoint:"body"`
	Raw      []byte `endpoint:"raw"`
	Skipped  string `endpoint:"skip"`
	Untagged string
	hidden   string
}

func TestParse_Roles(t *testing.T) {
	set, err := Parse(reflect.TypeOf(roles{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]Role{
		"Query":    Query,
		"Body":     Body,
		"Raw":      Raw,
		"Skipped":  Skip,
		"Untagged": Untagged,
	}
	if len(set.Fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(set.Fields))
	}
	for _, f := range set.Fields {
		if want[f.Name] != f.Role {
			t.Errorf("field %s: expected role %v, got %v", f.Name, want[f.Name], f.Role)
		}
	}
}

func TestParse_PointerType(t *testing.T) {
	set, err := Parse(reflect.TypeOf(&roles{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Type.Kind() != reflect.Struct {
		t.Errorf("expected struct type after deref, got %s", set.Type.Kind())
	}
}

func TestParse_CachesPerType(t *testing.T) {
	a, err := Parse(reflect.TypeOf(roles{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Parse(reflect.TypeOf(roles{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Error("expected cached set to be reused")
	}
}

func TestParse_Errors(t *testing.T) {
	type twoRaw struct {
		A []byte `endpoint:"raw"`
		B []byte `endpoint:"raw"`
	}
	type badRaw struct {
		A string `endpoint:"raw"`
	}
	type badRole struct {
		A string `endpoint:"header"`
	}

	tests := []struct {
		name string
		t    reflect.Type
	}{
		{"multiple raw fields", reflect.TypeOf(twoRaw{})},
		{"raw on non-bytes", reflect.TypeOf(badRaw{})},
		{"unknown role", reflect.TypeOf(badRole{})},
		{"not a struct", reflect.TypeOf("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.t); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestBodyFields_Precedence(t *testing.T) {
	type tagged struct {
		A string `endpoint:"body"`
		B string
	}
	type untagged struct {
		A string
		B string `endpoint:"skip"`
	}
	type withRaw struct {
		A []byte `endpoint:"raw"`
		B string `endpoint:"body"`
	}

	t.Run("body tags win", func(t *testing.T) {
		set, err := Parse(reflect.TypeOf(tagged{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		fields := set.BodyFields()
		if len(fields) != 1 || fields[0].Name != "A" {
			t.Errorf("expected only body-tagged field A, got %v", fields)
		}
	})

	t.Run("untagged fallback excludes skip", func(t *testing.T) {
		set, err := Parse(reflect.TypeOf(untagged{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		fields := set.BodyFields()
		if len(fields) != 1 || fields[0].Name != "A" {
			t.Errorf("expected only untagged field A, got %v", fields)
		}
	})

	t.Run("raw suppresses serialization", func(t *testing.T) {
		set, err := Parse(reflect.TypeOf(withRaw{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fields := set.BodyFields(); fields != nil {
			t.Errorf("expected no body fields with raw present, got %v", fields)
		}
		if _, ok := set.RawField(); !ok {
			t.Error("expected raw field to be reported")
		}
	})
}

func TestSynthetic(t *testing.T) {
	type src struct {
		Name string  `json:"name"`
		Age  int     `json:"age"`
		Bio  *string `json:"bio,omitempty"`
	}

	set, err := Parse(reflect.TypeOf(src{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("preserves tags and order", func(t *testing.T) {
		bio := "hi"
		out := Synthetic(reflect.ValueOf(src{Name: "a", Age: 5, Bio: &bio}), set.BodyFields())
		data, err := json.Marshal(out)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != `{"name":"a","age":5,"bio":"hi"}` {
			t.Errorf("unexpected serialization %q", data)
		}
	})

	t.Run("elides nil optionals", func(t *testing.T) {
		out := Synthetic(reflect.ValueOf(src{Name: "a", Age: 5}), set.BodyFields())
		data, err := json.Marshal(out)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != `{"name":"a","age":5}` {
			t.Errorf("unexpected serialization %q", data)
		}
	})

	t.Run("keeps zero-valued set optionals", func(t *testing.T) {
		bio := ""
		out := Synthetic(reflect.ValueOf(src{Name: "a", Age: 0, Bio: &bio}), set.BodyFields())
		data, err := json.Marshal(out)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != `{"name":"a","age":0,"bio":""}` {
			t.Errorf("unexpected serialization %q", data)
		}
	})

	t.Run("double pointer", func(t *testing.T) {
		type deep struct {
			A **string `json:"a,omitempty"`
			B string   `json:"b"`
		}
		s, err := Parse(reflect.TypeOf(deep{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		val := "x"
		ptr := &val
		full := Synthetic(reflect.ValueOf(deep{A: &ptr, B: "y"}), s.BodyFields())
		data, err := json.Marshal(full)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != `{"a":"x","b":"y"}` {
			t.Errorf("unexpected serialization %q", data)
		}

		// An inner nil counts as unset and is elided, never a panic
		// or a literal null.
		var inner *string
		half := Synthetic(reflect.ValueOf(deep{A: &inner, B: "y"}), s.BodyFields())
		data, err = json.Marshal(half)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != `{"b":"y"}` {
			t.Errorf("unexpected serialization %q", data)
		}
	})

	t.Run("nil when nothing remains", func(t *testing.T) {
		type onlyOpt struct {
			A *string `json:"a,omitempty"`
		}
		s, err := Parse(reflect.TypeOf(onlyOpt{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out := Synthetic(reflect.ValueOf(onlyOpt{}), s.BodyFields()); out != nil {
			t.Errorf("expected nil synthetic value, got %v", out)
		}
	})
}
