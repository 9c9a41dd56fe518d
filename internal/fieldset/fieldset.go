// Package fieldset resolves the wire role of each field of an endpoint
// struct from its `endpoint` tag. Parsed sets are cached per type.
//
// Recognized roles:
//
//	endpoint:"query" - encoded into the URL query string
//	endpoint:"body"  - serialized into the request body
//	endpoint:"raw"   - used verbatim as the request body (one per struct)
//	endpoint:"skip"  - excluded from the wire entirely
//
// Fields with no endpoint tag are untagged: they serialize as the body
// only when no field is tagged body or raw.
package fieldset

import (
	"fmt"
	"reflect"
	"sync"
)

// Role classifies where a field appears in the final request.
type Role int

const (
	Untagged Role = iota
	Query
	Body
	Raw
	Skip
)

var roleNames = map[string]Role{
	"query": Query,
	"body":  Body,
	"raw":   Raw,
	"skip":  Skip,
}

// Field is one exported struct field and its resolved role.
type Field struct {
	Name  string
	Role  Role
	Index int
	// Optional fields are elided from serialization when nil.
	Optional    bool
	StructField reflect.StructField
}

// Set is the parsed role layout of one endpoint struct type.
type Set struct {
	Type   reflect.Type
	Fields []Field

	rawIndex int // index into Fields, -1 when absent
	hasBody  bool
}

var cache sync.Map // reflect.Type -> *Set

// Parse resolves the field roles of t, which must be a struct type or
// a pointer to one. Results are cached per type.
func Parse(t reflect.Type) (*Set, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("endpoint type %s is not a struct", t)
	}

	if cached, ok := cache.Load(t); ok {
		return cached.(*Set), nil
	}

	s := &Set{Type: t, rawIndex: -1}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}

		role := Untagged
		if tag, ok := sf.Tag.Lookup("endpoint"); ok {
			r, known := roleNames[tag]
			if !known {
				return nil, fmt.Errorf("field %s.%s: unknown endpoint role %q", t.Name(), sf.Name, tag)
			}
			role = r
		}

		if role == Raw {
			if s.rawIndex >= 0 {
				return nil, fmt.Errorf("%s: multiple fields tagged endpoint:\"raw\"", t.Name())
			}
			if sf.Type.Kind() != reflect.Slice || sf.Type.Elem().Kind() != reflect.Uint8 {
				return nil, fmt.Errorf("field %s.%s: endpoint:\"raw\" requires a byte slice, got %s", t.Name(), sf.Name, sf.Type)
			}
			s.rawIndex = len(s.Fields)
		}
		if role == Body {
			s.hasBody = true
		}

		kind := sf.Type.Kind()
		s.Fields = append(s.Fields, Field{
			Name:        sf.Name,
			Role:        role,
			Index:       i,
			Optional:    kind == reflect.Ptr || kind == reflect.Interface,
			StructField: sf,
		})
	}

	cache.Store(t, s)
	return s, nil
}

// RawField returns the raw-tagged field, if any.
func (s *Set) RawField() (Field, bool) {
	if s.rawIndex < 0 {
		return Field{}, false
	}
	return s.Fields[s.rawIndex], true
}

// BodyFields returns the fields that serialize into the request body
// under the precedence policy: none when a raw field exists, otherwise
// the body-tagged fields, otherwise all untagged fields.
func (s *Set) BodyFields() []Field {
	if s.rawIndex >= 0 {
		return nil
	}
	want := Untagged
	if s.hasBody {
		want = Body
	}
	var out []Field
	for _, f := range s.Fields {
		if f.Role == want {
			out = append(out, f)
		}
	}
	return out
}

// QueryFields returns the fields encoded into the query string.
func (s *Set) QueryFields() []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Role == Query {
			out = append(out, f)
		}
	}
	return out
}

// FieldByName returns the exported field with the given Go name.
// Role is not consulted; path templates may reference any field,
// including skipped ones.
func (s *Set) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Synthetic assembles a new struct value containing only the given
// fields of v, preserving each field's original type and tags so
// downstream encoders see the same serialization attributes. Optional
// fields that are nil at runtime (at any level of indirection) are
// dropped entirely; a pointer to a zero value is present, not unset,
// and stays in. The returned value is a pointer to the synthetic
// struct, or nil when no fields remain.
func Synthetic(v reflect.Value, fields []Field) any {
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var defs []reflect.StructField
	var vals []reflect.Value
	for _, f := range fields {
		fv := v.Field(f.Index)
		if f.Optional && unset(fv) {
			continue
		}
		defs = append(defs, reflect.StructField{
			Name: f.Name,
			Type: f.StructField.Type,
			Tag:  f.StructField.Tag,
		})
		vals = append(vals, fv)
	}
	if len(defs) == 0 {
		return nil
	}

	out := reflect.New(reflect.StructOf(defs))
	for i, fv := range vals {
		out.Elem().Field(i).Set(fv)
	}
	return out.Interface()
}

// unset reports whether v is nil at any level of indirection, so a
// **T whose inner pointer is nil counts as unset too.
func unset(v reflect.Value) bool {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}
	return false
}
