package restkit

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/restkit/restkit/internal/fieldset"
)

// buildBody resolves the request body of an endpoint instance.
//
// Resolution order, first match wins:
//  1. a raw-tagged field supplies its bytes verbatim, no serialization
//  2. body-tagged fields are serialized together
//  3. untagged fields are serialized together
//  4. no body
//
// Serialized fields are assembled into a synthetic struct preserving
// their json tags, so per-field serialization attributes apply
// unchanged. Nil optional fields are elided rather than emitted as
// null. A serialized form that is semantically empty ("{}" or "null")
// collapses to no body; partially specified resources must never be
// overwritten by an explicit empty object.
func buildBody(v reflect.Value, set *fieldset.Set) ([]byte, error) {
	if raw, ok := set.RawField(); ok {
		for v.Kind() == reflect.Ptr {
			v = v.Elem()
		}
		fv := v.Field(raw.Index)
		return fv.Convert(reflect.TypeOf([]byte(nil))).Interface().([]byte), nil
	}

	src := fieldset.Synthetic(v, set.BodyFields())
	if src == nil {
		return nil, nil
	}

	data, err := json.Marshal(src)
	if err != nil {
		return nil, WrapError(KindDataParse, "serializing request body", err)
	}
	if emptyBody(data) {
		return nil, nil
	}
	return data, nil
}

func emptyBody(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 ||
		bytes.Equal(trimmed, []byte("{}")) ||
		bytes.Equal(trimmed, []byte("null"))
}
