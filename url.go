package restkit

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
	"github.com/restkit/restkit/internal/fieldset"
)

var queryEncoder = schema.NewEncoder()

// BuildURL combines a base address with a relative path and query
// parameters into a single absolute URL. Leading and trailing slashes
// on both sides of the join are normalized so exactly one separator
// appears between the base path and the relative path. An empty query
// set leaves the URL's query untouched; otherwise the pairs are
// appended to any query already present on the base. Pairs are
// serialized in sorted-key order; the order they were added in is not
// preserved.
func BuildURL(base, path string, query url.Values) (*url.URL, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, WrapError(KindURLParse, "parsing base address", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, Errorf(KindURLParse, "base address %q is not an absolute URL", base)
	}

	if path != "" {
		u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	}

	if len(query) > 0 {
		merged := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				merged.Add(k, v)
			}
		}
		u.RawQuery = merged.Encode()
	}

	// Reassemble to catch anything the string form cannot represent.
	final, err := url.Parse(u.String())
	if err != nil {
		return nil, WrapError(KindURLBuild, "assembling final URL", err)
	}
	return final, nil
}

// interpolatePath substitutes {FieldName} placeholders in a path
// template with the value of the named exported field of the endpoint
// instance. Names are a constrained field lookup, not expressions.
// Values are substituted verbatim into the decoded path; escaping
// happens exactly once when the final URL is serialized, so a value
// containing '/' extends the path with additional segments.
func interpolatePath(tmpl string, v reflect.Value, set *fieldset.Set) (string, error) {
	if !strings.Contains(tmpl, "{") {
		if strings.Contains(tmpl, "}") {
			return "", Errorf(KindPathInterpolation, "unmatched '}' in path template %q", tmpl)
		}
		return tmpl, nil
	}

	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var b strings.Builder
	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.Contains(rest, "}") {
				return "", Errorf(KindPathInterpolation, "unmatched '}' in path template %q", tmpl)
			}
			b.WriteString(rest)
			return b.String(), nil
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			return "", Errorf(KindPathInterpolation, "unclosed '{' in path template %q", tmpl)
		}
		name := rest[open+1 : open+closing]
		if name == "" {
			return "", Errorf(KindPathInterpolation, "empty placeholder in path template %q", tmpl)
		}

		f, ok := set.FieldByName(name)
		if !ok {
			return "", Errorf(KindPathInterpolation, "path template %q references unknown field %q", tmpl, name)
		}
		fv := v.Field(f.Index)
		for fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				return "", Errorf(KindPathInterpolation, "path template %q references unset field %q", tmpl, name)
			}
			fv = fv.Elem()
		}

		b.WriteString(rest[:open])
		b.WriteString(fmt.Sprint(fv.Interface()))
		rest = rest[open+closing+1:]
	}
}

// buildQuery encodes the query-tagged fields of the endpoint instance
// into url.Values using gorilla/schema, via a synthetic struct that
// preserves each field's schema tag. Nil optional fields are elided.
func buildQuery(v reflect.Value, set *fieldset.Set) (url.Values, error) {
	fields := set.QueryFields()
	if len(fields) == 0 {
		return nil, nil
	}

	src := fieldset.Synthetic(v, fields)
	if src == nil {
		return nil, nil
	}

	values := url.Values{}
	if err := queryEncoder.Encode(src, values); err != nil {
		return nil, WrapError(KindURLQuery, "encoding query parameters", err)
	}
	return values, nil
}
