// Package normalize reconciles the heterogeneous upstream response shapes into the common media model.
//
// The upstream resolver is an opaque third party: nothing about its payloads
// is contractually stable, shapes differ per platform and have drifted over
// time. Every field access in this package is therefore defensive - presence
// and type checked - and malformed input degrades to an empty result instead
// of an error.
package normalize

import "encoding/json"

// Raw is an untyped JSON object with defensive typed accessors.
type Raw map[string]any

// AsRaw coerces an arbitrary decoded JSON value into a Raw object.
func AsRaw(v any) (Raw, bool) {
	switch m := v.(type) {
	case Raw:
		return m, true
	case map[string]any:
		return Raw(m), true
	default:
		return nil, false
	}
}

// Str returns the string value under key, if present and string-typed.
func (r Raw) Str(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// StrOr returns the string value under key or the fallback.
func (r Raw) StrOr(key, fallback string) string {
	if s, ok := r.Str(key); ok && s != "" {
		return s
	}
	return fallback
}

// Num returns the numeric value under key. JSON numbers decode as float64;
// integral strings are not coerced.
func (r Raw) Num(key string) (float64, bool) {
	switch n := r[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Obj returns the nested object under key.
func (r Raw) Obj(key string) (Raw, bool) {
	return AsRaw(r[key])
}

// Arr returns the array value under key.
func (r Raw) Arr(key string) ([]any, bool) {
	a, ok := r[key].([]any)
	return a, ok
}

// Truthy reports whether key holds a JavaScript-truthy value, the convention
// the upstream uses for its status flags.
func (r Raw) Truthy(key string) bool {
	return Truthy(r[key])
}

// Truthy applies JavaScript truthiness rules to a decoded JSON value.
func Truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case nil:
		return false
	default:
		// Objects and arrays are always truthy.
		return true
	}
}

// FirstString returns the first non-empty candidate, reproducing the
// documented fallback chains (e.g. normalized title, then raw title).
func FirstString(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
