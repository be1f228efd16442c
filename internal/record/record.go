package record

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// Record is an ordered mapping from string keys to JSON values.
// The zero value is not usable; call New.
type Record struct {
	keys   []string
	values map[string]any
}

// New returns an empty Record.
func New() *Record {
	return &Record{values: map[string]any{}}
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)

	return out
}

// Has reports whether the key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// GetString returns the value for key as a string. Missing keys and
// non-string values yield the empty string.
func (r *Record) GetString(key string) string {
	v, ok := r.values[key]
	if !ok {
		return ""
	}

	s, _ := v.(string)

	return s
}

// Set stores value under key. An existing key keeps its position; a new
// key is appended.
func (r *Record) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.values[key] = value
}

// Delete removes key and reports whether it was present.
func (r *Record) Delete(key string) bool {
	if _, ok := r.values[key]; !ok {
		return false
	}

	delete(r.values, key)

	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}

	return true
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	out := New()
	for _, key := range r.keys {
		out.Set(key, cloneValue(r.values[key]))
	}

	return out
}

// CloneValue deep-copies a single record value. Useful when one value
// (for example a rule replacement) is written into many records.
func CloneValue(v any) any {
	return cloneValue(v)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Record:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}

		return out
	default:
		// Scalars (string, bool, json.Number, nil) are immutable.
		return v
	}
}

// MarshalJSON renders the record as compact JSON in key order. The
// pretty serializer lives in Encode; this exists so records nested in
// arbitrary values (condition and rule comparisons) render correctly.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}

		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Equal reports whether two records hold the same keys and values.
// Key order is ignored; profile content is what matters for change
// detection.
func (r *Record) Equal(other *Record) bool {
	if other == nil || len(r.keys) != len(other.keys) {
		return false
	}

	for key, v := range r.values {
		ov, ok := other.values[key]
		if !ok || !equalValue(v, ov) {
			return false
		}
	}

	return true
}

func equalValue(a, b any) bool {
	switch at := a.(type) {
	case *Record:
		bt, ok := b.(*Record)
		return ok && at.Equal(bt)
	case []any:
		bt, ok := b.([]any)
		if !ok || len(at) != len(bt) {
			return false
		}

		for i := range at {
			if !equalValue(at[i], bt[i]) {
				return false
			}
		}

		return true
	case json.Number:
		bt, ok := b.(json.Number)
		return ok && at.String() == bt.String()
	default:
		return a == b
	}
}

// Stringify renders a value the way conditions and rules compare it:
// strings verbatim, numbers as written, booleans lowercase, nil empty,
// and containers as compact JSON.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		var buf bytes.Buffer

		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)

		if err := enc.Encode(v); err != nil {
			return ""
		}

		return string(bytes.TrimRight(buf.Bytes(), "\n"))
	}
}

// Normalize converts an arbitrary decoded Go value (e.g. a rule value
// from YAML) into the record value space, so that values injected by
// rules compare and serialize exactly like parsed ones.
func Normalize(v any) any {
	switch t := v.(type) {
	case nil, bool, string, json.Number, *Record:
		return t
	case int:
		return json.Number(strconv.FormatInt(int64(t), 10))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case uint64:
		return json.Number(strconv.FormatUint(t, 10))
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}

		return out
	case map[string]any:
		// YAML mappings arrive unordered; sort keys for determinism.
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		out := New()
		for _, k := range keys {
			out.Set(k, Normalize(t[k]))
		}

		return out
	default:
		return v
	}
}
