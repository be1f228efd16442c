package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Four spaces per level, matching the slicer's own profile output.
const indentUnit = "    "

// LoadFile reads and parses a profile document from the given path.
func LoadFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	rec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	return rec, nil
}

// Parse parses JSON data into a Record, preserving key order. The
// top-level value must be an object.
func Parse(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("document root is %v, want an object", tok)
	}

	rec, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}

	// Reject trailing content after the closing brace.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected content after document root")
	}

	return rec, nil
}

func decodeObject(dec *json.Decoder) (*Record, error) {
	rec := New()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding object key: %w", err)
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %v, want a string", tok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		rec.Set(key, value)
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decoding object end: %w", err)
	}

	return rec, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	out := []any{}

	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		out = append(out, value)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decoding array end: %w", err)
	}

	return out, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decoding value: %w", err)
	}

	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", delim)
		}
	}

	// string, bool, json.Number, or nil.
	return tok, nil
}

// Encode serializes the record as UTF-8 JSON with 4-space indentation,
// non-ASCII characters kept unescaped, and a trailing newline. When
// sortKeys is true, keys are sorted alphabetically at every level.
func (r *Record) Encode(sortKeys bool) ([]byte, error) {
	var buf bytes.Buffer

	if err := encodeValue(&buf, r, 0, sortKeys); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any, depth int, sortKeys bool) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case json.Number:
		buf.WriteString(t.String())
	case string:
		return encodeString(buf, t)
	case *Record:
		return encodeRecord(buf, t, depth, sortKeys)
	case []any:
		return encodeSlice(buf, t, depth, sortKeys)
	default:
		// Values produced by Parse and Normalize never reach this arm;
		// fall back to the stock encoder for anything else.
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)

		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encoding value %v: %w", t, err)
		}

		buf.Truncate(buf.Len() - 1)
	}

	return nil
}

func encodeRecord(buf *bytes.Buffer, rec *Record, depth int, sortKeys bool) error {
	if rec.Len() == 0 {
		buf.WriteString("{}")
		return nil
	}

	keys := rec.Keys()
	if sortKeys {
		sort.Strings(keys)
	}

	buf.WriteString("{\n")

	for i, key := range keys {
		writeIndent(buf, depth+1)

		if err := encodeString(buf, key); err != nil {
			return err
		}

		buf.WriteString(": ")

		value, _ := rec.Get(key)
		if err := encodeValue(buf, value, depth+1, sortKeys); err != nil {
			return err
		}

		if i < len(keys)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	writeIndent(buf, depth)
	buf.WriteByte('}')

	return nil
}

func encodeSlice(buf *bytes.Buffer, values []any, depth int, sortKeys bool) error {
	if len(values) == 0 {
		buf.WriteString("[]")
		return nil
	}

	buf.WriteString("[\n")

	for i, value := range values {
		writeIndent(buf, depth+1)

		if err := encodeValue(buf, value, depth+1, sortKeys); err != nil {
			return err
		}

		if i < len(values)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	writeIndent(buf, depth)
	buf.WriteByte(']')

	return nil
}

// encodeString writes a JSON string without HTML escaping, so that
// non-ASCII profile text survives round-trips byte-for-byte.
func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding string %q: %w", s, err)
	}

	// Encode appends a newline; the caller controls layout.
	buf.Truncate(buf.Len() - 1)

	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString(indentUnit)
	}
}
