package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces RFC 8785-style canonical JSON for a value.
// This is the only serialization used for identity purposes (compiled
// matcher cache keys): two queries with the same canonical form are the
// same query.
//
// Key differences from standard json.Marshal:
//  1. Object keys sorted by UTF-16 code units (not UTF-8 bytes)
//  2. No HTML escaping (< > & are NOT escaped)
//  3. Strings are NFC normalized
//  4. Dates, datetimes and patterns serialize as kind-tagged strings
//     (d"2024-03-01", t"...", r"..."). The tag byte sits outside the
//     quotes, so a pattern never shares a serialization with a plain
//     string of the same text and the two never collide as identities.
func MarshalCanonical(v Value) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return []byte("null"), nil
	case Null:
		return []byte("null"), nil
	case Bool:
		if val {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case Int:
		return []byte(strconv.FormatInt(int64(val), 10)), nil
	case Float:
		return []byte(strconv.FormatFloat(float64(val), 'g', -1, 64)), nil
	case String:
		return marshalCanonicalString(string(val))
	case Array:
		return marshalCanonicalArray(val)
	case Object:
		return marshalCanonicalObject(val)
	case Date:
		return marshalTaggedString('d', val.Time.Format(time.DateOnly))
	case DateTime:
		return marshalTaggedString('t', val.Time.UTC().Format(time.RFC3339Nano))
	case Regex:
		if val.Pattern == nil {
			return marshalTaggedString('r', "")
		}
		return marshalTaggedString('r', val.Pattern.String())
	default:
		return nil, fmt.Errorf("unsupported value type for canonical JSON: %T", v)
	}
}

func marshalCanonicalArray(arr Array) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := MarshalCanonical(elem)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		buf.Write(elemBytes)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalCanonicalObject(obj Object) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	keys := obj.SortedKeys() // RFC 8785 ordering
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := marshalCanonicalString(k)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valBytes, err := MarshalCanonical(obj[k])
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %q: %w", k, err)
		}
		buf.Write(valBytes)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalTaggedString serializes a non-JSON kind as a quoted string with
// a kind tag byte ahead of the opening quote.
func marshalTaggedString(tag byte, s string) ([]byte, error) {
	quoted, err := marshalCanonicalString(s)
	if err != nil {
		return nil, err
	}
	return append([]byte{tag}, quoted...), nil
}

// marshalCanonicalString produces a canonical JSON string with NFC
// normalization. RFC 8785 compliance:
//   - No HTML escaping (<, >, & are NOT escaped)
//   - U+2028 and U+2029 are NOT escaped
//   - Only control characters (U+0000-U+001F), backslash, and quote are
//     escaped
func marshalCanonicalString(s string) ([]byte, error) {
	// NFC normalize at the serialization boundary
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	// json.Encoder adds a trailing newline, remove it
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}

	// Go's json.Encoder escapes U+2028/U+2029 for JavaScript compatibility,
	// which violates RFC 8785. Unescape them, but leave \\u2028 (a literal
	// backslash followed by the text "u2028") alone.
	result = unescapeLineSeparators(result)

	return result, nil
}

// unescapeLineSeparators converts \u2028 and \u2029 escape sequences back
// to literal characters. A sequence is a real escape only when preceded by
// an even number of backslashes; an odd count means the leading backslash
// is itself escaped and the sequence is literal text.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	var out bytes.Buffer
	out.Grow(len(data))

	for i := 0; i < len(data); {
		if data[i] != '\\' || i+6 > len(data) ||
			data[i+1] != 'u' || data[i+2] != '2' || data[i+3] != '0' || data[i+4] != '2' ||
			(data[i+5] != '8' && data[i+5] != '9') {
			out.WriteByte(data[i])
			i++
			continue
		}

		// Count backslashes already written immediately before this point.
		written := out.Bytes()
		backslashes := 0
		for j := len(written) - 1; j >= 0 && written[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 1 {
			// The \ opening this sequence is escaped; keep as-is.
			out.WriteByte(data[i])
			i++
			continue
		}

		if data[i+5] == '8' {
			out.WriteRune('\u2028')
		} else {
			out.WriteRune('\u2029')
		}
		i += 6
	}

	return out.Bytes()
}
