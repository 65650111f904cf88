package value

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// FromAny recursively converts parsed JSON/YAML-shaped Go data into the
// value model. It accepts the shapes produced by encoding/json (with
// UseNumber or plain float64), gopkg.in/yaml.v3, and hand-built literals,
// plus time.Time and compiled *regexp.Regexp for the temporal and pattern
// kinds. A Value passes through unchanged.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint:
		return Int(val), nil
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case uint64:
		if val > 1<<63-1 {
			return nil, fmt.Errorf("integer out of int64 range: %d", val)
		}
		return Int(val), nil
	case float32:
		return Float(val), nil
	case float64:
		return Float(val), nil
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return Int(n), nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", val, err)
		}
		return Float(f), nil
	case time.Time:
		return DateTime{Time: val}, nil
	case *regexp.Regexp:
		return Regex{Pattern: val}, nil
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			converted, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = converted
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			converted, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			obj[k] = converted
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// ToAny converts a Value back to plain Go data suitable for encoding/json
// output. Dates render as RFC 3339 date strings, datetimes as RFC 3339
// timestamps, patterns as their source text. An absent value renders as
// nil, same as Null.
func ToAny(v Value) any {
	switch val := v.(type) {
	case nil:
		return nil
	case Null:
		return nil
	case Bool:
		return bool(val)
	case Int:
		return int64(val)
	case Float:
		return float64(val)
	case String:
		return string(val)
	case Array:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = ToAny(elem)
		}
		return out
	case Object:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = ToAny(elem)
		}
		return out
	case Date:
		return val.Time.Format(time.DateOnly)
	case DateTime:
		return val.Time.Format(time.RFC3339Nano)
	case Regex:
		if val.Pattern == nil {
			return ""
		}
		return val.Pattern.String()
	default:
		return nil
	}
}
