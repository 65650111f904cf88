package source

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/sieve/internal/value"
)

// parseCUEQuery evaluates a CUE file and converts its value into a query.
// The file must evaluate to a single concrete value (typically a struct).
func parseCUEQuery(path string, data []byte) (value.Value, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile CUE query %s: %w", path, err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("CUE query %s is not concrete: %w", path, err)
	}

	q, err := fromCUE(v)
	if err != nil {
		return nil, fmt.Errorf("CUE query %s: %w", path, err)
	}
	return q, nil
}

// fromCUE recursively converts a concrete cue.Value into the value model.
func fromCUE(v cue.Value) (value.Value, error) {
	switch v.Kind() {
	case cue.NullKind:
		return value.Null{}, nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return nil, err
		}
		return value.Bool(b), nil
	case cue.IntKind:
		n, err := v.Int64()
		if err != nil {
			return nil, err
		}
		return value.Int(n), nil
	case cue.FloatKind, cue.NumberKind:
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return value.Float(f), nil
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, err
		}
		return value.String(s), nil
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, err
		}
		var arr value.Array
		for iter.Next() {
			elem, err := fromCUE(iter.Value())
			if err != nil {
				return nil, err
			}
			arr = append(arr, elem)
		}
		return arr, nil
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, err
		}
		obj := make(value.Object)
		for iter.Next() {
			field, err := fromCUE(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", iter.Label(), err)
			}
			obj[iter.Label()] = field
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported CUE kind: %v", v.Kind())
	}
}
