package value

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAnyScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null{}},
		{"bool", true, Bool(true)},
		{"string", "hello", String("hello")},
		{"int", 42, Int(42)},
		{"int64", int64(-3), Int(-3)},
		{"uint32", uint32(7), Int(7)},
		{"float64", 2.5, Float(2.5)},
		{"json number int", json.Number("42"), Int(42)},
		{"json number float", json.Number("2.5"), Float(2.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromAnyComposite(t *testing.T) {
	got, err := FromAny(map[string]any{
		"city": "NYC",
		"age":  30,
		"tags": []any{"admin", "user"},
	})
	require.NoError(t, err)

	want := Object{
		"city": String("NYC"),
		"age":  Int(30),
		"tags": Array{String("admin"), String("user")},
	}
	assert.Equal(t, Value(want), got)
}

func TestFromAnyTemporalAndPattern(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	got, err := FromAny(now)
	require.NoError(t, err)
	assert.Equal(t, Value(DateTime{Time: now}), got)

	re := regexp.MustCompile(`^a+$`)
	got, err = FromAny(re)
	require.NoError(t, err)
	assert.Equal(t, Value(Regex{Pattern: re}), got)
}

func TestFromAnyValuePassthrough(t *testing.T) {
	v := Object{"a": Int(1)}
	got, err := FromAny(v)
	require.NoError(t, err)
	assert.Equal(t, Value(v), got)
}

func TestFromAnyUnsupported(t *testing.T) {
	_, err := FromAny(make(chan int))
	assert.Error(t, err)

	_, err = FromAny(map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
}

func TestFromAnyUint64Overflow(t *testing.T) {
	_, err := FromAny(uint64(1) << 63)
	assert.Error(t, err)
}

func TestToAnyRoundTrip(t *testing.T) {
	doc := Object{
		"name":  String("x"),
		"n":     Int(3),
		"f":     Float(1.5),
		"ok":    Bool(true),
		"none":  Null{},
		"items": Array{Int(1), String("two")},
	}

	raw := ToAny(doc)

	back, err := FromAny(raw)
	require.NoError(t, err)
	assert.True(t, Equal(back, doc))
}

func TestToAnyTemporal(t *testing.T) {
	assert.Equal(t, "2024-03-01", ToAny(NewDate(2024, time.March, 1)))
	assert.Equal(t, "2024-03-01T12:00:00Z",
		ToAny(NewDateTime(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))))
}
