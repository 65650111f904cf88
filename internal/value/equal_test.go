package value

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEqualReflexive(t *testing.T) {
	values := []Value{
		Null{},
		Bool(true),
		Bool(false),
		Int(0),
		Int(-7),
		Float(2.5),
		String(""),
		String("hello"),
		Array{Int(1), String("a"), Array{Bool(true)}},
		Object{"a": Int(1), "b": Object{"c": Null{}}},
		NewDate(2024, time.March, 1),
		NewDateTime(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)),
	}

	for _, v := range values {
		assert.True(t, Equal(v, v), "value %#v should equal itself", v)
	}
}

func TestEqualNull(t *testing.T) {
	assert.True(t, Equal(Null{}, Null{}))
	assert.False(t, Equal(Null{}, Bool(false)))
	assert.False(t, Equal(Null{}, Int(0)))
	assert.False(t, Equal(String(""), Null{}))
}

func TestEqualAbsent(t *testing.T) {
	// An absent document value equals a Null query literal, and nothing else.
	assert.True(t, Equal(nil, Null{}))
	assert.False(t, Equal(nil, Int(0)))
	assert.False(t, Equal(nil, String("")))
	assert.False(t, Equal(nil, Bool(false)))
	assert.False(t, Equal(Int(0), nil))
}

func TestEqualNumericCrossKind(t *testing.T) {
	assert.True(t, Equal(Int(5), Float(5.0)))
	assert.True(t, Equal(Float(5.0), Int(5)))
	assert.False(t, Equal(Int(5), Float(5.5)))
	assert.False(t, Equal(Int(5), String("5")))
}

func TestEqualArrays(t *testing.T) {
	tests := []struct {
		name string
		a, b Array
		want bool
	}{
		{"same elements in order", Array{Int(1), Int(2)}, Array{Int(1), Int(2)}, true},
		{"different order", Array{Int(1), Int(2)}, Array{Int(2), Int(1)}, false},
		{"different length", Array{Int(1)}, Array{Int(1), Int(2)}, false},
		{"empty", Array{}, Array{}, true},
		{"nested", Array{Array{Int(1)}}, Array{Array{Int(1)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestEqualObjects(t *testing.T) {
	tests := []struct {
		name string
		a, b Object
		want bool
	}{
		{"same key set", Object{"a": Int(1)}, Object{"a": Int(1)}, true},
		{"extra key on document side", Object{"a": Int(1), "b": Int(2)}, Object{"a": Int(1)}, false},
		{"extra key on query side", Object{"a": Int(1)}, Object{"a": Int(1), "b": Int(2)}, false},
		{"different value", Object{"a": Int(1)}, Object{"a": Int(2)}, false},
		{"empty", Object{}, Object{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestEqualObjectsSymmetric(t *testing.T) {
	a := Object{"x": Array{Int(1), Int(2)}, "y": String("s")}
	b := Object{"x": Array{Int(1), Int(2)}, "y": String("s")}
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, a))
}

func TestEqualTemporal(t *testing.T) {
	nyc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	utc := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)
	local := utc.In(nyc)

	// Chronological identity, not representational identity.
	assert.True(t, Equal(NewDateTime(utc), NewDateTime(local)))

	// Same-kind only: a Date never equals a DateTime.
	assert.False(t, Equal(NewDate(2024, time.March, 1), Value(NewDateTime(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))))
}

func TestEqualRegexAgainstString(t *testing.T) {
	pattern := NewRegex(regexp.MustCompile(`^N.C$`))

	assert.True(t, Equal(String("NYC"), pattern))
	assert.False(t, Equal(String("SF"), pattern))
	assert.False(t, Equal(Int(1), pattern))

	// Two patterns compare by source.
	assert.True(t, Equal(pattern, NewRegex(regexp.MustCompile(`^N.C$`))))
	assert.False(t, Equal(pattern, NewRegex(regexp.MustCompile(`other`))))
}

func TestCompareNumeric(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Value
		wantCmp int
		wantOK  bool
	}{
		{"int less", Int(1), Int(2), -1, true},
		{"int greater", Int(3), Int(2), 1, true},
		{"int equal", Int(2), Int(2), 0, true},
		{"int vs float", Int(2), Float(2.5), -1, true},
		{"float vs int", Float(2.5), Int(2), 1, true},
		{"float equal int", Float(2.0), Int(2), 0, true},
		{"int vs string unordered", Int(2), String("2"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, ok := Compare(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantCmp, cmp)
			}
		})
	}
}

func TestCompareStrings(t *testing.T) {
	cmp, ok := Compare(String("apple"), String("banana"))
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = Compare(String("b"), String("a"))
	assert.True(t, ok)
	assert.Equal(t, 1, cmp)
}

func TestCompareTemporal(t *testing.T) {
	d1 := NewDate(2024, time.March, 1)
	d2 := NewDate(2024, time.March, 2)

	cmp, ok := Compare(d1, d2)
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	t1 := NewDateTime(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	t2 := NewDateTime(time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC))

	cmp, ok = Compare(t2, t1)
	assert.True(t, ok)
	assert.Equal(t, 1, cmp)

	// Date and DateTime are different kinds: unordered.
	_, ok = Compare(d1, t1)
	assert.False(t, ok)
}

func TestCompareUnordered(t *testing.T) {
	_, ok := Compare(Bool(true), Bool(false))
	assert.False(t, ok)

	_, ok = Compare(Array{Int(1)}, Array{Int(2)})
	assert.False(t, ok)

	_, ok = Compare(nil, Int(1))
	assert.False(t, ok)

	_, ok = Compare(Int(1), nil)
	assert.False(t, ok)
}
