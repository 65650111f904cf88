package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueSealed(t *testing.T) {
	// Verify all types implement Value (compile-time check via assignment)
	var _ Value = Null{}
	var _ Value = Bool(true)
	var _ Value = Int(42)
	var _ Value = Float(3.5)
	var _ Value = String("test")
	var _ Value = Array{String("a"), Int(1)}
	var _ Value = Object{"key": String("value")}
	var _ Value = NewDate(2024, time.March, 1)
	var _ Value = NewDateTime(time.Now())
	var _ Value = Regex{}
}

func TestObjectSortedKeys(t *testing.T) {
	obj := Object{
		"zebra":  String("z"),
		"apple":  String("a"),
		"banana": String("b"),
	}

	keys := obj.SortedKeys()

	assert.Equal(t, []string{"apple", "banana", "zebra"}, keys)
}

func TestObjectSortedKeysUTF16Order(t *testing.T) {
	// RFC 8785 orders keys by UTF-16 code units: uppercase ASCII before
	// lowercase, and for same-length prefixes shorter strings first.
	obj := Object{
		"a":  Int(1),
		"A":  Int(2),
		"aa": Int(3),
		"aA": Int(4),
		"Aa": Int(5),
		"AA": Int(6),
	}

	keys := obj.SortedKeys()

	expected := []string{"A", "AA", "Aa", "a", "aA", "aa"}
	assert.Equal(t, expected, keys)
}

func TestObjectSortedKeysEmpty(t *testing.T) {
	obj := Object{}
	assert.Empty(t, obj.SortedKeys())
}

func TestNewObjectFromPairs(t *testing.T) {
	obj := NewObjectFromPairs(
		O("name", String("cart")),
		O("count", Int(5)),
	)

	assert.Len(t, obj, 2)
	assert.Equal(t, String("cart"), obj["name"])
	assert.Equal(t, Int(5), obj["count"])
}

func TestNewDateNormalizesToMidnightUTC(t *testing.T) {
	d := NewDate(2024, time.March, 1)

	assert.Equal(t, 2024, d.Time.Year())
	assert.Equal(t, time.March, d.Time.Month())
	assert.Equal(t, 1, d.Time.Day())
	assert.Equal(t, 0, d.Time.Hour())
	assert.Equal(t, time.UTC, d.Time.Location())
}
