package fieldpath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/sieve/internal/value"
)

func TestResolveTopLevel(t *testing.T) {
	doc := value.Object{"city": value.String("NYC")}

	got, ok := New("city").Resolve(doc)

	assert.True(t, ok)
	assert.Equal(t, value.Value(value.String("NYC")), got)
}

func TestResolveNested(t *testing.T) {
	doc := value.Object{
		"user": value.Object{
			"profile": value.Object{
				"age": value.Int(30),
			},
		},
	}

	got, ok := New("user.profile.age").Resolve(doc)

	assert.True(t, ok)
	assert.Equal(t, value.Value(value.Int(30)), got)
}

func TestResolveMissingKey(t *testing.T) {
	doc := value.Object{"user": value.Object{"profile": value.Object{}}}

	got, ok := New("user.profile.age").Resolve(doc)

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestResolveMissingIntermediate(t *testing.T) {
	doc := value.Object{"user": value.Object{}}

	// The whole chain resolves absent, not an error.
	got, ok := New("user.profile.age").Resolve(doc)

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestResolveNonObjectIntermediate(t *testing.T) {
	doc := value.Object{"user": value.String("not an object")}

	got, ok := New("user.profile").Resolve(doc)

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestResolveNonObjectRoot(t *testing.T) {
	_, ok := New("a").Resolve(value.Int(1))
	assert.False(t, ok)

	_, ok = New("a").Resolve(nil)
	assert.False(t, ok)
}

func TestResolvePreservesExplicitNull(t *testing.T) {
	doc := value.Object{"gone": value.Null{}}

	got, ok := New("gone").Resolve(doc)

	// Present null is not absent.
	assert.True(t, ok)
	assert.Equal(t, value.Value(value.Null{}), got)
}

func TestResolveArrayIsNotTraversed(t *testing.T) {
	doc := value.Object{"tags": value.Array{value.String("a")}}

	// The resolver only walks object keys; a numeric segment into an
	// array resolves absent.
	got, ok := New("tags.0").Resolve(doc)

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "age", New("user.age").LastSegment())
	assert.Equal(t, "city", New("city").LastSegment())
}

func TestIsIndexSegment(t *testing.T) {
	assert.True(t, IsIndexSegment("0"))
	assert.True(t, IsIndexSegment("42"))

	assert.False(t, IsIndexSegment(""))
	assert.False(t, IsIndexSegment("-1"))
	assert.False(t, IsIndexSegment("1a"))
	assert.False(t, IsIndexSegment("age"))
}
