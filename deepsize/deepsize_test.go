package deepsize

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_Nil(t *testing.T) {
	assert.Zero(t, Of(nil))
}

func TestOf_Primitives(t *testing.T) {
	assert.Equal(t, int64(unsafe.Sizeof(int64(0))), Of(int64(42)))
	assert.Equal(t, int64(unsafe.Sizeof(true)), Of(true))
}

func TestOf_String(t *testing.T) {
	s := "hello"
	// string header + 5 bytes of content
	want := int64(unsafe.Sizeof(s)) + 5
	assert.Equal(t, want, Of(s))
}

func TestOf_Slice(t *testing.T) {
	s := make([]int64, 3, 5)
	// slice header + cap(5) * 8
	want := int64(unsafe.Sizeof(s)) + 5*8
	assert.Equal(t, want, Of(s))
}

func TestOf_NilSlice(t *testing.T) {
	var s []int64
	assert.Equal(t, int64(unsafe.Sizeof(s)), Of(s))
}

func TestOf_SliceOfStrings(t *testing.T) {
	s := []string{"ab", "cde"}
	got := Of(s)
	// At minimum: slice header + two string headers + 5 bytes of content.
	minExpected := int64(unsafe.Sizeof(s)) + 2*int64(unsafe.Sizeof("")) + 5
	assert.GreaterOrEqual(t, got, minExpected)
}

func TestOf_NestedStruct(t *testing.T) {
	type inner struct {
		Name string
		Val  int64
	}
	type outer struct {
		A inner
		B *inner
	}

	v := outer{
		A: inner{Name: "test", Val: 42},
		B: &inner{Name: "ptr", Val: 99},
	}
	got := Of(v)
	// Larger than the bare struct: string content plus the pointer target.
	minExpected := int64(unsafe.Sizeof(v)) + 4 + 3
	assert.GreaterOrEqual(t, got, minExpected)
}

func TestOf_CycleDetection(t *testing.T) {
	type node struct {
		Next *node
		Val  int
	}
	a := &node{Val: 1}
	b := &node{Val: 2}
	a.Next = b
	b.Next = a // cycle

	// Must terminate and count each node once.
	got := Of(a)
	require.Positive(t, got)
	assert.Less(t, got, int64(10*unsafe.Sizeof(node{})))
}

func TestOf_Map(t *testing.T) {
	m := map[string]int64{"a": 1, "bb": 2}
	got := Of(m)
	// Flat overhead + keys (headers + 3 bytes) + values.
	minExpected := mapOverhead + 2*int64(unsafe.Sizeof("")) + 3 + 2*8
	assert.GreaterOrEqual(t, got, minExpected)
}

func TestOf_InterfaceValues(t *testing.T) {
	s := []any{int64(1), "hello", nil, true}
	assert.Positive(t, Of(s))
}
