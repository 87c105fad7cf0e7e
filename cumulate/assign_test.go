package cumulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeByRightAssign(t *testing.T) {
	x := []int{0, 0, 0, 1, 1}
	out := make([]bool, len(x))
	got := SomeByRightAssign(x, 2, out, 1, 0, isPositive)
	assert.Equal(t, []bool{false, true, true, true, true}, got)
	assert.Equal(t, got, out, "results must land in the provided destination")
}

func TestSomeByRightAssignStride(t *testing.T) {
	x := []int{0, 0, 0, 1, 1}
	out := make([]bool, 2*len(x))
	for i := 1; i < len(out); i += 2 {
		out[i] = true
	}
	SomeByRightAssign(x, 2, out, 2, 0, isPositive)
	want := []bool{false, true, true, true, true, true, true, true, true, true}
	assert.Equal(t, want, out)
	for i := 1; i < len(out); i += 2 {
		require.True(t, out[i], "odd index %d must be untouched", i)
	}
}

func TestSomeByRightAssignOffset(t *testing.T) {
	x := []int{1, 1, 0}
	out := make([]bool, 5)
	SomeByRightAssign(x, 2, out, 1, 2, isPositive)
	assert.Equal(t, []bool{false, false, false, false, true}, out)
}

func TestSomeByRightAssignNegativeStride(t *testing.T) {
	x := []int{1, 1, 0, 0, 0}
	out := make([]bool, len(x))
	SomeByRightAssign(x, 2, out, -1, len(x)-1, isPositive)
	assert.Equal(t, []bool{true, false, false, false, false}, out)
}

func TestSomeByRightAssignNumeric(t *testing.T) {
	x := []int{0, 0, 0, 1, 1}
	out := []int8{9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	SomeByRightAssignNumeric(x, 2, out, 2, 0, isPositive)
	assert.Equal(t, []int8{0, 9, 1, 9, 1, 9, 1, 9, 1, 9}, out)
}

func TestSomeByRightAssignNumericFloat(t *testing.T) {
	x := []int{1, 1, 0, 0, 0}
	out := make([]float64, len(x))
	SomeByRightAssignNumeric(x, 2, out, 1, 0, isPositive)
	assert.Equal(t, []float64{0, 0, 0, 0, 1}, out)
}

func TestSomeByRightAssignInto(t *testing.T) {
	x := []int{1, 1, 0, 0, 0}
	out := make([]bool, len(x))
	got := SomeByRightAssignInto(x, 2, out, isPositive)
	assert.Equal(t, []bool{false, false, false, false, true}, out)
	assert.Equal(t, out, got)
}

func TestSomeByRightAssignArray(t *testing.T) {
	values := []int{0, 0, 0, 1, 1}
	x := NewAccessor(len(values), func(i int) int { return values[i] }, nil)
	backing := make([]bool, 2*len(values))
	out := NewAccessor(len(backing),
		func(i int) bool { return backing[i] },
		func(i int, v bool) { backing[i] = v },
	)
	got := SomeByRightAssignArray(x, 2, out, 2, 1, isPositive)
	require.Same(t, out, got)
	want := []bool{false, false, false, true, false, true, false, true, false, true}
	assert.Equal(t, want, backing)
}

func TestSomeByRightAssignTooShortPanics(t *testing.T) {
	x := []int{1, 1, 1}
	out := make([]bool, 2)
	assert.Panics(t, func() {
		SomeByRightAssign(x, 1, out, 1, 0, isPositive)
	})
}
