package pkg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i
	}

	assert.Equal(t, 3, PageCount(items, 5))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Paginate(items, 1, 5))
	assert.Equal(t, []int{10, 11}, Paginate(items, 3, 5))
	assert.Empty(t, Paginate(items, 4, 5))
}

func TestPaginate_Empty(t *testing.T) {
	// Page count 0 means "do not render pagination controls", not an error.
	assert.Equal(t, 0, PageCount([]int{}, 5))
	assert.Empty(t, Paginate([]int{}, 1, 5))
	assert.Empty(t, Paginate([]int(nil), 7, 5))
}

func TestPaginate_InvalidArgs(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Empty(t, Paginate(items, 0, 5))
	assert.Empty(t, Paginate(items, -1, 5))
	assert.Empty(t, Paginate(items, 1, 0))
	assert.Equal(t, 0, PageCount(items, 0))
}

// Page numbers large enough to overflow the start/end arithmetic must
// still yield an empty page, never a panic.
func TestPaginate_HugeBounds(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Empty(t, Paginate(items, 922337203685477582, 10))
	assert.Empty(t, Paginate(items, math.MaxInt, math.MaxInt))
	assert.Empty(t, Paginate(items, 2, math.MaxInt))
	assert.Equal(t, items, Paginate(items, 1, math.MaxInt))
	assert.Equal(t, 1, PageCount(items, math.MaxInt))
}

func TestPaginate_ExactFit(t *testing.T) {
	items := []int{1, 2, 3, 4}
	assert.Equal(t, 2, PageCount(items, 2))
	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	assert.Empty(t, Paginate(items, 3, 2))
}
