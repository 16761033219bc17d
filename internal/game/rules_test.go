package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinRaise(t *testing.T) {
	t.Parallel()

	// Standard: current bet plus the last raise size.
	assert.Equal(t, 50, MinRaise(20, 30, 500))

	// The last raise never shrinks the minimum below a full bet.
	assert.Equal(t, 40, MinRaise(20, 10, 500))

	// Capped by stack: an all-in under the legal minimum is allowed.
	assert.Equal(t, 30, MinRaise(20, 20, 30))
}

func TestRotateButton(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, RotateButton(6, 2))
	assert.Equal(t, 0, RotateButton(6, 5), "button wraps from last seat to first")
}

func TestPostingOrder(t *testing.T) {
	t.Parallel()

	order := PostingOrder(6, 2)
	assert.Equal(t, []int{3, 4, 5, 0, 1, 2}, order)
	assert.Equal(t, 3, order[0], "posting starts left of the button")
	assert.Equal(t, 2, order[len(order)-1], "posting ends on the button")
}

func TestPostingOrderHeadsUp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 0}, PostingOrder(2, 0))
}

func TestLegalBetSizes(t *testing.T) {
	t.Parallel()

	sizes := LegalBetSizes(0, 2, 200, 30)
	assert.NotEmpty(t, sizes)
	for i := 1; i < len(sizes); i++ {
		assert.Greater(t, sizes[i], sizes[i-1], "sizes must be strictly ascending")
	}
	assert.Equal(t, 200, sizes[len(sizes)-1], "all-in is always offered")

	for _, size := range sizes {
		assert.LessOrEqual(t, size, 200)
	}
}
