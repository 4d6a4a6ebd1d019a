package palette

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColors(t *testing.T) {
	colors := Colors([]int{4, 1, 9, 1})

	require.Len(t, colors, 3)
	assert.NotEqual(t, colors[4], colors[1])
	assert.NotEqual(t, colors[1], colors[9])
	for _, hex := range colors {
		_, err := colorful.Hex(hex)
		assert.NoError(t, err)
	}
}

func TestColors_Deterministic(t *testing.T) {
	assert.Equal(t, Colors([]int{1, 2, 3}), Colors([]int{1, 2, 3}))
}
