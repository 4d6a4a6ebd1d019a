// Package palette assigns stable display colors to process ids.
package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const goldenAngle = 137.50776405

// Colors maps every id to a hex color. Hues are spread by the golden angle so
// neighbours in ids stay distinguishable; the same ids always get the same colors.
func Colors(ids []int) map[int]string {
	colors := make(map[int]string, len(ids))
	for _, id := range ids {
		if _, ok := colors[id]; ok {
			continue
		}
		hue := math.Mod(float64(len(colors))*goldenAngle, 360)
		colors[id] = colorful.Hsv(hue, 0.65, 0.95).Hex()
	}
	return colors
}
