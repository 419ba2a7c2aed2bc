package viz

import colorful "github.com/lucasb-eyer/go-colorful"

// Palette returns n visually distinct hex colors with hues evenly
// spaced in HCL space, which keeps perceived brightness uniform across
// the cycle.
func Palette(n int) []string {
	if n < 1 {
		return nil
	}
	colors := make([]string, n)
	for i := range colors {
		h := float64(i) * 360.0 / float64(n)
		colors[i] = colorful.Hcl(h, 0.55, 0.75).Clamped().Hex()
	}
	return colors
}
