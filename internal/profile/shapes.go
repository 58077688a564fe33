package profile

import (
	"image"
	"image/color"
	"math"
)

// circleMask is an anti-aliased disc usable as a draw mask
type circleMask struct {
	cx, cy, r float64
}

func newCircleMask(center image.Point, radius int) *circleMask {
	return &circleMask{cx: float64(center.X), cy: float64(center.Y), r: float64(radius)}
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m *circleMask) Bounds() image.Rectangle {
	r := int(math.Ceil(m.r))
	return image.Rect(int(m.cx)-r, int(m.cy)-r, int(m.cx)+r, int(m.cy)+r)
}

func (m *circleMask) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - m.cx
	dy := float64(y) + 0.5 - m.cy
	return coverage(m.r - math.Hypot(dx, dy))
}

// roundedRectMask is an anti-aliased pill shape with semicircular ends
type roundedRectMask struct {
	rect   image.Rectangle
	radius float64
}

func (m *roundedRectMask) ColorModel() color.Model { return color.AlphaModel }

func (m *roundedRectMask) Bounds() image.Rectangle { return m.rect }

func (m *roundedRectMask) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.rect) {
		return color.Alpha{}
	}
	px := float64(x) + 0.5
	py := float64(y) + 0.5
	minX := float64(m.rect.Min.X) + m.radius
	maxX := float64(m.rect.Max.X) - m.radius
	minY := float64(m.rect.Min.Y) + m.radius
	maxY := float64(m.rect.Max.Y) - m.radius

	cx := math.Max(minX, math.Min(px, maxX))
	cy := math.Max(minY, math.Min(py, maxY))
	return coverage(m.radius - math.Hypot(px-cx, py-cy))
}

// coverage maps signed distance from an edge to alpha over one pixel of smoothing
func coverage(d float64) color.Alpha {
	switch {
	case d >= 0.5:
		return color.Alpha{A: 0xff}
	case d <= -0.5:
		return color.Alpha{}
	default:
		return color.Alpha{A: uint8((d + 0.5) * 0xff)}
	}
}

// accentColor converts a 0xRRGGBB value to an opaque colour
func accentColor(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}
