// Package viewport provides the view transform and visual encoding shared
// by every renderer: pan/zoom between layout space and screen space, hover
// hit-testing, and the deterministic group → color mapping.
//
// The viewport is a pure value; it never mutates layout positions. All
// renderers (terminal, SVG, PNG) derive screen coordinates through it so
// that pan and zoom behave identically everywhere.
package viewport

import (
	"math"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/layout"
)

// Zoom limits. Beyond these the picture is either unreadable or useless.
const (
	MinScale = 0.2
	MaxScale = 5.0
)

// Viewport maps layout-space coordinates onto a screen surface.
// The zero value is an identity transform.
type Viewport struct {
	OffsetX float64 // Layout-space coordinate at the left screen edge
	OffsetY float64 // Layout-space coordinate at the top screen edge
	Scale   float64 // Screen units per layout unit
}

// New returns an identity viewport.
func New() Viewport {
	return Viewport{Scale: 1}
}

// Fit returns a viewport that frames the layout's bounding box inside a
// w×h surface with the given padding, centered. A degenerate bounding
// box (single node) gets scale 1.
func Fit(eng *layout.Engine, w, h, pad float64) Viewport {
	minX, minY, maxX, maxY := eng.Bounds()
	spanX, spanY := maxX-minX, maxY-minY

	v := Viewport{Scale: 1}
	if spanX > 0 && spanY > 0 {
		v.Scale = clampScale(math.Min((w-2*pad)/spanX, (h-2*pad)/spanY))
	}
	// Center the box on the surface.
	v.OffsetX = minX - (w/v.Scale-spanX)/2
	v.OffsetY = minY - (h/v.Scale-spanY)/2
	return v
}

// ToScreen converts a layout-space point to screen coordinates.
func (v Viewport) ToScreen(p layout.Point) (x, y float64) {
	return (p.X - v.OffsetX) * v.Scale, (p.Y - v.OffsetY) * v.Scale
}

// ToLayout converts screen coordinates back to layout space.
func (v Viewport) ToLayout(x, y float64) layout.Point {
	return layout.Point{X: x/v.Scale + v.OffsetX, Y: y/v.Scale + v.OffsetY}
}

// Pan shifts the visible region by a screen-space delta and returns the
// adjusted viewport.
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx / v.Scale
	v.OffsetY += dy / v.Scale
	return v
}

// ZoomAt scales the view by factor around a screen-space anchor point, so
// the layout point under the anchor stays put. The resulting scale is
// clamped to [MinScale, MaxScale].
func (v Viewport) ZoomAt(factor, anchorX, anchorY float64) Viewport {
	anchor := v.ToLayout(anchorX, anchorY)
	v.Scale = clampScale(v.Scale * factor)
	v.OffsetX = anchor.X - anchorX/v.Scale
	v.OffsetY = anchor.Y - anchorY/v.Scale
	return v
}

// LabelSize scales a base font size inversely with zoom so labels stay
// legible zoomed in and don't swamp the view zoomed out. The result is
// clamped to [60%, 250%] of base.
func (v Viewport) LabelSize(base float64) float64 {
	s := base / v.Scale
	return math.Max(base*0.6, math.Min(s, base*2.5))
}

// HitTest returns the id of the node nearest to the screen point within
// radius screen units, or "" if none is close enough. Used for hover.
func (v Viewport) HitTest(pos map[string]layout.Point, x, y, radius float64) string {
	best := ""
	bestDist := radius
	for id, p := range pos {
		sx, sy := v.ToScreen(p)
		if d := math.Hypot(sx-x, sy-y); d <= bestDist {
			best, bestDist = id, d
		}
	}
	return best
}

func clampScale(s float64) float64 {
	return math.Max(MinScale, math.Min(s, MaxScale))
}
