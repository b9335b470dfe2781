package road

import "math"

// Road line layout
const (
	LineCount   = 20
	LineX       = 395.0
	LineSpacing = 40.0
	LineWidth   = 10.0
	LineHeight  = 20.0
	LineBase    = 5.0 // Scroll speed at standstill
)

// Line is a decorative centre marker
type Line struct {
	X, Y, W, H float64
}

// Lines is the set of centre markers scrolling down the road
type Lines struct {
	items  []Line
	offset float64
}

// NewLines creates the markers evenly spaced from the top of the surface
func NewLines() *Lines {
	l := &Lines{}
	l.Reset()
	return l
}

// Reset puts every marker back on its starting row
func (l *Lines) Reset() {
	l.offset = 0
	l.items = make([]Line, 0, LineCount)
	for i := 0; i < LineCount; i++ {
		l.items = append(l.items, Line{
			X: LineX,
			Y: float64(i) * LineSpacing,
			W: LineWidth,
			H: LineHeight,
		})
	}
}

// Scroll moves every marker down by the base speed plus the player's speed.
// Markers that leave the bottom wrap back above the top.
func (l *Lines) Scroll(speed float64) {
	l.offset = math.Mod(l.offset+LineBase+speed, ScreenHeight)
	for i := range l.items {
		l.items[i].Y += LineBase + speed
		if l.items[i].Y > ScreenHeight {
			l.items[i].Y = -LineHeight
		}
	}
}

// All returns the markers for drawing
func (l *Lines) All() []Line {
	return l.items
}

// Offset is the distance scrolled so far, wrapped to the surface height.
// Roadside scenery scrolls by the same amount.
func (l *Lines) Offset() float64 {
	return l.offset
}
