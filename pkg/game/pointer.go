package game

import (
	"github.com/golangdaddy/screamracer/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerPoller feeds ebiten mouse and touch state into a Smoother once per tick
type pointerPoller struct {
	smoother      *input.Smoother
	width, height int
	touch         ebiten.TouchID
	touching      bool
	mouseDown     bool
}

// newPointerPoller creates a poller for a surface of the given logical size
func newPointerPoller(smoother *input.Smoother, width, height int) *pointerPoller {
	return &pointerPoller{
		smoother: smoother,
		width:    width,
		height:   height,
	}
}

// Update translates this tick's pointer events into drag calls
func (p *pointerPoller) Update() {
	p.updateTouch()
	if p.touching {
		return
	}
	p.updateMouse()
}

func (p *pointerPoller) updateMouse() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.mouseDown = true
		p.smoother.DragStart(float64(x))
		return
	}
	if !p.mouseDown {
		return
	}

	// Releasing or leaving the surface both end the drag
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || !p.inside(x, y) {
		p.mouseDown = false
		p.smoother.DragEnd()
		return
	}
	p.smoother.DragMove(float64(x))
}

func (p *pointerPoller) updateTouch() {
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touch) {
			p.touching = false
			p.smoother.DragEnd()
			return
		}
		x, _ := ebiten.TouchPosition(p.touch)
		p.smoother.DragMove(float64(x))
		return
	}

	ids := inpututil.AppendJustPressedTouchIDs(nil)
	if len(ids) == 0 {
		return
	}
	p.touch = ids[0]
	p.touching = true
	x, _ := ebiten.TouchPosition(p.touch)
	p.smoother.DragStart(float64(x))
}

func (p *pointerPoller) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// Cancel ends any drag in progress, used when a session ends
func (p *pointerPoller) Cancel() {
	p.touching = false
	p.mouseDown = false
	p.smoother.DragEnd()
}
