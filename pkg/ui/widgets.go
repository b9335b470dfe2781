package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel colours
var (
	ButtonColor      = color.RGBA{40, 40, 60, 255}
	ButtonHighlight  = color.RGBA{60, 100, 140, 255}
	ButtonBorder     = color.RGBA{80, 80, 100, 255}
	TextColor        = color.RGBA{255, 255, 255, 255}
	TextHighlight    = color.RGBA{200, 240, 255, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 160}
	PanelColor       = color.RGBA{20, 20, 30, 235}
	PanelBorderColor = color.RGBA{100, 100, 120, 255}
)

// lineHeight is the bitmap font's natural line height
const lineHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

// Button is a clickable labelled rectangle
type Button struct {
	Label string
	X, Y  float64
	W, H  float64
}

// Contains reports whether the point lies inside the button
func (b Button) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// Draw renders the button, highlighted when selected
func (b Button) Draw(screen *ebiten.Image, selected bool) {
	bg, fg := ButtonColor, TextColor
	if selected {
		bg, fg = ButtonHighlight, TextHighlight
	}
	FillRect(screen, b.X, b.Y, b.W, b.H, bg)
	StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, ButtonBorder)
	DrawText(screen, b.Label, b.X+b.W/2, b.Y+b.H/2, lineHeight, fg)
}

// FillRect fills a rectangle on screen
func FillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// StrokeRect outlines a rectangle on screen
func StrokeRect(screen *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

// DrawText draws text centred on (centerX, centerY) at the given pixel size
func DrawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / lineHeight
	textWidth := text.Advance(str, face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-textWidth/2, centerY-lineHeight*scale/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawTextAt draws left-aligned text with its top-left corner at (x, y)
func DrawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / lineHeight

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawLines draws newline separated text centred on centerX, starting at top
func DrawLines(screen *ebiten.Image, str string, centerX, top float64, size float64, clr color.Color) {
	for i, line := range strings.Split(str, "\n") {
		DrawText(screen, line, centerX, top+float64(i)*size*1.4+size/2, size, clr)
	}
}

// PressedAt returns the position of a click or tap that began this tick
func PressedAt() (x, y int, ok bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	return 0, 0, false
}

// anyKeyJustPressed reports whether one of keys went down this tick
func anyKeyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
