package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golangdaddy/screamracer/pkg/background"
	"github.com/golangdaddy/screamracer/pkg/road"
	"github.com/golangdaddy/screamracer/pkg/sim"
	"github.com/golangdaddy/screamracer/pkg/ui"
	"github.com/golangdaddy/screamracer/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
)

// Palette
var (
	PlayerColor = color.RGBA{0x00, 0xff, 0x00, 255}
	CabinColor  = color.RGBA{0x22, 0x22, 0x22, 255}
	WheelColor  = color.RGBA{0x00, 0x00, 0x00, 255}
	LineColor   = color.RGBA{0xff, 0xff, 0xff, 255}
	MeterColor  = color.RGBA{0xff, 0x44, 0x44, 255}
	MeterBorder = color.RGBA{0xff, 0xff, 0xff, 255}
	HUDBack     = color.RGBA{20, 20, 30, 200}
	HUDBorder   = color.RGBA{100, 100, 120, 255}
	HUDText     = color.RGBA{230, 230, 240, 255}
)

// Car details, relative to the car's top-left corner
const (
	wheelOverhang = 3.0
	wheelWidth    = 8.0
	wheelHeight   = 15.0
	cabinInset    = 5.0
	cabinTop      = 10.0
	cabinHeight   = 25.0
	rearWheelTop  = vehicle.Height - 25
)

// Meter and HUD layout
const (
	meterX     = 10.0
	meterY     = 10.0
	meterWidth = 200.0 // Full scale at loudness 100
	meterH     = 20.0
	hudX       = 640.0
	hudY       = 10.0
	hudW       = 150.0
	hudH       = 70.0
)

// Renderer paints a session. It only reads session state.
type Renderer struct {
	verge  *ebiten.Image
	player *ebiten.Image
}

// New creates a renderer with a roadside texture generated from seed
func New(seed int64) *Renderer {
	gen := background.NewGenerator(road.ScreenWidth, road.ScreenHeight, road.Left, road.Left+road.Width)
	return &Renderer{
		verge:  ebiten.NewImageFromImage(gen.GenerateVerge(seed)),
		player: carSprite(PlayerColor),
	}
}

// Draw paints the road, cars, loudness meter and HUD
func (r *Renderer) Draw(screen *ebiten.Image, s *sim.Session) {
	r.drawRoad(screen, s.Lines)

	for _, o := range s.Field.Opponents() {
		drawCar(screen, o.X, o.Y, o.Color)
	}
	r.drawPlayer(screen, &s.Player)

	drawMeter(screen, s.Loudness)
	drawHUD(screen, s.HUD())
}

// drawRoad scrolls the verge with the road lines so both move together
func (r *Renderer) drawRoad(screen *ebiten.Image, lines *road.Lines) {
	offset := lines.Offset()
	for _, y := range []float64{offset - road.ScreenHeight, offset} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(r.verge, op)
	}
	ui.FillRect(screen, road.Left, 0, road.Width, road.ScreenHeight, background.Road)

	for _, l := range lines.All() {
		ui.FillRect(screen, l.X, l.Y, l.W, l.H, LineColor)
	}
}

// drawPlayer draws the player's sprite rotated about the car's centre
func (r *Renderer) drawPlayer(screen *ebiten.Image, p *vehicle.Player) {
	w := float64(r.player.Bounds().Dx())
	h := float64(r.player.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(p.TurnAngle)
	op.GeoM.Translate(p.X+vehicle.Width/2, p.Y+vehicle.Height/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.player, op)
}

// carSprite builds a car image whose left edge is the wheel overhang
func carSprite(body color.Color) *ebiten.Image {
	w := int(vehicle.Width + 2*wheelOverhang)
	h := int(vehicle.Height)
	img := ebiten.NewImage(w, h)

	for _, part := range carParts(wheelOverhang, 0) {
		rect := image.Rect(int(part.x), int(part.y), int(part.x+part.w), int(part.y+part.h))
		c := body
		if part.color != nil {
			c = part.color
		}
		img.SubImage(rect).(*ebiten.Image).Fill(c)
	}
	return img
}

// drawCar draws an unrotated car with its body at (x, y)
func drawCar(screen *ebiten.Image, x, y float64, body color.Color) {
	for _, part := range carParts(x, y) {
		c := body
		if part.color != nil {
			c = part.color
		}
		ui.FillRect(screen, part.x, part.y, part.w, part.h, c)
	}
}

type carPart struct {
	x, y, w, h float64
	color      color.Color // nil means body colour
}

// carParts lays out body, cabin and wheels for a car whose body starts at (x, y)
func carParts(x, y float64) []carPart {
	leftWheel := x - wheelOverhang
	rightWheel := x + vehicle.Width - cabinInset
	return []carPart{
		{x, y, vehicle.Width, vehicle.Height, nil},
		{x + cabinInset, y + cabinTop, vehicle.Width - 2*cabinInset, cabinHeight, CabinColor},
		{leftWheel, y + cabinTop, wheelWidth, wheelHeight, WheelColor},
		{rightWheel, y + cabinTop, wheelWidth, wheelHeight, WheelColor},
		{leftWheel, y + rearWheelTop, wheelWidth, wheelHeight, WheelColor},
		{rightWheel, y + rearWheelTop, wheelWidth, wheelHeight, WheelColor},
	}
}

// drawMeter draws the loudness bar, full at loudness 100
func drawMeter(screen *ebiten.Image, loudness float64) {
	if w := loudness * 2; w > 0 {
		ui.FillRect(screen, meterX, meterY, w, meterH, MeterColor)
	}
	ui.StrokeRect(screen, meterX, meterY, meterWidth, meterH, 1, MeterBorder)
}

// drawHUD draws the speed, score and volume readout
func drawHUD(screen *ebiten.Image, hud sim.HUD) {
	ui.FillRect(screen, hudX, hudY, hudW, hudH, HUDBack)
	ui.StrokeRect(screen, hudX, hudY, hudW, hudH, 2, HUDBorder)

	rows := []string{
		fmt.Sprintf("Speed:  %d", hud.Speed),
		fmt.Sprintf("Score:  %d", hud.Score),
		fmt.Sprintf("Volume: %d", hud.Volume),
	}
	for i, row := range rows {
		ui.DrawTextAt(screen, row, hudX+12, hudY+8+float64(i)*20, 16, HUDText)
	}
}
