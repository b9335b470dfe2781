package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Panel layout
const (
	panelWidth    = 520.0
	panelHeight   = 240.0
	buttonWidth   = 160.0
	buttonHeight  = 44.0
	buttonSpacing = 24.0
)

// Choice is one button on a notice
type Choice struct {
	Label    string
	Keys     []ebiten.Key // Shortcuts besides Enter on the selected button
	OnSelect func()
}

// Notice is a blocking modal panel with a message and a row of choices
type Notice struct {
	Title      string
	Message    string
	TitleColor color.Color
	choices    []Choice
	buttons    []Button
	selected   int
}

// NewNotice creates a notice laid out for a surface of the given size
func NewNotice(width, height int, title, message string, choices ...Choice) *Notice {
	n := &Notice{
		Title:      title,
		Message:    message,
		TitleColor: color.RGBA{255, 200, 50, 255},
		choices:    choices,
	}

	rowWidth := float64(len(choices))*buttonWidth + float64(len(choices)-1)*buttonSpacing
	x := float64(width)/2 - rowWidth/2
	y := float64(height)/2 + panelHeight/2 - buttonHeight - 24
	for _, c := range choices {
		n.buttons = append(n.buttons, Button{Label: c.Label, X: x, Y: y, W: buttonWidth, H: buttonHeight})
		x += buttonWidth + buttonSpacing
	}
	return n
}

// Update handles keyboard, mouse and touch selection
func (n *Notice) Update() error {
	if len(n.choices) == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		n.selected = (n.selected + len(n.choices) - 1) % len(n.choices)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		n.selected = (n.selected + 1) % len(n.choices)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		n.choose(n.selected)
		return nil
	}
	for i, c := range n.choices {
		if anyKeyJustPressed(c.Keys) {
			n.choose(i)
			return nil
		}
	}
	if x, y, ok := PressedAt(); ok {
		for i, b := range n.buttons {
			if b.Contains(x, y) {
				n.choose(i)
				return nil
			}
		}
	}
	return nil
}

func (n *Notice) choose(i int) {
	n.selected = i
	if n.choices[i].OnSelect != nil {
		n.choices[i].OnSelect()
	}
}

// Draw dims the surface and renders the panel on top
func (n *Notice) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	FillRect(screen, 0, 0, float64(width), float64(height), OverlayColor)

	px := float64(width)/2 - panelWidth/2
	py := float64(height)/2 - panelHeight/2
	FillRect(screen, px, py, panelWidth, panelHeight, PanelColor)
	StrokeRect(screen, px, py, panelWidth, panelHeight, 2, PanelBorderColor)

	DrawText(screen, n.Title, float64(width)/2, py+36, 32, n.TitleColor)
	DrawLines(screen, n.Message, float64(width)/2, py+76, 16, color.RGBA{220, 220, 230, 255})

	for i, b := range n.buttons {
		b.Draw(screen, i == n.selected)
	}
}
