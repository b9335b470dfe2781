package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Verge colours
var (
	Tarmac = color.RGBA{0x33, 0x33, 0x33, 255}
	Road   = color.RGBA{0x55, 0x55, 0x55, 255}
)

// Generator creates the roadside texture either side of the road band
type Generator struct {
	Width     int
	Height    int
	RoadLeft  int
	RoadRight int
}

// NewGenerator creates a generator for a surface with the road between
// roadLeft and roadRight
func NewGenerator(width, height, roadLeft, roadRight int) *Generator {
	return &Generator{
		Width:     width,
		Height:    height,
		RoadLeft:  roadLeft,
		RoadRight: roadRight,
	}
}

// GenerateVerge creates a dark gravel verge with scattered shrubs. The road
// band itself is left as plain road colour. The texture tiles vertically.
func (g *Generator) GenerateVerge(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.onRoad(x) {
				img.SetRGBA(x, y, Road)
			} else {
				img.SetRGBA(x, y, Tarmac)
			}
		}
	}

	// Gravel speckle
	for i := 0; i < g.Width*g.Height/12; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		if g.onRoad(x) {
			continue
		}
		shade := uint8(0x2a + rng.Intn(0x18))
		img.SetRGBA(x, y, color.RGBA{shade, shade, shade, 255})
	}

	// Shrubs thin out towards the road edge
	for y := 0; y < g.Height; y += 12 {
		density := 0.35 + 0.15*math.Sin(float64(y)*0.02)
		for x := 0; x < g.Width; x += 8 + rng.Intn(16) {
			if g.onRoad(x) || rng.Float64() > density*g.edgeFalloff(x) {
				continue
			}
			g.drawShrub(img, x+rng.Intn(8)-4, y+rng.Intn(8)-4, rng)
		}
	}

	return img
}

func (g *Generator) onRoad(x int) bool {
	return x >= g.RoadLeft && x < g.RoadRight
}

// edgeFalloff is 0 at the road edge rising to 1 a shrub-width away
func (g *Generator) edgeFalloff(x int) float64 {
	d := g.RoadLeft - x
	if x >= g.RoadRight {
		d = x - g.RoadRight + 1
	}
	return math.Min(1, float64(d)/40)
}

// drawShrub draws a round shrub, wrapping vertically so the texture tiles
func (g *Generator) drawShrub(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 3 + rng.Intn(6)
	c := color.RGBA{
		uint8(25 + rng.Intn(25)),
		uint8(60 + rng.Intn(50)),
		uint8(25 + rng.Intn(25)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			px := x + dx
			py := ((y+dy)%g.Height + g.Height) % g.Height
			if px < 0 || px >= g.Width || g.onRoad(px) {
				continue
			}
			img.SetRGBA(px, py, c)
		}
	}
}
