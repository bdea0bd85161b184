package worlds

import (
	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

// Minimum terminal size for a readable playfield.
const (
	MinScreenW = 30
	MinScreenH = 10
)

// Glyphs
const (
	EnemyGlyph = 'o' // Used when an enemy is too small for its ellipse
	EyeGlyph   = '•'
)

// Render draws the current frame scaled onto the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.run == nil {
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", platformcore.ColorDefault)
		return
	}

	f := g.run.Frame()
	v := newViewport(g.logical, dst.Width(), dst.Height())

	dst.Fill(' ', f.Background)
	for _, p := range f.Platforms {
		fillShape(dst, v, p)
	}
	if f.Hazard != nil {
		fillShape(dst, v, *f.Hazard)
	}
	fillShape(dst, v, f.Goal)
	for _, e := range f.Enemies {
		drawEllipse(dst, v, e)
	}
	drawPlayer(dst, v, f.Player, f.FacingRight)

	dst.DrawText(1, 0, f.HUD, core.ColorHUD)
	label := levelLabel(f, g.run.Level().ID)
	dst.DrawText(dst.Width()-len([]rune(label))-1, 0, label, core.ColorHUD)

	switch {
	case f.Phase.Terminal():
		drawCenteredBox(dst, f.Message, "")
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// viewport maps level pixels to screen cells.
type viewport struct {
	logical platformcore.Rect
	cols    int
	rows    int
}

func newViewport(logical platformcore.Rect, cols, rows int) viewport {
	return viewport{logical: logical, cols: cols, rows: rows}
}

// cells returns the cells covered by a pixel rect, at least one cell for a
// non-empty rect, clipped to the screen.
func (v viewport) cells(r platformcore.Rect) platformcore.Rect {
	if r.Empty() {
		return platformcore.Rect{}
	}
	x0 := floorDiv((r.X-v.logical.X)*v.cols, v.logical.W)
	y0 := floorDiv((r.Y-v.logical.Y)*v.rows, v.logical.H)
	x1 := ceilDiv((r.Right()-v.logical.X)*v.cols, v.logical.W)
	y1 := ceilDiv((r.Bottom()-v.logical.Y)*v.rows, v.logical.H)

	x0 = platformcore.Clamp(x0, 0, v.cols)
	y0 = platformcore.Clamp(y0, 0, v.rows)
	x1 = platformcore.Clamp(x1, 0, v.cols)
	y1 = platformcore.Clamp(y1, 0, v.rows)
	return platformcore.NewRect(x0, y0, x1-x0, y1-y0)
}

func fillShape(dst *platformcore.Screen, v viewport, s core.Shape) {
	dst.FillRect(v.cells(s.Bounds), platformcore.Cell{Rune: ' ', BG: s.Color})
}

// drawEllipse fills the cells whose centers fall inside the ellipse
// inscribed in the shape's bounds.
func drawEllipse(dst *platformcore.Screen, v viewport, s core.Shape) {
	c := v.cells(s.Bounds)
	if c.Empty() {
		return
	}

	drawn := false
	for y := c.Y; y < c.Bottom(); y++ {
		for x := c.X; x < c.Right(); x++ {
			// Normalized distance from the center, in half-cells
			dx := float64(2*(x-c.X)+1-c.W) / float64(c.W)
			dy := float64(2*(y-c.Y)+1-c.H) / float64(c.H)
			if dx*dx+dy*dy <= 1 {
				dst.SetCell(x, y, platformcore.Cell{Rune: ' ', BG: s.Color})
				drawn = true
			}
		}
	}
	if !drawn {
		cx, cy := c.Center()
		cell := dst.GetCell(cx, cy)
		dst.SetCell(cx, cy, platformcore.Cell{Rune: EnemyGlyph, FG: s.Color, BG: cell.BG})
	}
}

// drawPlayer fills the player rect and marks the facing side with an eye.
func drawPlayer(dst *platformcore.Screen, v viewport, s core.Shape, facingRight bool) {
	c := v.cells(s.Bounds)
	if c.Empty() {
		return
	}
	dst.FillRect(c, platformcore.Cell{Rune: ' ', BG: s.Color})

	eyeX := c.X
	if facingRight {
		eyeX = c.Right() - 1
	}
	dst.SetCell(eyeX, c.Y, platformcore.Cell{Rune: EyeGlyph, FG: platformcore.ColorWhite, BG: s.Color})
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := platformcore.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 3
	if subtitle != "" {
		boxH = 5
	}
	box := platformcore.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, platformcore.Cell{Rune: ' ', FG: platformcore.ColorWhite, BG: platformcore.ColorBlack})
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, platformcore.ColorWhite)
	if subtitle != "" {
		dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle, platformcore.ColorWhite)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
