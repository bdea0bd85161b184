package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

// Glyph metrics of basicfont.Face7x13.
const (
	glyphW      = 7
	glyphAscent = 11
)

const eyeSize = 6

type opKind int

const (
	opFill opKind = iota
	opRect
	opEllipse
	opText
)

// drawOp is one primitive of a frame, in logical canvas coordinates.
type drawOp struct {
	kind       opKind
	x, y, w, h float32
	color      color.RGBA
	text       string
}

// drawOps flattens a frame into primitives in paint order.
func drawOps(f core.Frame, width, height int) []drawOp {
	ops := []drawOp{{kind: opFill, w: float32(width), h: float32(height), color: toRGBA(f.Background)}}

	for _, p := range f.Platforms {
		ops = append(ops, rectOp(p))
	}
	if f.Hazard != nil {
		ops = append(ops, rectOp(*f.Hazard))
	}
	ops = append(ops, rectOp(f.Goal))
	for _, e := range f.Enemies {
		op := rectOp(e)
		op.kind = opEllipse
		ops = append(ops, op)
	}
	ops = append(ops, rectOp(f.Player))

	pb := f.Player.Bounds
	eyeX := pb.X + 4
	if f.FacingRight {
		eyeX = pb.X + pb.W - 4 - eyeSize
	}
	ops = append(ops, drawOp{
		kind: opRect, x: float32(eyeX), y: float32(pb.Y + 6),
		w: eyeSize, h: eyeSize, color: toRGBA(platformcore.ColorWhite),
	})

	ops = append(ops, textOp(f.HUD, 10, 10, core.ColorHUD))
	label := f.LevelName
	ops = append(ops, textOp(label, width-10-textWidth(label), 10, core.ColorHUD))

	if f.Phase.Terminal() && f.Message != "" {
		boxW := textWidth(f.Message) + 40
		boxH := 40
		bx := (width - boxW) / 2
		by := (height - boxH) / 2
		ops = append(ops,
			drawOp{kind: opRect, x: float32(bx), y: float32(by), w: float32(boxW), h: float32(boxH), color: toRGBA(platformcore.ColorBlack)},
			textOp(f.Message, bx+20, by+(boxH-glyphAscent)/2, platformcore.ColorWhite),
		)
	}
	return ops
}

func rectOp(s core.Shape) drawOp {
	return drawOp{
		kind:  opRect,
		x:     float32(s.Bounds.X),
		y:     float32(s.Bounds.Y),
		w:     float32(s.Bounds.W),
		h:     float32(s.Bounds.H),
		color: toRGBA(s.Color),
	}
}

// textOp places s with its top-left corner at (x, y).
func textOp(s string, x, y int, c platformcore.Color) drawOp {
	return drawOp{kind: opText, x: float32(x), y: float32(y), text: s, color: toRGBA(c)}
}

func textWidth(s string) int {
	return len([]rune(s)) * glyphW
}

func toRGBA(c platformcore.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// drawFrame paints f onto screen.
func drawFrame(screen *ebiten.Image, f core.Frame, width, height int) {
	for _, op := range drawOps(f, width, height) {
		switch op.kind {
		case opFill:
			screen.Fill(op.color)
		case opRect:
			vector.DrawFilledRect(screen, op.x, op.y, op.w, op.h, op.color, false)
		case opEllipse:
			drawEllipse(screen, op)
		case opText:
			// text.Draw takes the baseline position.
			text.Draw(screen, op.text, basicfont.Face7x13, int(op.x), int(op.y)+glyphAscent, op.color)
		}
	}
}

// drawEllipse fills the ellipse inscribed in the op bounds one row at a time.
func drawEllipse(screen *ebiten.Image, op drawOp) {
	for _, span := range ellipseSpans(op.w, op.h) {
		vector.DrawFilledRect(screen, op.x+span.x, op.y+span.y, span.w, 1, op.color, false)
	}
}

type span struct {
	x, y, w float32
}

// ellipseSpans returns one horizontal span per pixel row of a w by h ellipse,
// relative to its bounding box.
func ellipseSpans(w, h float32) []span {
	if w <= 0 || h <= 0 {
		return nil
	}
	rx, ry := float64(w)/2, float64(h)/2
	rows := int(math.Ceil(float64(h)))
	spans := make([]span, 0, rows)
	for row := range rows {
		dy := (float64(row) + 0.5 - ry) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		spans = append(spans, span{
			x: float32(rx - half),
			y: float32(row),
			w: float32(2 * half),
		})
	}
	return spans
}
