package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// blankCell is the value every cell holds after Clear.
var blankCell = Cell{Rune: ' '}

// Screen is a character-cell framebuffer. Games draw into it; the terminal
// adapter turns it into styled text. Cells are stored row-major.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a cleared screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.reshape(width, height)
	return s
}

func (s *Screen) reshape(width, height int) {
	s.width = Max(width, 0)
	s.height = Max(height, 0)
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a Rect at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// index returns the slice offset of (x, y), or -1 when off screen.
func (s *Screen) index(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.width + x
}

// Resize changes the screen size. The top-left overlap of the old content
// is kept.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	old := *s
	s.reshape(width, height)

	keepW := Min(old.width, s.width)
	for y := range Min(old.height, s.height) {
		copy(s.cells[y*s.width:y*s.width+keepW], old.cells[y*old.width:y*old.width+keepW])
	}
}

// Clear resets every cell to a space with default colors.
func (s *Screen) Clear() {
	s.Fill(' ', ColorDefault)
}

// Fill sets every cell to r over bg.
func (s *Screen) Fill(r rune, bg Color) {
	c := Cell{Rune: r, BG: bg}
	for i := range s.cells {
		s.cells[i] = c
	}
}

// Set places a rune at (x, y), keeping the cell's colors.
// Off-screen writes are dropped.
func (s *Screen) Set(x, y int, r rune) {
	if i := s.index(x, y); i >= 0 {
		s.cells[i].Rune = r
	}
}

// SetCell replaces the cell at (x, y). Off-screen writes are dropped.
func (s *Screen) SetCell(x, y int, c Cell) {
	if i := s.index(x, y); i >= 0 {
		s.cells[i] = c
	}
}

// Get returns the rune at (x, y), or a space off screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell off screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i := s.index(x, y); i >= 0 {
		return s.cells[i]
	}
	return blankCell
}

// DrawText writes text left to right from (x, y) in fg, keeping each
// cell's background. Runes falling off screen are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	for _, r := range text {
		if i := s.index(x, y); i >= 0 {
			s.cells[i].Rune = r
			s.cells[i].FG = fg
		}
		x++
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, fg)
}

// FillRect sets every on-screen cell inside r to c.
func (s *Screen) FillRect(r Rect, c Cell) {
	x0, x1 := Clamp(r.X, 0, s.width), Clamp(r.Right(), 0, s.width)
	y0, y1 := Clamp(r.Y, 0, s.height), Clamp(r.Bottom(), 0, s.height)
	for y := y0; y < y1; y++ {
		row := s.cells[y*s.width : (y+1)*s.width]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// Box-drawing runes used by DrawBox.
const (
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	boxHorizontal  = '─'
	boxVertical    = '│'
)

// DrawBox outlines r with box-drawing runes, keeping cell colors.
func (s *Screen) DrawBox(r Rect) {
	left, right := r.X, r.Right()-1
	top, bottom := r.Y, r.Bottom()-1

	for x := left + 1; x < right; x++ {
		s.Set(x, top, boxHorizontal)
		s.Set(x, bottom, boxHorizontal)
	}
	for y := top + 1; y < bottom; y++ {
		s.Set(left, y, boxVertical)
		s.Set(right, y, boxVertical)
	}
	s.Set(left, top, boxTopLeft)
	s.Set(right, top, boxTopRight)
	s.Set(left, bottom, boxBottomLeft)
	s.Set(right, bottom, boxBottomRight)
}

// Row returns row y as plain text, or spaces when y is off screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y*s.width : (y+1)*s.width] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// String returns the whole buffer as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
