package view

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/render"
)

func rectAt(x, y, w, h float64) core.Rect {
	return core.NewRect(x, y, w, h)
}

// CellSizer is implemented by renderers drawn on a character grid.
type CellSizer interface {
	CellSize() (float64, float64)
}

// DefaultCell is the logical size of one character when the renderer does
// not report one.
var DefaultCell = [2]float64{4, 8}

// CellSize returns the logical size of one text character on r.
func CellSize(r render.Renderer) (float64, float64) {
	if cs, ok := r.(CellSizer); ok {
		if w, h := cs.CellSize(); w > 0 && h > 0 {
			return w, h
		}
	}
	return DefaultCell[0], DefaultCell[1]
}

// TextWidth returns the logical width of text on r.
func TextWidth(r render.Renderer, text string) float64 {
	cw, _ := CellSize(r)
	return float64(utf8.RuneCountInString(text)) * cw
}

// DrawCentered draws text horizontally centered at logical row y.
func DrawCentered(r render.Renderer, y float64, text string, fg core.RGB) {
	w, _ := r.OutputSize()
	r.DrawText((w-TextWidth(r, text))/2, y, text, fg)
}
