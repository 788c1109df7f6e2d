package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/sprite"
)

// checker builds a 4x4 sheet: left half red, right half transparent.
func checker() *sprite.Sheet {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	return &sprite.Sheet{Name: "checker", Image: img}
}

func TestCanvasCopyScales(t *testing.T) {
	// 10x10 cells = 10x20 pixels over a 100x100 logical area.
	c := NewCanvas(100, 100, 10, 10)
	c.Clear(core.ColorBlack)

	s := sprite.Sprite{Sheet: checker(), Region: core.NewRect(0, 0, 4, 4)}
	c.Copy(s, core.NewRect(0, 0, 40, 40))
	c.Present()

	front := c.Front()
	// dst maps to 4x8 pixels, left half red.
	if front.Pixel(0, 0) != (core.RGB{R: 255}) {
		t.Errorf("Pixel(0,0) = %+v, expected red", front.Pixel(0, 0))
	}
	if front.Pixel(1, 7) != (core.RGB{R: 255}) {
		t.Errorf("Pixel(1,7) = %+v, expected red", front.Pixel(1, 7))
	}
	if front.Pixel(3, 0) != core.ColorBlack {
		t.Errorf("Pixel(3,0) = %+v, transparent pixels should be skipped", front.Pixel(3, 0))
	}
	if front.Pixel(0, 8) != core.ColorBlack {
		t.Errorf("Pixel(0,8) = %+v, outside dst should be untouched", front.Pixel(0, 8))
	}
}

func TestCanvasPresentSeparatesBuffers(t *testing.T) {
	c := NewCanvas(10, 10, 5, 5)
	c.Clear(core.ColorGreen)
	c.Present()

	c.Clear(core.ColorRed)
	if c.Front().Pixel(0, 0) != core.ColorGreen {
		t.Error("front buffer should keep the presented frame until the next Present")
	}
	c.Present()
	if c.Front().Pixel(0, 0) != core.ColorRed {
		t.Error("Present should publish the back buffer")
	}
}

func TestCanvasOffscreenCopy(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)
	s := sprite.Sprite{Sheet: checker(), Region: core.NewRect(0, 0, 4, 4)}

	// Partially and fully outside: must not panic.
	c.Copy(s, core.NewRect(-20, -20, 40, 40))
	c.Copy(s, core.NewRect(500, 500, 40, 40))
	c.Copy(sprite.Sprite{}, core.NewRect(0, 0, 10, 10))
}

func TestCanvasFillAndText(t *testing.T) {
	c := NewCanvas(100, 50, 10, 5)
	c.Clear(core.ColorBlack)
	c.FillRect(core.ColorYellow, core.NewRect(50, 0, 50, 50))
	c.DrawText(0, 20, "HI", core.ColorWhite)
	c.Present()

	f := c.Front()
	if f.Pixel(9, 9) != core.ColorYellow || f.Pixel(4, 0) != core.ColorBlack {
		t.Error("FillRect covered the wrong pixels")
	}
	if f.Cell(0, 2).Rune != 'H' || f.Cell(1, 2).Rune != 'I' {
		t.Errorf("DrawText landed in the wrong cells: %+v %+v", f.Cell(0, 2), f.Cell(1, 2))
	}
}

func TestCanvasResizeKeepsLogicalSize(t *testing.T) {
	c := NewCanvas(640, 384, 80, 24)
	c.Resize(160, 48)

	w, h := c.OutputSize()
	if w != 640 || h != 384 {
		t.Errorf("OutputSize() = (%v, %v), expected (640, 384)", w, h)
	}
	cw, ch := c.CellSize()
	if cw != 4 || ch != 8 {
		t.Errorf("CellSize() = (%v, %v), expected (4, 8)", cw, ch)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(640, 384)
	var _ Renderer = r

	r.Clear(core.ColorBlack)
	r.FillRect(core.ColorRed, core.NewRect(0, 0, 1, 1))
	r.DrawText(0, 0, "score", core.ColorWhite)
	r.Present()

	if r.Count(OpFill) != 1 || r.Count(OpText) != 1 {
		t.Errorf("unexpected ops: %+v", r.Ops)
	}
	if r.Frames != 1 {
		t.Errorf("Frames = %d, expected 1", r.Frames)
	}

	r.Clear(core.ColorBlack)
	if len(r.Ops) != 1 {
		t.Errorf("Clear should reset recorded ops, got %d", len(r.Ops))
	}
}
