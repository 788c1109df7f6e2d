// Package render draws sprites, rectangles and text onto a terminal cell canvas.
package render

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/sprite"
)

// Renderer is the drawing surface a view renders into each frame.
// Coordinates are logical units; OutputSize reports the logical extent.
type Renderer interface {
	Clear(c core.RGB)
	Copy(s sprite.Sprite, dst core.Rect)
	FillRect(c core.RGB, dst core.Rect)
	DrawText(x, y float64, text string, fg core.RGB)
	OutputSize() (float64, float64)
	Present()
}

// Pixels below this alpha are treated as transparent.
const alphaThreshold = 0x8000

// Canvas renders into a back buffer of half-block cells and publishes it to
// the front buffer on Present. Logical coordinates are scaled to whatever cell
// grid the terminal currently has.
type Canvas struct {
	width, height float64
	back, front   *core.Screen

	scaled map[scaleKey]*image.RGBA
}

type scaleKey struct {
	sheet  *sprite.Sheet
	region core.Rect
	w, h   int
}

// maxScaled bounds the scaled-sprite cache.
const maxScaled = 512

// NewCanvas creates a canvas with a logical size of width x height, drawn onto
// cols x rows terminal cells.
func NewCanvas(width, height float64, cols, rows int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		back:   core.NewScreen(cols, rows),
		front:  core.NewScreen(cols, rows),
		scaled: make(map[scaleKey]*image.RGBA),
	}
}

// Resize changes the cell grid. The logical size is unchanged.
func (c *Canvas) Resize(cols, rows int) {
	if cols == c.back.Width() && rows == c.back.Height() {
		return
	}
	c.back.Resize(cols, rows)
	c.front.Resize(cols, rows)
	clear(c.scaled)
}

// Front returns the last presented frame.
func (c *Canvas) Front() *core.Screen {
	return c.front
}

// OutputSize returns the logical size of the canvas.
func (c *Canvas) OutputSize() (float64, float64) {
	return c.width, c.height
}

// Clear fills the back buffer with col.
func (c *Canvas) Clear(col core.RGB) {
	c.back.Clear(col)
}

// Present publishes the back buffer.
func (c *Canvas) Present() {
	c.front.CopyFrom(c.back)
}

// pixelRect maps a logical rectangle to pixel bounds.
func (c *Canvas) pixelRect(r core.Rect) image.Rectangle {
	sx := float64(c.back.Width()) / c.width
	sy := float64(c.back.PixelHeight()) / c.height
	return image.Rect(
		int(math.Floor(r.X*sx)),
		int(math.Floor(r.Y*sy)),
		int(math.Floor(r.Right()*sx)),
		int(math.Floor(r.Bottom()*sy)),
	)
}

func (c *Canvas) screenRect() image.Rectangle {
	return image.Rect(0, 0, c.back.Width(), c.back.PixelHeight())
}

// FillRect fills dst with col.
func (c *Canvas) FillRect(col core.RGB, dst core.Rect) {
	pr := c.pixelRect(dst).Intersect(c.screenRect())
	for py := pr.Min.Y; py < pr.Max.Y; py++ {
		for px := pr.Min.X; px < pr.Max.X; px++ {
			c.back.SetPixel(px, py, col)
		}
	}
}

// Copy draws the sprite region scaled into dst. Transparent pixels are skipped.
func (c *Canvas) Copy(s sprite.Sprite, dst core.Rect) {
	if s.Sheet == nil || s.Sheet.Image == nil {
		return
	}
	pr := c.pixelRect(dst)
	if pr.Empty() || !pr.Overlaps(c.screenRect()) {
		return
	}

	img := c.scale(s, pr.Dx(), pr.Dy())
	for y := 0; y < pr.Dy(); y++ {
		py := pr.Min.Y + y
		if py < 0 || py >= c.back.PixelHeight() {
			continue
		}
		for x := 0; x < pr.Dx(); x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a < alphaThreshold {
				continue
			}
			o := img.PixOffset(x, y)
			c.back.SetPixel(pr.Min.X+x, py, core.RGB{R: img.Pix[o], G: img.Pix[o+1], B: img.Pix[o+2]})
		}
	}
}

func (c *Canvas) scale(s sprite.Sprite, w, h int) *image.RGBA {
	key := scaleKey{sheet: s.Sheet, region: s.Region, w: w, h: h}
	if img, ok := c.scaled[key]; ok {
		return img
	}

	src := image.Rect(
		int(s.Region.X), int(s.Region.Y),
		int(s.Region.Right()), int(s.Region.Bottom()),
	)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(img, img.Bounds(), s.Sheet.Image, src, draw.Src, nil)

	if len(c.scaled) >= maxScaled {
		clear(c.scaled)
	}
	c.scaled[key] = img
	return img
}

// DrawText writes text starting at the cell containing (x, y).
func (c *Canvas) DrawText(x, y float64, text string, fg core.RGB) {
	col := int(math.Floor(x * float64(c.back.Width()) / c.width))
	row := int(math.Floor(y * float64(c.back.Height()) / c.height))
	c.back.DrawText(col, row, text, fg)
}

// CellSize returns the logical size of one terminal cell.
func (c *Canvas) CellSize() (float64, float64) {
	if c.back.Width() == 0 || c.back.Height() == 0 {
		return 0, 0
	}
	return c.width / float64(c.back.Width()), c.height / float64(c.back.Height())
}
