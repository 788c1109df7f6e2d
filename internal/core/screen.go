package core

// Cell is one terminal character cell. It shows two vertically stacked pixels
// using the upper half block, unless Rune is set, in which case the rune is drawn
// in Fg over the Top color.
type Cell struct {
	Top    RGB
	Bottom RGB
	Rune   rune
	Fg     RGB
}

// Screen is a 2D cell buffer for rendering game graphics.
// Each cell holds two pixels, so the pixel grid is width x height*2.
// It decouples rendering from the terminal: the canvas draws pixels and text here
// and the platform turns cells into styled output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// PixelHeight returns the height of the pixel grid.
func (s *Screen) PixelHeight() int {
	return s.height * 2
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	oldCells := s.cells
	s.width = width
	s.height = height
	s.allocate()

	for y := 0; y < len(oldCells) && y < height; y++ {
		copy(s.cells[y], oldCells[y])
	}
}

// Clear fills every pixel with c and removes all text.
func (s *Screen) Clear(c RGB) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Top: c, Bottom: c}
		}
	}
}

// SetPixel colors the pixel at (px, py) in pixel coordinates.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetPixel(px, py int, c RGB) {
	if px < 0 || px >= s.width || py < 0 || py >= s.height*2 {
		return
	}
	cell := &s.cells[py/2][px]
	if py%2 == 0 {
		cell.Top = c
	} else {
		cell.Bottom = c
	}
}

// Pixel returns the color of the pixel at (px, py).
// Returns black for out-of-bounds coordinates.
func (s *Screen) Pixel(px, py int) RGB {
	if px < 0 || px >= s.width || py < 0 || py >= s.height*2 {
		return ColorBlack
	}
	cell := s.cells[py/2][px]
	if py%2 == 0 {
		return cell.Top
	}
	return cell.Bottom
}

// SetText places a rune at cell (x, y) drawn in fg.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetText(x, y int, r rune, fg RGB) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	cell := &s.cells[y][x]
	cell.Rune = r
	cell.Fg = fg
}

// DrawText writes a string horizontally starting at cell (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg RGB) {
	i := 0
	for _, r := range text {
		s.SetText(x+i, y, r, fg)
		i++
	}
}

// Cell returns the cell at (x, y). Returns a zero cell when out of bounds.
func (s *Screen) Cell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{}
	}
	return s.cells[y][x]
}

// CopyFrom replaces the contents of s with a copy of other, resizing as needed.
func (s *Screen) CopyFrom(other *Screen) {
	if s.width != other.width || s.height != other.height {
		s.width = other.width
		s.height = other.height
		s.allocate()
	}
	for y := range other.cells {
		copy(s.cells[y], other.cells[y])
	}
}
