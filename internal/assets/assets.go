// Package assets loads sprite sheets and sounds.
// Files are embedded in the binary; an optional directory on disk overrides
// individual files by relative path.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/bmp" // register BMP decoder

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/sprite"
)

//go:embed data
var embedded embed.FS

// ErrBadGrid is returned when a frame grid does not fit its sheet.
var ErrBadGrid = errors.New("assets: frame grid does not fit sheet")

// Loader resolves asset paths and caches decoded sheets.
type Loader struct {
	dir string

	mu     sync.Mutex
	sheets map[string]*sprite.Sheet
}

// NewLoader creates a loader. If dir is non-empty, files found under it take
// precedence over the embedded copies.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:    dir,
		sheets: make(map[string]*sprite.Sheet),
	}
}

// Open opens an asset by its relative path (e.g. "player.png").
func (l *Loader) Open(path string) (io.ReadCloser, error) {
	if l.dir != "" {
		f, err := os.Open(filepath.Join(l.dir, filepath.FromSlash(path)))
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: open %s: %w", path, err)
		}
	}

	f, err := embedded.Open("data/" + path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	return f, nil
}

// Sheet decodes the image at path. Sheets are decoded once and shared.
func (l *Loader) Sheet(path string) (*sprite.Sheet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.sheets[path]; ok {
		return s, nil
	}

	f, err := l.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}

	s := &sprite.Sheet{Name: path, Image: img}
	l.sheets[path] = s
	return s, nil
}

// Frames loads the sheet named by d and cuts it into a row-major grid of frames.
func (l *Loader) Frames(d sprite.Descr) (*sprite.Sheet, []core.Rect, error) {
	sheet, err := l.Sheet(d.Path)
	if err != nil {
		return nil, nil, err
	}

	frames, err := Grid(sheet.Image.Bounds(), d)
	if err != nil {
		return nil, nil, err
	}
	return sheet, frames, nil
}

// Grid computes frame rectangles for d inside bounds.
func Grid(bounds image.Rectangle, d sprite.Descr) ([]core.Rect, error) {
	if d.FrameW <= 0 || d.FrameH <= 0 || d.FramesWide <= 0 || d.FramesHigh <= 0 {
		return nil, fmt.Errorf("%w: %s: non-positive grid dimensions", ErrBadGrid, d.Path)
	}
	if d.FrameW*d.FramesWide > bounds.Dx() || d.FrameH*d.FramesHigh > bounds.Dy() {
		return nil, fmt.Errorf("%w: %s: %dx%d frames of %dx%d exceed %dx%d image",
			ErrBadGrid, d.Path, d.FramesWide, d.FramesHigh, d.FrameW, d.FrameH, bounds.Dx(), bounds.Dy())
	}

	total := d.Total
	if total == 0 {
		total = d.FramesWide * d.FramesHigh
	}
	if total < 0 || total > d.FramesWide*d.FramesHigh {
		return nil, fmt.Errorf("%w: %s: %d frames requested from a %dx%d grid",
			ErrBadGrid, d.Path, total, d.FramesWide, d.FramesHigh)
	}

	frames := make([]core.Rect, 0, total)
	for i := 0; i < total; i++ {
		col := i % d.FramesWide
		row := i / d.FramesWide
		frames = append(frames, core.NewRect(
			float64(bounds.Min.X+col*d.FrameW),
			float64(bounds.Min.Y+row*d.FrameH),
			float64(d.FrameW),
			float64(d.FrameH),
		))
	}
	return frames, nil
}

// Animated loads d as an animation.
func (l *Loader) Animated(d sprite.Descr) (sprite.Animated, error) {
	sheet, frames, err := l.Frames(d)
	if err != nil {
		return sprite.Animated{}, err
	}
	return sprite.NewAnimated(sheet, frames, d.FPS, d.Rest), nil
}

// Sprites loads d as a list of still sprites.
func (l *Loader) Sprites(d sprite.Descr) ([]sprite.Sprite, error) {
	sheet, frames, err := l.Frames(d)
	if err != nil {
		return nil, err
	}
	sprites := make([]sprite.Sprite, len(frames))
	for i, f := range frames {
		sprites[i] = sprite.Sprite{Sheet: sheet, Region: f}
	}
	return sprites, nil
}

// Still loads the whole image at path as a single sprite.
func (l *Loader) Still(path string) (sprite.Sprite, error) {
	sheet, err := l.Sheet(path)
	if err != nil {
		return sprite.Sprite{}, err
	}
	b := sheet.Image.Bounds()
	return sprite.Sprite{
		Sheet:  sheet,
		Region: core.NewRect(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy())),
	}, nil
}
