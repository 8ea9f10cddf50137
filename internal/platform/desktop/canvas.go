package desktop

import (
	"bytes"
	"fmt"
	"image/color"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/showcase/internal/core"
)

// glyphSize is the font size used for Glyph, matching the default cell height.
const glyphSize = core.DefaultCellH

// latinFallback replaces runes the Go fonts cannot draw.
const latinFallback = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// LoadFace loads the monospace face used for glyphs.
func LoadFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("desktop: load font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// Canvas implements core.Canvas on a persistent offscreen image. What is
// drawn stays until the widget clears or fades it.
type Canvas struct {
	img     *ebiten.Image
	scratch *ebiten.Image
	face    *text.GoTextFace
	theme   core.Theme
}

// NewCanvas allocates a w x h canvas.
func NewCanvas(w, h int, face *text.GoTextFace, t core.Theme) *Canvas {
	w, h = max(w, 1), max(h, 1)
	return &Canvas{
		img:     ebiten.NewImage(w, h),
		scratch: ebiten.NewImage(w, h),
		face:    face,
		theme:   t,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// SetTheme changes how ColorDefault resolves.
func (c *Canvas) SetTheme(t core.Theme) {
	c.theme = t
}

// Resize reallocates the canvas, keeping the old content at the origin.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	b := c.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return
	}
	img := ebiten.NewImage(w, h)
	img.DrawImage(c.img, nil)
	c.img.Deallocate()
	c.scratch.Deallocate()
	c.img = img
	c.scratch = ebiten.NewImage(w, h)
}

// Deallocate frees the GPU images.
func (c *Canvas) Deallocate() {
	c.img.Deallocate()
	c.scratch.Deallocate()
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (w, h float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear erases the canvas to transparent.
func (c *Canvas) Clear() {
	c.img.Clear()
}

// Fade scales the opacity of everything drawn so far by (1 - amount).
func (c *Canvas) Fade(amount float64) {
	if amount <= 0 {
		return
	}
	c.scratch.Clear()
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(1 - core.Clamp(amount, 0, 1)))
	op.Blend = ebiten.BlendCopy
	c.scratch.DrawImage(c.img, op)
	c.img, c.scratch = c.scratch, c.img
}

// FillCircle draws an antialiased disc.
func (c *Canvas) FillCircle(cx, cy, r float64, col core.Color) {
	vector.FillCircle(c.img, float32(cx), float32(cy), float32(r), c.rgba(col, 1), true)
}

// Line draws a one pixel line with the given opacity.
func (c *Canvas) Line(x0, y0, x1, y1 float64, col core.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), 1, c.rgba(col, alpha), true)
}

// Glyph draws r with its top-left corner at (x, y).
func (c *Canvas) Glyph(x, y float64, r rune, col core.Color) {
	if c.face == nil {
		return
	}
	if r > unicode.MaxLatin1 {
		r = rune(latinFallback[int(r)%len(latinFallback)])
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.rgba(col, 1))
	text.Draw(c.img, string(r), c.face, op)
}

// rgba converts a palette color to a premultiplied color.RGBA.
func (c *Canvas) rgba(col core.Color, alpha float64) color.RGBA {
	rgb := col.RGB(c.theme)
	a := core.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(rgb.R) * a),
		G: uint8(float64(rgb.G) * a),
		B: uint8(float64(rgb.B) * a),
		A: uint8(255 * a),
	}
}

// background returns the theme background as an opaque color.
func background(t core.Theme) color.RGBA {
	bg := t.Background()
	return color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xff}
}
