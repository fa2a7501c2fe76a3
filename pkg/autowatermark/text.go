package autowatermark

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

/*
 * Attention: tdewolff/canvas uses mm as the unit of measurement, font sizes stay in pt.
 */

const DPI = 72

// Rect is in mm.
type Rect struct {
	Width  float64
	Height float64
}

var PageA4 = Rect{Width: 210, Height: 297}

const (
	maxFontSize = 400
	pageMargin  = 10
)

// TextRenderer draws a text watermark with a font loaded from file onto a blank page.
// It is used instead of pdfcpu's text watermark when the style names a non-core font.
type TextRenderer struct {
	style      Style
	page       Rect
	fontFamily *canvas.FontFamily
}

func NewTextRenderer(loader *FontLoader, style Style, page Rect) (*TextRenderer, error) {
	fontFamily, err := loader.LoadFont(style.Font, canvas.FontRegular)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	return &TextRenderer{
		style:      style,
		page:       page,
		fontFamily: fontFamily,
	}, nil
}

func ptToMM(pt float64) float64 {
	return (pt * 25.4) / DPI
}

// color returns the style color with opacity applied, premultiplied as canvas expects.
func (tr *TextRenderer) color() color.RGBA {
	c := canvas.Hex(tr.style.Color)
	a := uint8(math.Round(tr.style.Opacity * 255))
	premul := func(v uint8) uint8 { return uint8(uint32(v) * uint32(a) / 255) }
	return color.RGBA{R: premul(c.R), G: premul(c.G), B: premul(c.B), A: a}
}

// angle in degrees, counter-clockwise.
func (tr *TextRenderer) angle() float64 {
	if tr.style.Diagonal {
		return math.Atan2(tr.page.Height, tr.page.Width) * 180 / math.Pi
	}
	return tr.style.Rotation
}

func (tr *TextRenderer) textBox(text string, fontSize float64) *canvas.Text {
	face := tr.fontFamily.Face(fontSize, tr.color(), canvas.FontRegular, canvas.FontNormal)
	return canvas.NewTextBox(face, text, 0, 0, canvas.Left, canvas.Top, 0.0, 0.0)
}

// fitFontSize returns the largest font size whose text width stays within the scaled
// page width (or diagonal). Absolute scaling uses the configured points as is.
func (tr *TextRenderer) fitFontSize(text string) float64 {
	if tr.style.ScaleAbs {
		return float64(tr.style.Points) * tr.style.Scale
	}

	available := tr.page.Width
	if tr.style.Diagonal {
		available = math.Hypot(tr.page.Width, tr.page.Height)
	}
	available *= tr.style.Scale

	fontSize := float64(maxFontSize)
	for fontSize > 1 {
		bounds := tr.textBox(text, fontSize).Bounds()
		if bounds.W() <= available && bounds.H() <= tr.page.Height {
			break
		}
		fontSize--
	}

	return fontSize
}

// center returns the point the text is centered on, for the style position.
func (tr *TextRenderer) center(w, h float64) (float64, float64) {
	x, y := tr.page.Width/2, tr.page.Height/2

	switch tr.style.Position {
	case "tl", "l", "bl":
		x = pageMargin + w/2
	case "tr", "r", "br":
		x = tr.page.Width - pageMargin - w/2
	}

	switch tr.style.Position {
	case "tl", "tc", "tr":
		y = tr.page.Height - pageMargin - h/2
	case "bl", "bc", "br":
		y = pageMargin + h/2
	}

	return x + ptToMM(tr.style.OffsetX), y + ptToMM(tr.style.OffsetY)
}

// RenderTextAsPdf writes a single A4 page that only contains text.
func (tr *TextRenderer) RenderTextAsPdf(text string, output string) error {
	c := canvas.New(tr.page.Width, tr.page.Height)
	ctx := canvas.NewContext(c)

	textBox := tr.textBox(text, tr.fitFontSize(text))
	w, h := textBox.Bounds().W(), textBox.Bounds().H()
	cx, cy := tr.center(w, h)

	ctx.RotateAbout(tr.angle(), cx, cy)
	ctx.DrawText(cx-w/2, cy+h/2, textBox)

	if err := renderers.Write(output, c); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}
