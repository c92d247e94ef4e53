// Package plot renders 2D line and scatter plots to PNG images.
//
// Drawing goes through a gg.Context from github.com/gogpu/gg, using its
// software rasterizer. Labels use the Go Regular font embedded by
// golang.org/x/image/font/gofont. The package itself only maps data
// coordinates to pixels and lays out the frame and legend.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrCanvasSize is returned when the image is too small for the plot area.
var ErrCanvasSize = errors.New("plot: canvas too small")

// Bounds is a rectangle in data coordinates.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Extent returns the smallest bounds holding every finite point (x[i], y[i]).
// The second result is false when there is no such point.
func Extent(x, y []float64) (Bounds, bool) {
	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	found := false
	for i := range min(len(x), len(y)) {
		if !finite(x[i]) || !finite(y[i]) {
			continue
		}
		b.MinX = min(b.MinX, x[i])
		b.MaxX = max(b.MaxX, x[i])
		b.MinY = min(b.MinY, y[i])
		b.MaxY = max(b.MaxY, y[i])
		found = true
	}
	return b, found
}

// Union returns the smallest bounds holding both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: min(b.MinX, o.MinX), MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX), MaxY: max(b.MaxY, o.MaxY),
	}
}

// Pad widens b by frac of its size on every side. Empty axes are widened by
// half a unit so the result always has positive width and height.
func (b Bounds) Pad(frac float64) Bounds {
	dx := (b.MaxX - b.MinX) * frac
	dy := (b.MaxY - b.MinY) * frac
	if dx == 0 {
		dx = 0.5
	}
	if dy == 0 {
		dy = 0.5
	}
	return Bounds{MinX: b.MinX - dx, MinY: b.MinY - dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy}
}

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// labelFace returns the shared label face. The font source is parsed once.
func labelFace() (text.Face, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("plot: loading label font: %w", fontErr)
	}
	return fontSource.Face(FontSize), nil
}

// Canvas maps data coordinates onto a gg drawing context.
type Canvas struct {
	dc     *gg.Context
	bounds Bounds

	// plot area in pixels
	left, top, width, height float64
}

// New creates a canvas of the given size in pixels showing bounds, filled
// with the background color.
func New(width, height int, bounds Bounds) (*Canvas, error) {
	if width-2*Margin < minPlotSize || height-2*Margin < minPlotSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrCanvasSize, width, height, minPlotSize+2*Margin, minPlotSize+2*Margin)
	}
	if !(bounds.MaxX > bounds.MinX) || !(bounds.MaxY > bounds.MinY) {
		return nil, fmt.Errorf("plot: empty bounds %+v", bounds)
	}

	face, err := labelFace()
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(Background))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetFont(face)

	return &Canvas{
		dc:     dc,
		bounds: bounds,
		left:   Margin,
		top:    Margin,
		width:  float64(width - 2*Margin),
		height: float64(height - 2*Margin),
	}, nil
}

// Image returns a snapshot of the drawn pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Bounds returns the data bounds shown by the canvas.
func (c *Canvas) Bounds() Bounds {
	return c.bounds
}

// Project converts a data point to pixel coordinates. The y axis points up.
func (c *Canvas) Project(x, y float64) (px, py float64) {
	fx := (x - c.bounds.MinX) / (c.bounds.MaxX - c.bounds.MinX)
	fy := (y - c.bounds.MinY) / (c.bounds.MaxY - c.bounds.MinY)
	return c.left + fx*c.width, c.top + (1-fy)*c.height
}

// Polyline strokes the path through (x[i], y[i]). A non-finite point breaks
// the path in two.
func (c *Canvas) Polyline(x, y []float64, width float64, col color.Color) error {
	open, drawn := false, false
	for i := range min(len(x), len(y)) {
		if !finite(x[i]) || !finite(y[i]) {
			open = false
			continue
		}
		px, py := c.Project(x[i], y[i])
		if open {
			c.dc.LineTo(px, py)
			drawn = true
		} else {
			c.dc.MoveTo(px, py)
			open = true
		}
	}
	if !drawn {
		c.dc.ClearPath()
		return nil
	}
	return c.stroke(width, col)
}

// Markers draws a filled circle of the given radius at each point.
func (c *Canvas) Markers(x, y []float64, radius float64, col color.Color) error {
	drawn := false
	for i := range min(len(x), len(y)) {
		if !finite(x[i]) || !finite(y[i]) {
			continue
		}
		px, py := c.Project(x[i], y[i])
		c.dc.DrawCircle(px, py, radius)
		drawn = true
	}
	if !drawn {
		return nil
	}
	c.dc.SetColor(col)
	return c.dc.Fill()
}

// Frame strokes the border of the plot area.
func (c *Canvas) Frame(col color.Color) error {
	c.dc.DrawRectangle(c.left, c.top, c.width, c.height)
	return c.stroke(frameWidth, col)
}

// Label draws s with its baseline starting at pixel (x, y).
func (c *Canvas) Label(x, y float64, s string, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawString(s, x, y)
}

// TextWidth returns the advance of s in pixels.
func (c *Canvas) TextWidth(s string) float64 {
	w, _ := c.dc.MeasureString(s)
	return w
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file at path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("plot: saving %s: %w", path, err)
	}
	return nil
}

func (c *Canvas) stroke(width float64, col color.Color) error {
	c.dc.SetLineWidth(width)
	c.dc.SetColor(col)
	return c.dc.Stroke()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
