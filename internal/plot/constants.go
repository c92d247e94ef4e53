package plot

import "image/color"

// Layout
const (
	// Margin is the space in pixels between the image border and the plot area.
	Margin = 40

	// padFraction widens data bounds so points do not sit on the frame.
	padFraction = 0.05

	// legendSpacing is the vertical distance in pixels between legend lines.
	legendSpacing = 15

	// legendSwatch is the length in pixels of a legend color sample.
	legendSwatch = 18

	// textInset is the distance in pixels between the frame and text.
	textInset = 6
)

// Stroke sizes in pixels
const (
	LineWidth    = 1.5
	MarkerRadius = 3.0
	frameWidth   = 1.0
	swatchWidth  = 2.0
)

// FontSize is the label size in pixels.
const FontSize = 12.0

// minPlotSize is the smallest plot area, in pixels per axis, New accepts.
const minPlotSize = 16

var (
	// Background is the canvas fill color.
	Background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// Foreground is used for the frame and text.
	Foreground = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// palette holds series colors, cycled by index.
var palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
}
