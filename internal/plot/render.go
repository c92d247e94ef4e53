package plot

import (
	"fmt"
	"image/color"
)

// Style selects how a series is drawn.
type Style int

const (
	// StyleLine connects consecutive points.
	StyleLine Style = iota
	// StyleMarkers draws a marker at every point.
	StyleMarkers
	// StyleLineMarkers does both.
	StyleLineMarkers
)

// Series is one named set of points.
type Series struct {
	Name  string
	X, Y  []float64
	Style Style

	// Color defaults to the palette entry for the series index when nil.
	Color color.Color
}

// Color returns the palette color for series index i.
func Color(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// Render draws all series into a new canvas sized to fit their points, with a
// frame, an optional title and a legend of named series.
func Render(width, height int, title string, series ...Series) (*Canvas, error) {
	var (
		bounds Bounds
		found  bool
	)
	for _, s := range series {
		b, ok := Extent(s.X, s.Y)
		if !ok {
			continue
		}
		if found {
			bounds = bounds.Union(b)
		} else {
			bounds, found = b, true
		}
	}
	if !found {
		return nil, fmt.Errorf("plot: no finite points in %d series", len(series))
	}

	c, err := New(width, height, bounds.Pad(padFraction))
	if err != nil {
		return nil, err
	}

	if err := c.Frame(Foreground); err != nil {
		return nil, fmt.Errorf("plot: drawing frame: %w", err)
	}
	for i, s := range series {
		col := seriesColor(s, i)
		if s.Style == StyleLine || s.Style == StyleLineMarkers {
			if err := c.Polyline(s.X, s.Y, LineWidth, col); err != nil {
				return nil, fmt.Errorf("plot: drawing series %d: %w", i, err)
			}
		}
		if s.Style == StyleMarkers || s.Style == StyleLineMarkers {
			if err := c.Markers(s.X, s.Y, MarkerRadius, col); err != nil {
				return nil, fmt.Errorf("plot: drawing series %d: %w", i, err)
			}
		}
	}

	if title != "" {
		c.Label((float64(width)-c.TextWidth(title))/2, Margin-textInset-2, title, Foreground)
	}
	if err := c.legend(series); err != nil {
		return nil, err
	}

	return c, nil
}

// legend lists named series in the top-right corner of the plot area.
func (c *Canvas) legend(series []Series) error {
	right := c.left + c.width - textInset
	y := c.top + textInset + legendSpacing/2

	for i, s := range series {
		if s.Name == "" {
			continue
		}

		textX := right - c.TextWidth(s.Name)
		swatchX := textX - textInset - legendSwatch
		swatchY := y - FontSize/3

		c.dc.DrawLine(swatchX, swatchY, swatchX+legendSwatch, swatchY)
		if err := c.stroke(swatchWidth, seriesColor(s, i)); err != nil {
			return fmt.Errorf("plot: drawing legend: %w", err)
		}

		c.Label(textX, y, s.Name, Foreground)
		y += legendSpacing
	}
	return nil
}

func seriesColor(s Series, i int) color.Color {
	if s.Color != nil {
		return s.Color
	}
	return Color(i)
}
