// Command plot-basis renders every B-spline basis function of a knot vector
// to a PNG image.
//
// Usage:
//
//	plot-basis -degree 3 -knots 0,0,0,0,0.5,1,1,1,1 basis.png
//	plot-basis -degree 2 -uniform 6 basis.png      # clamped, 6 functions
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	bspline "github.com/tphakala/go-bspline"
	"github.com/tphakala/go-bspline/internal/cliutil"
	"github.com/tphakala/go-bspline/internal/plot"
)

const (
	defaultDegree  = 3
	defaultSamples = 400
	defaultWidth   = 800
	defaultHeight  = 500
	minArgs        = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	degree := flag.Int("degree", defaultDegree, "Basis degree")
	knotList := flag.String("knots", "", "Comma separated knot vector")
	uniform := flag.Int("uniform", 0, "Use a clamped uniform knot vector with this many functions")
	samples := flag.Int("samples", defaultSamples, "Samples per function")
	width := flag.Int("width", defaultWidth, "Image width in pixels")
	height := flag.Int("height", defaultHeight, "Image height in pixels")
	flag.Parse()

	if flag.NArg() < minArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.png\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	knots, err := knotVector(*knotList, *uniform, *degree)
	if err != nil {
		return err
	}

	canvas, err := renderBasis(*degree, knots, *samples, *width, *height)
	if err != nil {
		return err
	}
	if err := canvas.SavePNG(flag.Arg(0)); err != nil {
		return err
	}

	fmt.Printf("Plotted %d basis functions of degree %d to %s\n", len(knots)-*degree-1, *degree, flag.Arg(0))
	return nil
}

// knotVector returns the explicit knots if given, else a clamped uniform
// vector holding functions basis functions.
func knotVector(list string, functions, degree int) ([]float64, error) {
	if list != "" {
		knots, err := cliutil.ParseFloats(list)
		if err != nil {
			return nil, fmt.Errorf("knots: %w", err)
		}
		for i := 1; i < len(knots); i++ {
			if knots[i] < knots[i-1] {
				return nil, fmt.Errorf("knots must be non-decreasing, knot %d is %g after %g", i, knots[i], knots[i-1])
			}
		}
		return knots, nil
	}

	if functions <= degree {
		return nil, fmt.Errorf("need -knots or -uniform greater than the degree (%d)", degree)
	}

	// Clamped: degree+1 zeros, evenly spaced interior knots, degree+1 ones.
	interior := bspline.Linspace(0, 1, functions-degree+1)
	knots := make([]float64, 0, functions+degree+1)
	for range degree {
		knots = append(knots, 0)
	}
	knots = append(knots, interior...)
	for range degree {
		knots = append(knots, 1)
	}
	return knots, nil
}

func renderBasis(degree int, knots []float64, samples, width, height int) (*plot.Canvas, error) {
	values, params := bspline.BasisSamples(degree, knots, samples)
	if values == nil {
		return nil, fmt.Errorf("knot vector of length %d holds no basis function of degree %d", len(knots), degree)
	}

	series := make([]plot.Series, len(values))
	for i, v := range values {
		series[i] = plot.Series{
			Name: fmt.Sprintf("N%d,%d", i, degree),
			X:    params,
			Y:    v,
		}
	}

	title := fmt.Sprintf("degree %d basis functions", degree)
	return plot.Render(width, height, title, series...)
}
