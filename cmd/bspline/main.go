// Command bspline interpolates 2D points with a B-spline curve and prints the
// parameters, knot vector and control points.
//
// Usage:
//
//	bspline -x 0,15,171,307,907 -y 0,20,85,340,515 -degree 3
//	bspline -points shape.txt -degree 4 -rule reference
//	bspline -x 0,3,-1,-4 -y 0,4,4,0 -png curve.png -samples 200
//	bspline -demo
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"strings"

	bspline "github.com/tphakala/go-bspline"
	"github.com/tphakala/go-bspline/internal/cliutil"
	"github.com/tphakala/go-bspline/internal/plot"
	"github.com/tphakala/simd/cpu"
)

func main() {
	var (
		xs         = flag.String("x", "", "Comma separated x-coordinates")
		ys         = flag.String("y", "", "Comma separated y-coordinates")
		pointsFile = flag.String("points", "", "File with one \"x,y\" point per line")
		degree     = flag.Int("degree", defaultDegree, "Curve degree")
		rule       = flag.String("rule", "moving", "Knot averaging rule: moving, reference")
		samples    = flag.Int("samples", 0, "Number of curve samples to print or plot (0 = 10 per span)")
		printAll   = flag.Bool("print-samples", false, "Print the sampled curve points")
		deBoor     = flag.Bool("deboor", false, "Sample with de Boor's algorithm")
		parallel   = flag.Bool("parallel", false, "Sample on multiple goroutines")
		pngPath    = flag.String("png", "", "Write a plot of the curve to this PNG file")
		width      = flag.Int("width", defaultWidth, "Plot width in pixels")
		height     = flag.Int("height", defaultHeight, "Plot height in pixels")
		demo       = flag.Bool("demo", false, "Run a demonstration")
		verbose    = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	var (
		points bspline.Points2D
		err    error
	)
	if *pointsFile != "" {
		points, err = cliutil.ReadPointsFile(*pointsFile)
	} else {
		points, err = cliutil.ParsePoints(*xs, *ys)
	}
	if err != nil {
		log.Fatalf("Failed to read points: %v", err)
	}
	if points.Len() == 0 {
		log.Fatal("No points given, use -x/-y, -points or -demo")
	}

	averaging, err := cliutil.ParseRule(*rule)
	if err != nil {
		log.Fatal(err)
	}

	ip, err := bspline.New(&bspline.Config{
		Degree:         *degree,
		Averaging:      averaging,
		EnableParallel: *parallel,
	})
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *verbose {
		log.Printf("SIMD: %s", cpu.Info())
		log.Printf("Workers: %d", ip.Config().Workers)
	}

	c, err := ip.Interpolate(points)
	if err != nil {
		log.Fatalf("Interpolation failed: %v", err)
	}

	printCurve(points, c, averaging)

	out, err := sampleCurve(c, *samples, *deBoor, *parallel, ip.Config().Workers)
	if err != nil {
		log.Fatalf("Sampling failed: %v", err)
	}
	fmt.Printf("\nSampled %d points\n", out.Len())
	if *printAll {
		for i := range out.X {
			fmt.Printf("  %12.6f %12.6f\n", out.X[i], out.Y[i])
		}
	}

	if *pngPath != "" {
		title := fmt.Sprintf("degree %d, %s knots", c.Degree, averaging)
		if err := writePlot(*pngPath, *width, *height, title, points, c, out); err != nil {
			log.Fatalf("Failed to write plot: %v", err)
		}
		fmt.Printf("Plot written to %s\n", *pngPath)
	}
}

func printCurve(points bspline.Points2D, c *bspline.Curve, rule bspline.AveragingRule) {
	fmt.Printf("Interpolated %d points:\n", points.Len())
	fmt.Printf("  Degree: %d\n", c.Degree)
	fmt.Printf("  Knot rule: %s\n", rule)
	fmt.Printf("  Parameters: %s\n", formatFloats(c.Parameters))
	fmt.Printf("  Knots: %s\n", formatFloats(c.Knots))
	fmt.Println("  Control points:")
	for i := range c.Control.X {
		fmt.Printf("    %2d: (%.6f, %.6f)\n", i, c.Control.X[i], c.Control.Y[i])
	}
}

func sampleCurve(c *bspline.Curve, count int, deBoor, parallel bool, workers int) (bspline.Points2D, error) {
	switch {
	case deBoor:
		n := count
		if n <= 0 {
			n = max(2, (c.Control.Len()-1)*samplesPerSpan)
		}
		return c.EvaluateDeBoor(bspline.Linspace(0, 1, n))
	case parallel:
		return c.SampleParallel(count, workers)
	default:
		return c.Sample(count)
	}
}

func writePlot(path string, width, height int, title string, points bspline.Points2D, c *bspline.Curve, curve bspline.Points2D) error {
	canvas, err := plot.Render(width, height, title,
		plot.Series{Name: "control polygon", X: c.Control.X, Y: c.Control.Y, Style: plot.StyleLineMarkers},
		plot.Series{Name: "curve", X: curve.X, Y: curve.Y, Style: plot.StyleLine},
		plot.Series{Name: "points", X: points.X, Y: points.Y, Style: plot.StyleMarkers},
	)
	if err != nil {
		return err
	}
	return canvas.SavePNG(path)
}

func formatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%.6g", f)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func runDemo() {
	fmt.Println("=== B-spline Interpolation Demo ===")
	fmt.Printf("SIMD: %s, GOMAXPROCS: %d\n", cpu.Info(), runtime.GOMAXPROCS(0))

	points := bspline.Points2D{X: demoX, Y: demoY}

	// Demo 1: knot vectors per degree and rule
	fmt.Println("\n1. Knot Vectors")
	fmt.Println("---------------")

	rules := []bspline.AveragingRule{bspline.AveragingMoving, bspline.AveragingReference}
	for degree := demoMinDegree; degree <= demoMaxDegree; degree++ {
		for _, rule := range rules {
			c, err := bspline.InterpolateWithRule(points, degree, rule)
			if err != nil {
				fmt.Printf("  p=%d %-9s: Error - %v\n", degree, rule, err)
				continue
			}
			fmt.Printf("  p=%d %-9s: %s\n", degree, rule, formatFloats(c.Knots))
		}
	}

	// Demo 2: interpolation error at the input points
	fmt.Println("\n2. Interpolation Error")
	fmt.Println("----------------------")

	for degree := demoMinDegree; degree < demoMaxDegree; degree++ {
		c, err := bspline.Interpolate(points, degree)
		if err != nil {
			continue
		}
		at, err := c.Evaluate(c.Parameters)
		if err != nil {
			continue
		}
		fmt.Printf("  p=%d: max error %.3e\n", degree, maxDistance(points, at))
	}

	// Demo 3: dense sum against de Boor
	fmt.Println("\n3. Evaluator Agreement")
	fmt.Println("----------------------")

	samples := bspline.Linspace(0, 1, demoCheckSamples)
	for degree := demoMinDegree; degree < demoMaxDegree; degree++ {
		c, err := bspline.Interpolate(points, degree)
		if err != nil {
			continue
		}
		dense, err := c.Evaluate(samples)
		if err != nil {
			continue
		}
		db, err := c.EvaluateDeBoor(samples)
		if err != nil {
			continue
		}
		fmt.Printf("  p=%d: max difference %.3e over %d samples\n", degree, maxDistance(dense, db), len(samples))
	}

	fmt.Println("\n=== Demo Complete ===")
}

func maxDistance(a, b bspline.Points2D) float64 {
	var d float64
	for i := range a.X {
		d = max(d, math.Hypot(a.X[i]-b.X[i], a.Y[i]-b.Y[i]))
	}
	return d
}
