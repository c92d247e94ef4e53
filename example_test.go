package bspline_test

import (
	"errors"
	"fmt"
	"log"

	bspline "github.com/tphakala/go-bspline"
)

func ExampleInterpolate() {
	points := bspline.Points2D{
		X: []float64{0, 15, 171, 307, 907},
		Y: []float64{0, 20, 85, 340, 515},
	}

	c, err := bspline.Interpolate(points, 3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("control points:", c.Control.Len())
	fmt.Println("knots:", len(c.Knots))

	// The curve passes through every input point.
	at, err := c.Evaluate(c.Parameters)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("last point: (%.3f, %.3f)\n", at.X[4], at.Y[4])
	// Output:
	// control points: 5
	// knots: 9
	// last point: (907.000, 515.000)
}

func ExampleInterpolate_linear() {
	points := bspline.Points2D{
		X: []float64{0, 1, 3},
		Y: []float64{0, 0, 0},
	}

	c, err := bspline.Interpolate(points, 1)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(c.Control.X)
	fmt.Printf("%.4f\n", c.Knots)
	// Output:
	// [0 1 3]
	// [0.0000 0.0000 0.4142 1.0000 1.0000]
}

func ExampleInterpolate_errors() {
	points := bspline.Points2D{
		X: []float64{0, 1, 2},
		Y: []float64{0, 1, 0},
	}

	_, err := bspline.Interpolate(points, 3)
	fmt.Println(errors.Is(err, bspline.ErrInvalidInput))
	// Output:
	// true
}

func ExampleNew() {
	ip, err := bspline.New(&bspline.Config{
		Degree:         2,
		Averaging:      bspline.AveragingMoving,
		EnableParallel: true,
		Workers:        2,
	})
	if err != nil {
		log.Fatal(err)
	}

	points := bspline.Points2D{
		X: []float64{1, 2, 3, 4},
		Y: []float64{1, 3, 3, 1},
	}

	_, xy, err := ip.Sample(points, 5)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("start (%.1f, %.1f) end (%.1f, %.1f)\n", xy.X[0], xy.Y[0], xy.X[4], xy.Y[4])
	// Output:
	// start (1.0, 1.0) end (4.0, 1.0)
}

func ExampleLinspace() {
	fmt.Println(bspline.Linspace(0, 1, 5))
	// Output:
	// [0 0.25 0.5 0.75 1]
}
