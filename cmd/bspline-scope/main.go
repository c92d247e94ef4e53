// Command bspline-scope renders an interpolated B-spline curve as stereo
// audio for display on an oscilloscope in XY mode: x drives the left channel
// and y the right channel. The trace repeats freq times per second.
//
// Usage:
//
//	bspline-scope star.wav                                     # built-in star shape
//	bspline-scope -x 0,3,-1,-4 -y 0,4,4,0 -degree 2 out.wav
//	bspline-scope -points shape.txt -freq 60 -bits 24 out.wav
//	bspline-scope -fast out.wav                                # float32 control points
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	bspline "github.com/tphakala/go-bspline"
	"github.com/tphakala/go-bspline/internal/cliutil"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xs := flag.String("x", "", "Comma separated x-coordinates")
	ys := flag.String("y", "", "Comma separated y-coordinates")
	pointsFile := flag.String("points", "", "File with one \"x,y\" point per line")
	degree := flag.Int("degree", defaultDegree, "Curve degree")
	rule := flag.String("rule", "moving", "Knot averaging rule: moving, reference")
	rateKHz := flag.Float64("rate", defaultRateKHz, "Sample rate in kHz")
	freq := flag.Float64("freq", defaultFrequency, "Trace repetitions per second")
	duration := flag.Float64("duration", defaultDuration, "Length in seconds")
	bits := flag.Int("bits", defaultBitDepth, "Bit depth: 16, 24, 32")
	headroom := flag.Float64("headroom", defaultHeadroom, "Peak amplitude in (0, 1]")
	fast := flag.Bool("fast", false, "Use float32 control points")
	parallel := flag.Bool("parallel", true, "Sample the trace on multiple goroutines")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	outputPath := args[0]

	if !validBitDepth(*bits) {
		return fmt.Errorf("unsupported bit depth %d", *bits)
	}
	if *headroom <= 0 || *headroom > 1 {
		return fmt.Errorf("headroom must be in (0, 1], got %g", *headroom)
	}
	if *freq <= 0 || *duration <= 0 {
		return fmt.Errorf("freq and duration must be positive")
	}

	points, err := loadPoints(*xs, *ys, *pointsFile)
	if err != nil {
		return err
	}

	averaging, err := cliutil.ParseRule(*rule)
	if err != nil {
		return err
	}

	rate := int(*rateKHz * kHzToHz)
	traceSamples := int(float64(rate) / *freq)
	frames := int(*duration * float64(rate))

	if *verbose {
		log.Printf("Points: %d, degree %d, %s knots", points.Len(), *degree, averaging)
		log.Printf("Output: %s (%d Hz, %d-bit)", outputPath, rate, *bits)
		log.Printf("Trace: %d samples (%.2f Hz)", traceSamples, float64(rate)/float64(max(traceSamples, 1)))
	}

	start := time.Now()

	c, err := bspline.InterpolateWithRule(points, *degree, averaging)
	if err != nil {
		return fmt.Errorf("interpolation failed: %w", err)
	}

	x, y, err := sampleTrace(c, traceOptions{
		samples:  traceSamples,
		fast:     *fast,
		parallel: *parallel,
		workers:  runtime.GOMAXPROCS(0),
	})
	if err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}

	if scale := normalizeXY(x, y, *headroom); scale == 0 {
		return fmt.Errorf("curve has no extent")
	}

	trace := quantize(interleaveXY(x, y), *bits)
	if err := writeScopeWAV(outputPath, rate, *bits, repeatFrames(trace, stereoChannels, frames)); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if *verbose {
		w, err := readScopeWAV(outputPath)
		if err != nil {
			return fmt.Errorf("verifying output: %w", err)
		}
		log.Printf("Verified: %d frames at %d Hz, %d-bit", len(w.left), w.rate, w.bitDepth)
	}

	fmt.Printf("Wrote %s\n", filepath.Base(outputPath))
	fmt.Printf("  %d points, degree %d, %d control points\n", points.Len(), c.Degree, c.Control.Len())
	fmt.Printf("  %d frames, %d samples per trace, %.2fs\n", frames, traceSamples, float64(frames)/float64(rate))
	fmt.Printf("  Duration: %.3fs\n", elapsed.Seconds())

	return nil
}

func loadPoints(xs, ys, path string) (bspline.Points2D, error) {
	switch {
	case path != "":
		return cliutil.ReadPointsFile(path)
	case xs != "" || ys != "":
		return cliutil.ParsePoints(xs, ys)
	default:
		return bspline.Points2D{X: demoX, Y: demoY}, nil
	}
}
