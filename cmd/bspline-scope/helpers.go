package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	bspline "github.com/tphakala/go-bspline"
	"github.com/tphakala/go-bspline/internal/simdops"
)

// traceOptions controls how one pass over the curve is sampled.
type traceOptions struct {
	samples  int
	fast     bool // float32 control points
	parallel bool
	workers  int
}

// sampleTrace evaluates one pass over the curve. The parameter 1 is left
// out so repeated traces of a closed curve join without a doubled sample.
func sampleTrace(c *bspline.Curve, opts traceOptions) (x, y []float64, err error) {
	if opts.samples < minCycleSamples {
		return nil, nil, fmt.Errorf("trace needs at least %d samples, got %d", minCycleSamples, opts.samples)
	}

	params := bspline.Linspace(0, 1, opts.samples+1)[:opts.samples]

	switch {
	case opts.fast:
		return sampleFloat32(c, params)
	case opts.parallel:
		// SampleParallel only takes a count, so sample one extra and drop it.
		out, err := c.SampleParallel(opts.samples+1, opts.workers)
		if err != nil {
			return nil, nil, err
		}
		return out.X[:opts.samples], out.Y[:opts.samples], nil
	default:
		out, err := c.Evaluate(params)
		if err != nil {
			return nil, nil, err
		}
		return out.X, out.Y, nil
	}
}

func sampleFloat32(c *bspline.Curve, params []float64) (x, y []float64, err error) {
	cx := make([]float32, len(c.Control.X))
	cy := make([]float32, len(c.Control.Y))
	for i := range cx {
		cx[i] = float32(c.Control.X[i])
		cy[i] = float32(c.Control.Y[i])
	}

	x32, y32, err := bspline.EvaluateCurveFloat32(params, cx, cy, c.Knots)
	if err != nil {
		return nil, nil, err
	}

	x = make([]float64, len(x32))
	y = make([]float64, len(y32))
	for i := range x32 {
		x[i] = float64(x32[i])
		y[i] = float64(y32[i])
	}
	return x, y, nil
}

// normalizeXY centers the trace on the origin and scales both axes by the
// same factor so the larger half-extent reaches headroom. It returns the
// applied scale; a trace with no extent is only centered and returns 0.
func normalizeXY(x, y []float64, headroom float64) float64 {
	if len(x) == 0 {
		return 0
	}

	minX, maxX := x[0], x[0]
	minY, maxY := y[0], y[0]
	for i := range x {
		minX, maxX = min(minX, x[i]), max(maxX, x[i])
		minY, maxY = min(minY, y[i]), max(maxY, y[i])
	}

	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	for i := range x {
		x[i] -= cx
		y[i] -= cy
	}

	half := max(maxX-minX, maxY-minY) / 2
	if half == 0 {
		return 0
	}

	scale := headroom / half
	ops := simdops.Float64Ops()
	ops.Scale(x, x, scale)
	ops.Scale(y, y, scale)
	return scale
}

// interleaveXY returns left/right frames with x on the left channel.
func interleaveXY(x, y []float64) []float64 {
	out := make([]float64, 2*len(x))
	simdops.Float64Ops().Interleave2(out, x, y)
	return out
}

// quantize converts samples in [-1, 1] to integer PCM of the given bit depth,
// clamping out-of-range values.
func quantize(samples []float64, bitDepth int) []int {
	maxVal := getMaxValue(bitDepth)
	out := make([]int, len(samples))
	for i, s := range samples {
		s = max(-1, min(1, s))
		out[i] = int(math.Round(s * maxVal))
	}
	return out
}

// repeatFrames tiles the interleaved trace until frames frames are filled.
func repeatFrames(trace []int, channels, frames int) []int {
	out := make([]int, frames*channels)
	if len(trace) == 0 {
		return out
	}
	for i := 0; i < len(out); i += len(trace) {
		copy(out[i:], trace)
	}
	return out
}

func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

func validBitDepth(bitDepth int) bool {
	return bitDepth == bitsPerSample16 || bitDepth == bitsPerSample24 || bitDepth == bitsPerSample32
}

// writeScopeWAV writes interleaved stereo PCM to path.
func writeScopeWAV(path string, sampleRate, bitDepth int, data []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, stereoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: stereoChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return f.Close()
}

// scopeWAV is a decoded stereo file with samples scaled to [-1, 1].
type scopeWAV struct {
	rate     int
	bitDepth int
	left     []float64
	right    []float64
}

// readScopeWAV decodes a stereo WAV file written by writeScopeWAV.
func readScopeWAV(path string) (*scopeWAV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	if buf.Format.NumChannels != stereoChannels {
		return nil, fmt.Errorf("expected %d channels, got %d", stereoChannels, buf.Format.NumChannels)
	}

	bitDepth := int(dec.BitDepth)
	invMax := 1 / getMaxValue(bitDepth)
	frames := len(buf.Data) / stereoChannels

	w := &scopeWAV{
		rate:     buf.Format.SampleRate,
		bitDepth: bitDepth,
		left:     make([]float64, frames),
		right:    make([]float64, frames),
	}
	for i := range frames {
		w.left[i] = float64(buf.Data[2*i]) * invMax
		w.right[i] = float64(buf.Data[2*i+1]) * invMax
	}
	return w, nil
}
