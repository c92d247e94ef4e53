package main

// Default command-line flag values
const (
	defaultDegree = 3
	defaultWidth  = 800
	defaultHeight = 600
)

// Demo point set from the interactive interpolation script
var (
	demoX = []float64{0, 3, -1, -4, -4, -3}
	demoY = []float64{0, 4, 4, 0, -3, -3}
)

// Demo degrees to compare
const (
	demoMinDegree = 1
	demoMaxDegree = 6 // One past the highest degree six points support
)

// demoCheckSamples is the sample count used to compare evaluators in the demo.
const demoCheckSamples = 1000

// samplesPerSpan matches the library's default sample density.
const samplesPerSpan = 10
