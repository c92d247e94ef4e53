package main

// CLI defaults
const (
	defaultRateKHz   = 48.0
	defaultFrequency = 50.0 // Trace repetitions per second
	defaultDuration  = 5.0  // Seconds
	defaultDegree    = 3
	defaultBitDepth  = 16
	defaultHeadroom  = 0.9 // Peak amplitude of the louder axis
	minRequiredArgs  = 1
)

// Sample format constants
const (
	stereoChannels  = 2
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	kHzToHz = 1000

	// wavFormatPCM is the WAVE audio format tag for integer PCM.
	wavFormatPCM = 1
)

// minCycleSamples is the fewest samples one trace may use.
const minCycleSamples = 8

// Demo shape: a five-pointed star, closed by repeating the first point.
var (
	demoX = []float64{0, 0.588, -0.951, 0.951, -0.588, 0}
	demoY = []float64{1, -0.809, 0.309, 0.309, -0.809, 1}
)
