// Package cliutil parses the point lists and option values shared by the
// command-line tools.
package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	bspline "github.com/tphakala/go-bspline"
)

// ParseFloats parses a comma separated list of numbers. Blank entries are
// not allowed; an empty string yields an empty list.
func ParseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// ParsePoints builds a point set from comma separated x and y lists.
func ParsePoints(xs, ys string) (bspline.Points2D, error) {
	x, err := ParseFloats(xs)
	if err != nil {
		return bspline.Points2D{}, fmt.Errorf("x: %w", err)
	}
	y, err := ParseFloats(ys)
	if err != nil {
		return bspline.Points2D{}, fmt.Errorf("y: %w", err)
	}

	p := bspline.Points2D{X: x, Y: y}
	if err := p.Validate(); err != nil {
		return bspline.Points2D{}, err
	}
	return p, nil
}

// ReadPoints reads one point per line as "x,y" or "x y". Blank lines and
// lines starting with '#' are skipped.
func ReadPoints(r io.Reader) (bspline.Points2D, error) {
	var p bspline.Points2D

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return bspline.Points2D{}, fmt.Errorf("line %d: want 2 values, got %d", line, len(fields))
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return bspline.Points2D{}, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return bspline.Points2D{}, fmt.Errorf("line %d: %w", line, err)
		}

		p.X = append(p.X, x)
		p.Y = append(p.Y, y)
	}
	if err := sc.Err(); err != nil {
		return bspline.Points2D{}, err
	}

	return p, nil
}

// ReadPointsFile is ReadPoints on the file at path.
func ReadPointsFile(path string) (bspline.Points2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return bspline.Points2D{}, fmt.Errorf("failed to open points file: %w", err)
	}
	defer func() { _ = f.Close() }()

	p, err := ReadPoints(f)
	if err != nil {
		return bspline.Points2D{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseRule maps a rule name to a knot averaging rule.
func ParseRule(s string) (bspline.AveragingRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "moving":
		return bspline.AveragingMoving, nil
	case "reference", "legacy":
		return bspline.AveragingReference, nil
	default:
		return 0, fmt.Errorf("unknown averaging rule %q (want moving or reference)", s)
	}
}
