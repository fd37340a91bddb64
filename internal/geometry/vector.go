package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// XAxis is the fixed global reference direction for direction cosines.
var XAxis = []float64{1, 0}

// LengthMismatchError is returned when two vectors of different dimension
// are combined.
type LengthMismatchError struct {
	Len1, Len2 int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("vectors must be the same length: %d != %d", e.Len1, e.Len2)
}

// ZeroVectorError is returned when an angle is requested against a vector
// with no length.
type ZeroVectorError struct{}

func (e *ZeroVectorError) Error() string {
	return "angle undefined for a zero-length vector"
}

// TwoNorm returns the Euclidean norm of v.
func TwoNorm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm(v, 2)
}

// Dot returns the dot product of a and b.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &LengthMismatchError{len(a), len(b)}
	}
	return floats.Dot(a, b), nil
}

// Cross2D returns the z component of a × b for planar vectors.
func Cross2D(a, b []float64) (float64, error) {
	if len(a) != 2 || len(b) != 2 {
		return 0, &LengthMismatchError{len(a), len(b)}
	}
	return a[0]*b[1] - a[1]*b[0], nil
}

// Cosine returns the cosine of the angle from a to b.
func Cosine(a, b []float64) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, err
	}
	n := TwoNorm(a) * TwoNorm(b)
	if n == 0 {
		return 0, &ZeroVectorError{}
	}
	return dot / n, nil
}

// Sine returns the signed sine of the angle from a to b (counter-clockwise
// positive).
func Sine(a, b []float64) (float64, error) {
	cross, err := Cross2D(a, b)
	if err != nil {
		return 0, err
	}
	n := TwoNorm(a) * TwoNorm(b)
	if n == 0 {
		return 0, &ZeroVectorError{}
	}
	return cross / n, nil
}

// Direction returns the cosine and sine of v measured from the global
// x-axis.
func Direction(v []float64) (cos, sin float64, err error) {
	if cos, err = Cosine(XAxis, v); err != nil {
		return 0, 0, err
	}
	if sin, err = Sine(XAxis, v); err != nil {
		return 0, 0, err
	}
	return cos, sin, nil
}

// Unit returns v scaled to unit length.
func Unit(v []float64) ([]float64, error) {
	n := TwoNorm(v)
	if n == 0 || math.IsNaN(n) {
		return nil, &ZeroVectorError{}
	}
	u := make([]float64, len(v))
	floats.ScaleTo(u, 1/n, v)
	return u, nil
}
