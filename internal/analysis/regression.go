package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Fit is an ordinary least-squares line y = Slope*x + Intercept together with
// the Pearson correlation of the data it was fitted on.
type Fit struct {
	N         int
	Slope     float64
	Intercept float64
	// R is NaN when y has no variance.
	R  float64
	R2 float64
}

// Predict evaluates the fitted line at x.
func (f Fit) Predict(x float64) float64 { return f.Slope*x + f.Intercept }

// LinearFit fits a degree-1 polynomial to paired samples by least squares:
// slope = cov(x,y)/var(x), intercept = mean(y) - slope*mean(x).
func LinearFit(xs, ys []float64) (Fit, error) {
	if err := checkPaired("linear fit", xs, ys); err != nil {
		return Fit{}, err
	}
	if constant(xs) {
		return Fit{}, &DegenerateInputError{Op: "linear fit", N: len(xs), Reason: "all x values are identical"}
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	r, err := Correlation(xs, ys)
	if err != nil {
		return Fit{}, err
	}
	return Fit{N: len(xs), Slope: slope, Intercept: intercept, R: r, R2: r * r}, nil
}

// Correlation returns the Pearson product-moment correlation coefficient of
// paired samples. The normalisation cancels, so population and sample forms
// agree. When either series has zero variance the coefficient is undefined
// and NaN is returned with a nil error.
func Correlation(xs, ys []float64) (float64, error) {
	if err := checkPaired("correlation", xs, ys); err != nil {
		return math.NaN(), err
	}
	if constant(xs) || constant(ys) {
		return math.NaN(), nil
	}
	r := stat.Correlation(xs, ys, nil)
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r, nil
}

func checkPaired(op string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return &DegenerateInputError{Op: op, N: len(xs), Reason: "x and y have different lengths"}
	}
	if len(xs) < 2 {
		return &DegenerateInputError{Op: op, N: len(xs), Reason: "need at least 2 points"}
	}
	return nil
}

func constant(v []float64) bool {
	return floats.Min(v) == floats.Max(v)
}
