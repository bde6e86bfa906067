// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cohort/projection"
)

// Indices are Sobol sensitivity indices, one entry per parameter in Problem
// order.
type Indices struct {
	Names []string
	S1    []float64 // first order
	ST    []float64 // total order
}

// Get returns the indices of the named parameter.
func (ix Indices) Get(name string) (s1, st float64, ok bool) {
	for i, n := range ix.Names {
		if n == name {
			return ix.S1[i], ix.ST[i], true
		}
	}

	return 0, 0, false
}

// Rounded returns a display copy with every index rounded to places decimals.
func (ix Indices) Rounded(places int32) Indices {
	out := Indices{
		Names: append([]string(nil), ix.Names...),
		S1:    make([]float64, len(ix.S1)),
		ST:    make([]float64, len(ix.ST)),
	}
	for i := range ix.S1 {
		out.S1[i] = projection.RoundPlaces(ix.S1[i], places)
	}
	for i := range ix.ST {
		out.ST[i] = projection.RoundPlaces(ix.ST[i], places)
	}

	return out
}

// Analyze computes first- and total-order Sobol indices from model outputs y
// evaluated on a Sample design of p (same row order).
//
// Implementation:
//   - Stage 1: check len(y) = n·(d+2) and that y is finite.
//   - Stage 2: standardize y (zero mean, unit variance) for stability.
//   - Stage 3: V = Var(f(A) ∪ f(B));
//     S1_i = mean(f(B)·(f(AB_i) − f(A))) / V        (Saltelli 2010)
//     ST_i = mean((f(A) − f(AB_i))²) / (2V)          (Jansen 1999)
//
// Behavior highlights:
//   - Constant output (zero variance) yields all-zero indices, not NaN.
//
// Complexity: O(n·d).
func Analyze(p Problem, y []float64) (Indices, error) {
	d := p.Len()
	if d == 0 {
		return Indices{}, sensitivityErrorf(opAnalyze, ErrEmptyProblem)
	}
	n, err := baseRows(len(y), d)
	if err != nil {
		return Indices{}, sensitivityErrorf(opAnalyze, err)
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Indices{}, sensitivityErrorf(opAnalyze, fmt.Errorf("y[%d] = %g: %w", i, v, ErrSampleShape))
		}
	}

	ix := Indices{Names: p.Names(), S1: make([]float64, d), ST: make([]float64, d)}

	mu, sd := meanStd(y)
	if sd == 0 {
		return ix, nil
	}
	z := make([]float64, len(y))
	for i, v := range y {
		z[i] = (v - mu) / sd
	}

	block := d + 2
	a := make([]float64, n)
	b := make([]float64, n)
	for k := 0; k < n; k++ {
		a[k] = z[k*block]
		b[k] = z[k*block+d+1]
	}
	_, sdAB := meanStd(append(append(make([]float64, 0, 2*n), a...), b...))
	v := sdAB * sdAB
	if v == 0 {
		return ix, nil
	}

	var s1, st, fab float64
	for i := 0; i < d; i++ {
		s1, st = 0, 0
		for k := 0; k < n; k++ {
			fab = z[k*block+1+i]
			s1 += b[k] * (fab - a[k])
			st += (a[k] - fab) * (a[k] - fab)
		}
		ix.S1[i] = s1 / float64(n) / v
		ix.ST[i] = 0.5 * st / float64(n) / v
	}

	return ix, nil
}

// meanStd returns the mean and population standard deviation of x.
func meanStd(x []float64) (mean, std float64) {
	if len(x) == 0 {
		return 0, 0
	}
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	var ss, d float64
	for _, v := range x {
		d = v - mean
		ss += d * d
	}

	return mean, math.Sqrt(ss / float64(len(x)))
}
