// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column summaries over a Dense design: means and sample variances.
//
// Determinism:
//   - Fixed i→j traversal over the flat buffer.

package matrix

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
// Complexity: O(r*c) time, O(c) space.
func (m *Dense) ColumnMeans() []float64 {
	means := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			means[j] += m.data[base+j]
		}
	}
	invR := 1.0 / float64(m.r)
	for j := range means {
		means[j] *= invR
	}

	return means
}

// ColumnVariances returns the sample variance (denominator r-1) of every
// column. A single-row matrix has zero variance.
// Complexity: O(r*c) time, O(c) space.
func (m *Dense) ColumnVariances() []float64 {
	means := m.ColumnMeans()
	vars := make([]float64, m.c)
	if m.r < 2 {
		return vars
	}
	var d float64
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			d = m.data[base+j] - means[j]
			vars[j] += d * d
		}
	}
	inv := 1.0 / float64(m.r-1)
	for j := range vars {
		vars[j] *= inv
	}

	return vars
}
