// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"

	"github.com/katalvlaran/cohort/matrix"
)

// Sample draws a Saltelli cross-sampling design for p.
//
// Layout (d = p.Len(), block size d+2, one block per base row k < n):
//
//	row k·(d+2)        A_k
//	row k·(d+2)+1+i    AB_k^(i): A_k with column i taken from B_k, i < d
//	row k·(d+2)+d+1    B_k
//
// A and B are independent uniform draws scaled into each parameter's
// Bounds. This is the layout Analyze expects.
//
// Errors:
//   - ErrEmptyProblem / ErrInvalidBounds from p.Validate.
//   - ErrSampleShape when n < 1.
//
// Complexity: O(n·d²) time and memory.
func Sample(p Problem, n int, opts ...Option) (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, sensitivityErrorf(opSample, err)
	}
	if n < 1 {
		return nil, sensitivityErrorf(opSample, fmt.Errorf("n = %d: %w", n, ErrSampleShape))
	}
	rng := gatherOptions(opts).source()

	d := p.Len()
	block := d + 2
	out, err := matrix.NewDense(n*block, d)
	if err != nil {
		return nil, sensitivityErrorf(opSample, err)
	}

	a := make([]float64, d)
	b := make([]float64, d)
	ab := make([]float64, d)
	for k := 0; k < n; k++ {
		for j, par := range p.Parameters {
			a[j] = par.Bounds.Scale(rng.Float64())
		}
		for j, par := range p.Parameters {
			b[j] = par.Bounds.Scale(rng.Float64())
		}

		base := k * block
		if err = out.SetRow(base, a); err != nil {
			return nil, sensitivityErrorf(opSample, err)
		}
		for i := 0; i < d; i++ {
			copy(ab, a)
			ab[i] = b[i]
			if err = out.SetRow(base+1+i, ab); err != nil {
				return nil, sensitivityErrorf(opSample, err)
			}
		}
		if err = out.SetRow(base+d+1, b); err != nil {
			return nil, sensitivityErrorf(opSample, err)
		}
	}

	return out, nil
}

// baseRows returns n for a design of rows rows and d parameters.
func baseRows(rows, d int) (int, error) {
	block := d + 2
	if rows == 0 || rows%block != 0 {
		return 0, fmt.Errorf("%d rows for block size %d: %w", rows, block, ErrSampleShape)
	}

	return rows / block, nil
}
