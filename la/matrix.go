// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "gonum.org/v1/gonum/mat"

// Matrix implements a dense matrix, backed by gonum's mat.Dense so that the
// eqp package's factorization routines (QR, Cholesky, LU) can use it directly
// without a conversion step.
type Matrix struct {
	M, N int
	raw  *mat.Dense
}

// NewMatrix allocates a new m x n dense matrix filled with zeros
func NewMatrix(m, n int) *Matrix {
	return &Matrix{M: m, N: n, raw: mat.NewDense(m, n, nil)}
}

// NewMatrixFromGonum wraps an existing *mat.Dense without copying
func NewMatrixFromGonum(d *mat.Dense) *Matrix {
	m, n := d.Dims()
	return &Matrix{M: m, N: n, raw: d}
}

// Get returns the (i,j) entry
func (o *Matrix) Get(i, j int) float64 {
	return o.raw.At(i, j)
}

// Set assigns the (i,j) entry
func (o *Matrix) Set(i, j int, x float64) {
	o.raw.Set(i, j, x)
}

// Raw returns the underlying gonum dense matrix (no copy)
func (o *Matrix) Raw() *mat.Dense {
	return o.raw
}

// MaxDiff returns the largest absolute entry-wise difference to another matrix
func (o *Matrix) MaxDiff(other *Matrix) float64 {
	var maxdiff float64
	for i := 0; i < o.M; i++ {
		for j := 0; j < o.N; j++ {
			d := o.Get(i, j) - other.Get(i, j)
			if d < 0 {
				d = -d
			}
			if d > maxdiff {
				maxdiff = d
			}
		}
	}
	return maxdiff
}
