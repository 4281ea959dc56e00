// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "github.com/james-bowman/sparse"

// CCMatrix is a sparse matrix in compressed-column format, backed by
// github.com/james-bowman/sparse's CSC type.
type CCMatrix struct {
	m, n int
	csc  *sparse.CSC
}

// NewCCMatrixDense builds a CCMatrix from a dense row-major slice of slices,
// used mainly in tests and small worked examples
func NewCCMatrixDense(a [][]float64) *CCMatrix {
	m := len(a)
	n := 0
	if m > 0 {
		n = len(a[0])
	}
	var t Triplet
	nnz := m * n
	t.Init(m, n, nnz)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if a[i][j] != 0 {
				t.Put(i, j, a[i][j])
			}
		}
	}
	return t.ToMatrix()
}

// Dims returns (m, n)
func (o *CCMatrix) Dims() (int, int) {
	return o.m, o.n
}

// MatVec computes y = A*x
func (o *CCMatrix) MatVec(x Vector) Vector {
	y := NewVector(o.m)
	o.csc.DoNonZero(func(i, j int, v float64) {
		y[i] += v * x[j]
	})
	return y
}

// MatTVec computes y = Aᵀ*x
func (o *CCMatrix) MatTVec(x Vector) Vector {
	y := NewVector(o.n)
	o.csc.DoNonZero(func(i, j int, v float64) {
		y[j] += v * x[i]
	})
	return y
}

// MatTVecAdd computes y += alpha * Aᵀ*x
func (o *CCMatrix) MatTVecAdd(y Vector, alpha float64, x Vector) {
	o.csc.DoNonZero(func(i, j int, v float64) {
		y[j] += alpha * v * x[i]
	})
}

// ToDense converts this sparse matrix into a dense la.Matrix
func (o *CCMatrix) ToDense() *Matrix {
	d := NewMatrix(o.m, o.n)
	o.csc.DoNonZero(func(i, j int, v float64) {
		d.Set(i, j, v)
	})
	return d
}

// DoNonZero iterates over every stored (possibly zero-valued) entry
func (o *CCMatrix) DoNonZero(f func(i, j int, v float64)) {
	o.csc.DoNonZero(f)
}
