// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import "github.com/james-bowman/sparse"

// Triplet is a simple way to assemble a sparse matrix, accumulating repeated
// (i,j) entries, mirroring the teacher's la.Triplet / Init / Put / ToMatrix API.
type Triplet struct {
	m, n   int
	nnzMax int
	pos    map[[2]int]int
	rows   []int
	cols   []int
	vals   []float64
}

// Init (re)initialises the triplet for an m x n matrix with an expected
// maximum number of non-zero entries nnzMax (used only as a capacity hint)
func (o *Triplet) Init(m, n, nnzMax int) {
	o.m, o.n, o.nnzMax = m, n, nnzMax
	o.Start()
}

// Start clears accumulated entries, keeping the configured dimensions
func (o *Triplet) Start() {
	o.pos = make(map[[2]int]int, o.nnzMax)
	o.rows = o.rows[:0]
	o.cols = o.cols[:0]
	o.vals = o.vals[:0]
}

// Put adds x to the (i,j) entry; repeated calls at the same (i,j) accumulate,
// matching the convention demonstrated by the teacher's examples (e.g.
// "A.Put(0, 0, +1.0) // << repeated")
func (o *Triplet) Put(i, j int, x float64) {
	key := [2]int{i, j}
	if k, ok := o.pos[key]; ok {
		o.vals[k] += x
		return
	}
	o.pos[key] = len(o.vals)
	o.rows = append(o.rows, i)
	o.cols = append(o.cols, j)
	o.vals = append(o.vals, x)
}

// Dims returns the configured matrix dimensions
func (o *Triplet) Dims() (int, int) {
	return o.m, o.n
}

// ToMatrix converts the accumulated entries into a compressed-column matrix
func (o *Triplet) ToMatrix() *CCMatrix {
	coo := sparse.NewCOO(o.m, o.n, append([]int{}, o.rows...), append([]int{}, o.cols...), append([]float64{}, o.vals...))
	return &CCMatrix{m: o.m, n: o.n, csc: coo.ToCSC()}
}

// PutMatrixAndTranspose assembles the block [[M, Mᵀ]] convention used when
// building a saddle-point / augmented system from A, offset by (rowOff, colOff)
// for M and (colOff, rowOff) for Mᵀ
func (o *Triplet) PutMatrixAndTranspose(M *CCMatrix, rowOff, colOff int) {
	M.csc.DoNonZero(func(i, j int, v float64) {
		o.Put(rowOff+i, colOff+j, v)
		o.Put(colOff+j, rowOff+i, v)
	})
}
