// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dicksontsai/eqptr/chk"
	"github.com/dicksontsai/eqptr/la"
)

func TestOrthogonalityZeroWhenInNullSpace(tst *testing.T) {
	chk.PrintTitle("orthogonality probe is zero for a vector in null(A)")

	A := la.NewCCMatrixDense([][]float64{
		{1, 1, 0},
		{0, 1, 1},
	})
	x := la.Vector{1, -1, 1} // A*x = [0, 0]
	o := Orthogonality(A, x)
	assert.InDelta(tst, 0, o, 1e-12)
}

func TestOrthogonalityOneWhenParallelToRow(tst *testing.T) {
	chk.PrintTitle("orthogonality probe is one when x is parallel to a row of A")

	A := la.NewCCMatrixDense([][]float64{
		{1, 0},
		{0, 1},
	})
	x := la.Vector{2, 0}
	o := Orthogonality(A, x)
	assert.InDelta(tst, 1, o, 1e-12)
}

func TestOrthogonalityZeroVectorInput(tst *testing.T) {
	chk.PrintTitle("orthogonality probe handles the zero vector without dividing by zero")

	A := la.NewCCMatrixDense([][]float64{{1, 2}, {3, 4}})
	x := la.Vector{0, 0}
	o := Orthogonality(A, x)
	assert.Equal(tst, float64(0), o)
}
