// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqp

import (
	"math"

	"github.com/dicksontsai/eqptr/la"
)

// Orthogonality returns the normalized inner product max over the rows of A
// of |<a_i, x>| / (||a_i|| * ||x||), or zero when either norm is zero. It is
// used to decide whether iterative refinement of a projection is needed.
func Orthogonality(A *la.CCMatrix, x la.Vector) float64 {
	m, _ := A.Dims()
	rowDot := make([]float64, m)
	rowNorm2 := make([]float64, m)
	A.DoNonZero(func(i, j int, v float64) {
		rowDot[i] += v * x[j]
		rowNorm2[i] += v * v
	})

	xNorm := x.Norm()
	if xNorm == 0 {
		return 0
	}

	var worst float64
	for i := 0; i < m; i++ {
		aNorm := math.Sqrt(rowNorm2[i])
		if aNorm == 0 {
			continue
		}
		ratio := math.Abs(rowDot[i]) / (aNorm * xNorm)
		if ratio > worst {
			worst = ratio
		}
	}
	return worst
}
