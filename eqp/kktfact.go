// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dicksontsai/eqptr/la"
)

// EqpKktFact solves the equality-constrained QP's stationarity conditions
// directly by assembling K = [[H, Aᵀ], [A, 0]] and solving
// K [x; lambda] = [-c; b] in a single dense factorization. It serves as an
// oracle against which ProjectedCG is cross-checked, and as the solver of
// choice for problems small enough that a direct factorization is cheaper
// than an iterative method. The sign convention on lambda follows
// grad(q)(x) + Aᵀ*lambda = 0 at the stationary point.
func EqpKktFact(H *la.CCMatrix, c la.Vector, A *la.CCMatrix, b la.Vector) (x, lambda la.Vector, err error) {
	hm, hn := H.Dims()
	am, an := A.Dims()
	if hm != hn {
		return nil, nil, errInvalidInput("H must be square, got %d x %d", hm, hn)
	}
	if an != hn {
		return nil, nil, errInvalidInput("A must have %d columns to match H, got %d", hn, an)
	}
	if len(c) != hn {
		return nil, nil, errInvalidInput("c must have length %d, got %d", hn, len(c))
	}
	if len(b) != am {
		return nil, nil, errInvalidInput("b must have length %d, got %d", am, len(b))
	}

	n, m := hn, am
	size := n + m

	hDense := H.ToDense().Raw()
	aDense := A.ToDense().Raw()

	K := mat.NewDense(size, size, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			K.Set(i, j, hDense.At(i, j))
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := aDense.At(i, j)
			K.Set(n+i, j, v)
			K.Set(j, n+i, v)
		}
	}

	rhs := make([]float64, size)
	for i := 0; i < n; i++ {
		rhs[i] = -c[i]
	}
	for i := 0; i < m; i++ {
		rhs[n+i] = b[i]
	}
	rhsVec := mat.NewVecDense(size, rhs)

	var lu mat.LU
	lu.Factorize(K)
	if cond := lu.Cond(); isInfOrNaN(cond) {
		return nil, nil, errInvalidInput("singular KKT matrix")
	}

	var solVec mat.VecDense
	if err := lu.SolveVecTo(&solVec, false, rhsVec); err != nil {
		return nil, nil, errInvalidInput("singular KKT matrix: %v", err)
	}

	x = la.NewVector(n)
	lambda = la.NewVector(m)
	for i := 0; i < n; i++ {
		x[i] = solVec.AtVec(i)
	}
	for i := 0; i < m; i++ {
		lambda[i] = solVec.AtVec(n + i)
	}
	return x, lambda, nil
}
