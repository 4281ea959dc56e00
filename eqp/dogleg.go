// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqp

import (
	"math"

	"github.com/dicksontsai/eqptr/la"
)

// ModifiedDogleg computes an approximate solution to
//
//	minimize ||A x + b||_2^2  subject to  ||x|| <= trustRadius, lb <= x <= ub
//
// using the Newton point x_N = -Y b (the least-norm solution of A x = -b,
// ignoring bounds) and the Cauchy point x_C (the minimizer of the same
// objective along its steepest-descent direction). If the Newton point is
// not admissible but the Cauchy point is, a segment search from x_C towards
// x_N finds the step; if the Cauchy point is not admissible either, the step
// is the boundary point along the ray from the origin through x_C. It is the
// normal-step solver feeding a Byrd-Omojokun-style composite step.
func ModifiedDogleg(A *la.CCMatrix, b la.Vector, bundle *ProjectionBundle, trustRadius float64, lb, ub la.Vector) (x la.Vector, err error) {
	_, n := A.Dims()
	if lb == nil {
		lb = fillVector(n, math.Inf(-1))
	}
	if ub == nil {
		ub = fillVector(n, math.Inf(1))
	}
	if trustRadius <= 0 {
		trustRadius = math.Inf(1)
	}

	inBox := func(v la.Vector) bool {
		for i := range v {
			if v[i] < lb[i] || v[i] > ub[i] {
				return false
			}
		}
		return true
	}

	xN := bundle.Y.Apply(b)
	for i := range xN {
		xN[i] = -xN[i]
	}
	if xN.Norm() <= trustRadius && inBox(xN) {
		return xN, nil
	}

	// Cauchy point: the exact minimizer of ||Ax+b||^2 along the
	// steepest-descent direction at x=0. The gradient there is 2*A'b = 2g,
	// so the descent direction is -g.
	g := A.MatTVec(b)
	ag := A.MatVec(g)
	denom := la.VecDot(ag, ag)
	xC := la.NewVector(n)
	if denom > 0 {
		scale := -la.VecDot(g, g) / denom
		for i := range xC {
			xC[i] = scale * g[i]
		}
	}

	if xC.Norm() >= trustRadius || !inBox(xC) {
		zero := la.NewVector(n)
		_, tb, ok := BoxSphereBoundariesIntersections(zero, xC, lb, ub, trustRadius, false)
		if !ok {
			return nil, errInfeasible("Cauchy point direction does not intersect the feasible region")
		}
		xb := la.NewVector(n)
		for i := range xb {
			xb[i] = tb * xC[i]
		}
		return xb, nil
	}

	d := la.NewVector(n)
	for i := range d {
		d[i] = xN[i] - xC[i]
	}
	_, tb, ok := BoxSphereBoundariesIntersections(xC, d, lb, ub, trustRadius, false)
	if !ok {
		return xC, nil
	}
	xb := la.NewVector(n)
	for i := range xb {
		xb[i] = xC[i] + tb*d[i]
	}
	return xb, nil
}
