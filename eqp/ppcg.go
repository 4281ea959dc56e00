// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqp

import (
	"math"

	"github.com/dicksontsai/eqptr/io"
	"github.com/dicksontsai/eqptr/la"
)

// StopCode reports why ProjectedCG terminated.
type StopCode int

const (
	// StopConverged: residual tolerance reached
	StopConverged StopCode = 1
	// StopBoundary: hit the trust-region or box boundary
	StopBoundary StopCode = 2
	// StopNegativeCurvature: encountered non-positive curvature along the search direction
	StopNegativeCurvature StopCode = 3
	// StopTrivial: converged in at most one step (exact direction)
	StopTrivial StopCode = 4
)

// CGOptions configures ProjectedCG. The zero value selects: default
// tolerance (1e-8), no trust radius (unbounded), no box bounds, and a
// default iteration cap of n - m.
type CGOptions struct {
	Tol         float64
	TrustRadius float64 // <= 0 means unbounded
	Lb, Ub      la.Vector
	MaxIter     int // <= 0 means n - m
	ReturnAll   bool
	Verbose     bool
}

// CGInfo carries the stop code, iteration count, and (if requested) the full
// iterate history of a ProjectedCG call.
type CGInfo struct {
	StopCond       StopCode
	Iter           int
	IterateHistory []la.Vector
}

func fillVector(n int, val float64) la.Vector {
	v := la.NewVector(n)
	for i := range v {
		v[i] = val
	}
	return v
}

// ProjectedCG minimizes q(x) = 1/2 xᵀHx + cᵀx over {x : A x = b}, optionally
// restricted to ||x||_2 <= trustRadius and lb <= x <= ub, using a projected
// preconditioned conjugate-gradient method operating in null(A). bundle must
// have been built from the same A that produced b.
func ProjectedCG(H *la.CCMatrix, c la.Vector, bundle *ProjectionBundle, b la.Vector, opts CGOptions) (x la.Vector, hitsBoundary bool, info CGInfo, err error) {
	n := len(c)

	tol := opts.Tol
	if tol == 0 {
		tol = 1e-8
	}
	trustRadius := opts.TrustRadius
	if trustRadius <= 0 {
		trustRadius = math.Inf(1)
	}
	lb := opts.Lb
	if lb == nil {
		lb = fillVector(n, math.Inf(-1))
	}
	ub := opts.Ub
	if ub == nil {
		ub = fillVector(n, math.Inf(1))
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = n - len(b)
		if maxIter <= 0 {
			maxIter = 1
		}
	}

	inBox := func(v la.Vector) bool {
		for i := range v {
			if v[i] < lb[i] || v[i] > ub[i] {
				return false
			}
		}
		return true
	}

	x0 := bundle.Y.Apply(b)
	if x0.Norm() >= trustRadius {
		return nil, false, CGInfo{}, errInfeasible("trust region infeasible: ||Y b|| = %.6g >= trust_radius = %.6g", x0.Norm(), trustRadius)
	}

	hx0 := H.MatVec(x0)
	r0 := la.NewVector(n)
	for i := range r0 {
		r0[i] = hx0[i] + c[i]
	}
	g0 := bundle.Z.Apply(r0)
	gNorm0 := g0.Norm()

	if opts.Verbose {
		io.Pf("%4s%16s%16s\n", "it", "curvature", "||g||")
	}

	if gNorm0 <= tol {
		return x0, false, CGInfo{StopCond: StopTrivial, Iter: 0, IterateHistory: history(opts.ReturnAll, x0)}, nil
	}

	x = x0
	r := r0
	g := g0
	p := la.NewVector(n)
	for i := range p {
		p[i] = -g[i]
	}

	var hist []la.Vector
	if opts.ReturnAll {
		hist = append(hist, x0.GetCopy())
	}

	var lastBoundary la.Vector
	boxEverViolated := false

	iter := 0
	for ; iter < maxIter; iter++ {
		hp := H.MatVec(p)
		kappa := la.VecDot(p, hp)

		if opts.Verbose {
			io.Pf("%4d%16.8e%16.8e\n", iter, kappa, g.Norm())
		}

		if kappa <= 0 {
			if math.IsInf(trustRadius, 1) && allUnbounded(lb, ub) {
				return nil, false, CGInfo{}, errNegativeCurvatureUnbounded("negative curvature in unconstrained direction")
			}
			_, tb, ok := BoxSphereBoundariesIntersections(x, p, lb, ub, trustRadius, true)
			tau := 0.0
			if ok && tb > 0 {
				tau = tb
			}
			xb := la.NewVector(n)
			for i := range xb {
				xb[i] = x[i] + tau*p[i]
			}
			hist = appendHist(hist, opts.ReturnAll, xb)
			return xb, true, CGInfo{StopCond: StopNegativeCurvature, Iter: iter + 1, IterateHistory: hist}, nil
		}

		alpha := la.VecDot(g, r) / kappa
		xNext := la.NewVector(n)
		for i := range xNext {
			xNext[i] = x[i] + alpha*p[i]
		}

		if xNext.Norm() >= trustRadius {
			_, tau, ok := BoxSphereBoundariesIntersections(x, p, lb, ub, trustRadius, true)
			if !ok || tau < 0 {
				tau = 0
			}
			if tau > alpha {
				tau = alpha
			}
			xb := la.NewVector(n)
			for i := range xb {
				xb[i] = x[i] + tau*p[i]
			}
			hist = appendHist(hist, opts.ReturnAll, xb)
			return xb, true, CGInfo{StopCond: StopBoundary, Iter: iter + 1, IterateHistory: hist}, nil
		}

		if !inBox(xNext) {
			boxEverViolated = true
			ta, tb, ok := BoxBoundariesIntersections(x, p, lb, ub, true)
			_ = ta
			tau := alpha
			if ok && tb >= 0 && tb <= alpha {
				tau = tb
			}
			xb := la.NewVector(n)
			for i := range xb {
				xb[i] = x[i] + tau*p[i]
			}
			lastBoundary = xb
		}

		x = xNext
		hist = appendHist(hist, opts.ReturnAll, x)

		hp2 := hp
		rNext := la.NewVector(n)
		for i := range rNext {
			rNext[i] = r[i] + alpha*hp2[i]
		}
		gNext := bundle.Z.Apply(rNext)

		if gNext.Norm() <= tol*gNorm0 {
			if inBox(x) {
				return x, false, CGInfo{StopCond: StopConverged, Iter: iter + 1, IterateHistory: hist}, nil
			}
			if lastBoundary == nil {
				lastBoundary = x
			}
			return lastBoundary, true, CGInfo{StopCond: StopConverged, Iter: iter + 1, IterateHistory: hist}, nil
		}

		beta := la.VecDot(gNext, rNext) / la.VecDot(g, r)
		pNext := la.NewVector(n)
		for i := range pNext {
			pNext[i] = -gNext[i] + beta*p[i]
		}

		r, g, p = rNext, gNext, pNext
	}

	if boxEverViolated || !inBox(x) {
		if lastBoundary == nil {
			lastBoundary = x
		}
		return lastBoundary, true, CGInfo{StopCond: StopConverged, Iter: iter, IterateHistory: hist}, nil
	}
	return x, false, CGInfo{StopCond: StopConverged, Iter: iter, IterateHistory: hist}, nil
}

func allUnbounded(lb, ub la.Vector) bool {
	for i := range lb {
		if !math.IsInf(lb[i], -1) || !math.IsInf(ub[i], 1) {
			return false
		}
	}
	return true
}

func history(returnAll bool, x la.Vector) []la.Vector {
	if !returnAll {
		return nil
	}
	return []la.Vector{x.GetCopy()}
}

func appendHist(hist []la.Vector, returnAll bool, x la.Vector) []la.Vector {
	if !returnAll {
		return hist
	}
	return append(hist, x.GetCopy())
}
