// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicksontsai/eqptr/chk"
	"github.com/dicksontsai/eqptr/la"
)

func TestModifiedDoglegReturnsNewtonPointWhenFeasible(tst *testing.T) {
	chk.PrintTitle("ModifiedDogleg returns the exact Newton point when it's inside the trust region")

	A := sampleConstraintMatrix()
	bundle, err := Projections(A, ProjOptions{})
	require.NoError(tst, err)

	b := la.Vector{0.2, -0.1}
	x, err := ModifiedDogleg(A, b, bundle, 10, nil, nil)
	require.NoError(tst, err)

	xN := bundle.Y.Apply(b)
	for i := range xN {
		xN[i] = -xN[i]
	}
	assert.InDelta(tst, 0, la.VecMaxDiff(x, xN), 1e-8)
}

func TestModifiedDoglegCauchyEqualsNewtonDegenerate(tst *testing.T) {
	chk.PrintTitle("ModifiedDogleg handles the degenerate case where the Cauchy and Newton points coincide")

	A := la.NewCCMatrixDense([][]float64{{1}})
	bundle, err := Projections(A, ProjOptions{})
	require.NoError(tst, err)

	b := la.Vector{1}
	// x_N = -Y b = -1 and x_C = -1 coincide here; a trust radius smaller
	// than their (common) norm forces the boundary-scaling branch, which
	// must not divide by a zero-length segment direction
	x, err := ModifiedDogleg(A, b, bundle, 0.5, nil, nil)
	require.NoError(tst, err)
	assert.InDelta(tst, 0.5, x.Norm(), 1e-8)
	assert.True(tst, x[0] < 0)
}

// test3DExample is original_source/ipsolver/test/test_qp_subproblem.py's
// test_3d_example fixture: A = [[1,8,1],[4,2,2]], b = [-16,2], with pinned
// newton_point = [-1.37090909, 2.23272727, -0.49090909] and
// cauchy_point = [0.11165723, 1.73068711, 0.16748585].
func test3DExample() (A *la.CCMatrix, b la.Vector) {
	A = la.NewCCMatrixDense([][]float64{
		{1, 8, 1},
		{4, 2, 2},
	})
	b = la.Vector{-16, 2}
	return
}

func TestModifiedDoglegNewtonAndCauchyPointsSigned(tst *testing.T) {
	chk.PrintTitle("ModifiedDogleg's Newton and Cauchy points match the signed oracle fixture")

	A, b := test3DExample()
	bundle, err := Projections(A, ProjOptions{})
	require.NoError(tst, err)

	wantNewton := la.Vector{-1.37090909, 2.23272727, -0.49090909}
	xN := bundle.Y.Apply(b)
	for i := range xN {
		xN[i] = -xN[i]
	}
	assert.InDelta(tst, 0, la.VecMaxDiff(xN, wantNewton), 1e-6)
	Ax := A.MatVec(xN)
	assert.InDelta(tst, 0, la.VecMaxDiff(Ax, la.Vector{16, -2}), 1e-6) // A*x_N = -b

	wantCauchy := la.Vector{0.11165723, 1.73068711, 0.16748585}
	g := A.MatTVec(b)
	ag := A.MatVec(g)
	scale := -la.VecDot(g, g) / la.VecDot(ag, ag)
	xC := la.NewVector(3)
	for i := range xC {
		xC[i] = scale * g[i]
	}
	assert.InDelta(tst, 0, la.VecMaxDiff(xC, wantCauchy), 1e-6)
}

func TestModifiedDoglegSegmentSearchMatchesOracleFraction(tst *testing.T) {
	chk.PrintTitle("ModifiedDogleg's segment search reproduces the oracle's pinned step fraction")

	A, b := test3DExample()
	bundle, err := Projections(A, ProjOptions{})
	require.NoError(tst, err)

	// with trust_radius = 2, neither the Newton point (norm ~2.666) nor the
	// Cauchy point alone determines the step; the segment search between
	// them lands at fraction t ~= 0.40807330 of the way from x_C to x_N
	x, err := ModifiedDogleg(A, b, bundle, 2, nil, nil)
	require.NoError(tst, err)
	assert.InDelta(tst, 2, x.Norm(), 1e-6)

	want := la.Vector{-0.49336, 1.93555, -0.10118}
	assert.InDelta(tst, 0, la.VecMaxDiff(x, want), 1e-3)
}

func TestModifiedDoglegRespectsBoxBounds(tst *testing.T) {
	chk.PrintTitle("ModifiedDogleg respects box bounds when the Newton point would violate them")

	A := sampleConstraintMatrix()
	bundle, err := Projections(A, ProjOptions{})
	require.NoError(tst, err)

	b := la.Vector{3, 3} // x_N = -Y b = [-1.5, -1.5, -1.5, -1.5]
	lb := la.Vector{-1, -1, -1, -1}
	x, err := ModifiedDogleg(A, b, bundle, 100, lb, nil)
	require.NoError(tst, err)
	for i := range x {
		assert.True(tst, x[i] >= -1-1e-6)
	}
}
