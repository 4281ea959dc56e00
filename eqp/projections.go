// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqp

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/dicksontsai/eqptr/chk"
	"github.com/dicksontsai/eqptr/la"
)

func isInfOrNaN(x float64) bool {
	return math.IsInf(x, 0) || math.IsNaN(x)
}

// ProjMethod selects how the ProjectionBundle factorizes A
type ProjMethod int

const (
	// NormalEquation factors A*Aᵀ with a dense Cholesky
	NormalEquation ProjMethod = iota
	// AugmentedSystem factors the saddle-point matrix [[I, Aᵀ], [A, 0]] with a dense LU
	AugmentedSystem
	// QRFactorization factors Aᵀ with a dense QR decomposition
	QRFactorization
)

// ProjOptions configures Projections; the zero value selects the documented
// defaults (NormalEquation, OrthTol=1e-12, MaxRefin=3), mirroring the
// teacher's map-of-named-parameters convention (see num.NlSolver.Init)
// translated into an idiomatic option struct.
type ProjOptions struct {
	Method   ProjMethod
	OrthTol  float64
	MaxRefin int
}

func (o ProjOptions) withDefaults() ProjOptions {
	if o.OrthTol == 0 {
		o.OrthTol = 1e-12
	}
	if o.MaxRefin == 0 {
		o.MaxRefin = 3
	}
	return o
}

// ProjectionBundle is the triple (Z, LS, Y) described in the kernel's data
// model: Z projects onto null(A), LS is the least-squares projector used to
// undo constraint residuals, and Y is a right-inverse of A producing a
// particular solution of A x = b. All three share the same underlying
// factorization, released together when the bundle is no longer referenced.
type ProjectionBundle struct {
	Z LinearOperator
	LS LinearOperator
	Y LinearOperator
}

// Projections builds a ProjectionBundle for the constraint matrix A (m x n,
// m <= n, assumed full row rank) using the requested method.
func Projections(A *la.CCMatrix, opts ProjOptions) (*ProjectionBundle, error) {
	opts = opts.withDefaults()
	m, n := A.Dims()
	if m > n {
		return nil, errInvalidInput("A must have at least as many columns as rows (got %d x %d)", m, n)
	}
	switch opts.Method {
	case AugmentedSystem:
		return projectionsAugmented(A, opts)
	case QRFactorization:
		return projectionsQR(A, opts)
	default:
		return projectionsNormalEquation(A, opts)
	}
}

// refineZ repeatedly re-applies applyOnce to correct residual row-space
// leakage, exploiting the fact that Z is idempotent (Z(Z v) = Z v): each
// extra application removes whatever row-space component floating-point
// error reintroduced.
func refineZ(applyOnce func(la.Vector) la.Vector, A *la.CCMatrix, v la.Vector, orthTol float64, maxRefin int) la.Vector {
	x := applyOnce(v)
	vNorm := v.Norm()
	if vNorm == 0 {
		return x
	}
	for k := 0; k < maxRefin; k++ {
		Ax := A.MatVec(x)
		if Ax.Norm()/vNorm <= orthTol {
			break
		}
		x = applyOnce(x)
	}
	return x
}

// refineY corrects Y so that A(Y w) approaches w, by repeatedly solving for
// the residual w - A(Y w) and accumulating the correction.
func refineY(applyOnce func(la.Vector) la.Vector, A *la.CCMatrix, w la.Vector, orthTol float64, maxRefin int) la.Vector {
	y := applyOnce(w)
	wNorm := w.Norm()
	if wNorm == 0 {
		return y
	}
	for k := 0; k < maxRefin; k++ {
		Ay := A.MatVec(y)
		resid := la.NewVector(len(w))
		for i := range resid {
			resid[i] = w[i] - Ay[i]
		}
		if resid.Norm()/wNorm <= orthTol {
			break
		}
		corr := applyOnce(resid)
		for i := range y {
			y[i] += corr[i]
		}
	}
	return y
}

// --- NormalEquation -------------------------------------------------------

type normalEquationBundle struct {
	A     *la.CCMatrix
	chol  *mat.Cholesky
	m, n  int
	opts  ProjOptions
}

func projectionsNormalEquation(A *la.CCMatrix, opts ProjOptions) (*ProjectionBundle, error) {
	m, n := A.Dims()
	aDense := A.ToDense().Raw()

	sym := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			var s float64
			for k := 0; k < n; k++ {
				s += aDense.At(i, k) * aDense.At(j, k)
			}
			sym.SetSym(i, j, s)
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, errInvalidInput("A*Aᵀ is not positive definite (A is likely rank-deficient)")
	}

	b := &normalEquationBundle{A: A, chol: &chol, m: m, n: n, opts: opts}
	return &ProjectionBundle{
		Z:  NewFuncOperator(b.zApply),
		LS: NewFuncOperator(b.lsApply),
		Y:  NewFuncOperator(b.yApply),
	}, nil
}

// solveAAt solves (A*Aᵀ) x = rhs using the cached Cholesky factor
func (b *normalEquationBundle) solveAAt(rhs la.Vector) la.Vector {
	rhsVec := mat.NewVecDense(b.m, []float64(rhs))
	var xVec mat.VecDense
	if err := b.chol.SolveVecTo(&xVec, rhsVec); err != nil {
		chk.Panic("normal-equation solve failed: %v", err)
	}
	x := la.NewVector(b.m)
	for i := 0; i < b.m; i++ {
		x[i] = xVec.AtVec(i)
	}
	return x
}

func (b *normalEquationBundle) lsApplyOnce(v la.Vector) la.Vector {
	return b.solveAAt(b.A.MatVec(v))
}

func (b *normalEquationBundle) lsApply(v la.Vector) la.Vector {
	return b.lsApplyOnce(v)
}

func (b *normalEquationBundle) zApplyOnce(v la.Vector) la.Vector {
	d := b.lsApplyOnce(v)
	atd := b.A.MatTVec(d)
	z := la.NewVector(b.n)
	for i := range z {
		z[i] = v[i] - atd[i]
	}
	return z
}

func (b *normalEquationBundle) zApply(v la.Vector) la.Vector {
	return refineZ(b.zApplyOnce, b.A, v, b.opts.OrthTol, b.opts.MaxRefin)
}

func (b *normalEquationBundle) yApplyOnce(w la.Vector) la.Vector {
	d := b.solveAAt(w)
	return b.A.MatTVec(d)
}

func (b *normalEquationBundle) yApply(w la.Vector) la.Vector {
	return refineY(b.yApplyOnce, b.A, w, b.opts.OrthTol, b.opts.MaxRefin)
}

// --- AugmentedSystem -------------------------------------------------------

// augmentedBundle factors the saddle-point matrix K = [[I, Aᵀ], [A, 0]] once
// and solves for Z, LS, and Y via the appropriate right-hand sides, matching
// the block structure described in the kernel's projection-factory design.
type augmentedBundle struct {
	A    *la.CCMatrix
	lu   *mat.LU
	m, n int
	opts ProjOptions
}

func projectionsAugmented(A *la.CCMatrix, opts ProjOptions) (*ProjectionBundle, error) {
	m, n := A.Dims()
	size := n + m
	aDense := A.ToDense().Raw()

	K := mat.NewDense(size, size, nil)
	for i := 0; i < n; i++ {
		K.Set(i, i, 1)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := aDense.At(i, j)
			K.Set(n+i, j, v)
			K.Set(j, n+i, v)
		}
	}

	var lu mat.LU
	lu.Factorize(K)
	if c := lu.Cond(); isInfOrNaN(c) {
		return nil, errInvalidInput("augmented system is singular (A is likely rank-deficient)")
	}

	b := &augmentedBundle{A: A, lu: &lu, m: m, n: n, opts: opts}
	return &ProjectionBundle{
		Z:  NewFuncOperator(b.zApply),
		LS: NewFuncOperator(b.lsApply),
		Y:  NewFuncOperator(b.yApply),
	}, nil
}

// solveK solves K [x;y] = rhs (size n+m) and returns both blocks
func (b *augmentedBundle) solveK(rhs la.Vector) (x, y la.Vector) {
	rhsVec := mat.NewVecDense(b.n+b.m, []float64(rhs))
	var solVec mat.VecDense
	if err := b.lu.SolveVecTo(&solVec, false, rhsVec); err != nil {
		chk.Panic("augmented-system solve failed: %v", err)
	}
	x = la.NewVector(b.n)
	y = la.NewVector(b.m)
	for i := 0; i < b.n; i++ {
		x[i] = solVec.AtVec(i)
	}
	for i := 0; i < b.m; i++ {
		y[i] = solVec.AtVec(b.n + i)
	}
	return
}

func (b *augmentedBundle) zApplyOnce(v la.Vector) la.Vector {
	rhs := la.NewVector(b.n + b.m)
	copy(rhs, v)
	x, _ := b.solveK(rhs)
	return x
}

func (b *augmentedBundle) zApply(v la.Vector) la.Vector {
	return refineZ(b.zApplyOnce, b.A, v, b.opts.OrthTol, b.opts.MaxRefin)
}

func (b *augmentedBundle) lsApply(v la.Vector) la.Vector {
	rhs := la.NewVector(b.n + b.m)
	copy(rhs, v)
	_, y := b.solveK(rhs)
	return y
}

func (b *augmentedBundle) yApplyOnce(w la.Vector) la.Vector {
	rhs := la.NewVector(b.n + b.m)
	copy(rhs[b.n:], w)
	x, _ := b.solveK(rhs)
	return x
}

func (b *augmentedBundle) yApply(w la.Vector) la.Vector {
	return refineY(b.yApplyOnce, b.A, w, b.opts.OrthTol, b.opts.MaxRefin)
}

// --- QRFactorization -------------------------------------------------------

// qrBundle holds a dense QR factorization of Aᵀ (n x m, n >= m). Q = [Q1 Q2]
// with Q1 the first m columns (spanning row(A)) and Q2 the remaining n-m
// columns (spanning null(A)); R's top m x m block is upper triangular.
type qrBundle struct {
	A      *la.CCMatrix
	q1, q2 *mat.Dense // n x m, n x (n-m)
	rT     *mat.LU    // LU of Rᵀ (m x m), used to solve Rᵀ x = rhs and (transposed) R x = rhs
	m, n   int
	opts   ProjOptions
}

func projectionsQR(A *la.CCMatrix, opts ProjOptions) (*ProjectionBundle, error) {
	m, n := A.Dims()
	aDense := A.ToDense().Raw()

	aT := mat.NewDense(n, m, nil)
	aT.Copy(aDense.T())

	var qrFact mat.QR
	qrFact.Factorize(aT)

	var qFull mat.Dense
	qrFact.QTo(&qFull)

	var rFull mat.Dense
	qrFact.RTo(&rFull)

	q1 := mat.NewDense(n, m, nil)
	q1.Copy(qFull.Slice(0, n, 0, m))

	q2 := mat.NewDense(n, n-m, nil)
	if n-m > 0 {
		q2.Copy(qFull.Slice(0, n, m, n))
	}

	rTop := mat.NewDense(m, m, nil)
	rTop.Copy(rFull.Slice(0, m, 0, m))

	var rT mat.Dense
	rT.CloneFrom(rTop.T())

	var lu mat.LU
	lu.Factorize(&rT)
	if c := lu.Cond(); isInfOrNaN(c) {
		return nil, errInvalidInput("R is singular (A is likely rank-deficient)")
	}

	b := &qrBundle{A: A, q1: q1, q2: q2, rT: &lu, m: m, n: n, opts: opts}
	return &ProjectionBundle{
		Z:  NewFuncOperator(b.zApply),
		LS: NewFuncOperator(b.lsApply),
		Y:  NewFuncOperator(b.yApply),
	}, nil
}

func (b *qrBundle) zApplyOnce(v la.Vector) la.Vector {
	if b.n-b.m == 0 {
		return la.NewVector(b.n)
	}
	vVec := mat.NewVecDense(b.n, []float64(v))
	var t mat.VecDense
	t.MulVec(b.q2.T(), vVec)
	var z mat.VecDense
	z.MulVec(b.q2, &t)
	out := la.NewVector(b.n)
	for i := 0; i < b.n; i++ {
		out[i] = z.AtVec(i)
	}
	return out
}

func (b *qrBundle) zApply(v la.Vector) la.Vector {
	return refineZ(b.zApplyOnce, b.A, v, b.opts.OrthTol, b.opts.MaxRefin)
}

func (b *qrBundle) lsApply(v la.Vector) la.Vector {
	vVec := mat.NewVecDense(b.n, []float64(v))
	var q1tv mat.VecDense
	q1tv.MulVec(b.q1.T(), vVec)
	var x mat.VecDense
	if err := b.rT.SolveVecTo(&x, true, &q1tv); err != nil {
		chk.Panic("QR least-squares solve failed: %v", err)
	}
	out := la.NewVector(b.m)
	for i := 0; i < b.m; i++ {
		out[i] = x.AtVec(i)
	}
	return out
}

func (b *qrBundle) yApplyOnce(w la.Vector) la.Vector {
	wVec := mat.NewVecDense(b.m, []float64(w))
	var x mat.VecDense
	if err := b.rT.SolveVecTo(&x, false, wVec); err != nil {
		chk.Panic("QR right-inverse solve failed: %v", err)
	}
	var y mat.VecDense
	y.MulVec(b.q1, &x)
	out := la.NewVector(b.n)
	for i := 0; i < b.n; i++ {
		out[i] = y.AtVec(i)
	}
	return out
}

func (b *qrBundle) yApply(w la.Vector) la.Vector {
	return refineY(b.yApplyOnce, b.A, w, b.opts.OrthTol, b.opts.MaxRefin)
}
