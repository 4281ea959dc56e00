// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eqp implements the equality-constrained trust-region quadratic
// programming kernel: projection operators onto the null space and row
// space of a constraint matrix, a direct KKT factorization, a projected
// preconditioned conjugate-gradient method, ray/ball/box intersection
// primitives, and a modified dogleg step.
package eqp

import "github.com/dicksontsai/eqptr/la"

// LinearOperator is an opaque endomorphism: callers only ever see Apply,
// never the factorization backing it. All three projections returned by
// Projections implement this interface.
type LinearOperator interface {
	// Apply maps v onto the operator's image, e.g. Z v, LS v, or Y w
	Apply(v la.Vector) la.Vector
}

// FuncOperator adapts a plain closure to the LinearOperator interface, so a
// projection method can return a small struct holding a handle to its
// factorization plus a dispatcher function, without materializing a matrix.
type FuncOperator struct {
	fn func(v la.Vector) la.Vector
}

// NewFuncOperator wraps fn as a LinearOperator
func NewFuncOperator(fn func(v la.Vector) la.Vector) *FuncOperator {
	return &FuncOperator{fn: fn}
}

// Apply implements LinearOperator
func (o *FuncOperator) Apply(v la.Vector) la.Vector {
	return o.fn(v)
}
