// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqp

import "github.com/dicksontsai/eqptr/chk"

// The three error kinds named in the kernel's error-handling design: wrong
// shapes or a rank-deficient A surface as InvalidInput, a trust region that
// cannot contain the constraint manifold's particular solution surfaces as
// Infeasible, and negative curvature with no finite radius and no box to
// clip against surfaces as NegativeCurvatureUnbounded.

// errInvalidInput builds an InvalidInput error
func errInvalidInput(msg string, prm ...interface{}) error {
	return chk.Err("invalid input: "+msg, prm...)
}

// errInfeasible builds an Infeasible error
func errInfeasible(msg string, prm ...interface{}) error {
	return chk.Err("infeasible: "+msg, prm...)
}

// errNegativeCurvatureUnbounded builds a NegativeCurvatureUnbounded error
func errNegativeCurvatureUnbounded(msg string, prm ...interface{}) error {
	return chk.Err("negative curvature unbounded: "+msg, prm...)
}
