// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package la implements the vector and matrix types used by the eqp package:
// dense vectors with dot products and norms, a dense matrix backed by gonum,
// sparse matrix assembly, and sparse matrix-vector products.
package la

import "math"

// Vector defines a mutable vector of float64 values
type Vector []float64

// NewVector allocates a new vector with size n, filled with zeros
func NewVector(n int) Vector {
	return make(Vector, n)
}

// NewVectorSlice allocates a new vector from a slice of float64, without copying
func NewVectorSlice(s []float64) Vector {
	return Vector(s)
}

// GetCopy returns a copy of this vector
func (o Vector) GetCopy() Vector {
	c := make(Vector, len(o))
	copy(c, o)
	return c
}

// Norm returns the Euclidean (L2) norm of this vector
func (o Vector) Norm() float64 {
	var ss float64
	for _, v := range o {
		ss += v * v
	}
	return math.Sqrt(ss)
}

// Largest returns the largest component, in absolute value, divided by den
func (o Vector) Largest(den float64) float64 {
	var largest float64
	for _, v := range o {
		a := math.Abs(v) / den
		if a > largest {
			largest = a
		}
	}
	return largest
}

// VecDot returns the dot product between two vectors
func VecDot(u, v Vector) float64 {
	var sum float64
	for i := range u {
		sum += u[i] * v[i]
	}
	return sum
}

// VecCopy copies a vector scaled by alpha: v := alpha*u
func VecCopy(v Vector, alpha float64, u Vector) {
	for i := range v {
		v[i] = alpha * u[i]
	}
}

// VecAdd computes w := alpha*u + beta*v
func VecAdd(w Vector, alpha float64, u Vector, beta float64, v Vector) {
	for i := range w {
		w[i] = alpha*u[i] + beta*v[i]
	}
}

// VecScaleAbs computes scal := atol + rtol*abs(x), used for convergence scaling
func VecScaleAbs(scal Vector, atol, rtol float64, x Vector) {
	for i := range scal {
		scal[i] = atol + rtol*math.Abs(x[i])
	}
}

// VecMaxDiff returns the maximum absolute difference between two vectors
func VecMaxDiff(u, v Vector) float64 {
	var maxdiff float64
	for i := range u {
		d := math.Abs(u[i] - v[i])
		if d > maxdiff {
			maxdiff = d
		}
	}
	return maxdiff
}
