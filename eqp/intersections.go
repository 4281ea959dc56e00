// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eqp

import (
	"math"

	"github.com/dicksontsai/eqptr/la"
)

// sphereInterval computes the (unclipped) entry/exit parameters of the ray
// z + t*d against the sphere ||x|| <= radius, solving the quadratic
// a*t^2 + 2*beta*t + gamma = 0 with a = d.d, beta = z.d, gamma = z.z - radius^2
func sphereInterval(z, d la.Vector, radius float64) (ta, tb float64, ok bool) {
	a := la.VecDot(d, d)
	beta := la.VecDot(z, d)
	gamma := la.VecDot(z, z) - radius*radius

	if a == 0 {
		// degenerate: zero direction, feasibility depends only on z
		if gamma <= 0 {
			return math.Inf(-1), math.Inf(1), true
		}
		return 0, 0, false
	}

	discriminant := beta*beta - a*gamma
	if discriminant < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(discriminant)
	ta = (-beta - sq) / a
	tb = (-beta + sq) / a
	if ta > tb {
		ta, tb = tb, ta
	}
	return ta, tb, true
}

// boxInterval computes the (unclipped) entry/exit parameters of the ray
// z + t*d against the axis-aligned box [lb, ub], intersecting the per-axis
// admissible intervals. +/-Inf entries in lb, ub yield an unbounded half-line
// on that axis.
func boxInterval(z, d, lb, ub la.Vector) (ta, tb float64, ok bool) {
	ta, tb = math.Inf(-1), math.Inf(1)
	for i := range z {
		if d[i] == 0 {
			if z[i] < lb[i] || z[i] > ub[i] {
				return 0, 0, false
			}
			continue
		}
		t1 := (lb[i] - z[i]) / d[i]
		t2 := (ub[i] - z[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > ta {
			ta = t1
		}
		if t2 < tb {
			tb = t2
		}
	}
	if ta > tb {
		return 0, 0, false
	}
	return ta, tb, true
}

func clipSegment(ta, tb float64) (float64, float64, bool) {
	if ta < 0 {
		ta = 0
	}
	if tb > 1 {
		tb = 1
	}
	if ta > tb {
		return 0, 0, false
	}
	return ta, tb, true
}

// SphericalBoundariesIntersections computes the entry/exit parameters (ta,
// tb) of the ray {z + t*d : t} against the ball ||x|| <= radius. By default
// the interval is clipped to t in [0,1] (segment semantics used by
// trust-region steps); with lineIntersections=true the full-line interval is
// returned instead.
func SphericalBoundariesIntersections(z, d la.Vector, radius float64, lineIntersections bool) (ta, tb float64, intersects bool) {
	ta, tb, ok := sphereInterval(z, d, radius)
	if !ok {
		return 0, 0, false
	}
	if lineIntersections {
		return ta, tb, true
	}
	return clipSegment(ta, tb)
}

// BoxBoundariesIntersections computes the entry/exit parameters (ta, tb) of
// the ray {z + t*d : t} against the axis-aligned box [lb, ub]. Segment
// semantics (t in [0,1]) by default; lineIntersections=true returns the
// unclipped interval.
func BoxBoundariesIntersections(z, d, lb, ub la.Vector, lineIntersections bool) (ta, tb float64, intersects bool) {
	ta, tb, ok := boxInterval(z, d, lb, ub)
	if !ok {
		return 0, 0, false
	}
	if lineIntersections {
		return ta, tb, true
	}
	return clipSegment(ta, tb)
}

// BoxSphereBoundariesIntersections computes the entry/exit parameters (ta,
// tb) of the ray {z + t*d : t} against the intersection of the axis-aligned
// box [lb, ub] and the ball ||x|| <= radius. Segment semantics (t in [0,1])
// by default; lineIntersections=true returns the unclipped interval.
func BoxSphereBoundariesIntersections(z, d, lb, ub la.Vector, radius float64, lineIntersections bool) (ta, tb float64, intersects bool) {
	boxTa, boxTb, ok := boxInterval(z, d, lb, ub)
	if !ok {
		return 0, 0, false
	}
	sphTa, sphTb, ok := sphereInterval(z, d, radius)
	if !ok {
		return 0, 0, false
	}
	ta = math.Max(boxTa, sphTa)
	tb = math.Min(boxTb, sphTb)
	if ta > tb {
		return 0, 0, false
	}
	if lineIntersections {
		return ta, tb, true
	}
	return clipSegment(ta, tb)
}
