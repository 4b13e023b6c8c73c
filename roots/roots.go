// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package roots implements the iterative inverse solvers used to compute implicit
// quantities such as radius of influence and time to a target drawdown
package roots

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/io"
)

// constants
const (
	MaxIt = 1000 // maximum number of iterations; exceeding it is an error
	Tol   = 0.01 // convergence tolerance in source units
)

// ErrMaxIt is matched by all non-convergence errors
var ErrMaxIt = errors.New("too many iterations")

// Error reports a solver that did not converge
type Error struct {
	Name  string  // name of unknown; e.g. "ri"
	MaxIt int     // iterations performed
	Res   float64 // last residual
}

// Error implements error
func (o *Error) Error() string {
	return io.Sf("more than %d iterations trying to solve %s (residual = %g)", o.MaxIt, o.Name, o.Res)
}

// Is makes errors.Is(err, ErrMaxIt) true
func (o *Error) Is(target error) bool {
	return target == ErrMaxIt
}

// Iter holds the stopping criteria
type Iter struct {
	Tol   float64 // tolerance on |x₂ - x₁| or on the bracket width
	MaxIt int     // maximum number of iterations
}

// Default holds the criteria used by all solutions
var Default = Iter{Tol: Tol, MaxIt: MaxIt}

// FixedPoint solves x = g(x) starting at x0 by successive substitution
//  x₂ = g(x₁) until |x₂ - x₁| < Tol
func (o Iter) FixedPoint(name string, x0 float64, g func(x float64) float64) (x float64, err error) {
	x1 := x0
	res := math.Inf(1)
	for it := 0; it < o.MaxIt; it++ {
		x2 := g(x1)
		res = x2 - x1
		x1 = x2
		if math.Abs(res) < o.Tol {
			return x2, nil
		}
	}
	return x1, &Error{Name: name, MaxIt: o.MaxIt, Res: res}
}

// Bisect narrows the bracket [a,b] around the point where lower switches from true to false
//  lower(x) == true means that the solution lies above x
// The midpoint of the last iteration is returned once b - a < Tol
func (o Iter) Bisect(name string, a, b float64, lower func(x float64) bool) (x float64, err error) {
	res := b - a
	for it := 0; it < o.MaxIt; it++ {
		x = a + (b-a)/2
		if lower(x) {
			a = x
		} else {
			b = x
		}
		res = b - a
		if math.Abs(res) < o.Tol {
			return x, nil
		}
	}
	return x, &Error{Name: name, MaxIt: o.MaxIt, Res: res}
}

// FixedPoint calls Default.FixedPoint
func FixedPoint(name string, x0 float64, g func(x float64) float64) (float64, error) {
	return Default.FixedPoint(name, x0, g)
}

// Bisect calls Default.Bisect
func Bisect(name string, a, b float64, lower func(x float64) bool) (float64, error) {
	return Default.Bisect(name, a, b, lower)
}
