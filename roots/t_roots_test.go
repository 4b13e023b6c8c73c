// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roots

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fixedpoint01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fixedpoint01. x = sqrt(a + x)")

	// x = sqrt(2 + x)  =>  x = 2
	neval := 0
	x, err := FixedPoint("x", 10, func(x float64) float64 {
		neval++
		return math.Sqrt(2 + x)
	})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	io.Pforan("x = %v  (neval = %d)\n", x, neval)
	chk.AnaNum(tst, "x", Tol, 2, x, chk.Verbose)
	if neval >= MaxIt {
		tst.Errorf("too many evaluations: %d\n", neval)
	}
}

func Test_fixedpoint02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fixedpoint02. no convergence")

	neval := 0
	_, err := FixedPoint("x", 0, func(x float64) float64 {
		neval++
		return x + 1
	})
	if err == nil {
		tst.Errorf("divergent iteration must fail\n")
		return
	}
	io.Pforan("%v\n", err)
	if !errors.Is(err, ErrMaxIt) {
		tst.Errorf("error must match ErrMaxIt\n")
	}
	var e *Error
	if !errors.As(err, &e) {
		tst.Errorf("error has wrong type: %T\n", err)
		return
	}
	chk.String(tst, e.Name, "x")
	chk.Int(tst, "MaxIt", e.MaxIt, 1000)
	chk.Int(tst, "neval", neval, 1000)
}

func Test_bisect01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisect01. inverse of exp")

	// increasing function: exp(x) = 1000  =>  x = ln(1000)
	target := 1000.0
	x, err := Bisect("x", 0, 100, func(x float64) bool { return math.Exp(x) < target })
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	io.Pforan("x = %v\n", x)
	chk.AnaNum(tst, "x", Tol, math.Log(target), x, chk.Verbose)

	// decreasing function: 1/x = 0.25  =>  x = 4
	x, err = Bisect("x", 1, 1e6, func(x float64) bool { return 1/x > 0.25 })
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.AnaNum(tst, "x", Tol, 4, x, chk.Verbose)
}

func Test_bisect02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisect02. tolerance below floating point resolution")

	it := Iter{Tol: 1e-30, MaxIt: MaxIt}
	_, err := it.Bisect("x", 1e10, 2e10, func(x float64) bool { return x < 1.5e10 })
	if !errors.Is(err, ErrMaxIt) {
		tst.Errorf("bisection with unreachable tolerance must fail with ErrMaxIt; got %v\n", err)
	}
}
