// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

func Test_rotate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotate01. degrees and quarter turns")

	chk.Float64(tst, "0°", 1e-17, Deg2Rad(0), 0)
	chk.Float64(tst, "90°", 1e-15, Deg2Rad(90), math.Pi/2)
	chk.Float64(tst, "-45°", 1e-15, Deg2Rad(-45), -math.Pi/4)

	// clockwise: (1,0) about origin by 90° goes to (0,-1)
	x, y := RotatePoint(0, 0, 1, 0, Deg2Rad(90))
	io.Pforan("x, y = %v, %v\n", x, y)
	chk.Float64(tst, "x", 1e-15, x, 0)
	chk.Float64(tst, "y", 1e-15, y, -1)

	// about a centre
	x, y = RotatePoint(10, 5, 10, 7, Deg2Rad(90))
	chk.Float64(tst, "x", 1e-14, x, 12)
	chk.Float64(tst, "y", 1e-14, y, 5)
}

func Test_rotate02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotate02. identity and inverse")

	rnd.Init(1234)
	for i := 0; i < 100; i++ {
		cx, cy := rnd.Float64(-100, 100), rnd.Float64(-100, 100)
		px, py := rnd.Float64(-100, 100), rnd.Float64(-100, 100)
		phi := rnd.Float64(-math.Pi, math.Pi)

		x, y := RotatePoint(cx, cy, px, py, 0)
		chk.Float64(tst, "x(φ=0)", 1e-13, x, px)
		chk.Float64(tst, "y(φ=0)", 1e-13, y, py)

		xr, yr := RotatePoint(cx, cy, px, py, phi)
		xb, yb := RotatePoint(cx, cy, xr, yr, -phi)
		chk.Float64(tst, "x", 1e-11, xb, px)
		chk.Float64(tst, "y", 1e-11, yb, py)

		// distance to centre is preserved
		d0 := math.Hypot(px-cx, py-cy)
		d1 := math.Hypot(xr-cx, yr-cy)
		chk.Float64(tst, "dist", 1e-11, d1, d0)
	}
}

func Test_rotate03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotate03. many points")

	x := []float64{1, 0, -1, 0}
	y := []float64{0, 1, 0, -1}
	xr, yr := RotatePoints(0, 0, x, y, Deg2Rad(90))
	xc := []float64{0, 1, 0, -1}
	yc := []float64{-1, 0, 1, 0}
	for i := range x {
		chk.Float64(tst, io.Sf("x%d", i), 1e-15, xr[i], xc[i])
		chk.Float64(tst, io.Sf("y%d", i), 1e-15, yr[i], yc[i])
	}
}
