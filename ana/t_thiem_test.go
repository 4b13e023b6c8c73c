// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gaf/aqf"
	"github.com/cpmech/gaf/wel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// steadyWell returns a well with rate q at the origin
func steadyWell(tst *testing.T, q float64) *wel.SteadyWell {
	w, err := wel.NewSteady(dbf.Params{&dbf.P{N: "q", V: q}})
	if err != nil {
		tst.Fatalf("%v\n", err)
	}
	return w
}

func Test_thiem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thiem01. head difference")

	aq, err := aqf.NewConf2d(1, 1e-4, 10, 0)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	sol, err := NewThiemWell(aq, steadyWell(tst, -1000))
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// zero at equal radii
	for _, r := range []float64{0.1, 1, 50, 1e4} {
		hd, err := sol.Hd(r, r)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("hd(%g,%g)", r, r), 1e-15, hd, 0)
	}

	// linear in ln(r2/r1)
	hd1, _ := sol.Hd(1, 10)
	hd2, _ := sol.Hd(1, 100)
	io.Pforan("hd(1,10) = %v  hd(1,100) = %v\n", hd1, hd2)
	chk.Float64(tst, "hd(1,10)", 1e-12, hd1, 1000*math.Log(10)/(20*math.Pi))
	chk.Float64(tst, "hd(1,100)", 1e-12, hd2, 2*hd1)
	if hd1 <= 0 {
		tst.Errorf("extraction must give positive drawdown\n")
	}

	// invalid radius
	_, err = sol.Hd(0, 1)
	if !errors.Is(err, ErrInput) {
		tst.Errorf("r1 = 0 must fail with ErrInput; got %v\n", err)
	}

	// invalid kind
	aq1, _ := aqf.New(aqf.FiniteConf1d, nil)
	_, err = NewThiemWell(aq1, steadyWell(tst, -1))
	if !errors.Is(err, ErrKind) {
		tst.Errorf("1d aquifer must fail with ErrKind; got %v\n", err)
	}
}

func Test_dupuit01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dupuit01. recharge-limited well")

	aq, err := aqf.NewUnconf2d(1, 0.1, 10, 0)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	sol, err := NewDupuitThiemWell(aq, steadyWell(tst, -1000), 1e-4)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	ri, err := sol.Ri()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "ri", 1e-9, ri, math.Sqrt(1000/(math.Pi*1e-4)))

	// zero drawdown at ri; positive inside
	res, err := sol.Dd([]float64{1, 100, ri})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	dd := res.Col("dd")
	io.Pforan("dd = %v\n", dd)
	chk.Float64(tst, "dd(ri)", 1e-12, dd[2], 0)
	if !(dd[0] > dd[1] && dd[1] > 0) {
		tst.Errorf("drawdown must decrease with radius: %v\n", dd)
	}

	// grid
	g, err := sol.DdGrid(11, true)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "npts", g.Nrows(), 121)
	rad := g.Col("radius")
	chk.Float64(tst, "centre radius", 1e-12, rad[60], rad[59])

	// recharge and state
	if err = sol.SetR(0); err == nil {
		tst.Errorf("R = 0 must fail\n")
	}
	sol.Well.Q = 100
	_, err = sol.Ri()
	if !errors.Is(err, ErrInput) {
		tst.Errorf("injection must fail with ErrInput; got %v\n", err)
	}
}
