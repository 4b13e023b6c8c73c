// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grd

import (
	"math"
	"testing"

	"github.com/cpmech/gaf/bsn"
	"github.com/cpmech/gaf/geo"
	"github.com/cpmech/gaf/wel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. density clamp")

	for _, c := range []struct{ gd, grdim int }{
		{1, 10}, {10, 10}, {25, 25}, {40, 40}, {41, 40}, {200, 40}, {-3, 10},
	} {
		g := Grid{Gr: 1, Gd: c.gd}
		chk.Int(tst, io.Sf("grdim(%d)", c.gd), g.Grdim(), c.grdim)
		chk.Int(tst, io.Sf("npts(%d)", c.gd), g.Npts(), c.grdim*c.grdim)
		if g.Clamped() != (c.gd != c.grdim) {
			tst.Errorf("clamped flag is wrong for gd = %d\n", c.gd)
		}
	}
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. well grid")

	w, err := wel.NewSteady(dbf.Params{&dbf.P{N: "x", V: 100}, &dbf.P{N: "y", V: -50}})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	g, err := NewWellGrid(w, 20, 11)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	p := g.Points()
	chk.Int(tst, "npts", len(p.Locx), 121)
	chk.Int(tst, "nrad", len(p.Rad), 121)

	// first point is the lower-left corner; rows run along x
	chk.Float64(tst, "locx[0]", 1e-15, p.Locx[0], -20)
	chk.Float64(tst, "locy[0]", 1e-15, p.Locy[0], -20)
	chk.Float64(tst, "locx[1]", 1e-14, p.Locx[1], -16)
	chk.Float64(tst, "locy[1]", 1e-15, p.Locy[1], -20)
	chk.Float64(tst, "locy[11]", 1e-14, p.Locy[11], -16)
	chk.Float64(tst, "locx[120]", 1e-15, p.Locx[120], 20)
	chk.Float64(tst, "locy[120]", 1e-15, p.Locy[120], 20)

	// centre point
	chk.Float64(tst, "rad[60]", 1e-14, p.Rad[60], 0)
	chk.Float64(tst, "worldx[60]", 1e-13, p.Worldx[60], 100)
	chk.Float64(tst, "worldy[60]", 1e-13, p.Worldy[60], -50)
	chk.Float64(tst, "rad[0]", 1e-13, p.Rad[0], 20*math.Sqrt2)

	// points follow the well
	w.X = 0
	p = g.Points()
	chk.Float64(tst, "worldx[0]", 1e-15, p.Worldx[0], -20)

	_, err = NewWellGrid(w, 0, 11)
	if err == nil {
		tst.Errorf("gr = 0 should fail\n")
	}
}

func Test_grid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid03. basin grid and rotation")

	b, err := bsn.NewRect(dbf.Params{
		&dbf.P{N: "cx", V: 10},
		&dbf.P{N: "cy", V: 20},
		&dbf.P{N: "rot", V: 30},
	})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	g, err := NewBasinGrid(b, 50, 15)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	p := g.Points()
	chk.Int(tst, "npts", len(p.Worldx), g.Npts())
	if p.Rad != nil {
		tst.Errorf("basin grids have no radii\n")
	}

	// distances to the centre are preserved by the rotation
	phi := b.RotRad()
	rnd.Init(1234)
	for trial := 0; trial < 20; trial++ {
		k := int(rnd.Float64(0, float64(g.Npts()-1)))
		d0 := math.Hypot(p.Dx[k], p.Dy[k])
		d1 := math.Hypot(p.Worldx[k]-10, p.Worldy[k]-20)
		chk.Float64(tst, "distance", 1e-12, d1, d0)
		xr, yr := geo.RotatePoint(0, 0, p.Dx[k], p.Dy[k], phi)
		chk.Float64(tst, "locx", 1e-15, p.Locx[k], xr)
		chk.Float64(tst, "locy", 1e-15, p.Locy[k], yr)
	}

	// no rotation: local and offsets coincide
	b.Set("rot", 0)
	p = g.Points()
	for k := range p.Dx {
		chk.Float64(tst, "locx", 1e-15, p.Locx[k], p.Dx[k])
		chk.Float64(tst, "locy", 1e-15, p.Locy[k], p.Dy[k])
	}

	_, err = NewBasinGrid(b, -1, 15)
	if err == nil {
		tst.Errorf("gr < 0 should fail\n")
	}
}
