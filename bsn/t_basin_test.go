// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsn

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_basin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("basin01. circular basin")

	b, err := NewCirc(dbf.Params{&dbf.P{N: "cx", V: 5}, &dbf.P{N: "diam", V: 20}})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "rad", 1e-15, b.Rad(), 10)
	chk.Float64(tst, "area", 1e-12, b.Area(), 100*math.Pi)
	x, y := b.Centre()
	chk.Float64(tst, "cx", 1e-15, x, 5)
	chk.Float64(tst, "cy", 1e-15, y, 0)

	_, err = NewCirc(dbf.Params{&dbf.P{N: "diam", V: 0}})
	if err == nil {
		tst.Errorf("diam = 0 should fail\n")
	}
}

func Test_basin02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("basin02. rectangular basin")

	b, err := NewRect(dbf.Params{
		&dbf.P{N: "cx", V: 0},
		&dbf.P{N: "cy", V: 0},
		&dbf.P{N: "lx", V: 10},
		&dbf.P{N: "ly", V: 10},
		&dbf.P{N: "rot", V: 0},
	})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "area", 1e-15, b.Area(), 100)

	v0 := b.VertsRot()
	chk.Float64(tst, "ll.x", 1e-15, v0.LL.X, -5)
	chk.Float64(tst, "ll.y", 1e-15, v0.LL.Y, -5)
	chk.Float64(tst, "ur.x", 1e-15, v0.UR.X, 5)
	chk.Float64(tst, "ur.y", 1e-15, v0.UR.Y, 5)

	err = b.Set("rot", 45)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "area(45°)", 1e-15, b.Area(), 100)
	v45 := b.VertsRot()
	io.Pforan("verts(45°) = %+v\n", v45)
	h := 5 * math.Sqrt2

	// clockwise: upper-left corner goes to the top
	chk.Float64(tst, "ul.x", 1e-14, v45.UL.X, 0)
	chk.Float64(tst, "ul.y", 1e-14, v45.UL.Y, h)
	chk.Float64(tst, "ur.x", 1e-14, v45.UR.X, h)
	chk.Float64(tst, "ur.y", 1e-14, v45.UR.Y, 0)
	chk.Float64(tst, "lr.y", 1e-14, v45.LR.Y, -h)
	chk.Float64(tst, "ll.x", 1e-14, v45.LL.X, -h)
	if v45 == v0 {
		tst.Errorf("rotation must change the vertices\n")
	}
}

func Test_basin03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("basin03. invalid parameters")

	for _, p := range []*dbf.P{
		&dbf.P{N: "lx", V: 0},
		&dbf.P{N: "ly", V: -1},
		&dbf.P{N: "rot", V: 90},
		&dbf.P{N: "rot", V: -90},
		&dbf.P{N: "rot", V: 120},
	} {
		b, err := NewRect(dbf.Params{p})
		if err == nil || b != nil {
			tst.Errorf("%s = %g should fail\n", p.N, p.V)
			continue
		}
		var perr *prm.Error
		if !errors.As(err, &perr) {
			tst.Errorf("error has wrong type: %T\n", err)
		}
	}
	_, err := NewCirc(dbf.Params{&dbf.P{N: "rot", V: -95}})
	if err == nil {
		tst.Errorf("rot = -95 should fail\n")
	}
	_, err = NewRect(dbf.Params{&dbf.P{N: "width", V: 1}})
	if err == nil {
		tst.Errorf("unknown parameter should fail\n")
	}
}

func Test_basin04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("basin04. setters")

	r, _ := NewRect(nil)
	if err := r.Set("lx", 30); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if err := r.Set("LY", 4); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "area", 1e-15, r.Area(), 120)

	var perr *prm.Error
	err := r.Set("ly", 0)
	if !errors.As(err, &perr) {
		tst.Errorf("ly = 0 should fail with a parameter error; got %v\n", err)
	}
	chk.Float64(tst, "ly unchanged", 1e-15, r.Ly(), 4)
	if err = r.Set("rot", 10); err != nil {
		tst.Errorf("%v\n", err)
	}
	chk.Float64(tst, "rot", 1e-15, r.Rot(), 10)

	c, _ := NewCirc(nil)
	if err = c.Set("diam", 4); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "rad", 1e-15, c.Rad(), 2)
	err = c.Set("diam", -1)
	if !errors.As(err, &perr) {
		tst.Errorf("diam = -1 should fail with a parameter error; got %v\n", err)
	}
	chk.Float64(tst, "diam unchanged", 1e-15, c.Diam(), 4)
	if err = c.Set("lx", 1); err == nil {
		tst.Errorf("lx is not a parameter of circular basins\n")
	}
}
