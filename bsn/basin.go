// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bsn implements infiltration basins
package bsn

import (
	"math"
	"strings"

	"github.com/cpmech/gaf/geo"
	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Basin holds the location and orientation of a basin
type Basin struct {
	Name   string  // label
	Cx, Cy float64 // centre
	rot    float64 // clockwise rotation angle [deg]; -90 < rot < 90
}

// Centre returns the centre of the basin
func (o Basin) Centre() (x, y float64) { return o.Cx, o.Cy }

// Rot returns the clockwise rotation angle in degrees
func (o Basin) Rot() float64 { return o.rot }

// RotRad returns the clockwise rotation angle in radians
func (o Basin) RotRad() float64 { return geo.Deg2Rad(o.rot) }

// Set sets a parameter of the basin; only this parameter is validated
func (o *Basin) Set(name string, v float64) error {
	switch strings.ToLower(name) {
	case "cx":
		o.Cx = v
	case "cy":
		o.Cy = v
	case "rot":
		if err := prm.Check("rot", v, prm.Angle); err != nil {
			return err
		}
		o.rot = v
	default:
		return chk.Err("basin: parameter named %q is incorrect", name)
	}
	return nil
}

// CircBasin is a circular basin
type CircBasin struct {
	Basin
	diam float64 // diameter > 0
}

// NewCirc returns a circular basin. Defaults: cx=cy=0, rot=0, diam=10
func NewCirc(prms dbf.Params) (o *CircBasin, err error) {
	o = &CircBasin{Basin: Basin{Name: "Unnamed Basin"}, diam: 10}
	for _, p := range prms {
		if err = o.Set(p.N, p.V); err != nil {
			return nil, err
		}
	}
	return
}

// Set sets a parameter; only this parameter is validated
func (o *CircBasin) Set(name string, v float64) error {
	if strings.ToLower(name) != "diam" {
		return o.Basin.Set(name, v)
	}
	if err := prm.Check("diam", v, prm.Positive); err != nil {
		return err
	}
	o.diam = v
	return nil
}

// Diam returns the diameter
func (o CircBasin) Diam() float64 { return o.diam }

// Rad returns the radius
func (o CircBasin) Rad() float64 { return o.diam / 2 }

// Area returns π・rad²
func (o CircBasin) Area() float64 { return math.Pi * math.Pow(o.Rad(), 2) }

// Corners holds the vertices of a rectangle
type Corners struct {
	LL, UL, LR, UR geo.Point // lower-left, upper-left, lower-right and upper-right
}

// RectBasin is a rectangular basin
//
//        ul ┌─────────┐ ur
//           │    c    │ ly
//        ll └─────────┘ lr
//               lx
//
// rotated clockwise by rot about its centre c
type RectBasin struct {
	Basin
	lx, ly float64 // lengths along local x and y; > 0
}

// NewRect returns a rectangular basin. Defaults: cx=cy=0, lx=ly=10, rot=0
func NewRect(prms dbf.Params) (o *RectBasin, err error) {
	o = &RectBasin{Basin: Basin{Name: "Unnamed Basin"}, lx: 10, ly: 10}
	for _, p := range prms {
		if err = o.Set(p.N, p.V); err != nil {
			return nil, err
		}
	}
	return
}

// Set sets a parameter; only this parameter is validated
func (o *RectBasin) Set(name string, v float64) error {
	switch strings.ToLower(name) {
	case "lx":
		if err := prm.Check("lx", v, prm.Positive); err != nil {
			return err
		}
		o.lx = v
	case "ly":
		if err := prm.Check("ly", v, prm.Positive); err != nil {
			return err
		}
		o.ly = v
	default:
		return o.Basin.Set(name, v)
	}
	return nil
}

// Lx returns the length along the local x axis
func (o RectBasin) Lx() float64 { return o.lx }

// Ly returns the length along the local y axis
func (o RectBasin) Ly() float64 { return o.ly }

// Area returns lx・ly
func (o RectBasin) Area() float64 { return o.lx * o.ly }

// Verts returns the unrotated vertices
func (o RectBasin) Verts() Corners {
	hx, hy := o.lx/2, o.ly/2
	return Corners{
		LL: geo.Point{X: o.Cx - hx, Y: o.Cy - hy},
		UL: geo.Point{X: o.Cx - hx, Y: o.Cy + hy},
		LR: geo.Point{X: o.Cx + hx, Y: o.Cy - hy},
		UR: geo.Point{X: o.Cx + hx, Y: o.Cy + hy},
	}
}

// VertsRot returns the vertices rotated about the centre by the basin rotation
func (o RectBasin) VertsRot() Corners {
	v := o.Verts()
	phi := o.RotRad()
	rot := func(p geo.Point) (q geo.Point) {
		q.X, q.Y = geo.RotatePoint(o.Cx, o.Cy, p.X, p.Y, phi)
		return
	}
	return Corners{LL: rot(v.LL), UL: rot(v.UL), LR: rot(v.LR), UR: rot(v.UR)}
}
