// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gaf/aqf"
	"github.com/cpmech/gaf/grd"
	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gaf/wel"
)

// ThiemWell implements the Thiem (1906) steady radial flow solution
//
//   Δh(r₁,r₂) = -q・ln(r₂/r₁) / (2・π・T)
//
// Δh is the drawdown at r₁ relative to r₂; positive for extraction (q < 0)
type ThiemWell struct {
	Aq   *aqf.Aquifer    // infinite 2d aquifer
	Well *wel.SteadyWell // well
}

// NewThiemWell returns a new Thiem solution
func NewThiemWell(aq *aqf.Aquifer, well *wel.SteadyWell) (*ThiemWell, error) {
	if err := checkKind("Thiem", aq, aqf.Conf2d, aqf.Unconf2d); err != nil {
		return nil, err
	}
	return &ThiemWell{aq, well}, nil
}

// Hd computes the head difference between radii r1 and r2
func (o ThiemWell) Hd(r1, r2 float64) (float64, error) {
	if err := checkPositive("radius", []float64{r1, r2}); err != nil {
		return 0, err
	}
	return -o.Well.Q * math.Log(r2/r1) / (2 * math.Pi * o.Aq.T()), nil
}

// DupuitThiemWell implements steady radial flow to a well in an unconfined aquifer with
// uniform recharge R. The radius of influence encloses the recharge area balancing the well rate
//
//   rᵢ = sqrt(|q| / (π・R))
//   s(r) = -q・ln(rᵢ/r) / (2・π・T)
//
type DupuitThiemWell struct {
	Aq   *aqf.Aquifer    // unconfined 2d aquifer
	Well *wel.SteadyWell // extracting well
	rech float64         // recharge rate
}

// NewDupuitThiemWell returns a new Dupuit-Thiem solution with recharge R > 0
func NewDupuitThiemWell(aq *aqf.Aquifer, well *wel.SteadyWell, R float64) (*DupuitThiemWell, error) {
	if err := checkKind("Dupuit-Thiem", aq, aqf.Unconf2d); err != nil {
		return nil, err
	}
	if err := prm.Check("R", R, prm.Positive); err != nil {
		return nil, err
	}
	return &DupuitThiemWell{aq, well, R}, nil
}

// R returns the recharge rate
func (o DupuitThiemWell) R() float64 { return o.rech }

// SetR sets the recharge rate
func (o *DupuitThiemWell) SetR(v float64) error {
	if err := prm.Check("R", v, prm.Positive); err != nil {
		return err
	}
	o.rech = v
	return nil
}

// Ri computes the radius of influence. The well must be extracting
func (o DupuitThiemWell) Ri() (float64, error) {
	if o.Well.State() != wel.Extract {
		return 0, inputErr("Dupuit-Thiem requires an extracting well; q = %g", o.Well.Q)
	}
	return math.Sqrt(-o.Well.Q / (math.Pi * o.rech)), nil
}

// Dd computes the drawdown at radii rs
func (o DupuitThiemWell) Dd(rs []float64) (*Table, error) {
	if err := checkPositive("radius", rs); err != nil {
		return nil, err
	}
	ri, err := o.Ri()
	if err != nil {
		return nil, err
	}
	res := NewTable("Dupuit-Thiem drawdown", "radius", "dd")
	for _, r := range rs {
		res.Append(r, o.drawdown(r, ri))
	}
	return res, nil
}

// DdGrid computes the drawdown on a well grid with radius equal to the radius of influence
func (o DupuitThiemWell) DdGrid(gd int, local bool) (*Table, error) {
	ri, err := o.Ri()
	if err != nil {
		return nil, err
	}
	g, err := grd.NewWellGrid(o.Well, ri, gd)
	if err != nil {
		return nil, err
	}
	return gridTable("Dupuit-Thiem drawdown", g, o.Well.R(), local, func(r float64) float64 {
		return o.drawdown(r, ri)
	}), nil
}

// drawdown computes s(r) given the radius of influence
func (o DupuitThiemWell) drawdown(r, ri float64) float64 {
	return -o.Well.Q * math.Log(ri/r) / (2 * math.Pi * o.Aq.T())
}

// gridTable evaluates dd on all points of a well grid. Points within the well radius
// take the radius of the previous point (the well radius for the first point)
func gridTable(title string, g *grd.WellGrid, rw float64, local bool, dd func(r float64) float64) (res *Table) {
	p := g.Points()
	x, y := p.Worldx, p.Worldy
	if local {
		x, y = p.Locx, p.Locy
	}
	res = NewTable(title, "x", "y", "radius", "dd")
	for k, r := range p.Rad {
		if r <= rw {
			r = rw
			if k > 0 {
				r = p.Rad[k-1]
			}
		}
		res.Append(x[k], y[k], r, dd(r))
	}
	return
}
