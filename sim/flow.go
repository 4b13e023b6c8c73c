// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gaf/ana"
	"github.com/cpmech/gaf/geo"
	"github.com/cpmech/gaf/inp"
	"github.com/cpmech/gosl/chk"
)

func init() {
	allocators["glover"] = func() Solution { return new(glover) }
	allocators["swi"] = func() Solution { return new(swi) }
	allocators["steady1d"] = func() Solution { return new(steady1d) }
}

// glover runs ana.GloverBasin
type glover struct {
	sol *ana.GloverBasin
}

// Init allocates the solution
func (o *glover) Init(m *Main) (err error) {
	if m.Rect == nil {
		return chk.Err("glover: rectangular basin is required")
	}
	o.sol, err = ana.NewGloverBasin(m.Aq, m.Rect)
	if err != nil {
		return
	}
	for _, p := range m.Sim.Data.Prms {
		if p.N != "nquad" || p.V < 1 {
			return chk.Err("glover: parameter %q = %g is incorrect", p.N, p.V)
		}
		o.sol.Nquad = int(p.V)
	}
	return
}

// Run computes the mound height at locations or on a grid
func (o *glover) Run(out *inp.OutputData) (*ana.Table, error) {
	if out.Key != "impress" {
		return nil, badKey("glover", out, "impress")
	}
	if out.Grid != nil {
		t, err := firstTime(out)
		if err != nil {
			return nil, err
		}
		res, _, err := o.sol.ImpressGrid(t, out.Q, out.Grid.Gr, out.Grid.Gd, out.Grid.Local)
		return res, err
	}
	locs := make([]geo.Point, len(out.X))
	for i := range out.X {
		locs[i] = geo.Point{X: out.X[i], Y: out.Y[i]}
	}
	res, _, err := o.sol.Impress(out.T, locs, out.Q)
	return res, err
}

// swi runs ana.GloverSWI
type swi struct {
	sol *ana.GloverSWI
}

// Init allocates the solution
func (o *swi) Init(m *Main) (err error) {
	o.sol, err = ana.NewGloverSWI(m.Aq, m.Sim.Data.Prms)
	return
}

// Run computes the water table and interface
func (o *swi) Run(out *inp.OutputData) (*ana.Table, error) {
	if out.Key != "swi" {
		return nil, badKey("swi", out, "swi")
	}
	return o.sol.Swi(npts(out))
}

// steady1d runs ana.Steady1dFlow
type steady1d struct {
	sol *ana.Steady1dFlow
}

// Init allocates the solution. Recharge R defaults to 0
func (o *steady1d) Init(m *Main) (err error) {
	if len(m.Bcs) != 2 {
		return chk.Err("steady1d: two boundary conditions are required; %d given", len(m.Bcs))
	}
	for _, p := range m.Sim.Data.Prms {
		if p.N != "R" {
			return chk.Err("steady1d: parameter named %q is incorrect", p.N)
		}
	}
	o.sol, err = ana.NewSteady1dFlow(m.Aq, m.Bcs[0], m.Bcs[1], inp.PrmsGet(m.Sim.Data.Prms, "R", 0))
	return
}

// Run computes heads, flows or gradients
func (o *steady1d) Run(out *inp.OutputData) (*ana.Table, error) {
	switch out.Key {
	case "h":
		return o.sol.H(npts(out))
	case "q":
		return o.sol.Q(npts(out))
	case "grad":
		return o.sol.HGrad(npts(out))
	}
	return nil, badKey("steady1d", out, "h", "q", "grad")
}
