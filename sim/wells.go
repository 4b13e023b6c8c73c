// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"

	"github.com/cpmech/gaf/ana"
	"github.com/cpmech/gaf/inp"
	"github.com/cpmech/gosl/chk"
)

func init() {
	allocators["thiem"] = func() Solution { return new(thiem) }
	allocators["theis"] = func() Solution { return new(theis) }
	allocators["dupuit"] = func() Solution { return new(dupuit) }
}

// thiem runs ana.ThiemWell
type thiem struct {
	sol *ana.ThiemWell
}

// Init allocates the solution
func (o *thiem) Init(m *Main) (err error) {
	if m.Well == nil {
		return chk.Err("thiem: well is required")
	}
	if m.Trans != nil {
		return fmt.Errorf("%w: thiem: steady well is required; stress series %q given", ana.ErrInput, m.Sim.Well.Series)
	}
	if len(m.Sim.Data.Prms) > 0 {
		return chk.Err("thiem: solution has no parameters")
	}
	o.sol, err = ana.NewThiemWell(m.Aq, m.Well)
	return
}

// Run computes head differences between consecutive radii
func (o *thiem) Run(out *inp.OutputData) (res *ana.Table, err error) {
	if out.Key != "hd" {
		return nil, badKey("thiem", out, "hd")
	}
	if len(out.R) < 2 {
		return nil, chk.Err("thiem: at least two radii are required")
	}
	res = ana.NewTable("Thiem head difference", "r1", "r2", "hd")
	for i := 1; i < len(out.R); i++ {
		hd, err := o.sol.Hd(out.R[i-1], out.R[i])
		if err != nil {
			return nil, err
		}
		res.Append(out.R[i-1], out.R[i], hd)
	}
	return
}

// theis runs ana.TheisWell with steady or transient wells
type theis struct {
	m   *Main
	sol *ana.TheisWell
}

// Init allocates the solution
func (o *theis) Init(m *Main) (err error) {
	if m.Well == nil {
		return chk.Err("theis: well is required")
	}
	o.m = m
	o.sol, err = ana.NewTheisWell(m.Aq, m.Well)
	if err != nil {
		return
	}
	for _, p := range m.Sim.Data.Prms {
		switch p.N {
		case "qf":
			err = o.sol.SetQf(p.V)
		default:
			err = chk.Err("theis: parameter named %q is incorrect", p.N)
		}
		if err != nil {
			return
		}
	}
	return
}

// Run computes drawdown or radius of influence
func (o *theis) Run(out *inp.OutputData) (*ana.Table, error) {
	switch out.Key {
	case "dd":
		if out.Grid != nil {
			t, err := firstTime(out)
			if err != nil {
				return nil, err
			}
			if o.m.Trans != nil {
				return o.sol.DdSeriesGrid(o.m.Trans, t, out.Grid.Gr, out.Grid.Gd, out.Grid.Local)
			}
			return o.sol.DdGrid(t, out.Grid.Gr, out.Grid.Gd, out.Grid.Local)
		}
		if o.m.Trans != nil {
			if len(out.R) != 1 {
				return nil, chk.Err("theis: one radius is required with stress series; %d given", len(out.R))
			}
			return o.sol.DdSeries(o.m.Trans, out.T, out.R[0])
		}
		return o.sol.Dd(out.T, out.R)
	case "ri":
		return o.sol.Ri(out.T)
	}
	return nil, badKey("theis", out, "dd", "ri")
}

// dupuit runs ana.DupuitThiemWell
type dupuit struct {
	sol *ana.DupuitThiemWell
}

// Init allocates the solution. Recharge R defaults to 1e-4
func (o *dupuit) Init(m *Main) (err error) {
	if m.Well == nil {
		return chk.Err("dupuit: well is required")
	}
	if m.Trans != nil {
		return fmt.Errorf("%w: dupuit: steady well is required; stress series %q given", ana.ErrInput, m.Sim.Well.Series)
	}
	for _, p := range m.Sim.Data.Prms {
		if p.N != "R" {
			return chk.Err("dupuit: parameter named %q is incorrect", p.N)
		}
	}
	o.sol, err = ana.NewDupuitThiemWell(m.Aq, m.Well, inp.PrmsGet(m.Sim.Data.Prms, "R", 1e-4))
	return
}

// Run computes drawdown or radius of influence
func (o *dupuit) Run(out *inp.OutputData) (*ana.Table, error) {
	switch out.Key {
	case "dd":
		if out.Grid != nil {
			return o.sol.DdGrid(out.Grid.Gd, out.Grid.Local)
		}
		return o.sol.Dd(out.R)
	case "ri":
		ri, err := o.sol.Ri()
		if err != nil {
			return nil, err
		}
		res := ana.NewTable("Dupuit-Thiem radius of influence", "ri")
		res.Append(ri)
		return res, nil
	}
	return nil, badKey("dupuit", out, "dd", "ri")
}
