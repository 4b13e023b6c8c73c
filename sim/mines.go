// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gaf/ana"
	"github.com/cpmech/gaf/inp"
)

func init() {
	allocators["mine-unconf"] = func() Solution { return new(mineUnconf) }
	allocators["mine-unconf2"] = func() Solution { return new(mineUnconf2) }
	allocators["mine-leaky"] = func() Solution { return new(mineLeaky) }
	allocators["mine-trans"] = func() Solution { return new(mineTrans) }
}

// mineUnconf runs ana.MineSteadyRadUnconf
type mineUnconf struct {
	sol *ana.MineSteadyRadUnconf
}

// Init allocates the solution
func (o *mineUnconf) Init(m *Main) (err error) {
	o.sol, err = ana.NewMineSteadyRadUnconf(m.Aq, m.Sim.Data.Prms)
	return
}

// Run computes drawdown or inflow
func (o *mineUnconf) Run(out *inp.OutputData) (*ana.Table, error) {
	switch out.Key {
	case "dd":
		return o.sol.Dd(npts(out))
	case "inflow":
		ri, err := o.sol.Ri()
		if err != nil {
			return nil, err
		}
		qp, err := o.sol.Qp()
		if err != nil {
			return nil, err
		}
		res := ana.NewTable("pit inflow", "ri", "qp", "dp")
		res.Append(ri, qp, o.sol.Dp())
		return res, nil
	}
	return nil, badKey("mine-unconf", out, "dd", "inflow")
}

// mineUnconf2 runs ana.MineSteadyRadUnconf2
type mineUnconf2 struct {
	sol *ana.MineSteadyRadUnconf2
}

// Init allocates the solution
func (o *mineUnconf2) Init(m *Main) (err error) {
	o.sol, err = ana.NewMineSteadyRadUnconf2(m.Aq, m.Sim.Data.Prms)
	return
}

// Run computes drawdown or inflow
func (o *mineUnconf2) Run(out *inp.OutputData) (*ana.Table, error) {
	switch out.Key {
	case "dd":
		return o.sol.Dd(npts(out))
	case "inflow":
		ri, err := o.sol.Ri()
		if err != nil {
			return nil, err
		}
		qp1, err := o.sol.Qp1()
		if err != nil {
			return nil, err
		}
		qp2 := o.sol.Qp2()
		res := ana.NewTable("pit inflow", "ri", "qp1", "qp2", "qp", "dp")
		res.Append(ri, qp1, qp2, qp1+qp2, o.sol.Dp())
		return res, nil
	}
	return nil, badKey("mine-unconf2", out, "dd", "inflow")
}

// mineLeaky runs ana.MineSteadyRadLeaky
type mineLeaky struct {
	sol *ana.MineSteadyRadLeaky
}

// Init allocates the solution
func (o *mineLeaky) Init(m *Main) (err error) {
	o.sol, err = ana.NewMineSteadyRadLeaky(m.Aq, m.Sim.Data.Prms)
	return
}

// Run computes drawdown or radius of influence
func (o *mineLeaky) Run(out *inp.OutputData) (*ana.Table, error) {
	switch out.Key {
	case "dd":
		return o.sol.Dd(npts(out))
	case "inflow":
		ri, err := o.sol.Ri()
		if err != nil {
			return nil, err
		}
		res := ana.NewTable("pit inflow", "ri", "qp", "dp")
		res.Append(ri, o.sol.Qp(), o.sol.Dr(o.sol.Rp()))
		return res, nil
	}
	return nil, badKey("mine-leaky", out, "dd", "inflow")
}

// mineTrans runs ana.MineTransRadConf
type mineTrans struct {
	sol *ana.MineTransRadConf
}

// Init allocates the solution
func (o *mineTrans) Init(m *Main) (err error) {
	o.sol, err = ana.NewMineTransRadConf(m.Aq, m.Sim.Data.Prms)
	return
}

// Run computes pit drawdown, drawdown at a time or the target time
func (o *mineTrans) Run(out *inp.OutputData) (*ana.Table, error) {
	switch out.Key {
	case "dp":
		return o.sol.Dp(npts(out))
	case "dd":
		t, err := firstTime(out)
		if err != nil {
			return nil, err
		}
		return o.sol.Dd(t, npts(out))
	case "time":
		tt, err := o.sol.TargetTime()
		if err != nil {
			return nil, err
		}
		res := ana.NewTable("time to target pit drawdown", "time", "dp")
		res.Append(tt, o.sol.DpTarget())
		return res, nil
	}
	return nil, badKey("mine-trans", out, "dp", "dd", "time")
}
