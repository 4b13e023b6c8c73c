// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim builds and runs the analytic solutions described in .sim files
package sim

import (
	"fmt"
	"time"

	"github.com/cpmech/gaf/ana"
	"github.com/cpmech/gaf/aqf"
	"github.com/cpmech/gaf/bcs"
	"github.com/cpmech/gaf/bsn"
	"github.com/cpmech/gaf/inp"
	"github.com/cpmech/gaf/wel"
	"github.com/cpmech/gosl/chk"
)

// Main holds all objects of one simulation
type Main struct {
	Sim   *inp.Simulation    // input data
	Aq    *aqf.Aquifer       // aquifer
	Well  *wel.SteadyWell    // steady well; for transient wells only the geometry (q = 0)
	Trans *wel.TransientWell // transient well; nil if the well is steady
	Rect  *bsn.RectBasin     // rectangular basin
	Circ  *bsn.CircBasin     // circular basin
	Bcs   []*bcs.Steady      // boundary conditions at x=0 and x=L
	Sol   Solution           // solution
	Stats *Metrics           // metrics; may be nil
}

// NewMain reads a .sim file and allocates all objects
func NewMain(simfilepath, alias string, stats *Metrics) (o *Main, err error) {
	sim, err := inp.ReadSim(simfilepath, alias)
	if err != nil {
		if stats != nil {
			stats.Fail("", err)
		}
		return
	}
	return New(sim, stats)
}

// New allocates all objects of a simulation
func New(sim *inp.Simulation, stats *Metrics) (o *Main, err error) {

	// main
	o = &Main{Sim: sim, Aq: sim.Aquifer.Aq, Stats: stats}

	// well
	if sim.Well != nil {
		if sim.Well.Series == "" {
			o.Well, err = wel.NewSteady(sim.Well.Prms)
			if err != nil {
				return nil, o.fail(err)
			}
		} else {
			series, err := sim.Series.Get(sim.Well.Series, sim.DirIn)
			if err != nil {
				return nil, o.fail(err)
			}
			o.Trans, err = wel.NewTransient(sim.Well.Prms, series)
			if err != nil {
				return nil, o.fail(err)
			}
			o.Well = &wel.SteadyWell{Well: o.Trans.Well}
		}
	}

	// basin
	if sim.Basin != nil {
		switch sim.Basin.Shape {
		case "rect", "":
			o.Rect, err = bsn.NewRect(sim.Basin.Prms)
		case "circ":
			o.Circ, err = bsn.NewCirc(sim.Basin.Prms)
		default:
			err = chk.Err("basin shape %q is incorrect; options are \"rect\" and \"circ\"", sim.Basin.Shape)
		}
		if err != nil {
			return nil, o.fail(err)
		}
	}

	// boundary conditions
	for _, bd := range sim.Bcs {
		bc, err := bcs.New(bd.Prms)
		if err != nil {
			return nil, o.fail(err)
		}
		o.Bcs = append(o.Bcs, bc)
	}

	// solution
	o.Sol, err = NewSolution(sim.Data.Solution)
	if err != nil {
		return nil, o.fail(err)
	}
	err = o.Sol.Init(o)
	if err != nil {
		return nil, o.fail(err)
	}
	return
}

// Run computes all outputs
func (o *Main) Run() (res []*ana.Table, err error) {
	for i, out := range o.Sim.Outputs {
		t0 := time.Now()
		tab, err := o.Sol.Run(out)
		if err != nil {
			return nil, o.fail(fmt.Errorf("output %d (%q) failed: %w", i, out.Key, err))
		}
		if o.Stats != nil {
			o.Stats.Observe(o.Sim.Data.Solution, out.Key, time.Since(t0))
		}
		res = append(res, tab)
	}
	return
}

// fail records err and returns it
func (o *Main) fail(err error) error {
	if o.Stats != nil {
		o.Stats.Fail(o.Sim.Data.Solution, err)
	}
	return err
}
