// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wel implements wells and stress series
package wel

import (
	"strings"

	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// State indicates what a well is doing during a period
type State int

// states
const (
	Off     State = iota // q == 0
	Extract              // q < 0
	Inject               // q > 0
)

// String returns "off", "extract" or "inject"
func (s State) String() string {
	switch s {
	case Extract:
		return "extract"
	case Inject:
		return "inject"
	}
	return "off"
}

// StateOf returns the state corresponding to the sign of rate q
func StateOf(q float64) State {
	if q < 0 {
		return Extract
	}
	if q > 0 {
		return Inject
	}
	return Off
}

// Well holds the geometry of a well
type Well struct {
	Name string  // label
	X, Y float64 // location
	r    float64 // radius > 0
	pf   float64 // penetration fraction 0 < pf ≤ 1
}

// Centre returns the location of the well
func (o Well) Centre() (x, y float64) { return o.X, o.Y }

// R returns the well radius
func (o Well) R() float64 { return o.r }

// Pf returns the penetration fraction
func (o Well) Pf() float64 { return o.pf }

// Set sets a geometry parameter; only this parameter is validated
func (o *Well) Set(name string, v float64) error {
	switch strings.ToLower(name) {
	case "x":
		o.X = v
	case "y":
		o.Y = v
	case "r":
		if err := prm.Check("r", v, prm.Positive); err != nil {
			return err
		}
		o.r = v
	case "pf":
		if err := prm.Check("pf", v, prm.UnitRight); err != nil {
			return err
		}
		o.pf = v
	default:
		return chk.Err("well: parameter named %q is incorrect", name)
	}
	return nil
}

// init sets defaults and parameters in prms, skipping the ones handled by skip
func (o *Well) init(name string, prms dbf.Params, skip func(p *dbf.P) (bool, error)) error {
	o.Name, o.r, o.pf = name, 0.05, 1
	for _, p := range prms {
		done, err := skip(p)
		if err != nil {
			return err
		}
		if done {
			continue
		}
		if err = o.Set(p.N, p.V); err != nil {
			return err
		}
	}
	return nil
}

// SteadyWell is a well with constant rate
//  q < 0: extraction;  q > 0: injection;  q == 0: off
type SteadyWell struct {
	Well
	Q float64 // rate [L³/T]
}

// NewSteady returns a steady well. Defaults: x=y=0, r=0.05, pf=1, q=0
func NewSteady(prms dbf.Params) (o *SteadyWell, err error) {
	o = new(SteadyWell)
	err = o.init("Steady state flowing well", prms, func(p *dbf.P) (bool, error) {
		if strings.ToLower(p.N) == "q" {
			o.Q = p.V
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return
}

// GetPrms gets the current parameters
func (o SteadyWell) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "x", V: o.X},
		&dbf.P{N: "y", V: o.Y},
		&dbf.P{N: "r", V: o.r},
		&dbf.P{N: "pf", V: o.pf},
		&dbf.P{N: "q", V: o.Q},
	}
}

// State returns the state of the well
func (o SteadyWell) State() State {
	return StateOf(o.Q)
}

// TransientWell is a well whose rate is given by a stress series
type TransientWell struct {
	Well
	Series *StressSeries // periods and rates
}

// NewTransient returns a transient well. A nil series means one unit period with zero rate
func NewTransient(prms dbf.Params, series *StressSeries) (o *TransientWell, err error) {
	o = new(TransientWell)
	err = o.init("Transient flowing well", prms, func(p *dbf.P) (bool, error) {
		if strings.ToLower(p.N) == "q" {
			return false, chk.Err("transient well: rates must be given by a stress series")
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	if series == nil {
		series, _ = NewStressSeries([]float64{1}, []float64{0})
	}
	o.Series = series
	return
}

// States returns the state of the well in each stress period
func (o TransientWell) States() []State {
	s := make([]State, o.Series.Len())
	for i, q := range o.Series.Values() {
		s[i] = StateOf(q)
	}
	return s
}
