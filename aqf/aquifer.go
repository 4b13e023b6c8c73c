// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package aqf implements aquifer models
//
//   T = K・B          transmissivity
//   S = Ss・B         storage coefficient (confined)
//   S = Sy            storage coefficient (unconfined)
//   D = T / S         diffusivity
//
// For unconfined kinds, T is computed with the static saturated thickness B; i.e. the
// dependency of T on the current head is not modelled.
package aqf

import (
	"math"
	"strings"

	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Aquifer holds the parameters of a homogeneous aquifer
type Aquifer struct {
	Name string // label

	// parameters
	kind  Kind    // category
	k     float64 // hydraulic conductivity [L/T]
	ss    float64 // specific storage [1/L] (confined)
	sy    float64 // specific yield [-] (unconfined)
	b     float64 // (static saturated) thickness [L]
	bot   float64 // bottom elevation [RL]
	l     float64 // length [L] (finite)
	kleak float64 // hydraulic conductivity of aquitard [L/T] (leaky)
	bleak float64 // thickness of aquitard [L] (leaky)
}

// New returns a new aquifer of given kind. Parameters not given in prms take default values:
//  K=1, Ss=1e-4, Sy=0.1, B=10, bot=0, L=1000, Kleak=1e-5, Bleak=10
func New(kind Kind, prms dbf.Params) (o *Aquifer, err error) {
	if kind < Conf2d || kind > Leaky2d {
		return nil, &prm.Error{Name: "kind", Value: float64(kind), Rule: "v ∈ {0, 1, ..., 6}"}
	}
	o = &Aquifer{Name: "Unnamed Aquifer", kind: kind, k: 1, ss: 1e-4, sy: 0.1, b: 10, l: 1000, kleak: 1e-5, bleak: 10}
	for _, p := range prms {
		err = o.Set(p.N, p.V)
		if err != nil {
			return nil, err
		}
	}
	return
}

// NewConf2d returns a 2D confined aquifer
func NewConf2d(K, Ss, B, bot float64) (*Aquifer, error) {
	return New(Conf2d, dbf.Params{
		&dbf.P{N: "K", V: K},
		&dbf.P{N: "Ss", V: Ss},
		&dbf.P{N: "B", V: B},
		&dbf.P{N: "bot", V: bot},
	})
}

// NewUnconf2d returns a 2D unconfined aquifer
func NewUnconf2d(K, Sy, B, bot float64) (*Aquifer, error) {
	return New(Unconf2d, dbf.Params{
		&dbf.P{N: "K", V: K},
		&dbf.P{N: "Sy", V: Sy},
		&dbf.P{N: "B", V: B},
		&dbf.P{N: "bot", V: bot},
	})
}

// Set sets parameter named name; only this parameter is validated
func (o *Aquifer) Set(name string, v float64) error {
	switch strings.ToLower(name) {
	case "k":
		if err := prm.Check("K", v, prm.Positive); err != nil {
			return err
		}
		o.k = v
	case "ss":
		if !o.kind.Confined() {
			return chk.Err("%s: parameter %q is not available; use \"Sy\"", o.kind, name)
		}
		if err := prm.Check("Ss", v, prm.Positive); err != nil {
			return err
		}
		o.ss = v
	case "sy":
		if o.kind.Confined() {
			return chk.Err("%s: parameter %q is not available; use \"Ss\"", o.kind, name)
		}
		if err := prm.Check("Sy", v, prm.OpenUnit); err != nil {
			return err
		}
		o.sy = v
	case "b":
		if err := prm.Check("B", v, prm.Positive); err != nil {
			return err
		}
		o.b = v
	case "bot":
		o.bot = v
	case "l":
		if o.kind.Extent() != Finite {
			return chk.Err("%s: parameter %q is only available in finite aquifers", o.kind, name)
		}
		if err := prm.Check("L", v, prm.Positive); err != nil {
			return err
		}
		o.l = v
	case "kleak":
		if !o.kind.Leaky() {
			return chk.Err("%s: parameter %q is only available in leaky aquifers", o.kind, name)
		}
		if err := prm.Check("Kleak", v, prm.Positive); err != nil {
			return err
		}
		o.kleak = v
	case "bleak":
		if !o.kind.Leaky() {
			return chk.Err("%s: parameter %q is only available in leaky aquifers", o.kind, name)
		}
		if err := prm.Check("Bleak", v, prm.Positive); err != nil {
			return err
		}
		o.bleak = v
	default:
		return chk.Err("aquifer: parameter named %q is incorrect", name)
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o Aquifer) GetPrms(example bool) dbf.Params {
	if example {
		o = Aquifer{kind: o.kind, k: 1, ss: 1e-4, sy: 0.1, b: 10, l: 1000, kleak: 1e-5, bleak: 10}
	}
	prms := dbf.Params{&dbf.P{N: "K", V: o.k}}
	if o.kind.Confined() {
		prms = append(prms, &dbf.P{N: "Ss", V: o.ss})
	} else {
		prms = append(prms, &dbf.P{N: "Sy", V: o.sy})
	}
	prms = append(prms, &dbf.P{N: "B", V: o.b}, &dbf.P{N: "bot", V: o.bot})
	if o.kind.Extent() == Finite {
		prms = append(prms, &dbf.P{N: "L", V: o.l})
	}
	if o.kind.Leaky() {
		prms = append(prms, &dbf.P{N: "Kleak", V: o.kleak}, &dbf.P{N: "Bleak", V: o.bleak})
	}
	return prms
}

// Kind returns the aquifer category
func (o Aquifer) Kind() Kind { return o.kind }

// K returns the hydraulic conductivity
func (o Aquifer) K() float64 { return o.k }

// Ss returns the specific storage; zero if unconfined
func (o Aquifer) Ss() float64 {
	if o.kind.Confined() {
		return o.ss
	}
	return 0
}

// Sy returns the specific yield; zero if confined
func (o Aquifer) Sy() float64 {
	if o.kind.Confined() {
		return 0
	}
	return o.sy
}

// B returns the thickness
func (o Aquifer) B() float64 { return o.b }

// Bot returns the bottom elevation
func (o Aquifer) Bot() float64 { return o.bot }

// L returns the length of finite aquifers; zero otherwise
func (o Aquifer) L() float64 {
	if o.kind.Extent() == Finite {
		return o.l
	}
	return 0
}

// Kleak returns the aquitard conductivity of leaky aquifers; zero otherwise
func (o Aquifer) Kleak() float64 {
	if o.kind.Leaky() {
		return o.kleak
	}
	return 0
}

// Bleak returns the aquitard thickness of leaky aquifers; zero otherwise
func (o Aquifer) Bleak() float64 {
	if o.kind.Leaky() {
		return o.bleak
	}
	return 0
}

// T returns the transmissivity K・B
func (o Aquifer) T() float64 { return o.k * o.b }

// S returns the storage coefficient
func (o Aquifer) S() float64 {
	if o.kind.Confined() {
		return o.ss * o.b
	}
	return o.sy
}

// D returns the diffusivity T/S
func (o Aquifer) D() float64 { return o.T() / o.S() }

// Top returns the top elevation bot + B
func (o Aquifer) Top() float64 { return o.bot + o.b }

// Swl returns the static water level bot + B
func (o Aquifer) Swl() float64 { return o.bot + o.b }

// LeakFactor returns the leakage factor λ = sqrt(T・Bleak/Kleak) of leaky aquifers; zero otherwise
func (o Aquifer) LeakFactor() float64 {
	if !o.kind.Leaky() {
		return 0
	}
	return math.Sqrt(o.T() * o.bleak / o.kleak)
}
