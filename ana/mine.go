// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gaf/aqf"
	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gaf/roots"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// mine holds the pit radius shared by all mine inflow solutions
type mine struct {
	Aq *aqf.Aquifer // aquifer
	rp float64      // pit radius
}

// Rp returns the pit radius
func (o mine) Rp() float64 { return o.rp }

// setPrms calls set for each parameter
func setPrms(prms dbf.Params, set func(name string, v float64) error) error {
	for _, p := range prms {
		if err := set(p.N, p.V); err != nil {
			return err
		}
	}
	return nil
}

// radii returns n ≥ 2 radii from rp to ri
func radii(n int, rp, ri float64) ([]float64, error) {
	if n < 2 {
		return nil, inputErr("at least 2 points are required; n = %d", n)
	}
	return utl.LinSpace(rp, ri, n), nil
}

// MineSteadyRadUnconf implements steady radial inflow to a pit in an unconfined aquifer
// with uniform recharge R. The pit lake level hp is measured from the aquifer base
//
//   rᵢ = sqrt(K・(B² - hp²) / (R・ln(rᵢ/rp)))     (fixed point from rᵢ = 10・rp)
//   qp = π・R・(rᵢ² - rp²)
//   h(r) = sqrt(B² - R・rᵢ²・ln(rᵢ/r) / K)
//
type MineSteadyRadUnconf struct {
	mine
	hp   float64 // pit lake level
	rech float64 // recharge rate
}

// NewMineSteadyRadUnconf returns a new solution. Defaults: rp=100, hp=0.9B, R=1e-4
func NewMineSteadyRadUnconf(aq *aqf.Aquifer, prms dbf.Params) (o *MineSteadyRadUnconf, err error) {
	if err = checkKind("mine inflow", aq, aqf.Unconf2d); err != nil {
		return
	}
	o = &MineSteadyRadUnconf{mine{aq, 100}, 0.9 * aq.B(), 1e-4}
	if err = setPrms(prms, o.Set); err != nil {
		return nil, err
	}
	return
}

// Set sets parameter
func (o *MineSteadyRadUnconf) Set(name string, v float64) error {
	switch name {
	case "rp":
		return setPositive(name, v, &o.rp)
	case "R":
		return setPositive(name, v, &o.rech)
	case "hp":
		return setLevel(name, v, o.Aq.B(), &o.hp)
	}
	return chk.Err("mine inflow: parameter named %q is incorrect", name)
}

// Hp returns the pit lake level
func (o MineSteadyRadUnconf) Hp() float64 { return o.hp }

// R returns the recharge rate
func (o MineSteadyRadUnconf) R() float64 { return o.rech }

// Ri computes the radius of influence
func (o MineSteadyRadUnconf) Ri() (float64, error) {
	K, B := o.Aq.K(), o.Aq.B()
	return roots.FixedPoint("ri", 10*o.rp, func(r float64) float64 {
		return math.Sqrt(K * (B*B - o.hp*o.hp) / (o.rech * math.Log(r/o.rp)))
	})
}

// Qp computes the pit inflow
func (o MineSteadyRadUnconf) Qp() (float64, error) {
	ri, err := o.Ri()
	if err != nil {
		return 0, err
	}
	return math.Pi * o.rech * (ri*ri - o.rp*o.rp), nil
}

// Dp returns the drawdown of the pit lake level
func (o MineSteadyRadUnconf) Dp() float64 { return o.Aq.B() - o.hp }

// Hr computes the head at radius r
func (o MineSteadyRadUnconf) Hr(r float64) (float64, error) {
	ri, err := o.Ri()
	if err != nil {
		return 0, err
	}
	return o.hr(r, ri), nil
}

func (o MineSteadyRadUnconf) hr(r, ri float64) float64 {
	B := o.Aq.B()
	return math.Sqrt(B*B - o.rech*ri*ri*math.Log(ri/r)/o.Aq.K())
}

// Dd computes drawdown and head at n radii from rp to ri
func (o MineSteadyRadUnconf) Dd(n int) (*Table, error) {
	ri, err := o.Ri()
	if err != nil {
		return nil, err
	}
	rs, err := radii(n, o.rp, ri)
	if err != nil {
		return nil, err
	}
	res := NewTable(io.Sf("mine inflow in unconfined aquifer (ri = %g)", ri), "radius", "drawdown", "head")
	B := o.Aq.B()
	for _, r := range rs {
		h := o.hr(r, ri)
		res.Append(r, B-h, h)
	}
	return res, nil
}

// MineSteadyRadUnconf2 extends MineSteadyRadUnconf with a pit lake of depth D and
// inflow through the pit floor from a lower aquifer with conductivities kx and kz
//
//   rᵢ = sqrt(((B² - hp²)・K/R + (rᵢ² - rp²)/2) / ln(rᵢ/rp))
//   qp₁ = π・R・(rᵢ² - rp²)
//   qp₂ = 4・rp・(B - D)・sqrt(kx・kz)
//   h(r) = sqrt(hp² + R/K・(rᵢ²・ln(r/rp) - (r² - rp²)/2))
//
type MineSteadyRadUnconf2 struct {
	MineSteadyRadUnconf
	depth float64 // pit lake depth
	kx    float64 // horizontal conductivity of lower aquifer
	kz    float64 // vertical conductivity of lower aquifer
}

// NewMineSteadyRadUnconf2 returns a new solution. Defaults as MineSteadyRadUnconf and D=0, kx=kz=1
func NewMineSteadyRadUnconf2(aq *aqf.Aquifer, prms dbf.Params) (o *MineSteadyRadUnconf2, err error) {
	if err = checkKind("mine inflow", aq, aqf.Unconf2d); err != nil {
		return
	}
	o = &MineSteadyRadUnconf2{MineSteadyRadUnconf{mine{aq, 100}, 0.9 * aq.B(), 1e-4}, 0, 1, 1}
	if err = setPrms(prms, o.Set); err != nil {
		return nil, err
	}
	return
}

// Set sets parameter
func (o *MineSteadyRadUnconf2) Set(name string, v float64) error {
	switch name {
	case "kx":
		return setPositive(name, v, &o.kx)
	case "kz":
		return setPositive(name, v, &o.kz)
	case "D":
		if err := prm.Check(name, v, prm.NonNegative); err != nil {
			return err
		}
		if err := prm.AtMost(name, v, o.hp, "hp"); err != nil {
			return err
		}
		o.depth = v
		return nil
	case "hp":
		if v < o.depth {
			return &prm.Error{Name: name, Value: v, Rule: io.Sf("v ≥ D = %g", o.depth)}
		}
	}
	return o.MineSteadyRadUnconf.Set(name, v)
}

// D returns the pit lake depth
func (o MineSteadyRadUnconf2) D() float64 { return o.depth }

// Ri computes the radius of influence
func (o MineSteadyRadUnconf2) Ri() (float64, error) {
	K, B, rp := o.Aq.K(), o.Aq.B(), o.rp
	return roots.FixedPoint("ri", 10*rp, func(r float64) float64 {
		return math.Sqrt(((B*B-o.hp*o.hp)*K/o.rech + (r*r-rp*rp)/2) / math.Log(r/rp))
	})
}

// Qp1 computes the inflow from the upper aquifer
func (o MineSteadyRadUnconf2) Qp1() (float64, error) {
	ri, err := o.Ri()
	if err != nil {
		return 0, err
	}
	return math.Pi * o.rech * (ri*ri - o.rp*o.rp), nil
}

// Qp2 computes the inflow from the lower aquifer
func (o MineSteadyRadUnconf2) Qp2() float64 {
	return 4 * o.rp * (o.Aq.B() - o.depth) * math.Sqrt(o.kx*o.kz)
}

// Qp computes the total pit inflow
func (o MineSteadyRadUnconf2) Qp() (float64, error) {
	q1, err := o.Qp1()
	if err != nil {
		return 0, err
	}
	return q1 + o.Qp2(), nil
}

// Hr computes the head at radius r
func (o MineSteadyRadUnconf2) Hr(r float64) (float64, error) {
	ri, err := o.Ri()
	if err != nil {
		return 0, err
	}
	return o.hr(r, ri), nil
}

func (o MineSteadyRadUnconf2) hr(r, ri float64) float64 {
	rp := o.rp
	return math.Sqrt(o.hp*o.hp + o.rech/o.Aq.K()*(ri*ri*math.Log(r/rp)-(r*r-rp*rp)/2))
}

// Dd computes drawdown and head at n radii from rp to ri
func (o MineSteadyRadUnconf2) Dd(n int) (*Table, error) {
	ri, err := o.Ri()
	if err != nil {
		return nil, err
	}
	rs, err := radii(n, o.rp, ri)
	if err != nil {
		return nil, err
	}
	res := NewTable(io.Sf("mine inflow in unconfined aquifer with pit lake (ri = %g)", ri), "radius", "drawdown", "head")
	B := o.Aq.B()
	for _, r := range rs {
		h := o.hr(r, ri)
		res.Append(r, B-h, h)
	}
	return res, nil
}

// MineSteadyRadLeaky implements steady radial inflow qp to a pit in a leaky aquifer below
// an aquitard (Kleak, Bleak) with constant head h0 above it
//
//   λ = sqrt(T・Bleak / Kleak)
//   s(r) = K₀(r/λ)・qp / (2・π・T)
//   leakage(r) = s(r)・Kleak / Bleak
//
// rᵢ is where s equals 0.1% of h0 (bisection on [rp, 10⁶・rp])
type MineSteadyRadLeaky struct {
	mine
	qp float64 // pit inflow
	h0 float64 // head above aquitard
}

// NewMineSteadyRadLeaky returns a new solution. Defaults: rp=100, qp=1000, h0=B+Bleak+10
func NewMineSteadyRadLeaky(aq *aqf.Aquifer, prms dbf.Params) (o *MineSteadyRadLeaky, err error) {
	if err = checkKind("leaky mine inflow", aq, aqf.Leaky2d); err != nil {
		return
	}
	o = &MineSteadyRadLeaky{mine{aq, 100}, 1000, aq.B() + aq.Bleak() + 10}
	if err = setPrms(prms, o.Set); err != nil {
		return nil, err
	}
	return
}

// Set sets parameter
func (o *MineSteadyRadLeaky) Set(name string, v float64) error {
	switch name {
	case "rp":
		return setPositive(name, v, &o.rp)
	case "qp":
		return setPositive(name, v, &o.qp)
	case "h0":
		if err := prm.Above(name, v, o.Aq.B()+o.Aq.Bleak(), "B+Bleak"); err != nil {
			return err
		}
		o.h0 = v
		return nil
	}
	return chk.Err("leaky mine inflow: parameter named %q is incorrect", name)
}

// Qp returns the pit inflow
func (o MineSteadyRadLeaky) Qp() float64 { return o.qp }

// H0 returns the head above the aquitard
func (o MineSteadyRadLeaky) H0() float64 { return o.h0 }

// Ri computes the radius of influence
func (o MineSteadyRadLeaky) Ri() (float64, error) {
	lf := o.Aq.LeakFactor()
	targ := 2 * math.Pi * o.Aq.T() * 0.001 * o.h0 / o.qp
	return roots.Bisect("ri", o.rp, o.rp*1e6, func(r float64) bool {
		return fun.ModBesselK0(r/lf) > targ
	})
}

// Dr computes the drawdown at radius r
func (o MineSteadyRadLeaky) Dr(r float64) float64 {
	return fun.ModBesselK0(r/o.Aq.LeakFactor()) * o.qp / (2 * math.Pi * o.Aq.T())
}

// Hr computes the head at radius r
func (o MineSteadyRadLeaky) Hr(r float64) float64 { return o.h0 - o.Dr(r) }

// Leak computes the leakage rate through the aquitard at radius r
func (o MineSteadyRadLeaky) Leak(r float64) float64 {
	return o.Dr(r) * o.Aq.Kleak() / o.Aq.Bleak()
}

// Dd computes drawdown, head and leakage at n radii from rp to ri
func (o MineSteadyRadLeaky) Dd(n int) (*Table, error) {
	ri, err := o.Ri()
	if err != nil {
		return nil, err
	}
	rs, err := radii(n, o.rp, ri)
	if err != nil {
		return nil, err
	}
	res := NewTable(io.Sf("mine inflow in leaky aquifer (ri = %g)", ri), "radius", "drawdown", "head", "leakage")
	for _, r := range rs {
		d := o.Dr(r)
		res.Append(r, d, o.h0-d, d*o.Aq.Kleak()/o.Aq.Bleak())
	}
	return res, nil
}

// MineTransRadConf implements transient radial inflow qp to a pit in a confined aquifer
// (Theis) and the time when the pit drawdown reaches a target
//
//   s(r,t) = W(u)・qp / (4・π・T)
//   rᵢ(t) = sqrt(-4・T・t・ln(0.05) / S)
//
// The target time is found by bisection on [1, 10¹⁰]
type MineTransRadConf struct {
	mine
	qp    float64 // pit inflow
	h0    float64 // initial head
	dpTrg float64 // target pit drawdown
}

// NewMineTransRadConf returns a new solution. Defaults: rp=100, qp=1000, h0=B+10, dp=10
func NewMineTransRadConf(aq *aqf.Aquifer, prms dbf.Params) (o *MineTransRadConf, err error) {
	if err = checkKind("transient mine inflow", aq, aqf.Conf2d); err != nil {
		return
	}
	o = &MineTransRadConf{mine{aq, 100}, 1000, aq.B() + 10, 10}
	if err = setPrms(prms, o.Set); err != nil {
		return nil, err
	}
	return
}

// Set sets parameter
func (o *MineTransRadConf) Set(name string, v float64) error {
	switch name {
	case "rp":
		return setPositive(name, v, &o.rp)
	case "qp":
		return setPositive(name, v, &o.qp)
	case "dp":
		return setPositive(name, v, &o.dpTrg)
	case "h0":
		if err := prm.Above(name, v, o.Aq.B(), "B"); err != nil {
			return err
		}
		o.h0 = v
		return nil
	}
	return chk.Err("transient mine inflow: parameter named %q is incorrect", name)
}

// Qp returns the pit inflow
func (o MineTransRadConf) Qp() float64 { return o.qp }

// H0 returns the initial head
func (o MineTransRadConf) H0() float64 { return o.h0 }

// DpTarget returns the target pit drawdown
func (o MineTransRadConf) DpTarget() float64 { return o.dpTrg }

// Drt computes the drawdown at radius r and time t
func (o MineTransRadConf) Drt(r, t float64) float64 {
	T := o.Aq.T()
	return W(TheisU(r, t, T, o.Aq.S())) * o.qp / (4 * math.Pi * T)
}

// Hrt computes the head at radius r and time t
func (o MineTransRadConf) Hrt(r, t float64) float64 { return o.h0 - o.Drt(r, t) }

// Ri computes the radius of influence at time t
func (o MineTransRadConf) Ri(t float64) float64 {
	return math.Sqrt(math.Log(0.05) * -4 * o.Aq.T() * t / o.Aq.S())
}

// TargetTime computes the time when the pit drawdown reaches the target
func (o MineTransRadConf) TargetTime() (float64, error) {
	tmin, tmax := 1.0, 1e10
	if o.Drt(o.rp, tmax) < o.dpTrg {
		return 0, inputErr("target drawdown %g is not reached before t = %g", o.dpTrg, tmax)
	}
	return roots.Bisect("time", tmin, tmax, func(t float64) bool {
		return o.Drt(o.rp, t) < o.dpTrg
	})
}

// Dp computes pit drawdown, head and radius of influence at n times up to the target time
func (o MineTransRadConf) Dp(n int) (*Table, error) {
	if n < 1 {
		return nil, inputErr("at least 1 point is required; n = %d", n)
	}
	tt, err := o.TargetTime()
	if err != nil {
		return nil, err
	}
	res := NewTable(io.Sf("pit drawdown up to target time %g", tt), "time", "drawdown", "head", "ri")
	for _, t := range utl.LinSpace(tt/float64(n), tt, n) {
		d := o.Drt(o.rp, t)
		res.Append(t, d, o.h0-d, o.Ri(t))
	}
	return res, nil
}

// Dd computes drawdown and head at time t and n radii from rp to ri(t)
func (o MineTransRadConf) Dd(t float64, n int) (*Table, error) {
	if t <= 0 {
		return nil, inputErr("time must be greater than zero; %g is invalid", t)
	}
	ri := o.Ri(t)
	if ri <= o.rp {
		return nil, inputErr("radius of influence %g at t = %g is within the pit", ri, t)
	}
	rs, err := radii(n, o.rp, ri)
	if err != nil {
		return nil, err
	}
	res := NewTable(io.Sf("drawdown at t = %g", t), "radius", "drawdown", "head")
	for _, r := range rs {
		d := o.Drt(r, t)
		res.Append(r, d, o.h0-d)
	}
	return res, nil
}

// setPositive validates v > 0 and stores it
func setPositive(name string, v float64, dest *float64) error {
	if err := prm.Check(name, v, prm.Positive); err != nil {
		return err
	}
	*dest = v
	return nil
}

// setLevel validates 0 < v < top and stores it
func setLevel(name string, v, top float64, dest *float64) error {
	if err := prm.Check(name, v, prm.Positive); err != nil {
		return err
	}
	if err := prm.Below(name, v, top, "B"); err != nil {
		return err
	}
	*dest = v
	return nil
}
