// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"sort"

	"github.com/cpmech/gaf/aqf"
	"github.com/cpmech/gaf/grd"
	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gaf/wel"
	"github.com/cpmech/gosl/io"
)

// TheisWell implements the Theis (1935) transient radial flow solution
//
//   u = r²・S / (4・T・t)
//   s(r,t) = -q・W(u) / (4・π・T)
//
// s is positive for extraction (q < 0)
type TheisWell struct {
	Aq   *aqf.Aquifer    // infinite 2d aquifer
	Well *wel.SteadyWell // well
	qf   float64         // fraction of well rate defining the radius of influence
}

// NewTheisWell returns a new Theis solution with qf = 0.99
func NewTheisWell(aq *aqf.Aquifer, well *wel.SteadyWell) (*TheisWell, error) {
	if err := checkKind("Theis", aq, aqf.Conf2d, aqf.Unconf2d); err != nil {
		return nil, err
	}
	return &TheisWell{aq, well, 0.99}, nil
}

// Qf returns the fraction of well rate defining the radius of influence
func (o TheisWell) Qf() float64 { return o.qf }

// SetQf sets the fraction of well rate defining the radius of influence; 0 ≤ v < 1
func (o *TheisWell) SetQf(v float64) error {
	if err := prm.Check("qf", v, prm.Fraction); err != nil {
		return err
	}
	o.qf = v
	return nil
}

// Drawdown computes s(r,t) for r > 0 and t > 0
func (o TheisWell) Drawdown(r, t float64) float64 {
	T := o.Aq.T()
	return -o.Well.Q * W(TheisU(r, t, T, o.Aq.S())) / (4 * math.Pi * T)
}

// Rinf computes the radius of influence at time t
func (o TheisWell) Rinf(t float64) (float64, error) {
	return TheisRinf(o.Aq.T(), o.Aq.S(), t, o.qf)
}

// Ri computes the radius of influence at times ts
func (o TheisWell) Ri(ts []float64) (*Table, error) {
	if err := checkPositive("time", ts); err != nil {
		return nil, err
	}
	res := NewTable(io.Sf("Theis radius of influence (qf = %g)", o.qf), "time", "ri")
	for _, t := range ts {
		ri, err := o.Rinf(t)
		if err != nil {
			return nil, err
		}
		res.Append(t, ri)
	}
	return res, nil
}

// Dd computes the drawdown at times ts (sorted) and radii rs. One column per radius
// named "r<radius>" is returned
func (o TheisWell) Dd(ts, rs []float64) (*Table, error) {
	if err := checkPositive("time", ts); err != nil {
		return nil, err
	}
	if err := checkPositive("radius", rs); err != nil {
		return nil, err
	}
	times := append([]float64{}, ts...)
	sort.Float64s(times)
	res := NewTable("Theis drawdown")
	res.Set("time", times)
	for _, r := range rs {
		dd := make([]float64, len(times))
		for i, t := range times {
			dd[i] = o.Drawdown(r, t)
		}
		res.Set(io.Sf("r%g", r), dd)
	}
	return res, nil
}

// DdGrid computes the drawdown at time t on a grid centred on the well
func (o TheisWell) DdGrid(t float64, gr float64, gd int, local bool) (*Table, error) {
	if t <= 0 {
		return nil, inputErr("time must be greater than zero; %g is invalid", t)
	}
	g, err := grd.NewWellGrid(o.Well, gr, gd)
	if err != nil {
		return nil, err
	}
	return gridTable(io.Sf("Theis drawdown at t = %g", t), g, o.Well.R(), local, func(r float64) float64 {
		return o.Drawdown(r, t)
	}), nil
}

// DdSeries computes the drawdown at radius r and times ts caused by a well following a
// stress series. Rate changes are superposed:
//
//   s(r,t) = Σᵢ -(qᵢ - qᵢ₋₁)・W(u(r, t - tᵢ)) / (4・π・T)   for all tᵢ < t
//
// where tᵢ is the start of period i. The rate is zero after the last period
func (o TheisWell) DdSeries(tw *wel.TransientWell, ts []float64, r float64) (*Table, error) {
	if err := checkPositive("time", ts); err != nil {
		return nil, err
	}
	if r <= 0 {
		return nil, inputErr("radius must be greater than zero; %g is invalid", r)
	}
	times := append([]float64{}, ts...)
	sort.Float64s(times)
	res := NewTable(io.Sf("Theis drawdown at r = %g for a stress series", r), "time", "q", "dd")
	for _, t := range times {
		res.Append(t, tw.Series.Value(t), o.superpose(tw, r, t))
	}
	return res, nil
}

// DdSeriesGrid computes the drawdown at time t on a grid centred on a well following a
// stress series
func (o TheisWell) DdSeriesGrid(tw *wel.TransientWell, t, gr float64, gd int, local bool) (*Table, error) {
	if t <= 0 {
		return nil, inputErr("time must be greater than zero; %g is invalid", t)
	}
	g, err := grd.NewWellGrid(tw.Well, gr, gd)
	if err != nil {
		return nil, err
	}
	return gridTable(io.Sf("Theis drawdown at t = %g for a stress series", t), g, tw.R(), local, func(r float64) float64 {
		return o.superpose(tw, r, t)
	}), nil
}

// superpose sums the drawdown caused by every rate change before t
func (o TheisWell) superpose(tw *wel.TransientWell, r, t float64) (s float64) {
	T, S := o.Aq.T(), o.Aq.S()
	rates := append(tw.Series.Values(), 0)
	qprev := 0.0
	for i, ti := range tw.Series.Times() {
		if ti >= t {
			break
		}
		dq := rates[i] - qprev
		qprev = rates[i]
		if dq != 0 {
			s -= dq * W(TheisU(r, t-ti, T, S)) / (4 * math.Pi * T)
		}
	}
	return
}
