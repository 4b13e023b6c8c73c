// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gaf/aqf"
	"github.com/cpmech/gaf/bsn"
	"github.com/cpmech/gaf/geo"
	"github.com/cpmech/gaf/grd"
	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/integrate/quad"
)

// GloverBasin implements the Glover (1960) groundwater mound below a rectangular basin
// infiltrating at rate q
//
//                   t
//   h(x,y,t) = q/(4S) ⌠ [erfc(u₂) - erfc(u₁)]・[erfc(u₄) - erfc(u₃)] dτ
//                     ⌡ 0
//
//   u₁,₂ = (x ∓ Lx/2) / sqrt(4・T・(t-τ)/S)
//   u₃,₄ = (y ∓ Ly/2) / sqrt(4・T・(t-τ)/S)
//
// x and y are offsets from the basin centre along the basin sides
type GloverBasin struct {
	Aq    *aqf.Aquifer   // infinite 2d aquifer
	Basin *bsn.RectBasin // basin
	Nquad int            // number of Gauss-Legendre points
}

// NewGloverBasin returns a new Glover solution
func NewGloverBasin(aq *aqf.Aquifer, basin *bsn.RectBasin) (*GloverBasin, error) {
	if err := checkKind("Glover", aq, aqf.Conf2d, aqf.Unconf2d); err != nil {
		return nil, err
	}
	return &GloverBasin{aq, basin, 200}, nil
}

// H computes the mound height at offsets (x,y) and time t > 0
func (o GloverBasin) H(x, y, t, q float64) float64 {
	T, S := o.Aq.T(), o.Aq.S()
	hx, hy := o.Basin.Lx()/2, o.Basin.Ly()/2
	f := func(tau float64) float64 {
		den := math.Sqrt(4 * T * (t - tau) / S)
		return (math.Erfc((x+hx)/den) - math.Erfc((x-hx)/den)) *
			(math.Erfc((y+hy)/den) - math.Erfc((y-hy)/den))
	}
	return q / (4 * S) * quad.Fixed(f, 0, t, o.Nquad, nil, 0)
}

// Impress computes the mound height at times ts and locations locs. One column per
// location named "(x, y)" is returned, together with the hydraulic loading Q = area・q
func (o GloverBasin) Impress(ts []float64, locs []geo.Point, q float64) (res *Table, Q float64, err error) {
	if err = checkPositive("time", ts); err != nil {
		return
	}
	if len(locs) == 0 {
		err = inputErr("at least one location is required")
		return
	}
	Q = o.Basin.Area() * q
	res = NewTable(io.Sf("Glover impress (Q = %g)", Q))
	res.Set("time", ts)
	for _, loc := range locs {
		h := make([]float64, len(ts))
		for i, t := range ts {
			h[i] = o.H(loc.X, loc.Y, t, q)
		}
		res.Set(io.Sf("(%g, %g)", loc.X, loc.Y), h)
	}
	return
}

// ImpressGrid computes the mound height at time t on a grid aligned with the basin
func (o GloverBasin) ImpressGrid(t, q, gr float64, gd int, local bool) (res *Table, Q float64, err error) {
	if t <= 0 {
		err = inputErr("time must be greater than zero; %g is invalid", t)
		return
	}
	g, err := grd.NewBasinGrid(o.Basin, gr, gd)
	if err != nil {
		return
	}
	p := g.Points()
	x, y := p.Worldx, p.Worldy
	if local {
		x, y = p.Locx, p.Locy
	}
	Q = o.Basin.Area() * q
	res = NewTable(io.Sf("Glover impress at t = %g (Q = %g)", t, Q), "x", "y", "impress")
	for k := range p.Dx {
		res.Append(x[k], y[k], o.H(p.Dx[k], p.Dy[k], t, q))
	}
	return
}

// GloverSWI implements the Glover (1959) steady saltwater interface below a coast with
// freshwater discharge Q per unit length of shoreline
//
//   ᾱ = (ρs - ρf) / ρf
//   gap = Q / (2・ᾱ・K)
//   h(x) = sqrt(2・ᾱ・Q・x / K)                 x > 0
//   z(x) = -sqrt(2・Q・x / (K・ᾱ) + (Q/(K・ᾱ))²)
//
// x is measured landward from the shoreline; the interface outcrops offshore at x = -gap
type GloverSWI struct {
	Aq   *aqf.Aquifer // finite unconfined 1d aquifer; provides K and L
	Rhof float64      // freshwater density
	Rhos float64      // saltwater density
	Q    float64      // discharge toward the sea per unit length
}

// NewGloverSWI returns a new solution. Defaults: rhof=1000, rhos=1023, q=0.2
func NewGloverSWI(aq *aqf.Aquifer, prms dbf.Params) (o *GloverSWI, err error) {
	if err = checkKind("Glover SWI", aq, aqf.FiniteUnconf1d, aqf.FiniteConf1d); err != nil {
		return nil, err
	}
	o = &GloverSWI{Aq: aq, Rhof: 1000, Rhos: 1023, Q: 0.2}
	for _, p := range prms {
		if err = o.Set(p.N, p.V); err != nil {
			return nil, err
		}
	}
	if _, err = o.AlphaBar(); err != nil {
		return nil, err
	}
	return
}

// Set sets parameter
func (o *GloverSWI) Set(name string, v float64) error {
	var dest *float64
	switch name {
	case "rhof":
		dest = &o.Rhof
	case "rhos":
		dest = &o.Rhos
	case "q":
		dest = &o.Q
	default:
		return chk.Err("Glover SWI: parameter named %q is incorrect", name)
	}
	if err := prm.Check(name, v, prm.Positive); err != nil {
		return err
	}
	*dest = v
	return nil
}

// AlphaBar computes the density ratio ᾱ; rhos must be greater than rhof
func (o GloverSWI) AlphaBar() (float64, error) {
	if err := prm.Above("rhos", o.Rhos, o.Rhof, "rhof"); err != nil {
		return 0, err
	}
	return (o.Rhos - o.Rhof) / o.Rhof, nil
}

// Gap computes the width of the outflow gap
func (o GloverSWI) Gap() (float64, error) {
	a, err := o.AlphaBar()
	if err != nil {
		return 0, err
	}
	return o.Q / (2 * a * o.Aq.K()), nil
}

// Swi computes the water table and interface elevations at n ≥ 2 points from -gap to L
func (o GloverSWI) Swi(n int) (*Table, error) {
	if n < 2 {
		return nil, inputErr("at least 2 points are required; n = %d", n)
	}
	a, err := o.AlphaBar()
	if err != nil {
		return nil, err
	}
	K, gap := o.Aq.K(), o.Q/(2*a*o.Aq.K())
	c := o.Q / (K * a)
	res := NewTable(io.Sf("Glover saltwater interface (gap = %g)", gap), "x", "h", "swi")
	for i := 0; i < n; i++ {
		x := -gap + float64(i)*(gap+o.Aq.L())/float64(n-1)
		h, z := 0.0, 0.0
		if x > 0 {
			h = math.Sqrt(2 * a * o.Q * x / K)
		}
		if arg := 2*o.Q*x/(K*a) + c*c; arg > 0 {
			z = -math.Sqrt(arg)
		}
		res.Append(x, h, z)
	}
	return res, nil
}
