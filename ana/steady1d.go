// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"fmt"
	"math"

	"github.com/cpmech/gaf/aqf"
	"github.com/cpmech/gaf/bcs"
	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gosl/io"
)

// Steady1dFlow implements steady flow in a finite 1d aquifer of length L with uniform
// recharge R and boundary conditions at x=0 and x=L. Supported combinations:
//
//   flow at 0, head at L:
//     confined    h = H + R・(L²-x²)/(2T) + Q・(L-x)/T
//     unconfined  h = sqrt(H² + R・(L²-x²)/K + 2Q・(L-x)/K)
//     q = R・x + Q
//
//   head at 0, head at L:
//     confined    h = H₀・(1-x/L) + H_L・x/L + R・(L・x-x²)/(2T)
//                 q = T・(H₀-H_L)/L - R・(L-2x)/2
//     unconfined  h = sqrt(H₀²・(1-x/L) + H_L²・x/L + R・(L・x-x²)/K)
//                 q = K・(H₀²-H_L²)/(2L) - R・(L-2x)/2
//
// The gradient is q/T (confined) or q/(K・h) (unconfined), positive toward +x.
// Heads at or below the aquifer bottom are reported with *DryError
type Steady1dFlow struct {
	Aq   *aqf.Aquifer // finite 1d aquifer
	Bc0  *bcs.Steady  // boundary condition at x=0
	BcL  *bcs.Steady  // boundary condition at x=L
	rech float64      // recharge rate
}

// NewSteady1dFlow returns a new solution with recharge R ≥ 0
func NewSteady1dFlow(aq *aqf.Aquifer, bc0, bcL *bcs.Steady, R float64) (*Steady1dFlow, error) {
	if err := checkKind("steady 1d flow", aq, aqf.FiniteConf1d, aqf.FiniteUnconf1d); err != nil {
		return nil, err
	}
	if bc0 == nil || bcL == nil {
		return nil, fmt.Errorf("%w: two boundary conditions are required", ErrBoundary)
	}
	if err := prm.Check("R", R, prm.NonNegative); err != nil {
		return nil, err
	}
	return &Steady1dFlow{aq, bc0, bcL, R}, nil
}

// R returns the recharge rate
func (o Steady1dFlow) R() float64 { return o.rech }

// SetR sets the recharge rate
func (o *Steady1dFlow) SetR(v float64) error {
	if err := prm.Check("R", v, prm.NonNegative); err != nil {
		return err
	}
	o.rech = v
	return nil
}

// Types returns the boundary condition types; at least one must be a fixed head
func (o Steady1dFlow) Types() (t0, tL bcs.Type, err error) {
	t0, tL = o.Bc0.Type(), o.BcL.Type()
	if t0 != bcs.FixedHead && tL != bcs.FixedHead {
		err = fmt.Errorf("%w: at least one boundary condition must be of type 1 (%s); got %s and %s",
			ErrBoundary, bcs.FixedHead, t0, tL)
	}
	return
}

// Eval computes head, flow and gradient at x
func (o Steady1dFlow) Eval(x float64) (h, q, grad float64, err error) {
	t0, tL, err := o.Types()
	if err != nil {
		return
	}
	L, R := o.Aq.L(), o.rech
	conf := o.Aq.Kind().Confined()
	switch {
	case t0 == bcs.FixedFlow && tL == bcs.FixedHead:
		H, Q := o.BcL.Head, o.Bc0.Flow
		q = R*x + Q
		if conf {
			T := o.Aq.T()
			h = H + R*(L*L-x*x)/(2*T) + Q*(L-x)/T
			grad = q / T
		} else {
			K := o.Aq.K()
			arg := H*H + R*(L*L-x*x)/K + 2*Q*(L-x)/K
			if arg < 0 {
				err = &DryError{x}
				return
			}
			h = math.Sqrt(arg)
			grad = q / (K * h)
		}
	case t0 == bcs.FixedHead && tL == bcs.FixedHead:
		H0, HL := o.Bc0.Head, o.BcL.Head
		if conf {
			T := o.Aq.T()
			h = H0*(1-x/L) + HL*x/L + R*(L*x-x*x)/(2*T)
			q = T*(H0-HL)/L - R*(L-2*x)/2
			grad = q / T
		} else {
			K := o.Aq.K()
			arg := H0*H0*(1-x/L) + HL*HL*x/L + R*(L*x-x*x)/K
			if arg < 0 {
				err = &DryError{x}
				return
			}
			h = math.Sqrt(arg)
			q = K*(H0*H0-HL*HL)/(2*L) - R*(L-2*x)/2
			grad = q / (K * h)
		}
	default:
		err = fmt.Errorf("%w: type %s at x=0 with type %s at x=L", ErrBoundary, t0, tL)
		return
	}
	if h <= o.Aq.Bot() {
		err = &DryError{x}
	}
	return
}

// H computes the head at n ≥ 2 evenly spaced positions from 0 to L
func (o Steady1dFlow) H(n int) (*Table, error) {
	return o.sweep(n, "h", func(h, q, g float64) float64 { return h })
}

// Q computes the flow at n ≥ 2 evenly spaced positions from 0 to L
func (o Steady1dFlow) Q(n int) (*Table, error) {
	return o.sweep(n, "q", func(h, q, g float64) float64 { return q })
}

// HGrad computes the head gradient at n ≥ 2 evenly spaced positions from 0 to L
func (o Steady1dFlow) HGrad(n int) (*Table, error) {
	return o.sweep(n, "h_grad", func(h, q, g float64) float64 { return g })
}

// sweep evaluates all positions x_i = i・L/(n-1)
func (o Steady1dFlow) sweep(n int, key string, pick func(h, q, g float64) float64) (*Table, error) {
	if n < 2 {
		return nil, inputErr("at least 2 points are required; n = %d", n)
	}
	res := NewTable(io.Sf("steady flow in %s", o.Aq.Kind().Desc()), "x", key)
	L := o.Aq.L()
	for i := 0; i < n; i++ {
		x := float64(i) * L / float64(n-1)
		h, q, g, err := o.Eval(x)
		if err != nil {
			return nil, err
		}
		res.Append(x, pick(h, q, g))
	}
	return res, nil
}
