// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bcs implements boundary conditions for steady 1D flow
package bcs

import (
	"strings"

	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Type of boundary condition
type Type int

// types
const (
	FixedHead Type = 1 // type 1: prescribed head
	FixedFlow Type = 2 // type 2: prescribed flow
	HeadFlow  Type = 3 // type 3: head-dependent flow with conductance
)

// String returns a description of the type
func (t Type) String() string {
	switch t {
	case FixedHead:
		return "fixed head"
	case FixedFlow:
		return "fixed flow"
	case HeadFlow:
		return "head-dependent flow"
	}
	return "unknown"
}

// Steady is a steady boundary condition
type Steady struct {
	typ  Type    // type
	Head float64 // head [RL]; types 1 and 3
	Flow float64 // flow [L²/T]; type 2
	Cond float64 // conductance; type 3
}

// New returns a new boundary condition. Defaults: type=2, head=10, flow=0, cond=0
func New(prms dbf.Params) (o *Steady, err error) {
	o = &Steady{typ: FixedFlow, Head: 10}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "type":
			if float64(int(p.V)) != p.V {
				return nil, typeErr(p.V)
			}
			if err = o.SetType(Type(p.V)); err != nil {
				return nil, err
			}
		case "head":
			o.Head = p.V
		case "flow":
			o.Flow = p.V
		case "cond":
			o.Cond = p.V
		default:
			return nil, chk.Err("bcs: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// NewHead returns a type 1 condition
func NewHead(head float64) *Steady { return &Steady{typ: FixedHead, Head: head} }

// NewFlow returns a type 2 condition
func NewFlow(flow float64) *Steady { return &Steady{typ: FixedFlow, Flow: flow} }

// NewHeadFlow returns a type 3 condition
func NewHeadFlow(head, cond float64) *Steady { return &Steady{typ: HeadFlow, Head: head, Cond: cond} }

// Type returns the type of condition
func (o Steady) Type() Type { return o.typ }

// SetType sets the type of condition
func (o *Steady) SetType(t Type) error {
	if t != FixedHead && t != FixedFlow && t != HeadFlow {
		return typeErr(float64(t))
	}
	o.typ = t
	return nil
}

// typeErr returns the error for a type other than 1, 2 or 3
func typeErr(v float64) error {
	return &prm.Error{Name: "type", Value: v, Rule: "v ∈ {1, 2, 3}"}
}

// Value returns the values relevant to the type of condition
//  type 1: {head};  type 2: {flow};  type 3: {head, cond}
func (o Steady) Value() map[string]float64 {
	switch o.typ {
	case FixedHead:
		return map[string]float64{"head": o.Head}
	case FixedFlow:
		return map[string]float64{"flow": o.Flow}
	}
	return map[string]float64{"head": o.Head, "cond": o.Cond}
}
