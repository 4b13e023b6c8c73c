// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prm implements domain checks for scalar physical parameters
package prm

import (
	"github.com/cpmech/gosl/io"
)

// Rule defines the admissible domain of a parameter
type Rule struct {
	Desc string               // description of domain; e.g. "v > 0"
	Ok   func(v float64) bool // predicate
}

// rules
var (
	Positive    = Rule{"v > 0", func(v float64) bool { return v > 0 }}
	NonNegative = Rule{"v ≥ 0", func(v float64) bool { return v >= 0 }}
	OpenUnit    = Rule{"0 < v < 1", func(v float64) bool { return v > 0 && v < 1 }}
	UnitRight   = Rule{"0 < v ≤ 1", func(v float64) bool { return v > 0 && v <= 1 }}
	Fraction    = Rule{"0 ≤ v < 1", func(v float64) bool { return v >= 0 && v < 1 }}
	Angle       = Rule{"-90 < v < 90", func(v float64) bool { return v > -90 && v < 90 }}
)

// Error reports a parameter outside of its domain
type Error struct {
	Name  string  // name of parameter
	Value float64 // rejected value
	Rule  string  // violated constraint
}

// Error implements error
func (o *Error) Error() string {
	return io.Sf("parameter %q = %g is invalid: must satisfy %s", o.Name, o.Value, o.Rule)
}

// Check checks v against rule r
func Check(name string, v float64, r Rule) error {
	if !r.Ok(v) {
		return &Error{Name: name, Value: v, Rule: r.Desc}
	}
	return nil
}

// Above checks that v > lim, where lim is described by what; e.g. "B + Bleak"
func Above(name string, v, lim float64, what string) error {
	if !(v > lim) {
		return &Error{Name: name, Value: v, Rule: io.Sf("v > %s = %g", what, lim)}
	}
	return nil
}

// Below checks that v < lim
func Below(name string, v, lim float64, what string) error {
	if !(v < lim) {
		return &Error{Name: name, Value: v, Rule: io.Sf("v < %s = %g", what, lim)}
	}
	return nil
}

// AtMost checks that v ≤ lim
func AtMost(name string, v, lim float64, what string) error {
	if !(v <= lim) {
		return &Error{Name: name, Value: v, Rule: io.Sf("v ≤ %s = %g", what, lim)}
	}
	return nil
}
