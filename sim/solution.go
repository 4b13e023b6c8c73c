// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"sort"

	"github.com/cpmech/gaf/ana"
	"github.com/cpmech/gaf/inp"
	"github.com/cpmech/gosl/chk"
)

// Solution defines the analytic solutions available to simulations
type Solution interface {
	Init(m *Main) error                         // Init allocates the solution with the objects of m
	Run(out *inp.OutputData) (*ana.Table, error) // Run computes one output
}

// NewSolution allocates a solution by name
func NewSolution(name string) (sol Solution, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("solution %q is not available in sim database; options are %v", name, Names())
	}
	return allocator(), nil
}

// Names returns the names of all solutions in alphabetical order
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available solutions
var allocators = map[string]func() Solution{}

// npts returns the number of points along sweeps; 25 if not given
func npts(out *inp.OutputData) int {
	if out.N == 0 {
		return 25
	}
	return out.N
}

// firstTime returns the first time in out
func firstTime(out *inp.OutputData) (float64, error) {
	if len(out.T) == 0 {
		return 0, chk.Err("output %q requires a time", out.Key)
	}
	return out.T[0], nil
}

// badKey returns an error for output keys not computed by solution
func badKey(solution string, out *inp.OutputData, options ...string) error {
	return chk.Err("%s: output key %q is incorrect; options are %v", solution, out.Key, options)
}
