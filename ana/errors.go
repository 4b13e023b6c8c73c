// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions of groundwater flow to wells, basins and
// mine pits, and steady flow in finite one-dimensional aquifers
package ana

import (
	"errors"
	"fmt"

	"github.com/cpmech/gaf/aqf"
	"github.com/cpmech/gosl/io"
)

// evaluation errors; constructors report invalid parameters with *prm.Error instead
var (
	ErrInput    = errors.New("invalid evaluation input")        // non-positive radius or time; empty list
	ErrBoundary = errors.New("unsupported boundary conditions") // e.g. no fixed head
	ErrKind     = errors.New("aquifer kind not accepted")       // solution cannot use aquifer
	ErrDry      = errors.New("aquifer is dry")                  // head at or below the aquifer bottom
)

// DryError reports the position where the aquifer becomes dry
type DryError struct {
	X float64 // position
}

// Error implements error
func (o *DryError) Error() string {
	return io.Sf("aquifer is dry at x = %g", o.X)
}

// Is makes errors.Is(err, ErrDry) true
func (o *DryError) Is(target error) bool {
	return target == ErrDry
}

// inputErr wraps ErrInput
func inputErr(msg string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInput, io.Sf(msg, args...))
}

// checkKind returns ErrKind if the kind of aq is not in kinds
func checkKind(solution string, aq *aqf.Aquifer, kinds ...aqf.Kind) error {
	if aq == nil {
		return fmt.Errorf("%w: %s requires an aquifer", ErrKind, solution)
	}
	for _, k := range kinds {
		if aq.Kind() == k {
			return nil
		}
	}
	return fmt.Errorf("%w: %s cannot use %s aquifer", ErrKind, solution, aq.Kind())
}

// checkPositive returns ErrInput if any value in vals is not positive or if vals is empty
func checkPositive(what string, vals []float64) error {
	if len(vals) == 0 {
		return inputErr("at least one %s is required", what)
	}
	for _, v := range vals {
		if v <= 0 {
			return inputErr("%s must be greater than zero; %g is invalid", what, v)
		}
	}
	return nil
}
