// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wel

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gosl/chk"
)

// StressSeries holds a piecewise constant series of values; e.g. well rates
//
//   value
//     ↑   ┌────┐
//     │   │ v0 │    ┌──────┐
//     │───┘    └────┘  v2  │
//     │        v1          └──
//     └───────────────────────→ time
//         P0    P1     P2
//
type StressSeries struct {
	periods []float64 // lengths of periods; all > 0
	values  []float64 // value in each period
}

// NewStressSeries returns a new series; periods must be positive and len(periods) == len(values)
func NewStressSeries(periods, values []float64) (*StressSeries, error) {
	if len(periods) == 0 {
		return nil, chk.Err("stress series needs at least one period")
	}
	for _, p := range periods {
		if err := prm.Check("period", p, prm.Positive); err != nil {
			return nil, err
		}
	}
	if len(values) != len(periods) {
		return nil, chk.Err("the number of stress periods (%d) and values (%d) must match", len(periods), len(values))
	}
	o := &StressSeries{
		periods: append([]float64{}, periods...),
		values:  append([]float64{}, values...),
	}
	return o, nil
}

// ReadStressSeries reads a series from a CSV file with two columns (period, value) and no header
func ReadStressSeries(fn string) (*StressSeries, error) {
	f, err := os.Open(os.ExpandEnv(fn))
	if err != nil {
		return nil, chk.Err("cannot open stress series file:\n%v", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true
	r.Comment = '#'
	records, err := r.ReadAll()
	if err != nil {
		return nil, chk.Err("cannot read stress series file %q:\n%v", fn, err)
	}
	periods := make([]float64, len(records))
	values := make([]float64, len(records))
	for i, rec := range records {
		periods[i], err = strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, chk.Err("%s: line %d: cannot parse period: %v", fn, i+1, err)
		}
		values[i], err = strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, chk.Err("%s: line %d: cannot parse value: %v", fn, i+1, err)
		}
	}
	return NewStressSeries(periods, values)
}

// Len returns the number of periods
func (o StressSeries) Len() int { return len(o.periods) }

// Periods returns a copy of the period lengths
func (o StressSeries) Periods() []float64 { return append([]float64{}, o.periods...) }

// Values returns a copy of the values
func (o StressSeries) Values() []float64 { return append([]float64{}, o.values...) }

// Times returns the cumulative time at the start of each period and the end of the last one
//  len(Times) == Len() + 1 and Times[0] == 0
func (o StressSeries) Times() []float64 {
	t := make([]float64, len(o.periods)+1)
	for i, p := range o.periods {
		t[i+1] = t[i] + p
	}
	return t
}

// Value returns the value in effect at time t; zero before 0 and after the last period
func (o StressSeries) Value(t float64) float64 {
	if t < 0 {
		return 0
	}
	tend := 0.0
	for i, p := range o.periods {
		tend += p
		if t < tend {
			return o.values[i]
		}
	}
	return 0
}

// Step returns the coordinates of the step plot of the series
func (o StressSeries) Step() (t, v []float64) {
	times := o.Times()
	t = make([]float64, 0, 2*len(o.periods))
	v = make([]float64, 0, 2*len(o.periods))
	for i, val := range o.values {
		t = append(t, times[i], times[i+1])
		v = append(v, val, val)
	}
	return
}
