// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Table holds results by column. All columns have the same length
type Table struct {
	Title string               // description of results
	Keys  []string             // column names in order
	Cols  map[string][]float64 // columns
}

// NewTable returns a new table with the given columns
func NewTable(title string, keys ...string) (o *Table) {
	o = &Table{Title: title, Cols: make(map[string][]float64)}
	for _, key := range keys {
		o.Keys = append(o.Keys, key)
		o.Cols[key] = nil
	}
	return
}

// Set sets column key, appending it to Keys if new
func (o *Table) Set(key string, vals []float64) {
	if _, ok := o.Cols[key]; !ok {
		o.Keys = append(o.Keys, key)
	}
	o.Cols[key] = vals
}

// Append appends one value to each column in the order of Keys
func (o *Table) Append(vals ...float64) {
	if len(vals) != len(o.Keys) {
		chk.Panic("table: %d values cannot be appended to %d columns", len(vals), len(o.Keys))
	}
	for i, key := range o.Keys {
		o.Cols[key] = append(o.Cols[key], vals[i])
	}
}

// Col returns column key or nil
func (o Table) Col(key string) []float64 {
	return o.Cols[key]
}

// Nrows returns the number of rows
func (o Table) Nrows() int {
	if len(o.Keys) == 0 {
		return 0
	}
	return len(o.Cols[o.Keys[0]])
}

// String returns a printable representation of the table
func (o Table) String() string {
	var b bytes.Buffer
	if o.Title != "" {
		io.Ff(&b, "%s\n", o.Title)
	}
	for _, key := range o.Keys {
		io.Ff(&b, "%16s", key)
	}
	io.Ff(&b, "\n")
	for i := 0; i < o.Nrows(); i++ {
		for _, key := range o.Keys {
			io.Ff(&b, "%16.6g", o.Cols[key][i])
		}
		io.Ff(&b, "\n")
	}
	return b.String()
}
