// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"

	"github.com/cpmech/gaf/wel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SeriesDef holds the definition of a stress series
type SeriesDef struct {
	Name    string    `json:"name"`    // name of series. ex: pumping, recovery
	Periods []float64 `json:"periods"` // lengths of periods
	Values  []float64 `json:"values"`  // rates
	Csv     string    `json:"csv"`     // file with periods and values; overrides the lists
}

// SeriesData holds stress series
type SeriesData []*SeriesDef

// Get returns stress series by name. Csv files are read from dir unless the path is absolute
func (o SeriesData) Get(name, dir string) (s *wel.StressSeries, err error) {
	for _, d := range o {
		if d.Name == name {
			if d.Csv != "" {
				fn := d.Csv
				if !filepath.IsAbs(fn) {
					fn = filepath.Join(dir, fn)
				}
				s, err = wel.ReadStressSeries(fn)
			} else {
				s, err = wel.NewStressSeries(d.Periods, d.Values)
			}
			if err != nil {
				err = chk.Err("cannot get series named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find series named %q\n", name)
	return
}

// String prints one series
func (o SeriesDef) String() string {
	if o.Csv != "" {
		return io.Sf("    {\"name\":%q, \"csv\":%q}", o.Name, o.Csv)
	}
	return io.Sf("    {\"name\":%q, \"periods\":%v, \"values\":%v}", o.Name, o.Periods, o.Values)
}
