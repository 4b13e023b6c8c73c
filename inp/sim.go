// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc     string     `json:"desc"`     // description of simulation
	Aqffile  string     `json:"aqffile"`  // aquifers file path
	Aquifer  string     `json:"aquifer"`  // name of aquifer in aquifers file
	Solution string     `json:"solution"` // name of solution; e.g. "theis", "glover", "steady1d"
	Prms     dbf.Params `json:"prms"`     // solution parameters; e.g. recharge "R", pit radius "rp"
}

// WellData holds well data
type WellData struct {
	Prms   dbf.Params `json:"prms"`   // parameters: x, y, r, pf and q (steady wells)
	Series string     `json:"series"` // name of stress series; empty means steady well
}

// BasinData holds basin data
type BasinData struct {
	Shape string     `json:"shape"` // "rect" or "circ"
	Prms  dbf.Params `json:"prms"`  // parameters: cx, cy, rot and lx, ly (rect) or diam (circ)
}

// BcData holds boundary condition data
type BcData struct {
	Prms dbf.Params `json:"prms"` // parameters: type, head, flow, cond
}

// GridData holds grid data
type GridData struct {
	Gr    float64 `json:"gr"`    // grid radius
	Gd    int     `json:"gd"`    // grid density; clamped to [10,40]
	Local bool    `json:"local"` // results in local coordinates
}

// OutputData holds the definition of one set of results
type OutputData struct {
	Key  string    `json:"key"`  // quantity; e.g. "dd", "ri", "hd", "impress", "swi", "h", "q", "grad", "dp"
	T    []float64 `json:"t"`    // times
	R    []float64 `json:"r"`    // radii
	X    []float64 `json:"x"`    // x-coordinates of locations
	Y    []float64 `json:"y"`    // y-coordinates of locations
	N    int       `json:"n"`    // number of points along sweeps
	Q    float64   `json:"q"`    // basin infiltration rate
	Grid *GridData `json:"grid"` // grid; results on a grid if given
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data    Data          `json:"data"`    // stores global simulation data
	Series  SeriesData    `json:"series"`  // stores all stress series
	Well    *WellData     `json:"well"`    // well
	Basin   *BasinData    `json:"basin"`   // basin
	Bcs     []*BcData     `json:"bcs"`     // boundary conditions at x=0 and x=L
	Outputs []*OutputData `json:"outputs"` // requested results

	// derived
	DirIn   string       // directory of .sim file
	Key     string       // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	Aquifer *AquiferData // aquifer from aquifers file
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(simfilepath))
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	o.DirIn = os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if alias != "" {
		o.Key += "-" + alias
	}

	// check
	if o.Data.Solution == "" {
		return nil, chk.Err("ReadSim: solution name must be given in %q", simfilepath)
	}
	if len(o.Outputs) == 0 {
		return nil, chk.Err("ReadSim: at least one output must be given in %q", simfilepath)
	}
	for i, out := range o.Outputs {
		if out.Key == "" {
			return nil, chk.Err("ReadSim: output %d has no key", i)
		}
		if len(out.X) != len(out.Y) {
			return nil, chk.Err("ReadSim: output %d: lengths of x and y must be equal; %d != %d", i, len(out.X), len(out.Y))
		}
	}
	if o.Well != nil && o.Well.Series != "" {
		if _, err = o.Series.Get(o.Well.Series, o.DirIn); err != nil {
			return nil, err
		}
	}

	// aquifer
	if o.Data.Aqffile == "" {
		return nil, chk.Err("ReadSim: aquifers file must be given in %q", simfilepath)
	}
	adb, err := ReadAqf(o.DirIn, o.Data.Aqffile)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read aquifers file:\n%v", err)
	}
	o.Aquifer, err = adb.Get(o.Data.Aquifer)
	if err != nil {
		return nil, err
	}
	return
}

// PrmsGet returns the value of parameter named name or def if not found
func PrmsGet(prms dbf.Params, name string, def float64) float64 {
	for _, p := range prms {
		if p.N == name {
			return p.V
		}
	}
	return def
}
