// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gaf/aqf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_aqf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("aqf01. aquifers database")

	adb, err := ReadAqf("data", "aquifers.aqf")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", adb.Aquifers)
	chk.Int(tst, "naquifers", len(adb.Aquifers), 5)

	a, err := adb.Get("leaky")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if a.Aq.Kind() != aqf.Leaky2d {
		tst.Errorf("kind of leaky aquifer is wrong: %v\n", a.Aq.Kind())
	}
	chk.String(tst, a.Aq.Name, "leaky")
	chk.Float64(tst, "T", 1e-15, a.Aq.T(), 100)
	chk.Float64(tst, "λ", 1e-9, a.Aq.LeakFactor(), 1e4)

	a, _ = adb.Get("gravel")
	chk.Float64(tst, "S", 1e-15, a.Aq.S(), 0.1)

	_, err = adb.Get("clay")
	if err == nil {
		tst.Errorf("missing aquifer must fail\n")
	}
	adb, err = ReadAqf("data", "nofile.aqf")
	if err == nil || adb != nil {
		tst.Errorf("missing aquifers file must fail\n")
	}
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read simulation")

	sim, err := ReadSim("data/theis.sim", "")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Key, "theis")
	chk.String(tst, sim.DirIn, "data")
	chk.String(tst, sim.Data.Solution, "theis")
	chk.String(tst, sim.Aquifer.Name, "sand")
	chk.Int(tst, "noutputs", len(sim.Outputs), 3)
	chk.Int(tst, "nt", len(sim.Outputs[0].T), 3)
	chk.Float64(tst, "q", 1e-15, PrmsGet(sim.Well.Prms, "q", 0), -1000)
	chk.Float64(tst, "pf", 1e-15, PrmsGet(sim.Well.Prms, "pf", 1), 1)
	g := sim.Outputs[2].Grid
	if g == nil {
		tst.Errorf("grid must be read\n")
		return
	}
	chk.Float64(tst, "gr", 1e-15, g.Gr, 100)
	chk.Int(tst, "gd", g.Gd, 21)
	if !g.Local {
		tst.Errorf("local flag must be read\n")
	}

	sim, err = ReadSim("data/steady1d.sim", "alt")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Key, "steady1d-alt")
	chk.Int(tst, "nbcs", len(sim.Bcs), 2)
	chk.Float64(tst, "R", 1e-15, PrmsGet(sim.Data.Prms, "R", 0), 1e-3)

	_, err = ReadSim("data/bad.sim", "")
	if err == nil {
		tst.Errorf("missing aquifer must fail\n")
	}
	sim, err = ReadSim("data/nofile.sim", "")
	if err == nil || sim != nil {
		tst.Errorf("missing file must fail\n")
		return
	}
	io.Pforan("%v\n", err)
}

func Test_series01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series01. stress series")

	sim, err := ReadSim("data/series.sim", "")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	s, err := sim.Series.Get("test", sim.DirIn)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "len(test)", s.Len(), 2)
	chk.Float64(tst, "q(120)", 1e-15, s.Value(120), -500)

	s, err = sim.Series.Get(sim.Well.Series, sim.DirIn)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "len(file)", s.Len(), 4)
	chk.Float64(tst, "q(12)", 1e-15, s.Value(12), 0)
	chk.Float64(tst, "q(40)", 1e-15, s.Value(40), 250)

	_, err = sim.Series.Get("none", sim.DirIn)
	if err == nil {
		tst.Errorf("missing series must fail\n")
	}
}
