// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"errors"
	"testing"

	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_bcs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs01. values")

	bc, err := New(nil)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "default type", int(bc.Type()), 2)
	v := bc.Value()
	chk.Int(tst, "len(value)", len(v), 1)
	chk.Float64(tst, "flow", 1e-17, v["flow"], 0)

	bc, _ = New(dbf.Params{&dbf.P{N: "type", V: 1}, &dbf.P{N: "head", V: 12}})
	v = bc.Value()
	chk.Int(tst, "len(value)", len(v), 1)
	chk.Float64(tst, "head", 1e-17, v["head"], 12)

	bc, _ = New(dbf.Params{&dbf.P{N: "type", V: 3}, &dbf.P{N: "head", V: 5}, &dbf.P{N: "cond", V: 0.1}})
	v = bc.Value()
	io.Pforan("%v: %v\n", bc.Type(), v)
	chk.Int(tst, "len(value)", len(v), 2)
	chk.Float64(tst, "head", 1e-17, v["head"], 5)
	chk.Float64(tst, "cond", 1e-17, v["cond"], 0.1)

	chk.Float64(tst, "NewHead", 1e-17, NewHead(7).Value()["head"], 7)
	chk.Float64(tst, "NewFlow", 1e-17, NewFlow(-2).Value()["flow"], -2)
	chk.Int(tst, "NewHeadFlow", int(NewHeadFlow(1, 2).Type()), 3)
}

func Test_bcs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs02. invalid type")

	for _, t := range []float64{0, 4, -1, 1.5, 2.9} {
		bc, err := New(dbf.Params{&dbf.P{N: "type", V: t}})
		if err == nil || bc != nil {
			tst.Errorf("type = %g should fail\n", t)
			continue
		}
		var perr *prm.Error
		if !errors.As(err, &perr) {
			tst.Errorf("error has wrong type: %T\n", err)
			continue
		}
		io.Pforan("%v\n", err)
		chk.String(tst, perr.Name, "type")
		chk.Float64(tst, "value", 1e-15, perr.Value, t)
	}
	bc := NewHead(1)
	err := bc.SetType(5)
	var perr *prm.Error
	if !errors.As(err, &perr) {
		tst.Errorf("type = 5 should fail with a parameter error; got %v\n", err)
	}
	chk.Int(tst, "type unchanged", int(bc.Type()), 1)
}
