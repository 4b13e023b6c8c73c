// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01. results table")

	t := NewTable("test", "x", "y")
	t.Append(1, 10)
	t.Append(2, 20)
	t.Set("z", []float64{3, 4})
	chk.Int(tst, "nrows", t.Nrows(), 2)
	chk.Int(tst, "ncols", len(t.Keys), 3)
	chk.String(tst, t.Keys[2], "z")
	chk.Float64(tst, "y[1]", 1e-15, t.Col("y")[1], 20)
	if t.Col("w") != nil {
		tst.Errorf("missing column must be nil\n")
	}

	s := t.String()
	io.Pf("%s", s)
	lines := strings.Split(strings.TrimSpace(s), "\n")
	chk.Int(tst, "nlines", len(lines), 4)
	chk.String(tst, lines[0], "test")

	defer func() {
		if recover() == nil {
			tst.Errorf("appending the wrong number of values must panic\n")
		}
	}()
	t.Append(1)
}
