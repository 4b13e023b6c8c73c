// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/cpmech/gaf/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lmittmann/tint"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	metricsfile := io.ArgToString(2, "")

	// logger
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	})))

	// message
	if verbose {
		io.PfWhite("\nGaf -- Groundwater Analytic Flow solutions\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"metrics file", "metricsfile", metricsfile,
		))
	}

	// metrics
	stats := sim.NewMetrics()
	save := func() {
		if metricsfile == "" {
			return
		}
		if e := stats.WriteTextfile(metricsfile); e != nil {
			slog.Error("cannot save metrics", "file", metricsfile, "err", e)
			return
		}
		slog.Info("metrics saved", "file", metricsfile)
	}

	// simulation
	t0 := time.Now()
	analysis, err := sim.NewMain(fnamepath, "", stats)
	if err != nil {
		slog.Error("allocation failed", "file", fnamepath, "class", sim.Class(err), "err", err)
		save()
		chk.Panic("cannot allocate simulation:\n%v", err)
	}
	slog.Info("simulation allocated", "key", analysis.Sim.Key, "solution", analysis.Sim.Data.Solution,
		"aquifer", analysis.Sim.Data.Aquifer, "kind", analysis.Aq.Kind())

	// run
	res, err := analysis.Run()
	if err != nil {
		slog.Error("run failed", "key", analysis.Sim.Key, "class", sim.Class(err), "err", err)
	}
	for i, tab := range res {
		slog.Info("output computed", "key", analysis.Sim.Outputs[i].Key, "rows", tab.Nrows())
		if verbose {
			io.Pf("\n%v", tab)
		}
	}
	slog.Info("simulation finished", "key", analysis.Sim.Key, "elapsed", time.Since(t0))

	save()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
