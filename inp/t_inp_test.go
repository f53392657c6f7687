// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_settings01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("settings01. defaults and validation")

	var s Settings
	s.SetDefault()
	chk.StrAssert(s.TScheme, "steady")
	chk.Float64(tst, "t_tolerance", 1e-17, s.TTol, 1e-12)
	chk.Float64(tst, "rxn_tolerance", 1e-17, s.RxnTol, 1e-5)
	chk.IntAssert(s.TPrec, 12)
	chk.IntAssert(s.MaxIt, 5000)
	chk.Float64(tst, "relaxation", 1e-17, s.Relax, 1.0)
	if err := s.Validate(); err != nil {
		tst.Errorf("default settings should be valid:\n%v", err)
		return
	}

	// unknown scheme
	s.TScheme = "explicit"
	if err := s.Validate(); err == nil {
		tst.Errorf("Validate should have failed with unknown scheme")
		return
	}

	// inverted time range
	s.SetDefault()
	s.TScheme = "implicit"
	s.TFin = -1
	if err := s.Validate(); err == nil {
		tst.Errorf("Validate should have failed with t_final < t_initial")
		return
	}

	// non-positive step
	s.SetDefault()
	s.TScheme = "cranknicolson"
	s.TFin = 1
	s.TStep = 0
	if err := s.Validate(); err == nil {
		tst.Errorf("Validate should have failed with t_step = 0")
		return
	}

	// bad relaxation
	s.SetDefault()
	s.Relax = 1.5
	if err := s.Validate(); err == nil {
		tst.Errorf("Validate should have failed with relaxation > 1")
		return
	}
}

func Test_settings02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("settings02. output times")

	var s Settings
	s.SetDefault()
	s.TScheme = "implicit"
	s.TFin = 10
	s.TStep = 1

	// default: t_final only
	chk.Array(tst, "tout (default)", 1e-17, s.OutTimes(), []float64{10})

	// unsorted list with out-of-range entries
	s.TOut.Times = []float64{5, 2, 30, 0, 8}
	chk.Array(tst, "tout", 1e-17, s.OutTimes(), []float64{2, 5, 8})

	// scalar interval
	s.TOut = TimeList{Every: 2.5}
	chk.Array(tst, "tout (interval)", 1e-17, s.OutTimes(), []float64{2.5, 5, 7.5, 10})
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read .sim file")

	sim, err := ReadSim("data/chain.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	io.Pforan("desc = %v\n", sim.Desc)

	chk.StrAssert(sim.Net.Kind, "chain")
	chk.IntAssert(sim.Net.N, 3)
	chk.Float64(tst, "gval", 1e-17, sim.Gval, 1.0)
	chk.StrAssert(sim.Settings.TScheme, "implicit")
	chk.Float64(tst, "t_final", 1e-17, sim.Settings.TFin, 1.0)
	chk.IntAssert(len(sim.Bcs), 2)
	chk.StrAssert(sim.Bcs[0].Label, "left")
	chk.Float64(tst, "bc left", 1e-17, sim.Bcs[0].Value, 1.0)

	// defaults survive partial settings
	chk.IntAssert(sim.Settings.MaxIt, 5000)
	chk.Float64(tst, "rxn_tolerance", 1e-17, sim.Settings.RxnTol, 1e-5)
}
