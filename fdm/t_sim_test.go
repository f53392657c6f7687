// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"testing"

	"github.com/cpmech/gopnm/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. transport from .sim file")

	sim, err := inp.ReadSim("data/chain.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	tr, err := NewTransportSim(sim)
	if err != nil {
		tst.Errorf("NewTransportSim failed:\n%v", err)
		return
	}
	defer tr.Free()
	if err = tr.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// 10 backward Euler steps: x1 = (1 - (5/6)¹⁰) / 2
	x := tr.Field()
	io.Pforan("x = %v\n", x)
	chk.Float64(tst, "x1", 1e-10, x[1], 0.41924720855507716)
	chk.Array(tst, "stored times", 1e-14, tr.Results().Times(), []float64{0, 1})
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. invalid simulation data")

	sim, err := inp.ReadSim("data/chain.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}

	// unknown bc label
	sim.Bcs[0].Label = "top"
	if _, err = NewTransportSim(sim); err == nil {
		tst.Errorf("NewTransportSim should have failed with unknown label")
		return
	}
	sim.Bcs[0].Label = "left"

	// unknown source model
	sim.Sources = append(sim.Sources, inp.SourceData{Label: "left", Model: "arrhenius"})
	if _, err = NewTransportSim(sim); err == nil {
		tst.Errorf("NewTransportSim should have failed with unknown model")
		return
	}
}
