// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_source01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("source01. powerlaw model")

	mdl, err := New("powerlaw")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	prms := dbf.Params{
		&dbf.P{N: "a1", V: -2.0},
		&dbf.P{N: "a2", V: 1.5},
		&dbf.P{N: "a3", V: 0.1},
	}
	err = mdl.Init(prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// values
	chk.Float64(tst, "r(1)", 1e-15, mdl.F(1.0), -1.9)
	chk.Float64(tst, "r(4)", 1e-15, mdl.F(4.0), -15.9)

	// derivatives
	X := utl.LinSpace(0.1, 4.0, 7)
	for _, x := range X {
		dana := mdl.DfDx(x)
		chk.DerivScaSca(tst, io.Sf("dr/dx @ %.2f", x), 1e-7, dana, x, 1e-3, chk.Verbose, func(y float64) float64 {
			return mdl.F(y)
		})
	}
}

func Test_source02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("source02. linear model")

	mdl, err := New("linear")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	prms := dbf.Params{
		&dbf.P{N: "a1", V: -0.5},
		&dbf.P{N: "a2", V: 2.0},
	}
	err = mdl.Init(prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "r(0)", 1e-17, mdl.F(0.0), 2.0)
	chk.Float64(tst, "r(2)", 1e-17, mdl.F(2.0), 1.0)
	chk.Float64(tst, "dr/dx", 1e-17, mdl.DfDx(123.0), -0.5)
}

func Test_source03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("source03. unknown model")

	_, err := New("quadratic")
	if err == nil {
		tst.Errorf("New should have failed with unknown model name")
		return
	}
}
