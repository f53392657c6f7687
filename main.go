// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gopnm/fdm"
	"github.com/cpmech/gopnm/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGopnm -- Transport in Pore Networks\n")
		io.Pf("Copyright 2017 The Gopnm Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}
	if verbose && sim.Desc != "" {
		io.Pf("%s\n\n", sim.Desc)
	}

	// transport algorithm
	tr, err := fdm.NewTransportSim(sim)
	if err != nil {
		chk.Panic("cannot allocate transport algorithm:\n%v", err)
	}
	defer tr.Free()
	tr.Verbose = verbose

	// run
	err = tr.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	res := tr.Results()
	if verbose {
		io.Pf("\n")
		for _, t := range res.Times() {
			x, _ := res.Get(t)
			io.Pf("t = %-14g x = %v\n", t, x)
		}
		io.Pf("\noutput of %d time labels\n", res.Len())
	}
}
