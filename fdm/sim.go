// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/cpmech/gopnm/inp"
	"github.com/cpmech/gopnm/mdl/source"
	"github.com/cpmech/gopnm/net"
	"github.com/cpmech/gosl/chk"
)

// NewTransportSim allocates a transport algorithm from simulation input
// data: network generation, uniform throat conductances, boundary and
// initial conditions and source terms.
func NewTransportSim(sim *inp.Simulation) (o *Transport, err error) {

	// network
	var nw *net.Network
	switch sim.Net.Kind {
	case "chain":
		nw, err = net.Chain(sim.Net.N)
	case "cubic":
		spacing := sim.Net.Spacing
		if spacing == 0 {
			spacing = 1.0
		}
		nw, err = net.Cubic(sim.Net.Shape[0], sim.Net.Shape[1], sim.Net.Shape[2], spacing)
	default:
		return nil, chk.Err("network kind %q is not available", sim.Net.Kind)
	}
	if err != nil {
		return
	}

	// uniform conductances
	gval := sim.Gval
	if gval == 0 {
		gval = 1.0
	}
	g := make([]float64, nw.Nt())
	for t := range g {
		g[t] = gval
	}

	// algorithm
	o, err = NewTransport(nw, g, &sim.Settings)
	if err != nil {
		return
	}

	// boundary conditions
	for _, bc := range sim.Bcs {
		pores, e := nw.Pores(bc.Label)
		if e != nil {
			o.Free()
			return nil, e
		}
		if e = o.SetValueBC(pores, bc.Value); e != nil {
			o.Free()
			return nil, e
		}
	}

	// initial condition
	if err = o.SetIC(sim.IniVal); err != nil {
		o.Free()
		return nil, err
	}

	// source terms
	for _, src := range sim.Sources {
		mdl, e := source.New(src.Model)
		if e != nil {
			o.Free()
			return nil, e
		}
		if e = mdl.Init(src.Prms); e != nil {
			o.Free()
			return nil, e
		}
		pores, e := nw.Pores(src.Label)
		if e != nil {
			o.Free()
			return nil, e
		}
		if e = o.AddSource(pores, mdl); e != nil {
			o.Free()
			return nil, e
		}
	}
	return
}
