// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/cpmech/gopnm/inp"
	"github.com/cpmech/gopnm/mdl/source"
	"github.com/cpmech/gopnm/net"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Transport solves the (possibly transient, possibly reactive) transport
// equation over a pore network:
//
//	M dx/dt = -A x + r(x)
//
// where A is the conduction operator built from throat conductances, M the
// diagonal of pore volumes and r the reaction source terms. Boundary and
// initial conditions and source terms are set before Run and are immutable
// during a run. One Run must finish before the next starts.
type Transport struct {

	// input
	Nw      *net.Network
	Stg     *inp.Settings
	Verbose bool // show time stepping messages

	// boundary conditions, sources and system
	bcs  *EssenBcs
	srcs []*SourceTerm
	sys  *System

	// solution
	x     la.Vector // current field
	ic    la.Vector // initial condition
	store *Store

	// scratchpad
	xit  la.Vector // outer-loop iterate
	aux  la.Vector // fresh solve
	diff la.Vector
	rhs  la.Vector // A x_t product

	// state
	nit     int // outer iterations of the last solved step
	running bool
}

// NewTransport returns a transport algorithm over the given network with
// per-throat conductances g. A nil stg means default (steady) settings.
func NewTransport(nw *net.Network, g []float64, stg *inp.Settings) (o *Transport, err error) {
	if stg == nil {
		stg = new(inp.Settings)
		stg.SetDefault()
	}
	err = stg.Validate()
	if err != nil {
		return
	}
	o = new(Transport)
	o.Nw = nw
	o.Stg = stg
	o.bcs = NewEssenBcs(nw.Np)
	o.sys, err = NewSystem(nw, g, o.bcs, stg.LinSol)
	if err != nil {
		return nil, err
	}
	np := nw.Np
	o.x = la.NewVector(np)
	o.ic = la.NewVector(np)
	o.xit = la.NewVector(np)
	o.aux = la.NewVector(np)
	o.diff = la.NewVector(np)
	o.rhs = la.NewVector(np)
	o.store = NewStore(stg.TPrec)
	return
}

// SetValueBC prescribes a fixed value at the given pores
func (o *Transport) SetValueBC(pores []int, value float64) (err error) {
	if o.running {
		return chk.Err("cannot set boundary conditions while Run is in progress")
	}
	return o.bcs.Set(pores, value)
}

// SetIC sets a uniform initial condition
func (o *Transport) SetIC(value float64) (err error) {
	if o.running {
		return chk.Err("cannot set initial condition while Run is in progress")
	}
	o.ic.Fill(value)
	return
}

// SetICVec sets a per-pore initial condition
func (o *Transport) SetICVec(values []float64) (err error) {
	if o.running {
		return chk.Err("cannot set initial condition while Run is in progress")
	}
	if len(values) != o.Nw.Np {
		return chk.Err("initial condition must have one value per pore. %d != %d", len(values), o.Nw.Np)
	}
	copy(o.ic, values)
	return
}

// AddSource applies a reaction model to the given pores. Terms sharing a
// pore accumulate additively.
func (o *Transport) AddSource(pores []int, mdl source.Model) (err error) {
	if o.running {
		return chk.Err("cannot add source terms while Run is in progress")
	}
	if mdl == nil {
		return chk.Err("source model must not be nil")
	}
	for _, p := range pores {
		if p < 0 || p >= o.Nw.Np {
			return chk.Err("cannot add source term: pore %d out of range [0,%d)", p, o.Nw.Np)
		}
	}
	o.srcs = append(o.srcs, &SourceTerm{append([]int{}, pores...), mdl})
	return
}

// Run executes the algorithm according to the settings. Output times that
// do not land on a step boundary are rounded to the nearest one. On error
// the run is aborted; the store keeps the converged steps only.
func (o *Transport) Run() (err error) {
	if o.running {
		return chk.Err("Run is already in progress; calls must be serialised by the caller")
	}
	o.running = true
	defer func() { o.running = false }()

	// scheme (settings are validated; the scheme is registered)
	allocator, ok := solverallocators[o.Stg.TScheme]
	if !ok {
		return chk.Err("scheme %q is not available", o.Stg.TScheme)
	}

	// initial field: IC with prescribed values taking precedence
	copy(o.x, o.ic)
	for _, p := range o.bcs.Eqs {
		o.x[p] = o.bcs.Val(p)
	}

	// fresh store and run
	o.store = NewStore(o.Stg.TPrec)
	return allocator().Run(o)
}

// Field returns a copy of the current (last computed) field
func (o *Transport) Field() []float64 {
	return append([]float64{}, o.x...)
}

// Results returns the solution store
func (o *Transport) Results() *Store { return o.store }

// Nit returns the number of outer iterations of the last solved step
func (o *Transport) Nit() int { return o.nit }

// Rate returns the total flux entering the given pores through their
// throats, using the current field
func (o *Transport) Rate(pores []int) (rate float64) {
	for _, p := range pores {
		for _, t := range o.Nw.Adjacent(p) {
			j := o.Nw.Other(t, p)
			rate += o.sys.G[t] * (o.x[j] - o.x[p])
		}
	}
	return
}

// Free releases the linear solver resources
func (o *Transport) Free() {
	o.sys.Free()
}

// solveStep runs the outer (successive linearisation) loop for one steady
// solve or one time step. asm assembles matrix and rhs with the source
// terms linearised at the given iterate; x is the iterate vector, updated
// in place with the converged solution.
func (o *Transport) solveStep(asm func(x []float64) error, x la.Vector) (err error) {

	// base solve: linearise at the initial iterate
	err = asm(x)
	if err != nil {
		return
	}
	err = o.sys.Solve(o.aux)
	if err != nil {
		return
	}
	copy(x, o.aux)
	o.nit = 0

	// without source terms a single solve is exact
	if len(o.srcs) == 0 {
		return
	}

	// outer iterations
	ω := o.Stg.Relax
	var resid float64
	for it := 1; it <= o.Stg.MaxIt; it++ {
		err = asm(x)
		if err != nil {
			return
		}
		err = o.sys.Solve(o.aux)
		if err != nil {
			return
		}
		resid = o.relDiff(o.aux, x)
		for i := range x {
			x[i] = ω*o.aux[i] + (1.0-ω)*x[i]
		}
		if resid < o.Stg.RxnTol {
			o.nit = it
			return
		}
	}
	o.nit = o.Stg.MaxIt
	return &ConvergenceError{o.Stg.MaxIt, resid}
}

// relDiff returns ‖a-b‖/‖a‖, or ‖a-b‖ when ‖a‖ is vanishing
func (o *Transport) relDiff(a, b la.Vector) float64 {
	for i := range a {
		o.diff[i] = a[i] - b[i]
	}
	num := o.diff.Norm()
	den := a.Norm()
	if den > 1e-15 {
		return num / den
	}
	return num
}
