// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/cpmech/gosl/io"
)

// SolverTransient advances the solution using the θ-method:
//
//	(M/Δt + θ A) x⁺ = (M/Δt) x − (1−θ) A x + r
//
// θ=1 gives the first-order implicit (backward Euler) scheme and θ=1/2 the
// second-order Crank-Nicolson scheme. Source terms are linearised at the
// new-time iterate in both cases; the nonlinearity is resolved per step.
// The source contribution is not time-averaged, so with reaction terms
// cranknicolson is first order in Δt for the reactive part.
type SolverTransient struct {
	θ float64
}

// set factory
func init() {
	solverallocators["implicit"] = func() Solver { return &SolverTransient{1.0} }
	solverallocators["cranknicolson"] = func() Solver { return &SolverTransient{0.5} }
}

func (s *SolverTransient) Run(o *Transport) (err error) {

	// time control
	stg := o.Stg
	t := stg.TIni
	o.store.Put(t, o.x)
	if stg.TFin <= stg.TIni {
		return
	}
	outs := stg.OutTimes()
	oidx := 0

	// time loop
	var Δt float64
	var laststep bool
	for t < stg.TFin {

		// time increment; the last step lands exactly on t_final
		Δt = stg.TStep
		laststep = false
		if t+Δt >= stg.TFin {
			Δt = stg.TFin - t
			laststep = true
		}
		odt := 1.0 / Δt

		// message
		if o.Verbose {
			io.PfWhite("%30.15f\r", t+Δt)
		}

		// assemble: conduction and storage terms use the old-time field
		// o.x; source terms are linearised at the iterate x
		asm := func(x []float64) error {
			o.sys.Start()
			o.sys.AsmConduction(s.θ)
			o.sys.AsmStorage(odt)
			o.sys.LapMul(o.rhs, o.x)
			for i := 0; i < o.Nw.Np; i++ {
				if !o.bcs.Has(i) {
					o.sys.B[i] += o.sys.M[i]*odt*o.x[i] - (1.0-s.θ)*o.rhs[i]
				}
			}
			return o.sys.AsmSources(o.srcs, x)
		}

		// solve step (iterate starts from the old-time field)
		copy(o.xit, o.x)
		err = o.solveStep(asm, o.xit)
		if err != nil {
			return // aborts the run; store keeps converged steps only
		}
		t += Δt

		// change over the step, for steady-state detection
		for i := range o.diff {
			o.diff[i] = o.xit[i] - o.x[i]
		}
		Δnorm := o.diff.Norm()
		copy(o.x, o.xit)

		// steady state reached before t_final; the steady field also
		// answers queries at the t_final label
		if Δnorm < stg.TTol {
			o.store.Put(t, o.x)
			o.store.Put(stg.TFin, o.x)
			return
		}

		// perform output; requested times are rounded to the nearest step
		if laststep {
			o.store.Put(t, o.x)
			break
		}
		if oidx < len(outs) && t >= outs[oidx]-Δt/2.0 {
			o.store.Put(t, o.x)
			for oidx < len(outs) && t >= outs[oidx]-Δt/2.0 {
				oidx++
			}
		}
	}
	return
}
