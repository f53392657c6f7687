// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

// SolverSteady ignores time and solves A x = r(x) once, delegating the
// source terms to the outer loop
type SolverSteady struct {
}

// set factory
func init() {
	solverallocators["steady"] = func() Solver { return new(SolverSteady) }
}

func (s *SolverSteady) Run(o *Transport) (err error) {

	// assemble and solve
	asm := func(x []float64) error {
		o.sys.Start()
		o.sys.AsmConduction(1.0)
		return o.sys.AsmSources(o.srcs, x)
	}
	err = o.solveStep(asm, o.x)
	if err != nil {
		return
	}

	// snapshots under both end labels (they coincide by default)
	o.store.Put(o.Stg.TIni, o.x)
	o.store.Put(o.Stg.TFin, o.x)
	return
}
