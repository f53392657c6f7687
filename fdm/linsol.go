// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdm implements the finite-difference transport algorithms over
// pore networks: linear system assembly, prescribed-value boundary
// conditions, source-term linearisation, nonlinear outer loop, time
// discretisation schemes and the solution store.
package fdm

import (
	"github.com/cpmech/gosl/chk"
)

// LinSol defines the interface for linear solvers. Entries are accumulated
// with Put between Start and Fact; duplicated (i,j) puts are summed.
type LinSol interface {
	Init(n int) error            // initialises the solver for an n×n system
	Start()                      // zeroes the matrix before (re)assembly
	Put(i, j int, v float64)     // adds v to A[i][j]
	Fact() error                 // performs factorisation
	Solve(x, b []float64) error  // solves A x = b
	Free()                       // releases resources
}

// GetSolver returns a registered linear solver
func GetSolver(name string) (ls LinSol, err error) {
	allocator, ok := solverdb[name]
	if !ok {
		return nil, chk.Err("linear solver %q is not available", name)
	}
	return allocator(), nil
}

// solverdb holds all available linear solvers
var solverdb = map[string]func() LinSol{}
