// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"gonum.org/v1/gonum/mat"
)

// DenseSol implements the "dense" backend with an LU decomposition of a
// dense matrix. Useful for small networks and as an independent check of
// the sparse backend.
type DenseSol struct {
	n  int
	a  *mat.Dense
	lu mat.LU
}

// set factory
func init() {
	solverdb["dense"] = func() LinSol { return new(DenseSol) }
}

// Init initialises the solver for an n×n system
func (o *DenseSol) Init(n int) (err error) {
	o.n = n
	o.a = mat.NewDense(n, n, nil)
	return
}

// Start zeroes the matrix before (re)assembly
func (o *DenseSol) Start() {
	o.a.Zero()
}

// Put adds v to A[i][j]
func (o *DenseSol) Put(i, j int, v float64) {
	o.a.Set(i, j, o.a.At(i, j)+v)
}

// Fact performs the LU factorisation
func (o *DenseSol) Fact() (err error) {
	o.lu.Factorize(o.a)
	return
}

// Solve solves A x = b
func (o *DenseSol) Solve(x, b []float64) (err error) {
	xv := mat.NewVecDense(o.n, x)
	bv := mat.NewVecDense(o.n, b)
	err = o.lu.SolveVecTo(xv, false, bv)
	if err != nil {
		return &SingularMatrixError{"dense", err}
	}
	return
}

// Free releases resources
func (o *DenseSol) Free() {
}
