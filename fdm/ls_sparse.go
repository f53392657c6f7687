// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/edp1096/sparse"
)

// SparseSol wraps the sparse LU solver (Sparse 1.3). This is the default
// backend. The underlying package uses 1-based indexing and vectors of
// length n+1.
type SparseSol struct {
	n   int
	mat *sparse.Matrix
	rhs []float64 // 1-based scratch
}

// set factory
func init() {
	solverdb["sparse"] = func() LinSol { return new(SparseSol) }
}

// Init initialises the solver for an n×n system
func (o *SparseSol) Init(n int) (err error) {
	config := &sparse.Configuration{
		Real:       true,
		Expandable: true,
		Translate:  true,
	}
	o.mat, err = sparse.Create(n, config)
	if err != nil {
		return chk.Err("cannot create sparse matrix:\n%v", err)
	}
	o.n = n
	o.rhs = make([]float64, n+1)
	return
}

// Start zeroes the matrix before (re)assembly
func (o *SparseSol) Start() {
	o.mat.Clear()
}

// Put adds v to A[i][j]
func (o *SparseSol) Put(i, j int, v float64) {
	o.mat.GetElement(i+1, j+1).Real += v
}

// Fact performs the LU factorisation
func (o *SparseSol) Fact() (err error) {
	err = o.mat.Factor()
	if err != nil {
		return &SingularMatrixError{"sparse", err}
	}
	return
}

// Solve solves A x = b
func (o *SparseSol) Solve(x, b []float64) (err error) {
	for i := 0; i < o.n; i++ {
		o.rhs[i+1] = b[i]
	}
	sol, err := o.mat.Solve(o.rhs)
	if err != nil {
		return &SingularMatrixError{"sparse", err}
	}
	for i := 0; i < o.n; i++ {
		x[i] = sol[i+1]
	}
	return
}

// Free releases resources
func (o *SparseSol) Free() {
	if o.mat != nil {
		o.mat.Destroy()
		o.mat = nil
	}
}
