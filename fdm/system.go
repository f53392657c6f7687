// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"

	"github.com/cpmech/gopnm/mdl/source"
	"github.com/cpmech/gopnm/net"
	"github.com/cpmech/gosl/la"
)

// SourceTerm applies a reaction model to a set of pores
type SourceTerm struct {
	Pores []int        // pores receiving the term
	Mdl   source.Model // reaction model
}

// System holds the linear system A x = b assembled from the network
// conduction operator, storage (capacitance) terms, linearised source
// terms and prescribed-value bcs. The strict mutation order per solve is:
// conduction → storage → sources → bcs (bcs last, inside Solve).
type System struct {
	Net *net.Network
	G   []float64 // [nthroats] conductances
	Bcs *EssenBcs
	Ls  LinSol
	B   la.Vector // rhs
	M   []float64 // [np] capacitance diagonal (pore volumes)
}

// NewSystem validates the conductances and initialises the linear solver
func NewSystem(nw *net.Network, g []float64, bcs *EssenBcs, solname string) (o *System, err error) {
	if len(g) != nw.Nt() {
		return nil, errInvalidGraph("number of conductances must equal number of throats. %d != %d", len(g), nw.Nt())
	}
	for t, gt := range g {
		if math.IsNaN(gt) || math.IsInf(gt, 0) || gt <= 0 {
			return nil, errInvalidGraph("conductance of throat %d (%d,%d) must be positive and finite. g=%v is invalid",
				t, nw.Throats[t][0], nw.Throats[t][1], gt)
		}
	}
	o = new(System)
	o.Net = nw
	o.G = g
	o.Bcs = bcs
	o.Ls, err = GetSolver(solname)
	if err != nil {
		return nil, err
	}
	err = o.Ls.Init(nw.Np)
	if err != nil {
		return nil, err
	}
	o.B = la.NewVector(nw.Np)
	o.M = make([]float64, nw.Np)
	copy(o.M, nw.Vol)
	return
}

// Start zeroes the matrix and the rhs before (re)assembly
func (o *System) Start() {
	o.Ls.Start()
	o.B.Fill(0)
}

// AsmConduction assembles coef times the conduction (Laplacian) operator.
// Rows of constrained pores are left empty; they receive the identity
// entry later, in Solve.
func (o *System) AsmConduction(coef float64) {
	for t, conn := range o.Net.Throats {
		i, j := conn[0], conn[1]
		g := coef * o.G[t]
		if !o.Bcs.Has(i) {
			o.Ls.Put(i, i, g)
			o.Ls.Put(i, j, -g)
		}
		if !o.Bcs.Has(j) {
			o.Ls.Put(j, j, g)
			o.Ls.Put(j, i, -g)
		}
	}
}

// AsmStorage adds M/Δt to the free diagonal entries. odt is 1/Δt.
func (o *System) AsmStorage(odt float64) {
	for i := 0; i < o.Net.Np; i++ {
		if !o.Bcs.Has(i) {
			o.Ls.Put(i, i, o.M[i]*odt)
		}
	}
}

// AsmSources linearises the source terms around the iterate x and injects
// them: -∂r/∂x goes to the diagonal and r - (∂r/∂x) x to the rhs.
// Terms sharing a pore accumulate additively.
func (o *System) AsmSources(srcs []*SourceTerm, x []float64) (err error) {
	for _, src := range srcs {
		for _, p := range src.Pores {
			if o.Bcs.Has(p) {
				continue
			}
			r := src.Mdl.F(x[p])
			dr := src.Mdl.DfDx(x[p])
			if math.IsNaN(r) || math.IsInf(r, 0) || math.IsNaN(dr) || math.IsInf(dr, 0) {
				return &SingularSourceError{p, x[p]}
			}
			o.Ls.Put(p, p, -dr)
			o.B[p] += r - dr*x[p]
		}
	}
	return
}

// LapMul computes res = A x where A is the plain conduction operator
// (all rows, no bcs)
func (o *System) LapMul(res, x la.Vector) {
	res.Fill(0)
	for t, conn := range o.Net.Throats {
		i, j := conn[0], conn[1]
		f := o.G[t] * (x[i] - x[j])
		res[i] += f
		res[j] -= f
	}
}

// Solve applies the bcs (the last mutation of the system), factorises and
// solves into x
func (o *System) Solve(x []float64) (err error) {
	o.Bcs.Apply(o.Ls, o.B)
	err = o.Ls.Fact()
	if err != nil {
		return
	}
	return o.Ls.Solve(x, o.B)
}

// Free releases the linear solver resources
func (o *System) Free() {
	o.Ls.Free()
}
