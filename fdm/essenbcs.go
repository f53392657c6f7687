// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/cpmech/gosl/chk"
)

// EssenBcs records prescribed-value (Dirichlet) boundary conditions at
// pores. Constrained rows of the linear system carry exactly the identity
// entry and b[p] = value; Apply must be the last mutation before the solve.
type EssenBcs struct {
	np  int
	has []bool
	val []float64
	Eqs []int // constrained pores, in the order they were first set
}

// NewEssenBcs returns a structure for a network with np pores
func NewEssenBcs(np int) (o *EssenBcs) {
	o = new(EssenBcs)
	o.np = np
	o.has = make([]bool, np)
	o.val = make([]float64, np)
	return
}

// Set prescribes value at the given pores. Setting a pore again replaces
// the previous value.
func (o *EssenBcs) Set(pores []int, value float64) (err error) {
	for _, p := range pores {
		if p < 0 || p >= o.np {
			return chk.Err("cannot set value bc: pore %d out of range [0,%d)", p, o.np)
		}
	}
	for _, p := range pores {
		if !o.has[p] {
			o.has[p] = true
			o.Eqs = append(o.Eqs, p)
		}
		o.val[p] = value
	}
	return
}

// Has tells whether pore p is constrained
func (o *EssenBcs) Has(p int) bool { return o.has[p] }

// Val returns the prescribed value at pore p
func (o *EssenBcs) Val(p int) float64 { return o.val[p] }

// Apply puts the identity rows and prescribed values into the system
func (o *EssenBcs) Apply(ls LinSol, b []float64) {
	for _, p := range o.Eqs {
		ls.Put(p, p, 1.0)
		b[p] = o.val[p]
	}
}
