// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// Linear implements the linear source term
//
//	r(x) = a1 x + a2
//
// Its linearisation is exact; the outer loop converges in one iteration.
type Linear struct {
	a1, a2 float64
}

// add model to factory
func init() {
	allocators["linear"] = func() Model { return new(Linear) }
}

// Init initialises this structure
func (o *Linear) Init(prms dbf.Params) (err error) {
	prms.Connect(&o.a1, "a1", "a1 Linear model")
	prms.Connect(&o.a2, "a2", "a2 Linear model")
	return
}

// F returns r(x)
func (o *Linear) F(x float64) float64 {
	return o.a1*x + o.a2
}

// DfDx returns ∂r/∂x
func (o *Linear) DfDx(x float64) float64 {
	return o.a1
}
