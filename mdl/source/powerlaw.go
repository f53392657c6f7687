// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// PowerLaw implements the standard kinetics source term
//
//	r(x) = a1 x^a2 + a3
type PowerLaw struct {
	a1, a2, a3 float64
}

// add model to factory
func init() {
	allocators["powerlaw"] = func() Model { return new(PowerLaw) }
}

// Init initialises this structure
func (o *PowerLaw) Init(prms dbf.Params) (err error) {
	o.a2 = 1
	prms.Connect(&o.a1, "a1", "a1 PowerLaw model")
	prms.Connect(&o.a2, "a2", "a2 PowerLaw model")
	prms.Connect(&o.a3, "a3", "a3 PowerLaw model")
	return
}

// F returns r(x)
func (o *PowerLaw) F(x float64) float64 {
	return o.a1*math.Pow(x, o.a2) + o.a3
}

// DfDx returns ∂r/∂x. Note: the derivative is undefined at x=0 for a2 < 1;
// callers must guard against zero-valued quantities at such pores.
func (o *PowerLaw) DfDx(x float64) float64 {
	return o.a1 * o.a2 * math.Pow(x, o.a2-1.0)
}
