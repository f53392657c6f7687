// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package source implements reaction source/sink models evaluated at pores
package source

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines reaction source models. F returns the rate r(x) at the
// given quantity x and DfDx its derivative ∂r/∂x; the derivative is used
// by the algorithms to linearise r around the current iterate.
type Model interface {
	Init(prms dbf.Params) error // Init initialises this structure
	F(x float64) float64        // F returns r(x)
	DfDx(x float64) float64     // DfDx returns ∂r/∂x
}

// New source model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'source' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
