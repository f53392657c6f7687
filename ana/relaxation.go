// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions to verify the numerical
// results in tests
package ana

import (
	"math"
)

// Relaxation computes the exponential approach of a single free pore of
// volume V coupled through total conductance Gtot to fixed-value
// neighbours whose conductance-weighted mean is Xinf:
//
//	V dx/dt = Gtot (x∞ − x)   ⇒   x(t) = x∞ + (x0 − x∞) e^(−Gtot t / V)
type Relaxation struct {
	Gtot float64 // total conductance to fixed-value neighbours
	V    float64 // pore volume
	X0   float64 // initial value
	Xinf float64 // conductance-weighted mean of the fixed values
}

// X returns the exact value at time t
func (o *Relaxation) X(t float64) float64 {
	return o.Xinf + (o.X0-o.Xinf)*math.Exp(-o.Gtot*t/o.V)
}
