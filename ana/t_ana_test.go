// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_relax01(tst *testing.T) {

	chk.PrintTitle("relax01. exponential relaxation")

	sol := Relaxation{Gtot: 2, V: 1, X0: 0, Xinf: 1}
	chk.Float64(tst, "x(0)", 1e-17, sol.X(0), 0)
	chk.Float64(tst, "x(∞)", 1e-10, sol.X(20), 1)

	// half life of (x∞ − x)
	thalf := 0.34657359027997264 // ln(2)/2
	chk.Float64(tst, "x(t½)", 1e-15, sol.X(thalf), 0.5)
}
