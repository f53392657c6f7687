// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"
	"testing"

	"github.com/cpmech/gopnm/net"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_system01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system01. invalid conductances")

	nw, err := net.Chain(3)
	if err != nil {
		tst.Errorf("Chain failed:\n%v", err)
		return
	}
	bcs := NewEssenBcs(nw.Np)

	// wrong length
	_, err = NewSystem(nw, []float64{1}, bcs, "sparse")
	if _, ok := err.(*InvalidGraphError); !ok {
		tst.Errorf("NewSystem should have failed with InvalidGraphError. err=%v", err)
		return
	}

	// non-positive conductance
	_, err = NewSystem(nw, []float64{1, 0}, bcs, "sparse")
	if _, ok := err.(*InvalidGraphError); !ok {
		tst.Errorf("NewSystem should have failed with InvalidGraphError. err=%v", err)
		return
	}

	// NaN conductance
	_, err = NewSystem(nw, []float64{1, math.NaN()}, bcs, "sparse")
	if _, ok := err.(*InvalidGraphError); !ok {
		tst.Errorf("NewSystem should have failed with InvalidGraphError. err=%v", err)
		return
	}

	// unknown linear solver
	_, err = NewSystem(nw, []float64{1, 1}, bcs, "petsc")
	if err == nil {
		tst.Errorf("NewSystem should have failed with unknown linear solver")
		return
	}
}

func Test_system02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system02. conservation: zero row sums")

	nw, err := net.Cubic(3, 3, 1, 1.0)
	if err != nil {
		tst.Errorf("Cubic failed:\n%v", err)
		return
	}
	g := make([]float64, nw.Nt())
	for t := range g {
		g[t] = 1.0 + 0.1*float64(t) // non-uniform conductances
	}
	bcs := NewEssenBcs(nw.Np)
	sys, err := NewSystem(nw, g, bcs, "sparse")
	if err != nil {
		tst.Errorf("NewSystem failed:\n%v", err)
		return
	}
	defer sys.Free()

	// A times a constant field must vanish on every row
	ones := la.NewVector(nw.Np)
	ones.Fill(1)
	res := la.NewVector(nw.Np)
	sys.LapMul(res, ones)
	for i := 0; i < nw.Np; i++ {
		chk.Float64(tst, io.Sf("(A·1)[%d]", i), 1e-14, res[i], 0)
	}
}

func Test_system03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system03. singular matrix fails loudly")

	// unconstrained Laplacian: singular by construction
	nw, err := net.Chain(3)
	if err != nil {
		tst.Errorf("Chain failed:\n%v", err)
		return
	}
	bcs := NewEssenBcs(nw.Np)
	sys, err := NewSystem(nw, []float64{1, 1}, bcs, "sparse")
	if err != nil {
		tst.Errorf("NewSystem failed:\n%v", err)
		return
	}
	defer sys.Free()
	sys.Start()
	sys.AsmConduction(1.0)
	x := make([]float64, nw.Np)
	err = sys.Solve(x)
	if _, ok := err.(*SingularMatrixError); !ok {
		tst.Errorf("Solve should have failed with SingularMatrixError. err=%v", err)
		return
	}
}

func Test_store01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("store01. labels, ordering and copies")

	st := NewStore(3)

	// insertion out of order
	st.Put(2.0, []float64{4, 5})
	st.Put(0.5, []float64{1, 2})
	st.Put(1.0, []float64{3, 4})
	chk.Array(tst, "times", 1e-17, st.Times(), []float64{0.5, 1, 2})
	chk.IntAssert(st.Len(), 3)

	// label rounding on get
	x, err := st.Get(1.0000000001)
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Array(tst, "x@1", 1e-17, x, []float64{3, 4})

	// overwriting under the same label
	st.Put(1.0004, []float64{30, 40})
	chk.IntAssert(st.Len(), 3)
	x, err = st.Get(1.0)
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Array(tst, "x@1 (overwritten)", 1e-17, x, []float64{30, 40})

	// snapshots are copies, not aliases
	src := []float64{7, 8}
	st.Put(3.0, src)
	src[0] = -1
	x, err = st.Get(3.0)
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Array(tst, "x@3", 1e-17, x, []float64{7, 8})

	// unknown label
	_, err = st.Get(9.0)
	if _, ok := err.(*KeyNotFoundError); !ok {
		tst.Errorf("Get should have failed with KeyNotFoundError. err=%v", err)
		return
	}
}
