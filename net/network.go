// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package net implements the pore-network topology store and simple builders
package net

import (
	"github.com/cpmech/gosl/chk"
)

// Network holds the pore-network topology: pores (nodes), throats (edges)
// and pore storage volumes. Throat conductances are NOT kept here; they are
// phase/physics quantities supplied to the algorithms. A Network is built
// once and must not be modified during a run.
type Network struct {

	// topology
	Np      int      // number of pores
	Throats [][2]int // [nthroats] pore pairs connected by each throat

	// pore data
	Vol    []float64   // [np] pore volumes (storage capacity of transient terms)
	Coords [][]float64 // [np][3] pore coordinates; may be nil for abstract networks

	// labels
	labels map[string][]int // label => sorted pore ids

	// derived
	adj [][]int // [np] throat ids touching each pore
}

// NewNetwork returns a network with np pores and no throats.
// Pore volumes default to 1.
func NewNetwork(np int) (o *Network, err error) {
	if np < 1 {
		return nil, chk.Err("network must have at least one pore. np=%d is invalid", np)
	}
	o = new(Network)
	o.Np = np
	o.Vol = make([]float64, np)
	for i := 0; i < np; i++ {
		o.Vol[i] = 1.0
	}
	o.labels = make(map[string][]int)
	o.adj = make([][]int, np)
	return
}

// AddThroat connects pores i and j and returns the new throat id.
// Self-loops, out-of-range pores and duplicated connections are rejected.
func (o *Network) AddThroat(i, j int) (id int, err error) {
	if i < 0 || i >= o.Np || j < 0 || j >= o.Np {
		return -1, chk.Err("cannot add throat (%d,%d): pore id out of range [0,%d)", i, j, o.Np)
	}
	if i == j {
		return -1, chk.Err("cannot add throat (%d,%d): self-loops are not allowed", i, j)
	}
	for _, t := range o.adj[i] {
		if o.Other(t, i) == j {
			return -1, chk.Err("cannot add throat (%d,%d): connection exists already", i, j)
		}
	}
	id = len(o.Throats)
	o.Throats = append(o.Throats, [2]int{i, j})
	o.adj[i] = append(o.adj[i], id)
	o.adj[j] = append(o.adj[j], id)
	return
}

// Nt returns the number of throats
func (o *Network) Nt() int { return len(o.Throats) }

// Adjacent returns the ids of throats touching pore p
func (o *Network) Adjacent(p int) []int { return o.adj[p] }

// Other returns the pore on the other end of throat t with respect to pore p
func (o *Network) Other(t, p int) int {
	if o.Throats[t][0] == p {
		return o.Throats[t][1]
	}
	return o.Throats[t][0]
}

// SetLabel attaches a label to a set of pores, replacing a previous
// definition of the same label
func (o *Network) SetLabel(label string, pores []int) (err error) {
	for _, p := range pores {
		if p < 0 || p >= o.Np {
			return chk.Err("cannot label pore %d with %q: pore id out of range [0,%d)", p, label, o.Np)
		}
	}
	o.labels[label] = append([]int{}, pores...)
	return
}

// Pores returns the pores carrying a label
func (o *Network) Pores(label string) (pores []int, err error) {
	pores, ok := o.labels[label]
	if !ok {
		return nil, chk.Err("label %q is not defined in network", label)
	}
	return
}

// SetVol sets the same storage volume for all pores
func (o *Network) SetVol(v float64) {
	for i := 0; i < o.Np; i++ {
		o.Vol[i] = v
	}
}
