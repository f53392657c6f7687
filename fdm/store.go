// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"
	"sort"
)

// Store keeps solution snapshots keyed by time labels rounded to a fixed
// number of decimals. Snapshots are copied in and out; the store never
// aliases a live solution vector. Only fully converged steps are put here.
type Store struct {
	scale  float64 // 10^precision
	times  []float64
	fields [][]float64
}

// NewStore returns a store with labels rounded to prec decimals
func NewStore(prec int) (o *Store) {
	o = new(Store)
	o.scale = math.Pow(10, float64(prec))
	return
}

// Label rounds a time value to the store precision
func (o *Store) Label(t float64) float64 {
	return math.Round(t*o.scale) / o.scale
}

// Put copies x under the label of t, replacing a previous snapshot with
// the same label
func (o *Store) Put(t float64, x []float64) {
	label := o.Label(t)
	idx := sort.SearchFloat64s(o.times, label)
	if idx < len(o.times) && o.times[idx] == label {
		copy(o.fields[idx], x)
		return
	}
	o.times = append(o.times, 0)
	o.fields = append(o.fields, nil)
	copy(o.times[idx+1:], o.times[idx:])
	copy(o.fields[idx+1:], o.fields[idx:])
	o.times[idx] = label
	o.fields[idx] = append([]float64{}, x...)
}

// Get returns a copy of the snapshot labelled with t
func (o *Store) Get(t float64) (x []float64, err error) {
	label := o.Label(t)
	idx := sort.SearchFloat64s(o.times, label)
	if idx == len(o.times) || o.times[idx] != label {
		return nil, &KeyNotFoundError{label}
	}
	return append([]float64{}, o.fields[idx]...), nil
}

// Times returns the stored labels in ascending order
func (o *Store) Times() []float64 {
	return append([]float64{}, o.times...)
}

// Len returns the number of stored snapshots
func (o *Store) Len() int { return len(o.times) }
