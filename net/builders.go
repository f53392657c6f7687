// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package net

import (
	"github.com/cpmech/gosl/chk"
)

// Chain builds a 1D chain of np pores connected in sequence.
// Labels: "left" = {0} and "right" = {np-1}. Pore volumes are 1.
func Chain(np int) (o *Network, err error) {
	o, err = NewNetwork(np)
	if err != nil {
		return
	}
	for i := 0; i < np-1; i++ {
		_, err = o.AddThroat(i, i+1)
		if err != nil {
			return
		}
	}
	o.SetLabel("left", []int{0})
	o.SetLabel("right", []int{np - 1})
	return
}

// Cubic builds a cubic lattice network with shape nx×ny×nz and the given
// lattice spacing. Pores are numbered x-fastest. Pore volumes are spacing³
// (bulk volume). The six boundary faces are labelled:
//
//	"left"   x=min    "right" x=max
//	"front"  y=min    "back"  y=max
//	"bottom" z=min    "top"   z=max
func Cubic(nx, ny, nz int, spacing float64) (o *Network, err error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, chk.Err("cubic network needs positive shape. [%d,%d,%d] is invalid", nx, ny, nz)
	}
	if spacing <= 0 {
		return nil, chk.Err("cubic network needs positive spacing. %g is invalid", spacing)
	}
	np := nx * ny * nz
	o, err = NewNetwork(np)
	if err != nil {
		return
	}
	o.SetVol(spacing * spacing * spacing)

	// coordinates and lattice connections
	o.Coords = make([][]float64, np)
	pid := func(ix, iy, iz int) int { return ix + iy*nx + iz*nx*ny }
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				p := pid(ix, iy, iz)
				o.Coords[p] = []float64{float64(ix) * spacing, float64(iy) * spacing, float64(iz) * spacing}
				if ix > 0 {
					if _, err = o.AddThroat(pid(ix-1, iy, iz), p); err != nil {
						return
					}
				}
				if iy > 0 {
					if _, err = o.AddThroat(pid(ix, iy-1, iz), p); err != nil {
						return
					}
				}
				if iz > 0 {
					if _, err = o.AddThroat(pid(ix, iy, iz-1), p); err != nil {
						return
					}
				}
			}
		}
	}

	// face labels
	var left, right, front, back, bottom, top []int
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				p := pid(ix, iy, iz)
				if ix == 0 {
					left = append(left, p)
				}
				if ix == nx-1 {
					right = append(right, p)
				}
				if iy == 0 {
					front = append(front, p)
				}
				if iy == ny-1 {
					back = append(back, p)
				}
				if iz == 0 {
					bottom = append(bottom, p)
				}
				if iz == nz-1 {
					top = append(top, p)
				}
			}
		}
	}
	o.SetLabel("left", left)
	o.SetLabel("right", right)
	o.SetLabel("front", front)
	o.SetLabel("back", back)
	o.SetLabel("bottom", bottom)
	o.SetLabel("top", top)
	return
}
