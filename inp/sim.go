// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// NetData holds network generation data
type NetData struct {
	Kind    string  `json:"kind"`    // "chain" or "cubic"
	N       int     `json:"n"`       // [chain] number of pores
	Shape   []int   `json:"shape"`   // [cubic] lattice shape [nx,ny,nz]
	Spacing float64 `json:"spacing"` // [cubic] lattice spacing
}

// BcData holds a prescribed-value boundary condition over a pore label
type BcData struct {
	Label string  `json:"label"` // pore label; e.g. "left"
	Value float64 `json:"value"` // prescribed value
}

// SourceData holds a reaction source term over a pore label
type SourceData struct {
	Label string     `json:"label"` // pore label
	Model string     `json:"model"` // model name in the source database; e.g. "powerlaw"
	Prms  dbf.Params `json:"prms"`  // model parameters
}

// Simulation holds all data read from a .sim file
type Simulation struct {
	Desc     string       `json:"desc"`     // description of simulation
	Net      NetData      `json:"net"`      // network generation data
	Gval     float64      `json:"gval"`     // uniform throat conductance
	IniVal   float64      `json:"inival"`   // initial condition value
	Settings Settings     `json:"settings"` // algorithm settings
	Bcs      []BcData     `json:"bcs"`      // value boundary conditions
	Sources  []SourceData `json:"sources"`  // source terms
}

// ReadSim reads a simulation from a .sim JSON file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o = new(Simulation)
	o.Settings.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// validate
	err = o.Settings.Validate()
	if err != nil {
		return nil, chk.Err("ReadSim: invalid settings in %q:\n%v", simfilepath, err)
	}
	switch o.Net.Kind {
	case "chain":
		if o.Net.N < 2 {
			return nil, chk.Err("ReadSim: chain network needs n ≥ 2. n=%d is invalid", o.Net.N)
		}
	case "cubic":
		if len(o.Net.Shape) != 3 {
			return nil, chk.Err("ReadSim: cubic network needs shape=[nx,ny,nz]")
		}
	default:
		return nil, chk.Err("ReadSim: network kind must be \"chain\" or \"cubic\". %q is invalid", o.Net.Kind)
	}
	return
}
