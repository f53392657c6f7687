// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
)

// TimeList holds the requested output times. In JSON form it accepts
// either a list of times or a single number meaning an output interval.
type TimeList struct {
	Times []float64 // explicit output times
	Every float64   // output interval; used when Times is empty
}

// UnmarshalJSON decodes a scalar (interval) or a list of times
func (o *TimeList) UnmarshalJSON(b []byte) (err error) {
	var v float64
	if err = json.Unmarshal(b, &v); err == nil {
		o.Every = v
		return
	}
	return json.Unmarshal(b, &o.Times)
}

// MarshalJSON encodes the interval or the list of times
func (o TimeList) MarshalJSON() ([]byte, error) {
	if o.Every > 0 {
		return json.Marshal(o.Every)
	}
	return json.Marshal(o.Times)
}

// Settings holds the transport algorithm settings. All fields are
// enumerated and validated; unrecognised schemes or invalid ranges
// cause Validate to fail instead of being silently accepted.
type Settings struct {

	// time discretisation
	TScheme string    `json:"t_scheme"`    // "steady", "implicit" or "cranknicolson"
	TIni    float64   `json:"t_initial"`   // initial time
	TFin    float64   `json:"t_final"`     // final time
	TStep   float64   `json:"t_step"`      // time increment
	TOut    TimeList  `json:"t_output"`    // output times or interval; empty => t_final only
	TTol    float64   `json:"t_tolerance"` // steady-state detection tolerance
	TPrec   int       `json:"t_precision"` // number of decimals of time labels

	// nonlinear solver
	RxnTol float64 `json:"rxn_tolerance"` // tolerance of the outer (source term) loop
	MaxIt  int     `json:"max_iter"`      // max number of outer iterations
	Relax  float64 `json:"relaxation"`    // relaxation factor in (0,1]

	// linear solver
	LinSol string `json:"linsol"` // name of the registered linear solver
}

// SetDefault sets default values
func (o *Settings) SetDefault() {
	o.TScheme = "steady"
	o.TIni = 0
	o.TFin = 0
	o.TStep = 1
	o.TTol = 1e-12
	o.TPrec = 12
	o.RxnTol = 1e-5
	o.MaxIt = 5000
	o.Relax = 1.0
	o.LinSol = "sparse"
}

// Validate checks all settings, returning an error on the first invalid one
func (o *Settings) Validate() (err error) {
	switch o.TScheme {
	case "steady", "implicit", "cranknicolson":
	default:
		return chk.Err("t_scheme must be \"steady\", \"implicit\" or \"cranknicolson\". %q is invalid", o.TScheme)
	}
	if o.TIni < 0 || math.IsNaN(o.TIni) {
		return chk.Err("t_initial must be non-negative. %v is invalid", o.TIni)
	}
	if o.TScheme != "steady" {
		if o.TFin < o.TIni {
			return chk.Err("t_final must be greater than or equal to t_initial. %v < %v is invalid", o.TFin, o.TIni)
		}
		if o.TStep <= 0 || math.IsNaN(o.TStep) {
			return chk.Err("t_step must be positive. %v is invalid", o.TStep)
		}
		if o.TTol <= 0 {
			return chk.Err("t_tolerance must be positive. %v is invalid", o.TTol)
		}
		if o.TPrec < 0 {
			return chk.Err("t_precision must be non-negative. %d is invalid", o.TPrec)
		}
	}
	if o.RxnTol <= 0 {
		return chk.Err("rxn_tolerance must be positive. %v is invalid", o.RxnTol)
	}
	if o.MaxIt < 1 {
		return chk.Err("max_iter must be positive. %d is invalid", o.MaxIt)
	}
	if o.Relax <= 0 || o.Relax > 1 {
		return chk.Err("relaxation must be within (0,1]. %v is invalid", o.Relax)
	}
	if o.LinSol == "" {
		return chk.Err("linsol must be the name of a registered linear solver")
	}
	return
}

// OutTimes returns the sorted list of requested output times clipped to
// (t_initial, t_final]. A t_output interval expands to its multiples; an
// empty t_output means t_final only.
func (o *Settings) OutTimes() (times []float64) {
	if o.TOut.Every > 0 {
		for t := o.TIni + o.TOut.Every; t <= o.TFin; t += o.TOut.Every {
			times = append(times, t)
		}
		return
	}
	for _, t := range o.TOut.Times {
		if t > o.TIni && t <= o.TFin {
			times = append(times, t)
		}
	}
	if len(times) == 0 {
		return []float64{o.TFin}
	}
	for i := 1; i < len(times); i++ {
		for j := i; j > 0 && times[j] < times[j-1]; j-- {
			times[j], times[j-1] = times[j-1], times[j]
		}
	}
	return
}
