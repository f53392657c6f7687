// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

// Solver implements a time-discretisation scheme (the actual time loop)
type Solver interface {
	Run(o *Transport) error
}

// solverallocators holds all available schemes, keyed by t_scheme
var solverallocators = map[string]func() Solver{}
