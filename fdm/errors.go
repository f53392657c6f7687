// Copyright 2017 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/cpmech/gosl/io"
)

// InvalidGraphError indicates malformed conductances (non-positive or NaN).
// It is fatal and raised at assembly time.
type InvalidGraphError struct {
	msg string
}

func (e *InvalidGraphError) Error() string { return e.msg }

func errInvalidGraph(msg string, prm ...interface{}) *InvalidGraphError {
	return &InvalidGraphError{io.Sf(msg, prm...)}
}

// SingularSourceError indicates an undefined source-term derivative at the
// current iterate. It is fatal and not retried; the caller must adjust the
// source parameters or the initial condition.
type SingularSourceError struct {
	Pore int // pore where the derivative is undefined
	X    float64
}

func (e *SingularSourceError) Error() string {
	return io.Sf("source term has undefined value or derivative at pore %d (x=%v)", e.Pore, e.X)
}

// ConvergenceError indicates that the nonlinear outer loop exceeded the
// maximum number of iterations. The run is aborted; the solution store
// keeps the converged steps only.
type ConvergenceError struct {
	Nit   int     // number of iterations performed
	Resid float64 // last residual
}

func (e *ConvergenceError) Error() string {
	return io.Sf("outer loop did not converge after %d iterations (residual = %g)", e.Nit, e.Resid)
}

// SingularMatrixError indicates that the linear solver could not factorise
// or solve the system. It is propagated as fatal; the run is not retried
// with a different backend.
type SingularMatrixError struct {
	Backend string // name of the linear solver
	Reason  error
}

func (e *SingularMatrixError) Error() string {
	return io.Sf("linear solve failed (%s backend, singular or ill-conditioned matrix):\n%v", e.Backend, e.Reason)
}

// NonConvergenceError indicates that an iterative linear solver did not
// reach its tolerance. Fatal, like SingularMatrixError. The registered
// direct backends never return it; it is part of the LinSol contract for
// iterative ones.
type NonConvergenceError struct {
	Backend string
	Nit     int
}

func (e *NonConvergenceError) Error() string {
	return io.Sf("linear solve did not converge (%s backend, %d iterations)", e.Backend, e.Nit)
}

// KeyNotFoundError indicates a request for an unstored time label.
// It is recoverable; the caller may re-query a valid label.
type KeyNotFoundError struct {
	T float64 // requested label
}

func (e *KeyNotFoundError) Error() string {
	return io.Sf("no solution stored under time label %v", e.T)
}
