// Copyright 2025 LinOp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/linop-ml/linop/internal/backend/cpu"
	"github.com/linop-ml/linop/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of all dense matrix
// operations with chunked goroutine parallelism.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/linop-ml/linop/backend/cpu"
//	    "github.com/linop-ml/linop/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Eye(3)
//	    y := backend.MatMul(x, x)
//	    _ = y
//	}
func New() *Backend {
	return internalcpu.New()
}
