// Copyright 2025 LinOp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for dense matrix operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Batched matrix multiplication, triangular solves, and Cholesky
//     factorization
//   - NumPy-compatible broadcasting
//   - Chunked goroutine parallelism across batch entries and rows
//
// # Basic Usage
//
//	import (
//	    "github.com/linop-ml/linop/backend/cpu"
//	    "github.com/linop-ml/linop/lazy"
//	    "github.com/linop-ml/linop/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    l, err := backend.Cholesky(covariance)
//	    if err != nil {
//	        panic(err)
//	    }
//	    op, _ := lazy.NewCholesky(l, backend, nil)
//	    _ = op
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each operation is isolated
// and does not share mutable state.
package cpu
