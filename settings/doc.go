// Copyright 2025 LinOp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package settings provides numerical-mode configuration for lazy
// operators.
//
// # Overview
//
// A Settings value is handed to an operator at construction and consulted
// on every query; there is no process-wide state. Two modes are carried:
//   - Debug: structural validation of operator inputs at construction
//     time (default on)
//   - FastLogProb: approximate quadratic-form and determinant queries
//     answered from the operator diagonal alone (default off)
//
// # Basic Usage
//
//	import (
//	    "github.com/linop-ml/linop/backend/cpu"
//	    "github.com/linop-ml/linop/lazy"
//	    "github.com/linop-ml/linop/settings"
//	)
//
//	func main() {
//	    cfg := settings.Default()
//	    cfg.SetDebug(false) // inputs already validated upstream
//
//	    op, _ := lazy.NewCholesky(factor, cpu.New(), cfg)
//	    _ = op
//	}
//
// # Scoped Overrides
//
// The Scoped setters flip a flag and return a closure restoring the
// previous value, so a mode change cannot leak past the computation that
// asked for it, even on panic:
//
//	defer cfg.ScopedFastLogProb(true)()
//
// Settings values are not synchronized; give each concurrent computation
// its own Settings.
package settings
