// Copyright 2025 LinOp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package settings

import (
	"github.com/linop-ml/linop/internal/settings"
)

// Settings holds the numerical-mode flags consulted by lazy operators.
//
// Settings values are not synchronized; give each concurrent computation
// its own Settings.
type Settings = settings.Settings

// Default returns a fresh Settings with the default modes: debug checks
// enabled, fast log-probability approximations disabled.
func Default() *Settings {
	return settings.Default()
}
