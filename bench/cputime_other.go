//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

// SPDX-License-Identifier: MIT

package bench

import "time"

// processCPUTime is unavailable on this platform; reports carry zero CPU time.
func processCPUTime() time.Duration { return 0 }
