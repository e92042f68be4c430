// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memstat reports peak memory usage, a portable stand-in for
// the source's resource.getrusage(RUSAGE_SELF).ru_maxrss, which is
// platform-divergent (kilobytes on Linux, bytes on Darwin). Using
// runtime.MemStats avoids that platform branch entirely.
package memstat

import "runtime"

// PeakRSS reports the Go runtime's peak system memory obtained from
// the OS, in MiB. It is a process-wide high-water mark, not a
// snapshot of current live heap size.
func PeakRSS() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.Sys) / (1024 * 1024)
}
