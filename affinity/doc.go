// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package affinity pins the calling OS thread to a CPU core, adjusts its
// scheduling priority, and names it, plus a small pool of permanently
// pinned worker goroutines for hot-path work.
//
// Pinning and priority are Linux-only operations backed by
// golang.org/x/sys/unix. On other platforms the same calls compile and
// return a non-fatal error, matching this package's own failure model:
// callers that cannot get a placement guarantee should still make
// progress at default scheduling.
//
//	runtime.LockOSThread()
//	if err := affinity.Pin(3); err != nil {
//	    log.Printf("affinity: pin failed: %v", err)
//	}
//	_ = affinity.SetRealtime(80)
//	_ = affinity.SetName("md-feed-0")
package affinity
