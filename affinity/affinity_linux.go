// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package affinity

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Pin binds the calling OS thread to coreID. The caller must have already
// called runtime.LockOSThread; Pin does not do this itself since the
// caller's goroutine, not this package, owns that lifecycle decision.
//
// On failure the thread's affinity is left unchanged and a non-nil error
// is returned; the caller may continue running unpinned.
func Pin(coreID int) error {
	if coreID < 0 {
		return fmt.Errorf("affinity: core id %d is negative", coreID)
	}
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(coreID)
	if err := unix.SchedSetaffinity(0, &mask); err != nil {
		return fmt.Errorf("affinity: pin to core %d: %w", coreID, err)
	}
	return nil
}

// SetRealtime requests SCHED_FIFO scheduling at priority (1-99, higher runs
// first) for the calling thread. Requires CAP_SYS_NICE or root; on failure
// the thread keeps its current scheduling policy and a non-nil error is
// returned. Callers that tolerate default scheduling should treat the
// error as informational, not fatal.
func SetRealtime(priority int) error {
	if priority < 1 || priority > 99 {
		return fmt.Errorf("affinity: priority %d out of range [1,99]", priority)
	}
	param := &unix.SchedParam{Priority: int32(priority)}
	if err := unix.SchedSetscheduler(0, unix.SCHED_FIFO, param); err != nil {
		return fmt.Errorf("affinity: set realtime priority %d: %w", priority, err)
	}
	return nil
}

// SetName sets the calling OS thread's name, visible to tools like ps -T
// and /proc/<pid>/task/<tid>/comm. Truncated to 15 bytes plus NUL, the
// Linux TASK_COMM_LEN limit.
func SetName(name string) error {
	if len(name) > 15 {
		name = name[:15]
	}
	buf := make([]byte, len(name)+1)
	copy(buf, name)

	err := unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0)
	runtime.KeepAlive(buf)
	if err != nil {
		return fmt.Errorf("affinity: set name %q: %w", name, err)
	}
	return nil
}
