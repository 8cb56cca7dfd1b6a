// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package affinity

import "fmt"

// Pin always fails on non-Linux platforms: there is no portable CPU
// affinity syscall. The thread's affinity is left unchanged.
func Pin(coreID int) error {
	return fmt.Errorf("affinity: CPU pinning is not supported on this platform")
}

// SetRealtime always fails on non-Linux platforms. The thread keeps its
// current scheduling policy.
func SetRealtime(priority int) error {
	return fmt.Errorf("affinity: real-time scheduling is not supported on this platform")
}

// SetName always fails on non-Linux platforms.
func SetName(name string) error {
	return fmt.Errorf("affinity: thread naming is not supported on this platform")
}
