// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logger

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// writeRecords assembles batch into gathered line buffers and emits them
// as a single vectored write where supported, falling back to sequential
// writes otherwise. If the file descriptor has already faulted, the batch
// is silently discarded (messages lost, producers never blocked).
func (lg *Logger) writeRecords(batch []Record) {
	if lg.ioFault.Load() {
		lg.errors.Add(uint64(len(batch)))
		return
	}

	iovs := make([][]byte, 0, len(batch)*8)
	for i := range batch {
		iovs = append(iovs, formatLine(&batch[i])...)
	}

	written, err := unix.Writev(int(lg.file.Fd()), iovs)
	n := uint64(written)
	if err != nil {
		// Fall back to sequential writes once; a second failure marks the
		// descriptor faulted so later batches are dropped instead of
		// retried forever.
		n = 0
		for _, iov := range iovs {
			wn, werr := lg.file.Write(iov)
			n += uint64(wn)
			if werr != nil {
				err = werr
				break
			}
		}
	}

	if err != nil {
		lg.errors.Add(1)
		lg.ioFault.Store(true)
		return
	}

	lg.written.Add(uint64(len(batch)))
	lg.bytes.Add(n)
}

// formatLine returns the vectored pieces for one record: timestamp,
// level tag, thread-id prefix, message payload, newline.
func formatLine(r *Record) [][]byte {
	ts := strconv.AppendUint(nil, r.TimestampNs, 10)
	return [][]byte{
		ts,
		[]byte(" "),
		[]byte(r.Level.String()),
		[]byte(" ["),
		[]byte(r.ThreadID),
		[]byte("] "),
		[]byte(r.Message()),
		[]byte("\n"),
	}
}
