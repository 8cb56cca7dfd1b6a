// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logger

// Level is a log record's severity.
type Level uint8

const (
	Debug Level = iota
	Info
	Warn
	Error
	Fatal
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// maxMessageLen bounds a record's formatted payload so Record stays a
// fixed-size value usable inline in the ring, with no per-log allocation.
const maxMessageLen = 256

// Record is a fixed-size log entry. Producers format into it directly;
// the writer thread never allocates to process one.
type Record struct {
	TimestampNs uint64
	Level       Level
	ThreadID    string // producer identity prefix, supplied by the caller of Log
	msg         [maxMessageLen]byte
	msgLen      uint16
}

// SetMessage copies s into the record's fixed payload, truncating if s
// exceeds maxMessageLen.
func (r *Record) SetMessage(s string) {
	n := copy(r.msg[:], s)
	r.msgLen = uint16(n)
}

// Message returns the record's formatted payload.
func (r *Record) Message() string {
	return string(r.msg[:r.msgLen])
}
