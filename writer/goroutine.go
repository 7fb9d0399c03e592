// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

package writer

import (
	"bytes"
	"runtime"
	"strconv"
)

// CurrentGoroutine returns the numeric id of the calling goroutine, the
// thread identifier printed in each log line. The runtime does not expose
// the id directly, so it is recovered from the stack trace header, which
// has the fixed form "goroutine <id> [<state>]:". Returns 0 if the header
// cannot be parsed.
func CurrentGoroutine() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := buf[:n]

	header = bytes.TrimPrefix(header, []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i > 0 {
		header = header[:i]
	}

	id, err := strconv.ParseUint(string(header), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
