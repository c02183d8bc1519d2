//go:build cgo

package main

import "math"

// fontDataLen validates the length of a caller-supplied byte slice. C.GoBytes
// takes a C int, so lengths beyond math.MaxInt32 are rejected rather than
// truncated.
func fontDataLen(n int64, null bool) (int32, bool) {
	if n < 0 || n > math.MaxInt32 || (n > 0 && null) {
		return 0, false
	}
	return int32(n), true
}
