// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

package util

// ReverseBytes reverses b in place.
func ReverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
