// Copyright (c) 2017-2018 The nox developers
package hash

import (
	"golang.org/x/crypto/blake2b"
)

// HashH calculates hash(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(blake2b.Sum256(b))
}
