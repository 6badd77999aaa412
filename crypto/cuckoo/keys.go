// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

package cuckoo

import (
	"github.com/Qitmeer/cuckoo-verifier/common/hash"
	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo/siphash"
)

// DeriveKeys hashes the header with unkeyed blake2b-256 and reads the digest
// as four little endian siphash keys. Any length, including zero, is fine.
func DeriveKeys(header []byte) siphash.Keys {
	h := hash.HashH(header)
	// 32 bytes never fail NewKeys
	k, _ := siphash.NewKeys(h[:])
	return k
}
