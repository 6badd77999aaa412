// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

package cuckoo

import (
	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo/siphash"
)

// VerifyHeader derives the siphash keys from header and verifies edges.
func (p Params) VerifyHeader(header []byte, edges []uint32) (VerifyCode, error) {
	keys := DeriveKeys(header)
	return p.Verify(&keys, edges)
}

// Verify checks that edges form a single cycle of ProofSize edges in the
// graph keyed by keys. The error is only set when edges does not hold
// exactly ProofSize entries; every other failure is reported by the code.
func (p Params) Verify(keys *siphash.Keys, edges []uint32) (VerifyCode, error) {
	return p.VerifyGraph(p.NewGraph(keys), edges)
}

// VerifyGraph verifies edges against an arbitrary endpoint source.
func (p Params) VerifyGraph(g Graph, edges []uint32) (VerifyCode, error) {
	if err := checkLen("proof", len(edges)); err != nil {
		return VerifyInvalid, err
	}
	var proof [ProofSize]uint32
	copy(proof[:], edges)
	return verify(g, p.EdgeMask(), &proof), nil
}

func verify(g Graph, edgemask uint32, edges *[ProofSize]uint32) VerifyCode {
	var uvs [2 * ProofSize]uint32
	var xor0, xor1 uint32
	xor0 = (ProofSize / 2) & 1
	xor1 = xor0

	for n := 0; n < ProofSize; n++ {
		if edges[n] > edgemask {
			return VerifyTooBig
		}
		if n > 0 && edges[n] <= edges[n-1] {
			return VerifyTooSmall
		}
		uvs[2*n] = g.Node(edges[n], 0)
		uvs[2*n+1] = g.Node(edges[n], 1)
		xor0 ^= uvs[2*n]
		xor1 ^= uvs[2*n+1]
	}
	// cheap rejection of obviously bad proofs
	if xor0|xor1 != 0 {
		return VerifyNonMatching
	}

	n := 0
	for i := 0; ; {
		// find the other endpoint on the same side sharing the node at i
		another := i
		for k := (i + 2) % (2 * ProofSize); k != i; k = (k + 2) % (2 * ProofSize) {
			if uvs[k]>>1 == uvs[i]>>1 {
				if another != i {
					return VerifyBranch
				}
				another = k
			}
		}
		if another == i || uvs[another] == uvs[i] {
			return VerifyDeadEnd
		}
		i = another ^ 1
		n++
		if i == 0 {
			break
		}
	}
	if n != ProofSize {
		return VerifyShortCycle
	}
	return VerifyOK
}
