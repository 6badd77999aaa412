// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

package cuckoo

import (
	"fmt"

	"github.com/Qitmeer/cuckoo-verifier/common/util"
	"github.com/pkg/errors"
)

// ProofSize is the number of edges in a cycle proof. It is shared by every
// graph size.
const ProofSize = 42

const (
	Cuckaroo29EdgeBits = 29
	Cuckatoo31EdgeBits = 31
)

// Params selects the graph size. Both supported profiles run the same
// verifier and hasher, only the width differs.
type Params struct {
	EdgeBits uint8
}

var (
	Cuckaroo29 = Params{EdgeBits: Cuckaroo29EdgeBits}
	Cuckatoo31 = Params{EdgeBits: Cuckatoo31EdgeBits}
)

// ParamsFor returns the profile for edgeBits, or ErrUnsupportedEdgeBits.
func ParamsFor(edgeBits uint8) (Params, error) {
	switch edgeBits {
	case Cuckaroo29EdgeBits:
		return Cuckaroo29, nil
	case Cuckatoo31EdgeBits:
		return Cuckatoo31, nil
	}
	return Params{}, errors.Wrapf(ErrUnsupportedEdgeBits, "edge bits %d", edgeBits)
}

// EdgeMask is 2^EdgeBits - 1, the largest edge index and node id.
func (p Params) EdgeMask() uint32 {
	return uint32(1)<<p.EdgeBits - 1
}

// HashLen is the size of the packed node buffer hashed by CycleHash:
// 153 bytes for 29 edge bits and 163 for 31.
func (p Params) HashLen() int {
	return util.ByteLen(ProofSize * int(p.EdgeBits))
}

func (p Params) String() string {
	switch p.EdgeBits {
	case Cuckaroo29EdgeBits:
		return "cuckaroo29"
	case Cuckatoo31EdgeBits:
		return "cuckatoo31"
	}
	return fmt.Sprintf("cuckoo%d", p.EdgeBits)
}

func checkLen(what string, n int) error {
	if n != ProofSize {
		return errors.Wrapf(ErrMalformedProof, "%s has %d entries, want %d", what, n, ProofSize)
	}
	return nil
}
