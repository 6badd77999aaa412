// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

package cuckoo

import (
	"github.com/Qitmeer/cuckoo-verifier/common/hash"
	"github.com/Qitmeer/cuckoo-verifier/common/util"
)

// PackNodes writes the low EdgeBits bits of every node, least significant
// bit first and in the given order, into a zeroed buffer of HashLen bytes.
func (p Params) PackNodes(nodes []uint32) ([]byte, error) {
	if err := checkLen("node list", len(nodes)); err != nil {
		return nil, err
	}
	bits := int(p.EdgeBits)
	bitvec, err := util.New(ProofSize * bits)
	if err != nil {
		return nil, err
	}
	for i, node := range nodes {
		bitvec.PutUint(i*bits, uint64(node), bits)
	}
	return bitvec.Bytes(), nil
}

// CycleHash is the reversed blake2b-256 of the packed nodes. The reversal is
// part of the digest definition; comparisons use the result as is.
func (p Params) CycleHash(nodes []uint32) (hash.Hash, error) {
	packed, err := p.PackNodes(nodes)
	if err != nil {
		return hash.ZeroHash, err
	}
	h := hash.HashH(packed)
	util.ReverseBytes(h[:])
	return h, nil
}
