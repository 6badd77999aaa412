// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

package cuckoo

import (
	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo/siphash"
)

// Graph yields the endpoint an edge connects to on side uorv (0 or 1).
type Graph interface {
	Node(edge, uorv uint32) uint32
}

// SipGraph is the pseudorandom bipartite graph keyed by a header.
type SipGraph struct {
	keys siphash.Keys
	mask uint32
}

// NewGraph builds the graph of size p for keys. The keys are copied.
func (p Params) NewGraph(keys *siphash.Keys) *SipGraph {
	return &SipGraph{keys: *keys, mask: p.EdgeMask()}
}

// Node returns siphash24(keys, 2*edge+uorv) masked to the edge bits.
func (g *SipGraph) Node(edge, uorv uint32) uint32 {
	return Sipnode(&g.keys, edge, uorv, g.mask)
}

// Sipnode is the endpoint generator behind SipGraph. The nonce 2*edge+uorv
// is computed in 32 bits, so edges from 2^31 up wrap onto lower nonces.
func Sipnode(keys *siphash.Keys, edge, uorv, edgemask uint32) uint32 {
	return uint32(siphash.Hash24(keys, uint64(2*edge+uorv))) & edgemask
}
