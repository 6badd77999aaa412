// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

// Package cuckootest holds known cuckoo cycle solutions for tests.
package cuckootest

import "encoding/binary"

// Nonce29 is the header nonce Edges29 was found for.
const Nonce29 = 20

// Edges29 is a 42-cycle in the 29 edge bits graph of Header29().
var Edges29 = [42]uint32{
	0x48a9e2, 0x9cf043, 0x155ca30, 0x18f4783, 0x248f86c, 0x2629a64, 0x5bad752, 0x72e3569,
	0x93db760, 0x97d3b37, 0x9e05670, 0xa315d5a, 0xa3571a1, 0xa48db46, 0xa7796b6, 0xac43611,
	0xb64912f, 0xbb6c71e, 0xbcc8be1, 0xc38a43a, 0xd4faa99, 0xe018a66, 0xe37e49c, 0xfa975fa,
	0x11786035, 0x1243b60a, 0x12892da0, 0x141b5453, 0x1483c3a0, 0x1505525e, 0x1607352c,
	0x16181fe3, 0x17e3a1da, 0x180b651e, 0x1899d678, 0x1931b0bb, 0x19606448, 0x1b041655,
	0x1b2c20ad, 0x1bd7a83c, 0x1c05d5b0, 0x1c0b9caa,
}

// Keys29 are the siphash keys derived from Header29().
var Keys29 = [4]uint64{
	0x27580576fe290177,
	0xf9ea9b2031f4e76e,
	0x1663308c8607868f,
	0xb88839b0fa180d0e,
}

// CycleHash29 is the cycle digest of Edges29 in storage order.
const CycleHash29 = "22239aae4a9347e23eae5271297dd31c629b1db7e9f824c809102f5c58478bc0"

// Difficulty29 is the scaled difficulty of CycleHash29 at any scale up to
// the cuckatoo31 graph weight.
const Difficulty29 = 1

// Header29 is 80 zero bytes with Nonce29 little endian in the last four.
func Header29() []byte {
	h := make([]byte, 80)
	binary.LittleEndian.PutUint32(h[76:], Nonce29)
	return h
}

// Edges29Slice returns a fresh copy of Edges29.
func Edges29Slice() []uint32 {
	edges := make([]uint32, len(Edges29))
	copy(edges, Edges29[:])
	return edges
}
