package siphash

import (
	"encoding/binary"
	"errors"
)

// KeySize is the number of key bytes consumed by NewKeys.
const KeySize = 32

var errShortKey = errors.New("siphash key needs 32 bytes")

// Keys holds the four 64 bit words that seed the siphash lanes of a cuckoo
// graph. They are used as the initial state directly, not mixed with the
// standard siphash initialization constants.
type Keys [4]uint64

// NewKeys reads four little endian words from the first 32 bytes of b.
func NewKeys(b []byte) (Keys, error) {
	var k Keys
	if len(b) < KeySize {
		return k, errShortKey
	}
	k[0] = binary.LittleEndian.Uint64(b[0:8])
	k[1] = binary.LittleEndian.Uint64(b[8:16])
	k[2] = binary.LittleEndian.Uint64(b[16:24])
	k[3] = binary.LittleEndian.Uint64(b[24:32])
	return k, nil
}

// Hash24 runs siphash-2-4 over the single block nonce with the lanes
// initialized from keys.
func Hash24(keys *Keys, nonce uint64) uint64 {
	s := sipHash24{keys[0], keys[1], keys[2], keys[3]}
	s.hash(nonce)
	return s.digest()
}

// sipHash24 is the working state of one hashing. It lives on the caller's
// stack, so concurrent hashing needs no locking.
type sipHash24 struct {
	v0, v1, v2, v3 uint64
}

// One siphash24 hashing, consisting of 2 and then 4 rounds
func (s *sipHash24) hash(nonce uint64) {
	s.v3 ^= nonce
	s.round()
	s.round()

	s.v0 ^= nonce
	s.v2 ^= 0xff

	for i := 0; i < 4; i++ {
		s.round()
	}
}

// Resulting hash digest
func (s *sipHash24) digest() uint64 {
	return (s.v0 ^ s.v1) ^ (s.v2 ^ s.v3)
}

func (s *sipHash24) round() {
	s.v0 += s.v1
	s.v2 += s.v3
	s.v1 = rotl(s.v1, 13)
	s.v3 = rotl(s.v3, 16)
	s.v1 ^= s.v0
	s.v3 ^= s.v2
	s.v0 = rotl(s.v0, 32)
	s.v2 += s.v1
	s.v0 += s.v3
	s.v1 = rotl(s.v1, 17)
	s.v3 = rotl(s.v3, 21)
	s.v1 ^= s.v2
	s.v3 ^= s.v0
	s.v2 = rotl(s.v2, 32)
}

func rotl(val uint64, shift uint8) uint64 {
	return (val << shift) | (val >> (64 - shift))
}
