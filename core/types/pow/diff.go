// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.
package pow

import (
	"math/big"

	"github.com/Qitmeer/cuckoo-verifier/common/hash"
	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo"
)

const MIN_CUCKAROOEDGEBITS = 24

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// oneLsh256 is 1 shifted left 256 bits.  It is defined here to avoid
	// the overhead of creating it multiple times.
	OneLsh256 = new(big.Int).Lsh(bigOne, 256)
)

// HashToBig converts a hash.Hash into a big.Int that can be used to
// perform math comparisons.
func HashToBig(hash *hash.Hash) *big.Int {
	// A Hash is in little-endian, but the big package wants the bytes in
	// big-endian, so reverse them.
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}

	return new(big.Int).SetBytes(buf[:])
}

// CompactToBig expands a compact difficulty. The high byte is a base 256
// exponent, bit 23 the sign and the low 23 bits the mantissa:
// N = (-1^sign) * mantissa * 256^(exponent-3).
func CompactToBig(compact uint32) *big.Int {
	mantissa := int64(compact & 0x007fffff)
	exponent := uint(compact >> 24)

	var n *big.Int
	if exponent <= 3 {
		n = big.NewInt(mantissa >> (8 * (3 - exponent)))
	} else {
		n = new(big.Int).Lsh(big.NewInt(mantissa), 8*(exponent-3))
	}
	if compact&0x00800000 != 0 {
		n.Neg(n)
	}
	return n
}

// BigToCompact is the inverse of CompactToBig. Only the 23 most significant
// bits of n survive.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}
	abs := new(big.Int).Abs(n)
	exponent := uint(len(abs.Bytes()))

	var mantissa uint32
	if exponent <= 3 {
		mantissa = uint32(abs.Uint64()) << (8 * (3 - exponent))
	} else {
		mantissa = uint32(new(big.Int).Rsh(abs, 8*(exponent-3)).Uint64())
	}
	// bit 23 is the sign, move the mantissa down a byte to keep it clear
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// IsCanonicalCompact reports whether compact is the encoding BigToCompact
// produces for its own value. Zero mantissas with an exponent, negative
// values and unnormalized forms are not.
func IsCanonicalCompact(compact uint32) bool {
	n := CompactToBig(compact)
	return n.Sign() >= 0 && BigToCompact(n) == compact
}

//calc scale
//the edge_bits is bigger ,then scale is bigger
//Reference resources https://eprint.iacr.org/2014/059.pdf 9. Difficulty control page 6
// 24 => 48 25 => 100 26 => 208 27 => 432 28 => 896 29 => 1856 30 => 3840 31 => 7936
func GraphWeight(edge_bits uint32) uint64 {
	return (2 << (edge_bits - MIN_CUCKAROOEDGEBITS)) * uint64(edge_bits)
}

// UnscaledDiff is ((1 << 256) - scale) / hash, with the cycle hash read back
// in its unreversed byte order. A zero hash divides by one.
func UnscaledDiff(cycleHash hash.Hash, scale uint64) *big.Int {
	c := HashToBig(&cycleHash)
	if c.Sign() == 0 {
		c.Set(bigOne)
	}
	a := new(big.Int).Sub(OneLsh256, new(big.Int).SetUint64(scale))
	return a.Div(a, c)
}

// ScaledDiff always scales 31 edge bit proofs by their graph weight; other
// sizes use arScale.
func ScaledDiff(edgeBits uint8, cycleHash hash.Hash, arScale uint64) *big.Int {
	scale := arScale
	if edgeBits == cuckoo.Cuckatoo31EdgeBits {
		scale = GraphWeight(cuckoo.Cuckatoo31EdgeBits)
	}
	return UnscaledDiff(cycleHash, scale)
}
