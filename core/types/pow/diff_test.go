package pow

import (
	"math/big"
	"testing"

	"github.com/Qitmeer/cuckoo-verifier/common/hash"
	"github.com/stretchr/testify/assert"
)

func TestCalcScale(t *testing.T) {
	assert.Equal(t, uint64(48), GraphWeight(24))
	assert.Equal(t, uint64(100), GraphWeight(25))
	assert.Equal(t, uint64(208), GraphWeight(26))
	assert.Equal(t, uint64(1856), GraphWeight(29))
	assert.Equal(t, uint64(7936), GraphWeight(31))
}

// scale * 2^ 64 / diff is target
//edge bits 24 scale is 48
func TestBigToCompact(t *testing.T) {
	diff := 48
	diffBig := &big.Int{}
	diffBig.SetUint64(uint64(diff))
	assert.Equal(t, uint32(0x1300000), BigToCompact(diffBig))
	assert.Equal(t, diffBig.String(), CompactToBig(0x1300000).String())
	assert.Equal(t, uint32(0), BigToCompact(big.NewInt(0)))
	assert.Equal(t, "-48", CompactToBig(0x3800030).String())
	assert.Equal(t, uint32(0x1b00000), BigToCompact(big.NewInt(-48)))

	// a mantissa reaching bit 23 moves up one exponent
	assert.Equal(t, uint32(0x2008000), BigToCompact(big.NewInt(0x80)))
	assert.Equal(t, "128", CompactToBig(0x2008000).String())

	large := new(big.Int).Lsh(big.NewInt(0x123456), 80)
	assert.Equal(t, uint32(0x0d123456), BigToCompact(large))
	assert.Equal(t, large.String(), CompactToBig(0x0d123456).String())
}

func TestIsCanonicalCompact(t *testing.T) {
	assert.True(t, IsCanonicalCompact(0))
	assert.True(t, IsCanonicalCompact(0x1300000))
	assert.True(t, IsCanonicalCompact(0x0d123456))
	// 48 written with a spare exponent byte
	assert.False(t, IsCanonicalCompact(0x2003000))
	assert.False(t, IsCanonicalCompact(0x1b00000))
	assert.False(t, IsCanonicalCompact(0x5000000))
}

func TestHashToBig(t *testing.T) {
	var h hash.Hash
	h[31] = 0x01
	expect := new(big.Int).Lsh(bigOne, 248)
	assert.Equal(t, expect.String(), HashToBig(&h).String())
	// the argument is not modified
	assert.Equal(t, byte(0x01), h[31])
}

func TestUnscaledDiff(t *testing.T) {
	var h hash.Hash
	h[31] = 0x01
	assert.Equal(t, uint64(255), UnscaledDiff(h, 1).Uint64())
	assert.Equal(t, uint64(255), UnscaledDiff(h, 7936).Uint64())

	var one hash.Hash
	one[0] = 0x01
	expect := new(big.Int).Sub(OneLsh256, big.NewInt(1856))
	assert.Equal(t, expect.String(), UnscaledDiff(one, 1856).String())

	// zero hash divides by one
	assert.Equal(t, expect.String(), UnscaledDiff(hash.ZeroHash, 1856).String())

	var max hash.Hash
	for i := range max {
		max[i] = 0xff
	}
	assert.Equal(t, uint64(1), UnscaledDiff(max, 0).Uint64())
	assert.Equal(t, uint64(1), UnscaledDiff(max, 1).Uint64())
	assert.Equal(t, uint64(0), UnscaledDiff(max, 2).Uint64())
}

func TestScaledDiff(t *testing.T) {
	var one hash.Hash
	one[0] = 0x01
	expect := func(scale int64) string {
		return new(big.Int).Sub(OneLsh256, big.NewInt(scale)).String()
	}
	assert.Equal(t, expect(7936), ScaledDiff(31, one, 1856).String())
	assert.Equal(t, expect(1856), ScaledDiff(29, one, 1856).String())
	assert.Equal(t, expect(100), ScaledDiff(29, one, 100).String())
}
