// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.
package pow

import (
	"encoding/binary"
	"fmt"

	"github.com/Qitmeer/cuckoo-verifier/common/hash"
	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo"
)

// Cuckoo is a cycle proof as it travels with a block: the header nonce and
// the proof data holding the edge bits and the 42 cycle edges.
type Cuckoo struct {
	Nonce     uint64        //header nonce 8 bytes
	ProofData ProofDataType // 1 edge_bits  168  bytes circle length total 169 bytes
}

const (
	PROOF_DATA_EDGE_BITS_START  = 0
	PROOF_DATA_EDGE_BITS_END    = 1
	PROOF_DATA_CIRCLE_NONCE_END = 169
)

// NewCuckoo packs edgeBits and edges into a proof.
func NewCuckoo(edgeBits uint8, nonce uint64, edges []uint32) (*Cuckoo, error) {
	if len(edges) != cuckoo.ProofSize {
		return nil, fmt.Errorf("%d circle edges, want %d", len(edges), cuckoo.ProofSize)
	}
	c := &Cuckoo{Nonce: nonce}
	c.SetEdgeBits(edgeBits)
	c.SetCircleEdges(edges)
	return c, nil
}

// ParseCuckoo reads the layout written by Bytes.
func ParseCuckoo(b []byte) (*Cuckoo, error) {
	if len(b) != POW_LENGTH {
		return nil, fmt.Errorf("pow bytes length %d, want %d", len(b), POW_LENGTH)
	}
	c := &Cuckoo{}
	powType := PowType(b[0])
	c.Nonce = binary.LittleEndian.Uint64(b[1:9])
	copy(c.ProofData[:], b[9:])
	if powType != c.GetPowType() {
		return nil, fmt.Errorf("pow type %d does not match edge bits %d", powType, c.GetEdgeBits())
	}
	return c, nil
}

// set edge bits
func (this *Cuckoo) SetEdgeBits(edge_bits uint8) {
	this.ProofData[PROOF_DATA_EDGE_BITS_START] = edge_bits
}

// get edge bits
func (this *Cuckoo) GetEdgeBits() uint8 {
	return this.ProofData[PROOF_DATA_EDGE_BITS_START]
}

// set edge circles
func (this *Cuckoo) SetCircleEdges(edges []uint32) {
	for i := 0; i < len(edges) && i < cuckoo.ProofSize; i++ {
		start := i*4 + PROOF_DATA_EDGE_BITS_END
		binary.LittleEndian.PutUint32(this.ProofData[start:start+4], edges[i])
	}
}

func (this *Cuckoo) GetCircleNonces() (nonces [cuckoo.ProofSize]uint32) {
	j := 0
	for i := PROOF_DATA_EDGE_BITS_END; i < PROOF_DATA_CIRCLE_NONCE_END; i += 4 {
		nonces[j] = binary.LittleEndian.Uint32(this.ProofData[i : i+4])
		j++
	}
	return
}

// Params returns the graph profile named by the edge bits.
func (this *Cuckoo) Params() (cuckoo.Params, error) {
	return cuckoo.ParamsFor(this.GetEdgeBits())
}

// 31 edge bits is cuckatoo, everything else is verified as cuckaroo
func (this *Cuckoo) GetPowType() PowType {
	if this.GetEdgeBits() == cuckoo.Cuckatoo31EdgeBits {
		return CUCKATOO
	}
	return CUCKAROO
}

// CycleHash is the canonical digest of the proof edges.
func (this *Cuckoo) CycleHash() (hash.Hash, error) {
	p, err := this.Params()
	if err != nil {
		return hash.ZeroHash, err
	}
	nonces := this.GetCircleNonces()
	return p.CycleHash(nonces[:])
}

func (this *Cuckoo) Bytes() PowBytes {
	r := make(PowBytes, 0, POW_LENGTH)
	//write pow type 1 byte
	r = append(r, byte(this.GetPowType()))
	//write nonce 8 bytes
	n := make([]byte, 8)
	binary.LittleEndian.PutUint64(n, this.Nonce)
	r = append(r, n...)
	//write ProofData 169 bytes
	r = append(r, this.ProofData[:]...)
	return r
}

func (this *Cuckoo) String() string {
	return fmt.Sprintf("%s edge_bits:%d nonce:%d proof:%s",
		GetPowName(this.GetPowType()), this.GetEdgeBits(), this.Nonce, this.ProofData.String())
}
