// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.
// Reference resources of rust bitVector
package util

import "errors"

//invalid bit length
var errInvalidLength = errors.New("invalid length")

//BitVector this is design for cuckoo hash bytes
type BitVector struct {
	b []byte
}

// ByteLen is the number of bytes needed to hold l bits.
func ByteLen(l int) int {
	return (l + 7) / 8
}

// init
func New(l int) (bv *BitVector, err error) {
	if l <= 0 {
		return nil, errInvalidLength
	}
	return NewFromBytes(make([]byte, ByteLen(l)), l)
}

// convert from bytes
func NewFromBytes(b []byte, l int) (bv *BitVector, err error) {
	if l <= 0 {
		return nil, errInvalidLength
	}
	if len(b)*8 < l {
		return nil, errInvalidLength
	}
	return &BitVector{b: b}, nil
}

// set position
func (bv *BitVector) SetBitAt(pos int) {
	bv.b[pos/8] |= 1 << (uint(pos) % 8)
}

// PutUint writes the low width bits of v starting at bit pos, least
// significant bit first. Bits already set are left untouched.
func (bv *BitVector) PutUint(pos int, v uint64, width int) {
	for bit := 0; bit < width; bit++ {
		if v&(1<<uint(bit)) != 0 {
			bv.SetBitAt(pos + bit)
		}
	}
}

//return bytes
func (bv *BitVector) Bytes() []byte {
	return bv.b
}
