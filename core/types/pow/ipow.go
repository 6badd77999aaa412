// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.
package pow

import (
	"encoding/hex"
)

// the pow length is 178
const POW_LENGTH = 178

// proof data length is 169
const PROOFDATA_LENGTH = 169

type PowType byte
type PowBytes []byte

const (
	//pow type enum
	CUCKAROO PowType = 1
	CUCKATOO PowType = 2
)

var PowMapString = map[PowType]string{
	CUCKAROO: "cuckaroo",
	CUCKATOO: "cuckatoo",
}

func GetPowName(powType PowType) string {
	return PowMapString[powType]
}

// 1 byte edge bits followed by 42 little endian uint32 edges
type ProofDataType [PROOFDATA_LENGTH]byte

func (this *ProofDataType) String() string {
	return hex.EncodeToString(this[:])
}

func (this *ProofDataType) Bytes() []byte {
	return this[:]
}
