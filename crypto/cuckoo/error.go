// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

package cuckoo

import (
	"errors"
	"fmt"
)

// VerifyCode is the outcome of a cycle verification. The numbering is fixed
// and may be relied on by callers that exchange codes as integers.
type VerifyCode int

const (
	VerifyOK VerifyCode = iota
	// VerifyHeaderLength is reserved for callers validating header sizes.
	// The verifier itself never returns it.
	VerifyHeaderLength
	VerifyTooBig
	VerifyTooSmall
	VerifyNonMatching
	VerifyBranch
	VerifyDeadEnd
	VerifyShortCycle
)

// VerifyInvalid accompanies errors such as ErrMalformedProof. It is not an
// outcome, it only keeps a failed call from reading as VerifyOK.
const VerifyInvalid VerifyCode = -1

var (
	// ErrMalformedProof is returned when a proof or node list does not hold
	// exactly ProofSize entries.
	ErrMalformedProof = errors.New("malformed cuckoo proof")
	// ErrUnsupportedEdgeBits is returned for graph sizes other than 29 and 31.
	ErrUnsupportedEdgeBits = errors.New("unsupported edge bits")

	ErrHeaderLength = errors.New("wrong header length")
	ErrTooBig       = errors.New("edge too big")
	ErrTooSmall     = errors.New("edges not ascending")
	ErrNonMatching  = errors.New("endpoints don't match up")
	ErrBranch       = errors.New("branch in cycle")
	ErrDeadEnd      = errors.New("cycle dead ends")
	ErrShortCycle   = errors.New("cycle too short")
)

var verifyCodeStrings = map[VerifyCode]string{
	VerifyOK:           "POW_OK",
	VerifyHeaderLength: "POW_HEADER_LENGTH",
	VerifyTooBig:       "POW_TOO_BIG",
	VerifyTooSmall:     "POW_TOO_SMALL",
	VerifyNonMatching:  "POW_NON_MATCHING",
	VerifyBranch:       "POW_BRANCH",
	VerifyDeadEnd:      "POW_DEAD_END",
	VerifyShortCycle:   "POW_SHORT_CYCLE",
}

func (c VerifyCode) String() string {
	if s, ok := verifyCodeStrings[c]; ok {
		return s
	}
	return fmt.Sprintf("Unknown VerifyCode (%d)", int(c))
}

// IsValid reports whether c is one of the defined codes.
func (c VerifyCode) IsValid() bool {
	return c >= VerifyOK && c <= VerifyShortCycle
}

// Err returns nil for VerifyOK and the matching sentinel error otherwise.
func (c VerifyCode) Err() error {
	switch c {
	case VerifyOK:
		return nil
	case VerifyHeaderLength:
		return ErrHeaderLength
	case VerifyTooBig:
		return ErrTooBig
	case VerifyTooSmall:
		return ErrTooSmall
	case VerifyNonMatching:
		return ErrNonMatching
	case VerifyBranch:
		return ErrBranch
	case VerifyDeadEnd:
		return ErrDeadEnd
	case VerifyShortCycle:
		return ErrShortCycle
	}
	return fmt.Errorf("unknown verify code %d", int(c))
}
