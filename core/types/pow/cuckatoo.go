// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.
package pow

import (
	"fmt"
	"math/big"

	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo"
	"github.com/Qitmeer/cuckoo-verifier/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

var ErrDifficultyTooEasy = errors.New("difficulty is too easy!")

// Verify checks the cycle against the graph keyed by header. Unsupported
// edge bits are an error; a failed cycle is reported by the code only.
func (this *Cuckoo) Verify(header []byte) (cuckoo.VerifyCode, error) {
	p, err := this.Params()
	if err != nil {
		return cuckoo.VerifyInvalid, err
	}
	keys := cuckoo.DeriveKeys(header)
	return this.verifyGraph(p, p.NewGraph(&keys))
}

func (this *Cuckoo) verifyGraph(p cuckoo.Params, g cuckoo.Graph) (cuckoo.VerifyCode, error) {
	nonces := this.GetCircleNonces()
	code, err := p.VerifyGraph(g, nonces[:])
	if err != nil {
		return code, err
	}
	if code != cuckoo.VerifyOK {
		log.Debug("Verify Error!", "pow", p, "code", code)
		log.Trace("Rejected cycle", "nonces", log.NewLogClosure(func() string {
			return spew.Sdump(nonces)
		}))
	}
	return code, nil
}

// CheckTarget verifies the cycle and requires its scaled difficulty to be
// at least targetDiff. arScale is the scale applied to non cuckatoo31 proofs.
func (this *Cuckoo) CheckTarget(header []byte, targetDiff *big.Int, arScale uint64) error {
	p, err := this.Params()
	if err != nil {
		return err
	}
	keys := cuckoo.DeriveKeys(header)
	return this.checkTarget(p, p.NewGraph(&keys), targetDiff, arScale)
}

func (this *Cuckoo) checkTarget(p cuckoo.Params, g cuckoo.Graph, targetDiff *big.Int, arScale uint64) error {
	code, err := this.verifyGraph(p, g)
	if err != nil {
		return err
	}
	if err := code.Err(); err != nil {
		return err
	}
	diff, err := this.Difficulty(arScale)
	if err != nil {
		return err
	}
	if diff.Cmp(targetDiff) < 0 {
		return errors.Wrapf(ErrDifficultyTooEasy, "solution %d, target %d", diff, targetDiff)
	}
	return nil
}

// Difficulty is the scaled difficulty of the proof's cycle hash.
func (this *Cuckoo) Difficulty(arScale uint64) (*big.Int, error) {
	h, err := this.CycleHash()
	if err != nil {
		return nil, err
	}
	diff := ScaledDiff(this.GetEdgeBits(), h, arScale)
	log.Trace(fmt.Sprintf("solution difficulty:%d", diff))
	return diff, nil
}
