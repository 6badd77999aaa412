// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

// Package verifier checks batches of cuckoo cycle proofs on a pool of
// workers.
package verifier

import (
	"context"
	"math/big"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Qitmeer/cuckoo-verifier/common/hash"
	"github.com/Qitmeer/cuckoo-verifier/core/types/pow"
	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo"
	"github.com/Qitmeer/cuckoo-verifier/metrics"
	"github.com/pkg/errors"
	gometrics "github.com/rcrowley/go-metrics"
)

// DefaultARScale is the graph weight of cuckaroo29, the scale applied to
// cuckaroo proofs when no other is configured.
const DefaultARScale = 1856

// ErrCycleHashMismatch is set on results whose digest differs from
// Job.Expect.
var ErrCycleHashMismatch = errors.New("cycle hash mismatch")

// Job is one proof to check against the graph of Header.
type Job struct {
	Header []byte
	Proof  *pow.Cuckoo

	// Target is the minimum scaled difficulty. nil or zero skips the check.
	Target *big.Int

	// Expect is the cycle hash the proof must produce, nil skips the check.
	Expect *hash.Hash
}

// Result is the outcome of a Job.
type Result struct {
	Job        *Job
	Code       cuckoo.VerifyCode
	CycleHash  hash.Hash
	Difficulty *big.Int

	// Err is set for malformed input, unsupported edge bits, proofs below
	// their target and digests other than the expected one.
	Err error
}

// Accepted reports whether the proof verified and met its target.
func (r *Result) Accepted() bool {
	return r.Err == nil && r.Code == cuckoo.VerifyOK
}

type Config struct {
	NumWorkers int
	ARScale    uint64
}

type Verifier struct {
	numWorkers int
	arScale    uint64

	codes   map[cuckoo.VerifyCode]gometrics.Counter
	invalid gometrics.Counter
	timer   gometrics.Timer

	progress *ProgressLogger
}

// New creates a verifier. Metrics must be enabled before the call for the
// counters to be live.
func New(cfg *Config) *Verifier {
	v := &Verifier{
		numWorkers: cfg.NumWorkers,
		arScale:    cfg.ARScale,
		codes:      make(map[cuckoo.VerifyCode]gometrics.Counter),
		invalid:    metrics.NewCounter("cuckoo/verify/invalid"),
		timer:      metrics.NewTimer("cuckoo/verify/time"),
		progress:   NewProgressLogger("Verified", log),
	}
	if v.numWorkers <= 0 {
		v.numWorkers = runtime.NumCPU()
	}
	if v.arScale == 0 {
		v.arScale = DefaultARScale
	}
	for c := cuckoo.VerifyOK; c <= cuckoo.VerifyShortCycle; c++ {
		v.codes[c] = metrics.NewCounter("cuckoo/verify/" + strings.ToLower(c.String()))
	}
	return v
}

func (v *Verifier) NumWorkers() int {
	return v.numWorkers
}

// Verify checks a single job on the calling goroutine.
func (v *Verifier) Verify(job *Job) *Result {
	start := time.Now()
	defer v.timer.UpdateSince(start)

	r := &Result{Job: job, Code: cuckoo.VerifyInvalid}
	if job == nil {
		r.Err = errors.Wrap(cuckoo.ErrMalformedProof, "missing job")
		v.invalid.Inc(1)
		return r
	}
	if job.Proof == nil {
		r.Err = errors.Wrap(cuckoo.ErrMalformedProof, "missing proof")
		v.invalid.Inc(1)
		return r
	}
	r.Code, r.Err = job.Proof.Verify(job.Header)
	if r.Err != nil {
		log.Debug("Rejected job", "err", r.Err)
		v.invalid.Inc(1)
		return r
	}
	v.codes[r.Code].Inc(1)

	r.CycleHash, r.Err = job.Proof.CycleHash()
	if r.Err != nil {
		return r
	}
	r.Difficulty = pow.ScaledDiff(job.Proof.GetEdgeBits(), r.CycleHash, v.arScale)
	if job.Expect != nil && !job.Expect.IsEqual(&r.CycleHash) {
		r.Err = errors.Wrapf(ErrCycleHashMismatch, "got %s, want %s", r.CycleHash.Hex(), job.Expect.Hex())
		return r
	}
	if r.Code == cuckoo.VerifyOK && job.Target != nil && job.Target.Sign() > 0 &&
		r.Difficulty.Cmp(job.Target) < 0 {
		r.Err = errors.Wrapf(pow.ErrDifficultyTooEasy, "solution %d, target %d", r.Difficulty, job.Target)
	}
	return r
}

// Run verifies jobs on the worker pool. Results line up with jobs by index.
// A cancelled ctx stops the workers between jobs; the jobs not reached have
// nil results and ctx.Err() is returned.
func (v *Verifier) Run(ctx context.Context, jobs []*Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}
	numWorkers := v.numWorkers
	if numWorkers > len(jobs) {
		numWorkers = len(jobs)
	}
	log.Debug("Start verify workers", "jobs", len(jobs), "workers", numWorkers)

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for idx := range indexes {
				r := v.Verify(jobs[idx])
				results[idx] = r
				v.progress.LogResult(r)
			}
		}()
	}

	var err error
out:
	for i := range jobs {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break out
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()
	if err != nil {
		log.Warn("Verify workers stopped", "err", err)
	}
	return results, err
}
