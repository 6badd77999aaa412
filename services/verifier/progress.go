// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2016-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verifier

import (
	"sync"
	"time"

	l "github.com/Qitmeer/cuckoo-verifier/log"
)

const progressInterval = time.Second * 10

// ProgressLogger provides periodic logging of a long running batch so users
// can follow how many proofs were checked and how many of them passed.
type ProgressLogger struct {
	received int64
	accepted int64
	lastLog  time.Time
	interval time.Duration
	logger   l.Logger
	action   string
	sync.Mutex
}

// NewProgressLogger returns a new progress logger.
// The progress message is templated as follows:
//  {action} {numProcessed} {proofs|proof} in the last {timePeriod} ({numAccepted} accepted)
func NewProgressLogger(action string, logger l.Logger) *ProgressLogger {
	return &ProgressLogger{
		lastLog:  time.Now(),
		interval: progressInterval,
		action:   action,
		logger:   logger,
	}
}

// LogResult records one finished job. In order to prevent spam, it limits
// logging to one message every interval with duration and totals included.
// It reports whether a message was written.
func (p *ProgressLogger) LogResult(r *Result) bool {
	p.Lock()
	defer p.Unlock()
	p.received++
	if r.Accepted() {
		p.accepted++
	}

	now := time.Now()
	duration := now.Sub(p.lastLog)
	if duration < p.interval {
		return false
	}

	// Truncate the duration to 10s of milliseconds.
	durationMillis := int64(duration / time.Millisecond)
	tDuration := 10 * time.Millisecond * time.Duration(durationMillis/10)

	proofStr := "proofs"
	if p.received == 1 {
		proofStr = "proof"
	}
	p.logger.Info(p.action, "count", p.received, "unit", proofStr,
		"period", tDuration, "accepted", p.accepted)

	p.received = 0
	p.accepted = 0
	p.lastLog = now
	return true
}
