// Copyright (c) 2017-2019 The Qitmeer developers
//
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// The parts code inspired & originated from
// https://github.com/ethereum/go-ethereum/metrics

// Package metrics provides verification and process level metrics collection.
package metrics

import (
	"context"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/Qitmeer/cuckoo-verifier/log"
	"github.com/rcrowley/go-metrics"
)

var (
	mtx sync.RWMutex

	// enabled is the flag specifying if metrics are enable or not.
	enabled = false
)

// Enable switches the metrics system on. Meters, counters and timers created
// before the call stay NOP stubs.
func Enable() {
	mtx.Lock()
	defer mtx.Unlock()
	if !enabled {
		log.Info("Enabling metrics collection")
	}
	enabled = true
}

// Enabled reports whether metrics collection is on.
func Enabled() bool {
	mtx.RLock()
	defer mtx.RUnlock()
	return enabled
}

// NewCounter create a new metrics Counter, either a real one of a NOP stub depending
// on the metrics flag.
func NewCounter(name string) metrics.Counter {
	if !Enabled() {
		return new(metrics.NilCounter)
	}
	return metrics.GetOrRegisterCounter(name, metrics.DefaultRegistry)
}

// NewMeter create a new metrics Meter, either a real one of a NOP stub depending
// on the metrics flag.
func NewMeter(name string) metrics.Meter {
	if !Enabled() {
		return new(metrics.NilMeter)
	}
	return metrics.GetOrRegisterMeter(name, metrics.DefaultRegistry)
}

// NewTimer create a new metrics Timer, either a real one of a NOP stub depending
// on the metrics flag.
func NewTimer(name string) metrics.Timer {
	if !Enabled() {
		return new(metrics.NilTimer)
	}
	return metrics.GetOrRegisterTimer(name, metrics.DefaultRegistry)
}

// CollectProcessMetrics periodically collects memory metrics about the running
// process until ctx is done.
func CollectProcessMetrics(ctx context.Context, refresh time.Duration) {
	// Short circuit if the metrics system is disabled
	if !Enabled() {
		return
	}
	memstats := make([]*runtime.MemStats, 2)
	for i := 0; i < len(memstats); i++ {
		memstats[i] = new(runtime.MemStats)
	}
	memAllocs := metrics.GetOrRegisterMeter("system/memory/allocs", metrics.DefaultRegistry)
	memFrees := metrics.GetOrRegisterMeter("system/memory/frees", metrics.DefaultRegistry)
	memInuse := metrics.GetOrRegisterMeter("system/memory/inuse", metrics.DefaultRegistry)
	memPauses := metrics.GetOrRegisterMeter("system/memory/pauses", metrics.DefaultRegistry)

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()
	for i := 1; ; i++ {
		runtime.ReadMemStats(memstats[i%2])
		memAllocs.Mark(int64(memstats[i%2].Mallocs - memstats[(i-1)%2].Mallocs))
		memFrees.Mark(int64(memstats[i%2].Frees - memstats[(i-1)%2].Frees))
		memInuse.Mark(int64(memstats[i%2].Alloc - memstats[(i-1)%2].Alloc))
		memPauses.Mark(int64(memstats[i%2].PauseTotalNs - memstats[(i-1)%2].PauseTotalNs))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// WriteOnce dumps every registered metric to w in name order.
func WriteOnce(w io.Writer) {
	metrics.WriteOnce(metrics.DefaultRegistry, w)
}
