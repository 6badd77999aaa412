// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/big"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Qitmeer/cuckoo-verifier/common/hash"
	"github.com/Qitmeer/cuckoo-verifier/core/types/pow"
	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo"
	"github.com/Qitmeer/cuckoo-verifier/log"
	"github.com/Qitmeer/cuckoo-verifier/metrics"
	"github.com/Qitmeer/cuckoo-verifier/services/verifier"
	"github.com/jessevdk/go-flags"
)

const (
	appName            = "cuckooverify"
	defaultEdgeBits    = cuckoo.Cuckatoo31EdgeBits
	defaultDebugLevel  = "info"
	defaultLogFilename = appName + ".log"
	maxWorkers         = 256
	metricsRefresh     = 3 * time.Second
)

type Config struct {
	EdgeBits          uint8  `short:"e" long:"edgebits" description:"Edge bits of the graph {29,31}"`
	Header            string `short:"H" long:"header" description:"Header the graph is keyed by, hex with optional 0x prefix"`
	Proof             string `short:"p" long:"proof" description:"The 42 cycle edges, comma separated"`
	CycleHash         bool   `long:"cyclehash" description:"Print the cycle hash only"`
	ARScale           uint64 `long:"arscale" description:"Difficulty scale for cuckaroo proofs"`
	Target            string `long:"target" description:"Minimum scaled difficulty, 0 skips the check"`
	TargetBits        string `long:"targetbits" description:"Minimum scaled difficulty in compact form, hex"`
	Expect            string `long:"expect" description:"Expected cycle hash of the single proof, hex as printed"`
	Batch             string `short:"b" long:"batch" description:"File with one proof per line: <edgebits> <header hex> <edges>"`
	NumWorkers        int    `short:"w" long:"workers" description:"Number of verify workers, 0 uses one per CPU"`
	DebugLevel        string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, crit}"`
	DebugPrintOrigins bool   `long:"printorigin" description:"Print log debug location (file:line) "`
	LogDir            string `long:"logdir" description:"Directory to log output"`
	Metrics           bool   `long:"metrics" description:"Collect and print verify metrics"`

	target *big.Int
	expect *hash.Hash
}

// loadConfig parses the command line options and applies the logging and
// metrics settings.
func loadConfig(args []string) (*Config, []string, error) {
	// Default config.
	cfg := Config{
		EdgeBits:   defaultEdgeBits,
		ARScale:    verifier.DefaultARScale,
		DebugLevel: defaultDebugLevel,
		Target:     "0",
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)

	funcName := "loadConfig"
	if err := log.SetLevel(cfg.DebugLevel); err != nil {
		str := "%s: %v"
		return nil, nil, fmt.Errorf(str, funcName, err)
	}
	if cfg.DebugPrintOrigins {
		log.PrintOrigins(true)
	}
	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := log.InitLogRotator(logFile); err != nil {
			return nil, nil, fmt.Errorf("%s: %v", funcName, err)
		}
	}
	if cfg.Metrics {
		metrics.Enable()
	}

	if _, err := cuckoo.ParamsFor(cfg.EdgeBits); err != nil {
		return nil, nil, fmt.Errorf("%s: %v", funcName, err)
	}

	// A single proof or a batch file, never both.
	single := cfg.Header != "" || cfg.Proof != ""
	if single == (cfg.Batch != "") {
		str := "%s: exactly one of --proof or --batch must be given -- %s"
		return nil, nil, fmt.Errorf(str, funcName, usageMessage)
	}
	if single && cfg.Proof == "" {
		return nil, nil, fmt.Errorf("%s: --proof is required with --header", funcName)
	}

	target, ok := new(big.Int).SetString(strings.TrimSpace(cfg.Target), 10)
	if !ok || target.Sign() < 0 {
		return nil, nil, fmt.Errorf("%s: invalid target %q", funcName, cfg.Target)
	}
	if cfg.TargetBits != "" {
		if target.Sign() != 0 {
			return nil, nil, fmt.Errorf("%s: --target and --targetbits can't be used together", funcName)
		}
		bits, err := strconv.ParseUint(strings.TrimPrefix(cfg.TargetBits, "0x"), 16, 32)
		if err != nil || !pow.IsCanonicalCompact(uint32(bits)) {
			return nil, nil, fmt.Errorf("%s: invalid target bits %q", funcName, cfg.TargetBits)
		}
		target = pow.CompactToBig(uint32(bits))
	}
	cfg.target = target

	if cfg.Expect != "" {
		if !single {
			return nil, nil, fmt.Errorf("%s: --expect applies to a single proof, "+
				"batch lines take it as a fourth field", funcName)
		}
		cfg.expect, err = hash.NewHashFromHex(strings.TrimPrefix(cfg.Expect, "0x"))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: invalid expected cycle hash: %v", funcName, err)
		}
	}

	// Validate the number of workers.
	if cfg.NumWorkers < 0 || cfg.NumWorkers > maxWorkers {
		str := "%s: The specified number of workers is out of " +
			"range -- parsed [%v]"
		return nil, nil, fmt.Errorf(str, funcName, cfg.NumWorkers)
	}
	return &cfg, remainingArgs, nil
}
