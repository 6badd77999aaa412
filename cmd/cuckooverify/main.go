// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/Qitmeer/cuckoo-verifier/common/hash"
	"github.com/Qitmeer/cuckoo-verifier/core/types/pow"
	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo"
	"github.com/Qitmeer/cuckoo-verifier/log"
	"github.com/Qitmeer/cuckoo-verifier/metrics"
	"github.com/Qitmeer/cuckoo-verifier/services/verifier"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

var errRejected = errors.New("proof rejected")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfg, _, err := loadConfig(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(out, err)
			return nil
		}
		return err
	}
	defer func() {
		if log.LogWrite() != nil {
			log.LogWrite().Close()
		}
	}()

	jobs, err := loadJobs(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)
	go func() {
		select {
		case <-interrupt:
			log.Info("Got Control+C, stopping verify workers")
			cancel()
		case <-ctx.Done():
		}
	}()
	if cfg.Metrics {
		go metrics.CollectProcessMetrics(ctx, metricsRefresh)
	}

	v := verifier.New(&verifier.Config{
		NumWorkers: cfg.NumWorkers,
		ARScale:    cfg.ARScale,
	})
	results, err := v.Run(ctx, jobs)
	if err != nil {
		return err
	}

	rejected := 0
	for _, r := range results {
		if !r.Accepted() {
			rejected++
		}
		showResult(out, r, cfg.CycleHash)
	}
	if cfg.Metrics {
		metrics.WriteOnce(out)
	}
	if rejected > 0 {
		return errors.Wrapf(errRejected, "%d of %d", rejected, len(results))
	}
	return nil
}

func showResult(out io.Writer, r *verifier.Result, hashOnly bool) {
	if r.Difficulty == nil {
		fmt.Fprintf(out, "INVALID %v\n", r.Err)
		return
	}
	if hashOnly {
		fmt.Fprintln(out, r.CycleHash.Hex())
		return
	}
	line := fmt.Sprintf("%s %s %s", r.Code, r.CycleHash.Hex(), r.Difficulty)
	if r.Err != nil {
		line += fmt.Sprintf(" (%v)", r.Err)
	}
	fmt.Fprintln(out, line)
}

// loadJobs builds the single job from the command line or reads the batch
// file.
func loadJobs(cfg *Config) ([]*verifier.Job, error) {
	if cfg.Batch == "" {
		job, err := newJob(cfg.EdgeBits, cfg.Header, cfg.Proof)
		if err != nil {
			return nil, err
		}
		job.Target = cfg.target
		job.Expect = cfg.expect
		return []*verifier.Job{job}, nil
	}

	f, err := os.Open(cfg.Batch)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	jobs, err := readBatch(f)
	if err != nil {
		return nil, errors.Wrap(err, cfg.Batch)
	}
	for _, job := range jobs {
		job.Target = cfg.target
	}
	return jobs, nil
}

// readBatch parses lines of "<edgebits> <header hex> <edges csv>", optionally
// followed by the expected cycle hash. Blank lines and lines starting with #
// are skipped.
func readBatch(r io.Reader) ([]*verifier.Job, error) {
	var jobs []*verifier.Job
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 && len(fields) != 4 {
			return nil, fmt.Errorf("line %d: %d fields, want 3 or 4", lineNo, len(fields))
		}
		bits, err := strconv.ParseUint(fields[0], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("line %d: edge bits: %v", lineNo, err)
		}
		job, err := newJob(uint8(bits), fields[1], fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		if len(fields) == 4 {
			job.Expect, err = hash.NewHashFromHex(strings.TrimPrefix(fields[3], "0x"))
			if err != nil {
				return nil, fmt.Errorf("line %d: expected cycle hash: %v", lineNo, err)
			}
		}
		jobs = append(jobs, job)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

func newJob(edgeBits uint8, header string, proof string) (*verifier.Job, error) {
	h, err := decodeHeader(header)
	if err != nil {
		return nil, err
	}
	edges, err := parseEdges(proof)
	if err != nil {
		return nil, err
	}
	c, err := pow.NewCuckoo(edgeBits, 0, edges)
	if err != nil {
		return nil, err
	}
	return &verifier.Job{Header: h, Proof: c}, nil
}

func decodeHeader(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "header")
	}
	return b, nil
}

// parseEdges reads comma separated edges in decimal or 0x hex.
func parseEdges(s string) ([]uint32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != cuckoo.ProofSize {
		return nil, errors.Wrapf(cuckoo.ErrMalformedProof, "%d edges, want %d", len(parts), cuckoo.ProofSize)
	}
	edges := make([]uint32, len(parts))
	for i, p := range parts {
		e, err := strconv.ParseUint(strings.TrimSpace(p), 0, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d", i)
		}
		edges[i] = uint32(e)
	}
	return edges, nil
}
