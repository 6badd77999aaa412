// Copyright (c) 2017-2020 The qitmeer developers
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Qitmeer/cuckoo-verifier/core/types/pow"
	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo"
	"github.com/Qitmeer/cuckoo-verifier/crypto/cuckoo/cuckootest"
	"github.com/Qitmeer/cuckoo-verifier/services/verifier"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEdges(seed uint32) []uint32 {
	edges := make([]uint32, cuckoo.ProofSize)
	for i := range edges {
		edges[i] = 0x4000 + seed + uint32(i)*0x2b67
	}
	return edges
}

func edgeList(edges []uint32) string {
	s := make([]string, len(edges))
	for i, e := range edges {
		s[i] = fmt.Sprintf("%d", e)
	}
	return strings.Join(s, ",")
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-h"}, &out))
	assert.Contains(t, out.String(), "--edgebits")
	assert.Contains(t, out.String(), "--batch")
}

func TestRunSingle(t *testing.T) {
	edges := testEdges(0)
	var out bytes.Buffer
	err := run([]string{"-e", "29", "-H", "0x0102", "-p", edgeList(edges), "-d", "error"}, &out)
	// arbitrary edges do not form a cycle
	assert.Equal(t, errRejected, errors.Cause(err))

	c, err := pow.NewCuckoo(29, 0, edges)
	require.NoError(t, err)
	code, err := c.Verify([]byte{1, 2})
	require.NoError(t, err)
	h, err := c.CycleHash()
	require.NoError(t, err)

	fields := strings.Fields(out.String())
	require.Len(t, fields, 3)
	assert.Equal(t, code.String(), fields[0])
	assert.Equal(t, h.Hex(), fields[1])
	assert.Equal(t, pow.ScaledDiff(29, h, 1856).String(), fields[2])
}

func TestRunCycleHashOnly(t *testing.T) {
	edges := testEdges(7)
	var out bytes.Buffer
	err := run([]string{"-H", "abcd", "-p", edgeList(edges), "--cyclehash", "-d", "error"}, &out)
	assert.Equal(t, errRejected, errors.Cause(err))

	c, err := pow.NewCuckoo(31, 0, edges)
	require.NoError(t, err)
	h, err := c.CycleHash()
	require.NoError(t, err)
	assert.Equal(t, h.Hex()+"\n", out.String())
}

func solutionArgs() []string {
	return []string{
		"-e", "29",
		"-H", strings.Repeat("00", 76) + "14000000",
		"-p", edgeList(cuckootest.Edges29Slice()),
		"-d", "error",
	}
}

func TestRunSolution(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(solutionArgs(), &out))
	assert.Equal(t, "POW_OK "+cuckootest.CycleHash29+" 1\n", out.String())

	out.Reset()
	require.NoError(t, run(append(solutionArgs(), "--cyclehash"), &out))
	assert.Equal(t, cuckootest.CycleHash29+"\n", out.String())

	out.Reset()
	require.NoError(t, run(append(solutionArgs(), "--expect", "0x"+cuckootest.CycleHash29, "--target", "1"), &out))

	out.Reset()
	err := run(append(solutionArgs(), "--target", "2"), &out)
	assert.Equal(t, errRejected, errors.Cause(err))
	assert.Contains(t, out.String(), "POW_OK "+cuckootest.CycleHash29+" 1 (")

	out.Reset()
	err = run(append(solutionArgs(), "--expect", strings.Repeat("00", 32)), &out)
	assert.Equal(t, errRejected, errors.Cause(err))
	assert.Contains(t, out.String(), verifier.ErrCycleHashMismatch.Error())
}

func TestRunTargetBits(t *testing.T) {
	var out bytes.Buffer
	// 0x1010000 is 1
	require.NoError(t, run(append(solutionArgs(), "--targetbits", "1010000"), &out))

	// 0x1020000 is 2
	err := run(append(solutionArgs(), "--targetbits", "0x1020000"), &out)
	assert.Equal(t, errRejected, errors.Cause(err))

	cfg, _, err := loadConfig(append(solutionArgs(), "--targetbits", "1300000"))
	require.NoError(t, err)
	assert.Equal(t, "48", cfg.target.String())
}

func TestRunBatch(t *testing.T) {
	dir, err := ioutil.TempDir("", "cuckooverify")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	batch := strings.Join([]string{
		"# edgebits header edges",
		"29 0x00 " + edgeList(testEdges(1)),
		"",
		"31 ff " + edgeList(testEdges(2)),
		"24 ff " + edgeList(testEdges(3)),
		"29 " + strings.Repeat("00", 76) + "14000000 " + edgeList(cuckootest.Edges29Slice()) + " " + cuckootest.CycleHash29,
	}, "\n")
	file := filepath.Join(dir, "proofs.txt")
	require.NoError(t, ioutil.WriteFile(file, []byte(batch), 0600))

	var out bytes.Buffer
	err = run([]string{"-b", file, "-w", "2", "--metrics", "-d", "error"}, &out)
	assert.Equal(t, errRejected, errors.Cause(err))

	lines := strings.Split(out.String(), "\n")
	require.True(t, len(lines) > 4)
	assert.Len(t, strings.Fields(lines[0]), 3)
	assert.Len(t, strings.Fields(lines[1]), 3)
	assert.True(t, strings.HasPrefix(lines[2], "INVALID "))
	assert.Equal(t, "POW_OK "+cuckootest.CycleHash29+" 1", lines[3])
	assert.Contains(t, out.String(), "cuckoo/verify/time")
}

func TestConfigErrors(t *testing.T) {
	proof := edgeList(testEdges(0))
	for _, args := range [][]string{
		{},
		{"-e", "24", "-p", proof},
		{"-p", proof, "-b", "proofs.txt"},
		{"-H", "00"},
		{"-p", proof, "--target", "-5"},
		{"-p", proof, "--target", "lots"},
		{"-p", proof, "-w", "300"},
		{"-p", proof, "-d", "loud"},
		{"--unknown"},
		{"-p", proof, "--targetbits", "2003000"},
		{"-p", proof, "--targetbits", "1b00000"},
		{"-p", proof, "--targetbits", "zz"},
		{"-p", proof, "--targetbits", "1300000", "--target", "5"},
		{"-p", proof, "--expect", "abcd"},
		{"-p", proof, "--expect", "xyz"},
		{"-b", "proofs.txt", "--expect", cuckootest.CycleHash29},
	} {
		_, _, err := loadConfig(args)
		assert.Error(t, err, "%v", args)
	}

	cfg, _, err := loadConfig([]string{"-p", proof, "--target", "1000"})
	require.NoError(t, err)
	assert.Equal(t, uint8(31), cfg.EdgeBits)
	assert.Equal(t, "1000", cfg.target.String())
}

func TestRunBadInput(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"-H", "0x123", "-p", edgeList(testEdges(0))}, &out))
	err := run([]string{"-p", "1,2,3"}, &out)
	assert.Equal(t, cuckoo.ErrMalformedProof, errors.Cause(err))
	assert.Error(t, run([]string{"-b", "/nonexistent/proofs.txt"}, &out))
}

func TestReadBatch(t *testing.T) {
	proof := edgeList(testEdges(0))
	jobs, err := readBatch(strings.NewReader("# comment\n\n29 0x 0x10," + edgeList(testEdges(0)[1:]) + "\n"))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Empty(t, jobs[0].Header)
	assert.Equal(t, uint32(0x10), jobs[0].Proof.GetCircleNonces()[0])

	_, err = readBatch(strings.NewReader("29 00\n"))
	assert.Error(t, err)
	_, err = readBatch(strings.NewReader("x 00 " + proof + "\n"))
	assert.Error(t, err)
	_, err = readBatch(strings.NewReader("29 0g " + proof + "\n"))
	assert.Error(t, err)
	_, err = readBatch(strings.NewReader("29 00 " + proof + " 00\n"))
	assert.Error(t, err)
	_, err = readBatch(strings.NewReader("29 00 " + proof + " " + cuckootest.CycleHash29 + " x\n"))
	assert.Error(t, err)

	jobs, err = readBatch(strings.NewReader("29 00 " + proof + " 0x" + cuckootest.CycleHash29 + "\n"))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, cuckootest.CycleHash29, jobs[0].Expect.Hex())
}

func TestDecodeHeader(t *testing.T) {
	for _, s := range []string{"0a0b", "0x0a0b", "0X0a0b", " 0a0b "} {
		b, err := decodeHeader(s)
		require.NoError(t, err, s)
		assert.Equal(t, []byte{0x0a, 0x0b}, b)
	}
	b, err := decodeHeader("")
	require.NoError(t, err)
	assert.Empty(t, b)
}
