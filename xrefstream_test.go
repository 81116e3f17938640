// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeXrefStreamEntries_W121(t *testing.T) {
	// w = [1, 2, 1]: type byte, 2-byte offset/next, 1-byte gen/index.
	payload := []byte{
		1, 0, 9, 0, // object 0: type 1, offset 9, gen 0
		1, 0, 74, 0, // object 1: type 1, offset 74, gen 0
		0, 0, 0, 0xFF, // object 2: type 0 free, next 0, gen 255
	}
	sink := &diagnosticSink{}
	table, err := decodeXrefStreamEntries(payload, [3]int{1, 2, 1}, [][2]int64{{0, 3}}, sink)
	require.NoError(t, err)
	require.Len(t, table, 3)
	assert.Equal(t, xrefEntry{kind: xrefInUse, offset: 9, gen: 0}, table[0])
	assert.Equal(t, xrefEntry{kind: xrefInUse, offset: 74, gen: 0}, table[1])
	assert.Equal(t, xrefEntry{kind: xrefFree, gen: 255}, table[2])
}

func TestDecodeXrefStreamEntries_CompressedType(t *testing.T) {
	payload := []byte{2, 0, 5, 3}
	sink := &diagnosticSink{}
	table, err := decodeXrefStreamEntries(payload, [3]int{1, 2, 1}, [][2]int64{{10, 1}}, sink)
	require.NoError(t, err)
	entry := table[10]
	assert.Equal(t, xrefCompressed, entry.kind)
	assert.Equal(t, uint32(5), entry.streamNum)
	assert.Equal(t, 3, entry.streamIdx)
}

func TestDecodeXrefStreamEntries_DefaultTypeWhenW0Zero(t *testing.T) {
	// w[0] == 0 means every entry defaults to type 1 (in-use).
	payload := []byte{0, 42, 0} // offset=42, gen=0
	sink := &diagnosticSink{}
	table, err := decodeXrefStreamEntries(payload, [3]int{0, 2, 1}, [][2]int64{{5, 1}}, sink)
	require.NoError(t, err)
	assert.Equal(t, xrefInUse, table[5].kind)
	assert.Equal(t, int64(42), table[5].offset)
}

func TestDecodeXrefStreamEntries_Truncated(t *testing.T) {
	sink := &diagnosticSink{}
	table, err := decodeXrefStreamEntries([]byte{1, 0}, [3]int{1, 2, 1}, [][2]int64{{0, 1}}, sink)
	require.NoError(t, err)
	assert.Empty(t, table)
	assert.NotEmpty(t, sink.Diagnostics())
}

func TestDecodeXrefStreamEntries_ZeroWidthSum(t *testing.T) {
	sink := &diagnosticSink{}
	_, err := decodeXrefStreamEntries(nil, [3]int{0, 0, 0}, nil, sink)
	assert.Error(t, err)
}

func TestDefaultIndex(t *testing.T) {
	assert.Equal(t, [][2]int64{{0, 5}}, defaultIndex(5))
}
