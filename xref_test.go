// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassicXrefTable_SingleSubsection(t *testing.T) {
	src := "0 3\n" +
		"0000000000 65535 f \n" +
		"0000000009 00000 n \n" +
		"0000000074 00000 n \n" +
		"trailer"
	b := newBuffer(strings.NewReader(src), 0)
	sink := &diagnosticSink{}
	table, err := parseClassicXrefTable(b, sink)
	require.NoError(t, err)
	require.Len(t, table, 3)

	assert.Equal(t, xrefEntry{kind: xrefFree, gen: 65535}, table[0])
	assert.Equal(t, xrefEntry{kind: xrefInUse, gen: 0, offset: 9}, table[1])
	assert.Equal(t, xrefEntry{kind: xrefInUse, gen: 0, offset: 74}, table[2])

	// parseClassicXrefTable stops before consuming "trailer" so the
	// caller can dispatch on it.
	tok := b.readToken()
	kw, ok := tok.(keyword)
	require.True(t, ok)
	assert.Equal(t, keyword("trailer"), kw)
}

func TestParseClassicXrefTable_FreeSingleEntry(t *testing.T) {
	// Boundary case: a "0 1" subsection with a single free entry.
	src := "0 1\n0000000000 65535 f \ntrailer"
	b := newBuffer(strings.NewReader(src), 0)
	sink := &diagnosticSink{}
	table, err := parseClassicXrefTable(b, sink)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, xrefFree, table[0].kind)
	assert.Equal(t, uint16(65535), table[0].gen)
}

func TestParseClassicXrefTable_MultipleSubsections(t *testing.T) {
	src := "0 1\n0000000000 65535 f \n3 2\n0000000100 00000 n \n0000000200 00000 n \ntrailer"
	b := newBuffer(strings.NewReader(src), 0)
	sink := &diagnosticSink{}
	table, err := parseClassicXrefTable(b, sink)
	require.NoError(t, err)
	require.Len(t, table, 3)
	assert.Equal(t, int64(100), table[3].offset)
	assert.Equal(t, int64(200), table[4].offset)
}

func TestXrefTable_Merge_NewestWins(t *testing.T) {
	newer := xrefTable{1: {kind: xrefInUse, offset: 100}}
	older := xrefTable{1: {kind: xrefInUse, offset: 50}, 2: {kind: xrefInUse, offset: 60}}
	newer.merge(older)
	assert.Equal(t, int64(100), newer[1].offset, "newest entry must win for object 1")
	assert.Equal(t, int64(60), newer[2].offset, "object 2 only existed in the older section")
}
