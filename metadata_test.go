// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Info_FullyPopulated(t *testing.T) {
	doc := newTestDoc()
	doc.trailer = dict{
		name("Info"): dict{
			name("Title"):        "A Report",
			name("Author"):       "J. Doe",
			name("Subject"):      "Testing",
			name("Keywords"):     "pdf,test",
			name("Creator"):      "pdfgraph",
			name("Producer"):     "pdfgraph",
			name("CreationDate"): "D:20260101000000Z",
			name("ModDate"):      "D:20260102000000Z",
		},
	}
	info := doc.Info()
	assert.Equal(t, "A Report", info.Title)
	assert.Equal(t, "J. Doe", info.Author)
	assert.Equal(t, "Testing", info.Subject)
	assert.Equal(t, "pdf,test", info.Keywords)
	assert.Equal(t, "pdfgraph", info.Creator)
	assert.Equal(t, "pdfgraph", info.Producer)
	assert.Equal(t, "D:20260101000000Z", info.CreationDate)
	assert.Equal(t, "D:20260102000000Z", info.ModDate)
}

func TestDocument_Info_MissingInfoDict(t *testing.T) {
	doc := newTestDoc()
	doc.trailer = dict{}
	info := doc.Info()
	assert.Equal(t, Info{}, info)
}

func TestDocument_FileID_BothPresent(t *testing.T) {
	doc := newTestDoc()
	doc.trailer = dict{
		name("ID"): array{"\x01\x02", "\x03\x04"},
	}
	permanent, current := doc.FileID()
	assert.Equal(t, "0102", permanent)
	assert.Equal(t, "0304", current)
}

func TestDocument_FileID_Absent(t *testing.T) {
	doc := newTestDoc()
	doc.trailer = dict{}
	permanent, current := doc.FileID()
	assert.Equal(t, "", permanent)
	assert.Equal(t, "", current)
}

func TestDocument_FileID_SingleEntry(t *testing.T) {
	doc := newTestDoc()
	doc.trailer = dict{name("ID"): array{"\xAB"}}
	permanent, current := doc.FileID()
	assert.Equal(t, "ab", permanent)
	assert.Equal(t, "", current)
}

func TestDocument_Encrypted_True(t *testing.T) {
	doc := newTestDoc()
	doc.trailer = dict{name("Encrypt"): dict{name("Filter"): name("Standard")}}
	assert.True(t, doc.Encrypted())
}

func TestDocument_Encrypted_False(t *testing.T) {
	doc := newTestDoc()
	doc.trailer = dict{}
	assert.False(t, doc.Encrypted())
}
