// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWhitespace(t *testing.T) {
	for _, b := range []byte{0x00, 0x09, 0x0A, 0x0C, 0x0D, 0x20} {
		assert.Truef(t, isWhitespace(b), "byte %#x should be whitespace", b)
	}
	for _, b := range []byte{'a', '/', '(', '1'} {
		assert.Falsef(t, isWhitespace(b), "byte %q should not be whitespace", b)
	}
}

func TestIsDelimiter(t *testing.T) {
	for _, b := range []byte("()<>[]{}/%") {
		assert.Truef(t, isDelimiter(b), "byte %q should be a delimiter", b)
	}
	assert.False(t, isDelimiter('a'))
}

func TestIsRegular(t *testing.T) {
	assert.True(t, isRegular('a'))
	assert.True(t, isRegular('9'))
	assert.False(t, isRegular(' '))
	assert.False(t, isRegular('/'))
}

func TestHexVal(t *testing.T) {
	tests := []struct {
		b     byte
		want  int
		valid bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'f', 15, true},
		{'A', 10, true},
		{'F', 15, true},
		{'g', 0, false},
		{' ', 0, false},
	}
	for _, tt := range tests {
		v, ok := hexVal(tt.b)
		assert.Equal(t, tt.valid, ok)
		if tt.valid {
			assert.Equal(t, tt.want, v)
		}
	}
}
