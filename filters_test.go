// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import (
	"bytes"
	"compress/zlib"
	"encoding/ascii85"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deflate(t *testing.T, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestApplyFilter_FlateDecode(t *testing.T) {
	raw := deflate(t, []byte("Hello, PDF"))
	out, err := applyFilter("FlateDecode", nil, raw, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, "Hello, PDF", string(out))
}

func TestApplyFilter_Chain_ASCII85ThenFlate(t *testing.T) {
	// End-to-end scenario 5: a stream filtered [/ASCII85Decode
	// /FlateDecode] decodes to "Hello, PDF".
	deflated := deflate(t, []byte("Hello, PDF"))
	var enc bytes.Buffer
	w := ascii85.NewEncoder(&enc)
	_, err := w.Write(deflated)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := applyFilterChain(
		[]name{"ASCII85Decode", "FlateDecode"},
		nil,
		enc.Bytes(),
		1<<20,
	)
	require.NoError(t, err)
	assert.Equal(t, "Hello, PDF", string(out))
}

func TestApplyFilter_ASCII85_EODMarker(t *testing.T) {
	var enc bytes.Buffer
	w := ascii85.NewEncoder(&enc)
	_, _ = w.Write([]byte("abc"))
	_ = w.Close()
	raw := append(enc.Bytes(), []byte("~>")...)
	out, err := applyFilter("ASCII85Decode", nil, raw, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}

func TestApplyFilter_ASCIIHexDecode(t *testing.T) {
	out, err := applyFilter("ASCIIHexDecode", nil, []byte("48656c6c6f>"), 1<<20)
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(out))
}

func TestApplyFilter_ASCIIHexDecode_OddLength(t *testing.T) {
	// "abc" pads to "abc0" -> 0xAB 0xC0
	out, err := applyFilter("ASCIIHexDecode", nil, []byte("abc"), 1<<20)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0xC0}, out)
}

func TestApplyFilter_RunLengthDecode(t *testing.T) {
	// length byte 2 -> copy next 3 literal bytes "abc"; length byte
	// 254 -> repeat next byte (257-254=3 times); 128 -> EOD.
	raw := []byte{2, 'a', 'b', 'c', 254, 'x', 128}
	out, err := applyFilter("RunLengthDecode", nil, raw, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, "abcxxx", string(out))
}

func TestApplyFilter_Associativity_ASCIIHexConcatenation(t *testing.T) {
	// Concatenation of ASCIIHex-encoded chunks decodes to the
	// concatenation of the original bytes.
	a, err := applyFilter("ASCIIHexDecode", nil, []byte("48656c6c6f"), 1<<20)
	require.NoError(t, err)
	b, err := applyFilter("ASCIIHexDecode", nil, []byte("2c20504446"), 1<<20)
	require.NoError(t, err)
	whole, err := applyFilter("ASCIIHexDecode", nil, []byte("48656c6c6f2c20504446"), 1<<20)
	require.NoError(t, err)
	assert.Equal(t, string(whole), string(a)+string(b))
}

func TestApplyFilter_PassthroughFilters(t *testing.T) {
	for _, f := range []name{"CCITTFaxDecode", "DCTDecode", "JPXDecode", "Crypt"} {
		out, err := applyFilter(f, nil, []byte("raw"), 1<<20)
		require.NoError(t, err, string(f))
		assert.Equal(t, "raw", string(out), string(f))
	}
}

func TestApplyFilter_UnsupportedFilter(t *testing.T) {
	_, err := applyFilter("BogusDecode", nil, []byte("x"), 1<<20)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrFilterUnsupported, pe.Kind)
}

func TestApplyFilter_DecompressionBomb(t *testing.T) {
	huge := bytes.Repeat([]byte{'a'}, 1<<20)
	raw := deflate(t, huge)
	_, err := applyFilter("FlateDecode", nil, raw, 1024)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrOutputTooLarge, pe.Kind)
}

func TestNormalizeFilterChain_SingleAndArray(t *testing.T) {
	filters, params := normalizeFilterChain(dict{
		name("Filter"):      name("FlateDecode"),
		name("DecodeParms"): dict{name("Predictor"): int64(12)},
	})
	assert.Equal(t, []name{"FlateDecode"}, filters)
	assert.Equal(t, []dict{{name("Predictor"): int64(12)}}, params)

	filters, params = normalizeFilterChain(dict{
		name("Filter"): array{name("ASCII85Decode"), name("FlateDecode")},
	})
	assert.Equal(t, []name{"ASCII85Decode", "FlateDecode"}, filters)
	assert.Nil(t, params)
}
