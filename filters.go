// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import (
	"bytes"
	"compress/zlib"
	"encoding/ascii85"
	"encoding/hex"
	"io"
)

// normalizeFilterChain flattens a stream dictionary's /Filter and
// /DecodeParms into parallel slices, regardless of whether the
// producer wrote a single name/dict or an array of them, per
// ISO 32000-2:2020 §7.3.8.2.
func normalizeFilterChain(hdr dict) ([]name, []dict) {
	var filters []name
	switch f := hdr[name("Filter")].(type) {
	case name:
		filters = []name{f}
	case array:
		for _, v := range f {
			if n, ok := v.(name); ok {
				filters = append(filters, n)
			}
		}
	}
	var params []dict
	switch p := hdr[name("DecodeParms")].(type) {
	case dict:
		params = []dict{p}
	case array:
		for _, v := range p {
			d, _ := v.(dict)
			params = append(params, d)
		}
	}
	return filters, params
}

// applyFilterChain decodes a stream's raw payload through the ordered
// sequence of filters named by /Filter, each paired with the
// corresponding entry of /DecodeParms. A single-name /Filter is treated
// as a one-element chain, as normalizeFilterChain flattens either shape.
// maxOutput bounds every stage's output size as a decompression-bomb
// guard; exceeding it aborts with ErrOutputTooLarge rather than
// continuing to allocate.
func applyFilterChain(filters []name, params []dict, raw []byte, maxOutput int64) ([]byte, error) {
	data := raw
	for i, f := range filters {
		var p dict
		if i < len(params) {
			p = params[i]
		}
		out, err := applyFilter(f, p, data, maxOutput)
		if err != nil {
			return nil, err
		}
		data = out
	}
	return data, nil
}

// applyFilter decodes one filter stage. Filter names are compared
// without their alternate-in-inline-image spellings (e.g. "Fl" for
// "FlateDecode") since §4 scopes inline image parsing out.
func applyFilter(filter name, params dict, raw []byte, maxOutput int64) ([]byte, error) {
	switch filter {
	case "FlateDecode":
		out, err := inflate(raw, maxOutput)
		if err != nil {
			return nil, err
		}
		return applyPredictor(out, params)
	case "LZWDecode":
		out, err := lzwDecode(raw, lzwEarlyChange(params), maxOutput)
		if err != nil {
			return nil, err
		}
		return applyPredictor(out, params)
	case "ASCII85Decode":
		return ascii85Decode(raw, maxOutput)
	case "ASCIIHexDecode":
		return asciiHexDecode(raw, maxOutput)
	case "RunLengthDecode":
		return runLengthDecode(raw, maxOutput)
	case "CCITTFaxDecode":
		// Decoding the fax image format itself is out of scope; the
		// filter is recognized (so the chain does not abort) and its
		// encoded bytes are returned unchanged for a caller that only
		// needs the stream's framing, not its pixels.
		return raw, nil
	case "DCTDecode", "JPXDecode":
		return raw, nil
	case "Crypt":
		// Without a supplied decryption key, Crypt is the identity
		// filter: §4 scopes encrypted-document support out.
		return raw, nil
	default:
		return nil, newParseError(ErrFilterUnsupported, 0, string(filter))
	}
}

func boundedRead(r io.Reader, maxOutput int64) ([]byte, error) {
	limited := io.LimitReader(r, maxOutput+1)
	out, err := io.ReadAll(limited)
	if err != nil {
		return nil, wrapParseError(ErrFilterDecode, 0, "decode", err)
	}
	if int64(len(out)) > maxOutput {
		return nil, newParseError(ErrOutputTooLarge, 0, "decoded output exceeds configured limit")
	}
	return out, nil
}

func inflate(raw []byte, maxOutput int64) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, wrapParseError(ErrFilterDecode, 0, "FlateDecode", err)
	}
	defer zr.Close()
	return boundedRead(zr, maxOutput)
}

func ascii85Decode(raw []byte, maxOutput int64) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	trimmed = bytes.TrimPrefix(trimmed, []byte("<~"))
	if i := bytes.Index(trimmed, []byte("~>")); i >= 0 {
		trimmed = trimmed[:i]
	}
	dec := ascii85.NewDecoder(bytes.NewReader(trimmed))
	return boundedRead(dec, maxOutput)
}

func asciiHexDecode(raw []byte, maxOutput int64) ([]byte, error) {
	clean := make([]byte, 0, len(raw))
	for _, c := range raw {
		if c == '>' {
			break
		}
		if _, ok := hexVal(c); ok {
			clean = append(clean, c)
		}
	}
	if len(clean)%2 == 1 {
		clean = append(clean, '0')
	}
	out := make([]byte, hex.DecodedLen(len(clean)))
	n, err := hex.Decode(out, clean)
	if err != nil {
		return nil, wrapParseError(ErrFilterDecode, 0, "ASCIIHexDecode", err)
	}
	out = out[:n]
	if int64(len(out)) > maxOutput {
		return nil, newParseError(ErrOutputTooLarge, 0, "decoded output exceeds configured limit")
	}
	return out, nil
}

// runLengthDecode implements the PackBits-style algorithm of
// ISO 32000-2:2020 §7.4.5: a length byte 0-127 means "copy the next
// length+1 literal bytes"; 129-255 means "repeat the next byte
// 257-length times"; 128 is the end-of-data marker.
func runLengthDecode(raw []byte, maxOutput int64) ([]byte, error) {
	out := make([]byte, 0, len(raw))
	i := 0
	for i < len(raw) {
		length := raw[i]
		i++
		switch {
		case length == 128:
			return out, nil
		case length < 128:
			n := int(length) + 1
			if i+n > len(raw) {
				n = len(raw) - i
			}
			out = append(out, raw[i:i+n]...)
			i += n
		default:
			if i >= len(raw) {
				return out, nil
			}
			n := 257 - int(length)
			for k := 0; k < n; k++ {
				out = append(out, raw[i])
			}
			i++
		}
		if int64(len(out)) > maxOutput {
			return nil, newParseError(ErrOutputTooLarge, 0, "decoded output exceeds configured limit")
		}
	}
	return out, nil
}

func lzwEarlyChange(params dict) int {
	if params == nil {
		return 1
	}
	if v, ok := params[name("EarlyChange")].(int64); ok {
		return int(v)
	}
	return 1
}
