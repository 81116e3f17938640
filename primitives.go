// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import "strconv"

// This file decodes the seven PDF primitives once the lexer has already
// located their raw bytes: numbers, names, and the escape grammar shared
// by literal and hex strings. Bracket/paren nesting and stream-body
// location live in lexer.go and composite.go respectively.

// parseNumber classifies and decodes a numeric token's raw bytes into
// either int64 or realNumber. PDF numbers never use scientific notation,
// but producers routinely emit malformed variants ("4.", "-.002",
// "1..5", a bare "-", trailing garbage); BestEffort callers are expected
// to fall back to 0 on error rather than abort the whole object.
func parseNumber(raw []byte) (object, error) {
	if len(raw) == 0 {
		return nil, newParseError(ErrInvalidNumber, 0, "empty numeric token")
	}
	isReal := false
	for _, b := range raw {
		if b == '.' {
			isReal = true
			break
		}
	}
	if !isReal {
		n, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			// Integers that overflow int64 (rare, malformed object IDs or
			// counters) are still meaningful as reals to a lenient reader.
			if f, ferr := strconv.ParseFloat(string(raw), 64); ferr == nil {
				return realNumber(f), nil
			}
			return nil, wrapParseError(ErrInvalidNumber, 0, string(raw), err)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(normalizeReal(raw), 64)
	if err != nil {
		return nil, wrapParseError(ErrInvalidNumber, 0, string(raw), err)
	}
	return realNumber(f), nil
}

// normalizeReal repairs the malformed-but-common real-number spellings
// that strconv.ParseFloat rejects outright: a bare trailing ".", a bare
// leading "." with a sign, and multiple embedded decimal points.
func normalizeReal(raw []byte) string {
	out := make([]byte, 0, len(raw)+1)
	seenDot := false
	for i, b := range raw {
		if b == '.' {
			if seenDot {
				continue
			}
			seenDot = true
		}
		if (b == '+' || b == '-') && len(out) == 0 {
			out = append(out, b)
			continue
		}
		_ = i
		out = append(out, b)
	}
	if len(out) == 0 {
		return "0"
	}
	if out[len(out)-1] == '.' {
		out = append(out, '0')
	}
	if out[0] == '.' {
		out = append([]byte{'0'}, out...)
	} else if (out[0] == '+' || out[0] == '-') && len(out) > 1 && out[1] == '.' {
		out = append(out[:1], append([]byte{'0'}, out[1:]...)...)
	}
	return string(out)
}

// decodeName resolves #HH escapes in a name's raw bytes (the bytes after
// the leading "/", before any escape processing). An incomplete #-escape
// at the end of the token is passed through literally rather than
// raising an error, matching common reader leniency.
func decodeName(raw []byte) name {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '#' && i+2 < len(raw) {
			hi, ok1 := hexVal(raw[i+1])
			lo, ok2 := hexVal(raw[i+2])
			if ok1 && ok2 {
				out = append(out, byte(hi<<4|lo))
				i += 2
				continue
			}
		}
		out = append(out, raw[i])
	}
	return name(out)
}

// decodeHexString converts the hex digits between "<" and ">" (with
// intervening whitespace already stripped by the caller) into bytes. An
// odd trailing digit is padded with an implicit low nibble of 0, per
// ISO 32000-2:2020 §7.3.4.3.
func decodeHexString(digits []byte) string {
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, 0, len(digits)/2)
	for i := 0; i+1 < len(digits); i += 2 {
		hi, ok1 := hexVal(digits[i])
		lo, ok2 := hexVal(digits[i+1])
		if !ok1 {
			hi = 0
		}
		if !ok2 {
			lo = 0
		}
		out = append(out, byte(hi<<4|lo))
	}
	return string(out)
}
