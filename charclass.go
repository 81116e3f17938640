// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

// Byte classification per ISO 32000-2:2020 §7.2.2-7.2.3: every byte in a
// PDF file is whitespace, a delimiter, or regular. This file also hosts
// the end-of-line and comment handling that the lexer needs to treat
// %-comments as whitespace outside of strings and stream payloads.

// isWhitespace reports whether b is one of the six PDF whitespace bytes:
// NUL, HT, LF, FF, CR, SPACE. This is PDF-specific, not Unicode or Go's
// unicode.IsSpace.
func isWhitespace(b byte) bool {
	switch b {
	case 0x00, 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	}
	return false
}

// isDelimiter reports whether b is one of the ten PDF delimiter bytes.
func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// isRegular reports whether b may appear inside a name, number, or
// keyword token: anything that is neither whitespace nor a delimiter.
func isRegular(b byte) bool {
	return !isWhitespace(b) && !isDelimiter(b)
}

// isEOL reports whether b is a carriage return or line feed. The three
// end-of-line conventions (\r, \n, \r\n) are treated identically except
// inside stream payloads (see consumeStreamEOL and locateEndstream).
func isEOL(b byte) bool {
	return b == '\r' || b == '\n'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func hexVal(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}
