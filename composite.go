// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

// attachStreamIfPresent is called immediately after an indirect object's
// body is parsed: if body is a dict and the next keyword is "stream",
// the dictionary describes a stream object rather than a bare
// dictionary, per ISO 32000-2:2020 §7.3.8. The payload itself is not
// read here; only its byte range is recorded, so Value.Reader() can
// decode it lazily against whatever filter chain /Filter names.
func (b *buffer) attachStreamIfPresent(ptr objptr, body object) object {
	d, ok := body.(dict)
	if !ok {
		return body
	}
	tok := b.readToken()
	kw, ok := tok.(keyword)
	if !ok || kw != "stream" {
		b.unreadToken(tok)
		return d
	}
	consumeStreamEOL(b)
	strm := stream{hdr: d, ptr: ptr, offset: b.offset(), length: -1}
	if n, ok := d[name("Length")].(int64); ok && n >= 0 {
		strm.length = n
	}
	return strm
}

// consumeStreamEOL consumes the end-of-line that ISO 32000-2:2020
// §7.3.8.1 requires immediately after the "stream" keyword: CRLF, or a
// bare LF. A bare CR is explicitly disallowed by the spec but tolerated
// here by treating it as the terminator anyway, since some producers
// emit it and rejecting the stream outright would lose more data than
// accepting a possibly-off-by-one payload start.
func consumeStreamEOL(b *buffer) {
	c, ok := b.readByte()
	if !ok {
		return
	}
	if c == '\r' {
		if c2, ok2 := b.peekByte(); ok2 && c2 == '\n' {
			b.readByte()
		}
		return
	}
	if c == '\n' {
		return
	}
	// Not an end-of-line: the producer omitted the EOL. Put the byte
	// back so the payload is read starting exactly here.
	b.unreadByte()
}

// locateEndstream finds the byte offset of the first "endstream" keyword
// at or after start, by scanning raw bytes rather than tokens (the
// payload may itself contain byte sequences that would confuse the
// lexer). It is the lenient fallback, used in either ParsingMode, when /Length is missing,
// unresolved, or does not land on a real "endstream" marker.
func locateEndstream(data []byte, start int64) (end int64, found bool) {
	const marker = "endstream"
	if start < 0 || start > int64(len(data)) {
		return 0, false
	}
	hay := data[start:]
	idx := indexString(hay, marker)
	if idx < 0 {
		return 0, false
	}
	end = start + int64(idx)
	// Trim the single LF or CRLF end-of-line that normally precedes
	// "endstream" but is not part of the payload itself. A bare CR
	// directly before the keyword is kept as payload.
	if end > start && data[end-1] == '\n' {
		end--
		if end > start && data[end-1] == '\r' {
			end--
		}
	}
	return end, true
}

func indexString(hay []byte, needle string) int {
	n := len(needle)
	if n == 0 || n > len(hay) {
		return -1
	}
	for i := 0; i+n <= len(hay); i++ {
		if string(hay[i:i+n]) == needle {
			return i
		}
	}
	return -1
}
