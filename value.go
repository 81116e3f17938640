// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import (
	"bytes"
	"io"
	"unicode/utf16"
)

// Kind identifies a Value's PDF type: the seven primitives plus the
// three composites. An indirect reference is never itself a Kind —
// Value transparently resolves it before Kind is computed.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindReal
	KindName
	KindString
	KindArray
	KindDict
	KindStream
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindName:
		return "Name"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindDict:
		return "Dict"
	case KindStream:
		return "Stream"
	}
	return "Unknown"
}

// Value is a navigable handle onto one node of a Document's object
// graph. It is always already resolved: constructing a Value for an
// objptr immediately dereferences it against the owning Document, so
// every accessor method can assume data holds a primitive or composite,
// never an unresolved reference.
type Value struct {
	doc  *Document
	data object
}

func newValue(doc *Document, raw object) Value {
	return Value{doc: doc, data: doc.resolve(raw)}
}

// IsNull reports whether the value is PDF null, including both an
// explicit "null" token and a reference to a missing or free object.
func (v Value) IsNull() bool {
	return v.data == nil
}

// Kind reports the value's PDF type.
func (v Value) Kind() Kind {
	switch v.data.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int64:
		return KindInteger
	case realNumber:
		return KindReal
	case name:
		return KindName
	case string:
		return KindString
	case array:
		return KindArray
	case dict:
		return KindDict
	case stream:
		return KindStream
	}
	return KindNull
}

// Bool returns the value's boolean payload, or false if it is not a
// Bool.
func (v Value) Bool() bool {
	b, _ := v.data.(bool)
	return b
}

// Int64 returns the value's integer payload. A Real is truncated
// toward zero, matching how PDF consumers commonly treat a number
// whose exact kind does not matter to them.
func (v Value) Int64() int64 {
	switch n := v.data.(type) {
	case int64:
		return n
	case realNumber:
		return int64(n)
	}
	return 0
}

// Float64 returns the value's numeric payload as a float64, whether it
// was stored as an Integer or a Real.
func (v Value) Float64() float64 {
	switch n := v.data.(type) {
	case int64:
		return float64(n)
	case realNumber:
		return float64(n)
	}
	return 0
}

// Name returns the value's decoded name payload (without the leading
// "/"), or "" if it is not a Name.
func (v Value) Name() name {
	n, _ := v.data.(name)
	return n
}

// RawString returns a String value's decoded bytes exactly as the
// literal or hex string grammar produced them, with no text-encoding
// interpretation applied.
func (v Value) RawString() string {
	s, _ := v.data.(string)
	return s
}

// Text decodes a String value as a PDF text string per
// ISO 32000-2:2020 §7.9.2.2: bytes beginning with the UTF-16BE byte
// order mark (FE FF) are decoded as UTF-16BE; everything else is
// PDFDocEncoded, which agrees with ASCII across the printable range
// that /Info and similar text fields actually use in practice, so it is
// passed through unchanged rather than carrying the full PDFDocEncoding
// glyph table for code points outside that range.
func (v Value) Text() string {
	s, ok := v.data.(string)
	if !ok {
		return ""
	}
	if len(s) >= 2 && s[0] == 0xFE && s[1] == 0xFF {
		return decodeUTF16BE([]byte(s[2:]))
	}
	return s
}

func decodeUTF16BE(b []byte) string {
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
	}
	return string(utf16.Decode(units))
}

// dictOf returns the value's backing dict, whether it came directly
// from a Dict or from a Stream's header.
func (v Value) dictOf() (dict, bool) {
	switch d := v.data.(type) {
	case dict:
		return d, true
	case stream:
		return d.hdr, true
	}
	return nil, false
}

// Key looks up key in a Dict or Stream's dictionary and returns its
// value, resolving an indirect reference transparently. Key on any
// other Kind, or a missing key, returns a Null Value — callers do not
// need a separate "has key" check before chaining further accessors.
func (v Value) Key(key string) Value {
	d, ok := v.dictOf()
	if !ok {
		return Value{doc: v.doc}
	}
	raw, ok := d[name(key)]
	if !ok {
		return Value{doc: v.doc}
	}
	return newValue(v.doc, raw)
}

// Keys returns a Dict or Stream value's key names. Order is
// unspecified, since dict itself is an unordered Go map.
func (v Value) Keys() []string {
	d, ok := v.dictOf()
	if !ok {
		return nil
	}
	out := make([]string, 0, len(d))
	for k := range d {
		out = append(out, string(k))
	}
	return out
}

// Index returns the i'th element of an Array value, resolving an
// indirect reference transparently. An out-of-range index, or Index on
// any other Kind, returns a Null Value.
func (v Value) Index(i int) Value {
	a, ok := v.data.(array)
	if !ok || i < 0 || i >= len(a) {
		return Value{doc: v.doc}
	}
	return newValue(v.doc, a[i])
}

// Len returns an Array's element count, or a String's byte length. Any
// other Kind returns 0.
func (v Value) Len() int {
	switch d := v.data.(type) {
	case array:
		return len(d)
	case string:
		return len(d)
	}
	return 0
}

// errorReader is returned by Reader when a stream's payload cannot be
// decoded, so callers that only check the error from Read/Close still
// observe the failure without a separate error return from Reader
// itself.
type errorReader struct {
	err error
}

func (e errorReader) Read([]byte) (int, error) { return 0, e.err }
func (e errorReader) Close() error             { return e.err }

// Reader returns the stream's fully filter-decoded payload. Calling
// Reader on a non-Stream value yields a reader that immediately fails
// with ErrWrongType.
func (v Value) Reader() io.ReadCloser {
	strm, ok := v.data.(stream)
	if !ok {
		return errorReader{err: newParseError(ErrWrongType, 0, "Reader called on a non-stream value")}
	}
	data, err := v.doc.decodeStreamPayload(strm)
	if err != nil {
		return errorReader{err: err}
	}
	return io.NopCloser(bytes.NewReader(data))
}
