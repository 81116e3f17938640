// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package pdfgraph parses PDF 2.0 (ISO 32000-2:2020) files: it locates a
// file's structural skeleton, decodes the object graph it defines, and
// exposes those objects for downstream inspection such as metadata
// extraction or validation.
//
// # Overview
//
// A PDF is a graph of Values. Every Value has one of six primitive
// Kinds (Null, Bool, Integer, Real, Name, String; literal and hex
// strings are both String) or one of the three composite kinds (Array,
// Dict, Stream). Indirect references (n g R)
// are resolved transparently by the accessor methods on Value, against
// the Document that produced it — so traversing Key/Index never
// requires the caller to deal with reference resolution directly.
//
// # Quick start
//
//	doc, err := pdfgraph.Open(data, pdfgraph.NewDefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	root := doc.Trailer().Key("Root")
//	fmt.Println(root.Key("Type").Name())
//
// # Lenient parsing
//
// Malformed-but-common deviations are tolerated and reported as
// Diagnostics on the Document rather than aborting the parse; see
// Config.ParsingMode and Document.Diagnostics.
package pdfgraph

// objptr identifies an indirect object by its object number and
// generation. The zero value, objptr{}, is used as a sentinel meaning
// "no indirect identity" (a direct value, or a trailer that is not
// itself an xref-stream object).
type objptr struct {
	id  uint32
	gen uint16
}

// name is a decoded PDF name (the bytes after "/", with #HH escapes
// already resolved). Two names are equal iff their decoded byte
// sequences are equal, which plain Go string equality gives for free.
type name string

// keyword is a bare token such as "obj", "endobj", "stream", "xref",
// "n", "f", or "R" that the lexer did not otherwise classify.
type keyword string

// realNumber distinguishes a PDF real (always has a decimal point, never
// an exponent) from a PDF integer, both of which could otherwise collapse
// to the same Go numeric type during object-graph traversal.
type realNumber float64

// dict is an unordered Name->object mapping. Duplicate keys encountered
// while parsing are resolved last-occurrence-wins at parse time; dict
// itself always holds the already-resolved mapping.
type dict map[name]any

// array is an ordered, heterogeneous sequence of objects.
type array []any

// stream pairs a stream dictionary with the location of its encoded
// payload in the source file. The payload itself is not copied into the
// stream value; Value.Reader() reads it lazily from the document's
// backing bytes.
type stream struct {
	hdr    dict
	ptr    objptr
	offset int64 // byte offset of the first payload byte
	length int64 // resolved /Length in bytes, -1 if not yet resolved
}

// objdef is a fully parsed indirect object definition: "n g obj <obj>
// endobj". It is only ever a transient value returned by the lexer's
// object parser; resolved values are unwrapped to their obj field before
// being handed to callers.
type objdef struct {
	ptr objptr
	obj any
}

// object is the set of Go types that can appear as the payload of a
// pdfgraph value: nil (PDF null), bool, int64, realNumber, name, string
// (raw bytes for a PDF literal/hex string), dict, array, stream, or
// objptr (an unresolved indirect reference "n g R").
type object = any
