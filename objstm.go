// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import "bytes"

// decodeObjectStream parses a decoded /Type /ObjStm payload per
// ISO 32000-2:2020 §7.5.7: a header of n "objectNumber offset" integer
// pairs (no "obj"/"endobj" wrappers, no indirect references to other
// compressed objects), followed at byte first by the bare object bodies
// themselves, each located at first+offset relative to the payload.
func decodeObjectStream(payload []byte, n int, first int64, sink *diagnosticSink) (map[uint32]object, error) {
	if n < 0 || first < 0 || first > int64(len(payload)) {
		return nil, newParseError(ErrXrefFormat, 0, "object stream /N or /First out of range")
	}
	header := newBuffer(bytes.NewReader(payload[:first]), 0)
	type entry struct {
		id     uint32
		offset int64
	}
	entries := make([]entry, 0, n)
	for i := 0; i < n; i++ {
		idTok := header.readToken()
		offTok := header.readToken()
		id, idOK := idTok.(int64)
		off, offOK := offTok.(int64)
		if !idOK || !offOK {
			sink.warn(ErrXrefFormat, int64(i), "object stream header truncated at pair %d", i)
			break
		}
		entries = append(entries, entry{id: uint32(id), offset: off})
	}

	out := make(map[uint32]object, len(entries))
	for _, e := range entries {
		pos := first + e.offset
		if pos < 0 || pos > int64(len(payload)) {
			sink.warn(ErrXrefFormat, pos, "object stream entry for object %d points outside payload", e.id)
			continue
		}
		b := newBuffer(bytes.NewReader(payload[pos:]), pos)
		b.sink = sink
		out[e.id] = b.readObject()
	}
	return out, nil
}
