// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

// xrefEntryKind classifies how an object's location is recorded.
type xrefEntryKind int

const (
	xrefFree xrefEntryKind = iota
	xrefInUse
	xrefCompressed
)

// xrefEntry is one resolved cross-reference record: either a direct
// byte offset (classic table, or xref-stream type 1) or a pointer into
// an object stream (xref-stream type 2). Free entries (type 0, or a
// classic "f" record) carry no usable location.
type xrefEntry struct {
	kind      xrefEntryKind
	gen       uint16 // generation: classic records and type-0/type-1 stream entries; 0 for compressed
	offset    int64  // xrefInUse: absolute byte offset of "n g obj"
	streamNum uint32 // xrefCompressed: containing object stream's object number
	streamIdx int    // xrefCompressed: index within that object stream
}

// xrefTable maps object number to its most-recently-discovered entry.
// Building one across an incremental-update chain is newest-to-oldest:
// the first entry seen for a given object number wins, and later
// (older) sections must not overwrite it; see trailer.go.
type xrefTable map[uint32]xrefEntry

// merge copies every entry from older into t that t does not already
// have, implementing the newest-wins precedence rule for /Prev chains
// and the classic-table-precedence rule for hybrid /XRefStm sections.
func (t xrefTable) merge(older xrefTable) {
	for id, e := range older {
		if _, exists := t[id]; !exists {
			t[id] = e
		}
	}
}

// parseClassicXrefTable reads one "xref" section: the "xref" keyword was
// already consumed by the caller. It reads one or more subsections,
// each "<start> <count>" followed by exactly count 20-byte fixed
// records, until a token that is not a valid subsection header (i.e.
// "trailer" or an xref-stream style numeric object header) is found.
func parseClassicXrefTable(b *buffer, sink *diagnosticSink) (xrefTable, error) {
	table := xrefTable{}
	for {
		startTok := b.readToken()
		start, ok := startTok.(int64)
		if !ok {
			b.unreadToken(startTok)
			return table, nil
		}
		countTok := b.readToken()
		count, ok := countTok.(int64)
		if !ok {
			b.unreadToken(countTok)
			b.unreadToken(startTok)
			return table, nil
		}
		if count < 0 {
			return table, newParseError(ErrXrefFormat, b.offset(), "negative subsection count")
		}
		for i := int64(0); i < count; i++ {
			offTok := b.readToken()
			genTok := b.readToken()
			kindTok := b.readToken()
			off, offOK := asInt(offTok)
			gen, genOK := asInt(genTok)
			kw, kindOK := kindTok.(keyword)
			if !offOK || !genOK || !kindOK {
				sink.warn(ErrXrefFormat, b.offset(), "malformed xref record in subsection starting at %d", start)
				continue
			}
			id := uint32(start + i)
			switch kw {
			case "f":
				if _, exists := table[id]; !exists {
					table[id] = xrefEntry{kind: xrefFree, gen: uint16(gen)}
				}
			case "n":
				if _, exists := table[id]; !exists {
					table[id] = xrefEntry{kind: xrefInUse, gen: uint16(gen), offset: off}
				}
			default:
				sink.warn(ErrXrefFormat, b.offset(), "xref record for object %d has neither f nor n marker", id)
			}
		}
	}
}

func asInt(tok any) (int64, bool) {
	n, ok := tok.(int64)
	return n, ok
}
