// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

// decodeXrefStreamEntries unpacks a cross-reference stream's decoded
// payload into an xrefTable, per ISO 32000-2:2020 §7.5.8. Each record
// is w[0]+w[1]+w[2] bytes: a type field (0 free, 1 in-use byte offset,
// 2 compressed-object pointer; defaulting to 1 when w[0] is 0, per
// §7.5.8.2), followed by the two type-specific fields. index lists
// (start, count) subsections in the same object-number space as a
// classic table's subsections; an empty index yields an empty table
// (readStreamSection substitutes defaultIndex when /Index is absent).
func decodeXrefStreamEntries(payload []byte, w [3]int, index [][2]int64, sink *diagnosticSink) (xrefTable, error) {
	recLen := w[0] + w[1] + w[2]
	if recLen <= 0 {
		return nil, newParseError(ErrXrefFormat, 0, "xref stream /W sums to zero")
	}
	table := xrefTable{}
	pos := 0
	for _, sub := range index {
		start, count := sub[0], sub[1]
		for i := int64(0); i < count; i++ {
			if pos+recLen > len(payload) {
				sink.warn(ErrXrefFormat, int64(pos), "xref stream payload truncated before object %d", start+i)
				return table, nil
			}
			rec := payload[pos : pos+recLen]
			pos += recLen
			id := uint32(start + i)

			typeField := int64(1)
			if w[0] > 0 {
				typeField = decodeBigEndian(rec[:w[0]])
			}
			f2 := decodeBigEndian(rec[w[0] : w[0]+w[1]])
			f3 := decodeBigEndian(rec[w[0]+w[1] : w[0]+w[1]+w[2]])

			if _, exists := table[id]; exists {
				continue
			}
			switch typeField {
			case 0:
				table[id] = xrefEntry{kind: xrefFree, gen: uint16(f3)}
			case 1:
				table[id] = xrefEntry{kind: xrefInUse, offset: f2, gen: uint16(f3)}
			case 2:
				table[id] = xrefEntry{kind: xrefCompressed, streamNum: uint32(f2), streamIdx: int(f3)}
			default:
				sink.warn(ErrXrefFormat, int64(pos), "xref stream entry for object %d has unknown type %d", id, typeField)
			}
		}
	}
	return table, nil
}

func decodeBigEndian(b []byte) int64 {
	var v int64
	for _, c := range b {
		v = v<<8 | int64(c)
	}
	return v
}

// defaultIndex builds the implicit single-subsection /Index used when
// the xref stream dictionary omits it: every object from 0 to size-1.
func defaultIndex(size int64) [][2]int64 {
	return [][2]int64{{0, size}}
}
