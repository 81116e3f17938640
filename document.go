// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import (
	"bytes"
	"io"
	"sort"

	"github.com/sassoftware/pdfgraph/logger"
)

// headerSearchWindow bounds how far into the file CheckHeader looks for
// the "%PDF-" marker; ISO 32000-2:2020 Annex H allows it to be preceded
// by arbitrary bytes (common with some multi-part container formats) as
// long as it appears within the file's first kilobyte.
const headerSearchWindow = 1024

// Document is a parsed PDF's structural skeleton: its cross-reference
// table and trailer, plus the lazily-populated cache of indirect
// objects resolved so far. A Document never evicts a cached object, so
// repeated traversal of the same object graph does no repeat I/O.
type Document struct {
	src     io.ReaderAt
	size    int64
	cfg     *Config
	version string
	xref    xrefTable
	trailer dict
	sink    diagnosticSink

	cache    map[objptr]object
	inFlight map[objptr]bool

	objStmCache map[uint32]map[uint32]object
}

// Open parses data as a complete PDF file. The returned Document is
// independent of data's lifetime after Open returns, since bytes.Reader
// holds its own reference to the slice.
func Open(data []byte, cfg *Config) (*Document, error) {
	return OpenReaderAt(bytes.NewReader(data), int64(len(data)), cfg)
}

// OpenReaderAt parses a PDF file already available as random-access
// bytes, without requiring the whole file to be loaded into memory at
// once.
func OpenReaderAt(src io.ReaderAt, size int64, cfg *Config) (*Document, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, wrapParseError(ErrInvalidNumber, 0, "invalid configuration", err)
	}

	doc := &Document{
		src:         src,
		size:        size,
		cfg:         cfg,
		cache:       map[objptr]object{},
		inFlight:    map[objptr]bool{},
		objStmCache: map[uint32]map[uint32]object{},
	}
	doc.sink.debug = cfg.DebugOn
	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}

	header := make([]byte, minInt64(size, headerSearchWindow))
	if _, err := src.ReadAt(header, 0); err != nil && err != io.EOF {
		return nil, wrapParseError(ErrUnexpectedEOF, 0, "reading file header", err)
	}
	version, err := checkHeader(header)
	if err != nil {
		return nil, err
	}
	doc.version = version
	switch version {
	case "1.0", "1.1", "1.2", "1.3", "1.4", "1.5", "1.6", "1.7", "2.0":
	default:
		doc.sink.warn(ErrVersionUnsupported, 0, "unrecognized PDF version %q in header", version)
	}

	doc.validateEOFMarker()

	startOffset, err := doc.findStartXref()
	if err != nil {
		return nil, err
	}

	xref, trailer, err := readXrefChain(src, size, startOffset, cfg, &doc.sink)
	if err != nil {
		return nil, err
	}
	doc.xref = xref
	doc.trailer = trailer

	if _, ok := trailer[name("Root")]; !ok {
		doc.sink.warn(ErrTrailerMissing, startOffset, "trailer has no /Root entry")
	}
	return doc, nil
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// checkHeader locates "%PDF-" within the first kilobyte of the file and
// returns the version string that follows it (e.g. "2.0"). Versions
// beyond what this reader was written against are accepted, and
// OpenReaderAt records a Diagnostic for them rather than rejecting the
// file, since the object grammar itself is stable across the 1.x/2.0
// line.
func checkHeader(header []byte) (string, error) {
	idx := bytes.Index(header, []byte("%PDF-"))
	if idx < 0 {
		return "", SentinelVersionUnsupported
	}
	rest := header[idx+len("%PDF-"):]
	end := 0
	for end < len(rest) && (isDigit(rest[end]) || rest[end] == '.') {
		end++
	}
	if end == 0 {
		return "", newParseError(ErrVersionUnsupported, int64(idx), "malformed %PDF- header")
	}
	return string(rest[:end]), nil
}

// validateEOFMarker checks for a trailing "%%EOF" marker. A missing
// marker is common in truncated or streamed-while-written files and is
// recorded as a Diagnostic rather than treated as fatal, since every
// structural element needed to parse the document may still be intact.
func (doc *Document) validateEOFMarker() {
	n := minInt64(doc.size, 1024)
	tail := make([]byte, n)
	if _, err := doc.src.ReadAt(tail, doc.size-n); err != nil && err != io.EOF {
		return
	}
	if !bytes.Contains(tail, []byte("%%EOF")) {
		doc.sink.warn(ErrTrailerMissing, doc.size, "no %%EOF marker found near end of file")
	}
}

func (doc *Document) findStartXref() (int64, error) {
	n := minInt64(doc.size, startxrefSearchWindow)
	tail := make([]byte, n)
	if _, err := doc.src.ReadAt(tail, doc.size-n); err != nil && err != io.EOF {
		return 0, wrapParseError(ErrUnexpectedEOF, doc.size, "reading file tail", err)
	}
	off, err := findStartXref(tail)
	if err != nil {
		return 0, err
	}
	return off, nil
}

// Version reports the version named in the file's "%PDF-x.y" header.
func (doc *Document) Version() string {
	return doc.version
}

// Diagnostics returns every recoverable issue observed while opening
// the document and while resolving objects since.
func (doc *Document) Diagnostics() []Diagnostic {
	return doc.sink.Diagnostics()
}

// Trailer returns the merged trailer dictionary as a Value, so its
// /Root, /Info, /ID, and /Encrypt entries can be navigated the same way
// as any other dictionary in the graph.
func (doc *Document) Trailer() Value {
	return Value{doc: doc, data: doc.trailer}
}

// Size reports how many object numbers are known to the document,
// taken from the trailer's /Size entry when present, or one past the
// largest object number seen in the merged cross-reference table.
func (doc *Document) Size() int {
	if n, ok := doc.trailer[name("Size")].(int64); ok {
		return int(n)
	}
	max := 0
	for id := range doc.xref {
		if int(id)+1 > max {
			max = int(id) + 1
		}
	}
	return max
}

// ObjectRef pairs an in-use indirect object's identity with its
// resolved Value, as returned by Objects in object-number order.
type ObjectRef struct {
	Num        uint32
	Generation uint16
	Value      Value
}

// Objects iterates every in-use indirect object named by the merged
// cross-reference table, in ascending object-number order, resolving
// each one through the same cache Key/Index traversal uses. Free
// entries are skipped; compressed (object-stream) entries are included
// since §4.6 treats them as ordinary in-use objects that merely live at
// a different kind of location. This is the iteration spec.md §6
// describes the CLI collaborator driving to walk a document's full
// object graph without needing to know the xref's internal shape.
func (doc *Document) Objects() []ObjectRef {
	ids := make([]uint32, 0, len(doc.xref))
	for id, e := range doc.xref {
		if e.kind != xrefFree {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]ObjectRef, 0, len(ids))
	for _, id := range ids {
		gen := doc.xref[id].gen
		out = append(out, ObjectRef{
			Num:        id,
			Generation: gen,
			Value:      newValue(doc, objptr{id: id, gen: gen}),
		})
	}
	return out
}

// resolve dereferences v: objptr values are looked up (resolving and
// caching the underlying indirect object on first access, detecting
// reference cycles along the current resolution path), everything else
// is returned unchanged.
func (doc *Document) resolve(v object) object {
	ptr, ok := v.(objptr)
	if !ok {
		return v
	}
	if cached, ok := doc.cache[ptr]; ok {
		return cached
	}
	if doc.inFlight[ptr] {
		doc.sink.warn(ErrReferenceCycle, 0, "reference cycle detected resolving object %d %d R", ptr.id, ptr.gen)
		return nil
	}
	if len(doc.inFlight) >= doc.cfg.MaxInFlightReferences {
		doc.sink.warn(ErrReferenceCycle, 0, "reference resolution depth limit reached resolving object %d %d R", ptr.id, ptr.gen)
		return nil
	}
	doc.inFlight[ptr] = true
	resolved := doc.resolveUncached(ptr)
	delete(doc.inFlight, ptr)
	doc.cache[ptr] = resolved
	return resolved
}

func (doc *Document) resolveUncached(ptr objptr) object {
	entry, ok := doc.xref[ptr.id]
	if !ok {
		doc.sink.warn(ErrMissingKey, 0, "object %d %d R not present in cross-reference table", ptr.id, ptr.gen)
		return nil
	}
	switch entry.kind {
	case xrefFree:
		return nil
	case xrefInUse:
		return doc.readIndirectAt(ptr, entry.offset, entry.gen)
	case xrefCompressed:
		return doc.readFromObjectStream(ptr, entry.streamNum, entry.streamIdx)
	default:
		return nil
	}
}

func (doc *Document) readIndirectAt(ptr objptr, offset int64, entryGen uint16) object {
	b := newBuffer(io.NewSectionReader(doc.src, offset, doc.size-offset), offset)
	b.sink = &doc.sink
	obj := b.readObject()
	def, ok := obj.(objdef)
	if !ok {
		doc.sink.warn(ErrXrefFormat, offset, "offset for object %d %d R does not point at an indirect object definition", ptr.id, ptr.gen)
		return nil
	}
	if def.ptr.id != ptr.id {
		doc.sink.warn(ErrXrefMismatch, offset, "object number mismatch: table says %d, file says %d", ptr.id, def.ptr.id)
	} else if def.ptr.gen != entryGen {
		if doc.cfg.strict() {
			doc.sink.warn(ErrXrefMismatch, offset, "generation mismatch for object %d: table says %d, file says %d (strict mode: reference rejected)", ptr.id, entryGen, def.ptr.gen)
			return nil
		}
		doc.sink.info(ErrXrefMismatch, offset, "generation mismatch for object %d: table says %d, file says %d", ptr.id, entryGen, def.ptr.gen)
	}
	return def.obj
}

func (doc *Document) readFromObjectStream(ptr objptr, containerID uint32, index int) object {
	objs, ok := doc.objStmCache[containerID]
	if !ok {
		objs = doc.decodeObjectStream(containerID)
		doc.objStmCache[containerID] = objs
	}
	v, ok := objs[ptr.id]
	if !ok {
		doc.sink.warn(ErrMissingKey, 0, "object %d not found in object stream %d", ptr.id, containerID)
		return nil
	}
	return v
}

func (doc *Document) decodeObjectStream(containerID uint32) map[uint32]object {
	containerVal := doc.resolve(objptr{id: containerID})
	strm, ok := containerVal.(stream)
	if !ok {
		doc.sink.warn(ErrXrefFormat, 0, "object stream %d is not a stream", containerID)
		return map[uint32]object{}
	}
	payload, err := doc.decodeStreamPayload(strm)
	if err != nil {
		doc.sink.warn(ErrFilterDecode, strm.offset, "failed to decode object stream %d: %v", containerID, err)
		return map[uint32]object{}
	}
	n := intFromDict(strm.hdr, "N", 0)
	first := int64(intFromDict(strm.hdr, "First", 0))
	objs, err := decodeObjectStream(payload, n, first, &doc.sink)
	if err != nil {
		doc.sink.warn(ErrFilterDecode, strm.offset, "failed to parse object stream %d: %v", containerID, err)
		return map[uint32]object{}
	}
	return objs
}

func intFromDict(d dict, key name, def int) int {
	if n, ok := d[key].(int64); ok {
		return int(n)
	}
	return def
}

// decodeStreamPayload reads and fully decodes strm's payload through
// its filter chain. /Length may itself be an indirect reference; it is
// resolved against doc before the raw bytes are read.
func (doc *Document) decodeStreamPayload(strm stream) ([]byte, error) {
	if _, ok := doc.trailer[name("Encrypt")]; ok {
		return nil, newParseError(ErrFilterUnsupported, strm.offset, "stream decode requires /Encrypt support, which this reader does not provide")
	}
	length := strm.length
	if length < 0 {
		if lv, ok := strm.hdr[name("Length")]; ok {
			if n, ok := doc.resolve(lv).(int64); ok {
				length = n
			}
		}
	}
	var raw []byte
	if length >= 0 && strm.offset+length <= doc.size {
		raw = make([]byte, length)
		if _, err := io.ReadFull(io.NewSectionReader(doc.src, strm.offset, length), raw); err != nil {
			return nil, wrapParseError(ErrUnexpectedEOF, strm.offset, "stream payload", err)
		}
		if !doc.endstreamFollows(strm.offset + length) {
			doc.sink.warn(ErrXrefFormat, strm.offset, "/Length did not land on endstream; rescanning")
			raw = nil
		}
	}
	if raw == nil {
		if length < 0 || strm.offset+length > doc.size {
			doc.sink.warn(ErrXrefFormat, strm.offset, "/Length missing, unresolvable or past end of file; scanning for endstream")
		}
		scanned, ok := doc.scanForEndstream(strm.offset)
		if !ok {
			return nil, newParseError(ErrUnexpectedEOF, strm.offset, "stream has no resolvable /Length and no endstream was found")
		}
		raw = scanned
	}
	filters, params := normalizeFilterChain(strm.hdr)
	return applyFilterChain(filters, params, raw, doc.cfg.maxDecodedOutput())
}

func (doc *Document) endstreamFollows(pos int64) bool {
	window := make([]byte, minInt64(32, doc.size-pos))
	if len(window) == 0 {
		return false
	}
	if _, err := doc.src.ReadAt(window, pos); err != nil && err != io.EOF {
		return false
	}
	trimmed := bytes.TrimLeft(window, "\r\n \t")
	return bytes.HasPrefix(trimmed, []byte("endstream"))
}

func (doc *Document) scanForEndstream(start int64) ([]byte, bool) {
	n := doc.size - start
	if n <= 0 {
		return nil, false
	}
	window := make([]byte, n)
	if _, err := doc.src.ReadAt(window, start); err != nil && err != io.EOF {
		return nil, false
	}
	end, found := locateEndstream(window, 0)
	if !found {
		return nil, false
	}
	return window[:end], true
}
