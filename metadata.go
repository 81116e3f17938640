// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import "encoding/hex"

// Info is the decoded /Info dictionary: the handful of well-known text
// fields ISO 32000-2:2020 §14.3.3 defines for a document's descriptive
// metadata. It is the thin downstream-inspection example named in
// spec.md §1 ("metadata extraction"); content streams, fonts, and page
// trees are a separate collaborator's concern, not this reader's.
type Info struct {
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationDate string
	ModDate      string
}

// Info reads the trailer's /Info dictionary through the resolver and
// decodes each entry as a PDF text string. A missing /Info, or a
// missing individual field, yields the zero value for that field
// rather than an error: /Info has always been optional.
func (doc *Document) Info() Info {
	d := doc.Trailer().Key("Info")
	return Info{
		Title:        d.Key("Title").Text(),
		Author:       d.Key("Author").Text(),
		Subject:      d.Key("Subject").Text(),
		Keywords:     d.Key("Keywords").Text(),
		Creator:      d.Key("Creator").Text(),
		Producer:     d.Key("Producer").Text(),
		CreationDate: d.Key("CreationDate").Text(),
		ModDate:      d.Key("ModDate").Text(),
	}
}

// FileID returns the trailer's /ID array as a pair of hex-encoded
// strings (permanent identifier, then the identifier of whichever
// increment produced the current trailer), per ISO 32000-2:2020
// §14.4. Either or both return "" when /ID is absent or short, which
// is common in files produced before the field was mandatory.
func (doc *Document) FileID() (permanent, current string) {
	id := doc.Trailer().Key("ID")
	if id.Kind() != KindArray {
		return "", ""
	}
	if id.Len() > 0 {
		permanent = hex.EncodeToString([]byte(id.Index(0).RawString()))
	}
	if id.Len() > 1 {
		current = hex.EncodeToString([]byte(id.Index(1).RawString()))
	}
	return permanent, current
}

// Encrypted reports whether the trailer names an /Encrypt dictionary.
// The core recognises /Encrypt without decrypting anything: decoding
// any stream of such a document yields ErrFilterUnsupported rather than
// returning ciphertext. String values are not checked: RawString and
// Text return an encrypted document's strings as stored, still
// encrypted.
func (doc *Document) Encrypted() bool {
	return doc.Trailer().Key("Encrypt").Kind() != KindNull
}
