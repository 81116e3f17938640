// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import (
	"fmt"

	"github.com/sassoftware/pdfgraph/logger"
)

// DiagnosticLevel is the severity of a recoverable issue. The parser
// never raises anything above Warn on its own — issues more severe than
// a documented lenient interpretation surface as a *ParseError instead.
type DiagnosticLevel string

const (
	LevelInfo DiagnosticLevel = "info"
	LevelWarn DiagnosticLevel = "warn"
)

// Diagnostic records a single recoverable issue: the parse continued
// using a documented lenient interpretation (duplicate dictionary keys,
// a generation mismatch, a scanned-forward endstream, and so on).
type Diagnostic struct {
	Level   DiagnosticLevel
	Kind    ErrorKind
	Offset  int64
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s:%s] offset %d: %s", d.Level, d.Kind, d.Offset, d.Message)
}

// diagnosticSink collects Diagnostics in the order they are observed.
// Per spec §5, that order is file-byte order while parsing a single
// object and newest-to-oldest increment order while merging xref
// sections; callers appending during a chain walk are responsible for
// preserving that order themselves (see trailer.go). When debug is set
// (from Config.DebugOn), every Diagnostic is additionally mirrored to
// the logger package, the same "if DebugOn { logger.Error(...) }"
// idiom the teacher's read.go/page.go use around their own anomaly
// sites.
type diagnosticSink struct {
	items []Diagnostic
	debug bool
}

func (s *diagnosticSink) warn(kind ErrorKind, offset int64, format string, args ...any) {
	s.add(LevelWarn, kind, offset, fmt.Sprintf(format, args...))
}

func (s *diagnosticSink) info(kind ErrorKind, offset int64, format string, args ...any) {
	s.add(LevelInfo, kind, offset, fmt.Sprintf(format, args...))
}

func (s *diagnosticSink) add(level DiagnosticLevel, kind ErrorKind, offset int64, msg string) {
	d := Diagnostic{Level: level, Kind: kind, Offset: offset, Message: msg}
	s.items = append(s.items, d)
	if s.debug {
		logger.Error(d.String())
	}
}

// Diagnostics returns every recoverable issue observed for the document.
func (s *diagnosticSink) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(s.items))
	copy(out, s.items)
	return out
}
