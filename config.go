// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfgraph

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sassoftware/pdfgraph/logger"
)

// ParsingMode selects how the reader treats deviations from
// ISO 32000-2:2020. The two modes differ in one place: when an indirect
// object's header generation differs from its cross-reference entry,
// Strict resolves the reference to null while BestEffort returns the
// object; both record a Diagnostic. Every other deviation is handled the
// same way in both modes, with a Diagnostic and a documented fallback;
// Strict does not turn any of them into a ParseError.
type ParsingMode string

const (
	Strict     ParsingMode = "strict"
	BestEffort ParsingMode = "best-effort"
)

// Config governs both a single Document's parsing behavior and the
// limits applied when opening many documents through a batch loader
// (NewBatchLoader, OpenAll).
type Config struct {
	ParsingMode ParsingMode `validate:"oneof=strict best-effort"`

	// MaxDecodedOutputBytes bounds the output of any single filter
	// stage; exceeding it aborts that stream's decode with
	// ErrOutputTooLarge rather than continuing to allocate, guarding
	// against a decompression bomb hidden behind a tiny encoded stream.
	MaxDecodedOutputBytes int64 `validate:"min=1"`

	// MaxInFlightReferences bounds how many indirect references may be
	// in the process of being resolved at once along a single
	// resolution path, independent of reference-cycle detection: it
	// catches pathologically deep (but acyclic) reference chains.
	MaxInFlightReferences int `validate:"min=1"`

	// MaxConcurrentDocuments bounds how many documents a batch loader
	// opens at once. WorkerTimeout bounds each document's
	// BatchSource.Open call; parsing the bytes it returned is not
	// interrupted by it.
	MaxConcurrentDocuments int           `validate:"min=1,max=64"`
	WorkerTimeout          time.Duration `validate:"required"`

	DebugOn bool
	Logger  logger.LogFunc
}

// NewDefaultConfig returns the Config used when a caller does not need
// to tune resource limits: best-effort parsing, a 256 MiB decoded-output
// guard per stream, and modest batch concurrency.
func NewDefaultConfig() *Config {
	return &Config{
		ParsingMode:            BestEffort,
		MaxDecodedOutputBytes:  256 << 20,
		MaxInFlightReferences:  1000,
		MaxConcurrentDocuments: 4,
		WorkerTimeout:          30 * time.Second,
		DebugOn:                false,
	}
}

// Validate reports whether cfg's fields are within their supported
// ranges before it is used to open a document or a batch.
func (cfg *Config) Validate() error {
	logger.Debug("validating config")
	return validator.New().Struct(cfg)
}

func (cfg *Config) maxDecodedOutput() int64 {
	if cfg == nil || cfg.MaxDecodedOutputBytes <= 0 {
		return 256 << 20
	}
	return cfg.MaxDecodedOutputBytes
}

func (cfg *Config) strict() bool {
	return cfg != nil && cfg.ParsingMode == Strict
}
