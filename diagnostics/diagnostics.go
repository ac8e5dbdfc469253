// Package diagnostics collects non-fatal warnings produced while parsing
// and saving documents, and logs the handful of stable, fuzz-triage-stable
// limit codes through zerolog.
package diagnostics

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/arturoeanton/go-svgxml/fileoffset"
)

// Warning is a non-fatal diagnostic with a resolved source location.
// Semantic (SVG-layer) errors and presentation-attribute parse failures are
// appended here rather than aborting the parse.
type Warning struct {
	Reason   string
	Location fileoffset.FileOffset
}

// Rebase shifts a warning's location into a parent's coordinate system,
// used when a subparser (e.g. an attribute re-parse, or a nested SVG
// fragment) reports a warning relative to its own start.
func (w Warning) Rebase(parentOffset fileoffset.FileOffset) Warning {
	return Warning{Reason: w.Reason, Location: w.Location.AddParentOffset(parentOffset)}
}

// Collector accumulates warnings in document order: an optional
// caller-provided sink that warnings get appended to as they are found.
type Collector struct {
	warnings []Warning
}

// NewCollector returns an empty warning collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a warning.
func (c *Collector) Add(reason string, location fileoffset.FileOffset) {
	c.warnings = append(c.warnings, Warning{Reason: reason, Location: location})
}

// AddWarning appends an already-constructed warning (used when rebasing a
// subparser warning).
func (c *Collector) AddWarning(w Warning) {
	c.warnings = append(c.warnings, w)
}

// Warnings returns the accumulated warnings in the order they were added.
func (c *Collector) Warnings() []Warning {
	return c.warnings
}

// Sink is a zerolog-backed structured logger for limit-exceeded
// diagnostics. The two codes it is expected to ever log verbatim —
// "HIT_DEPTH_CAP" and "HIT_SUBS_CAP" — are kept as literal string constants
// here so tooling that greps logs for fuzz-triage codes keeps working
// regardless of message wording changes elsewhere.
type Sink struct {
	logger zerolog.Logger
}

// NewSink builds a Sink writing to w as zerolog JSON lines.
// Passing nil uses os.Stderr.
func NewSink(w io.Writer) *Sink {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(w).With().Timestamp().Logger()
	return &Sink{logger: logger}
}

const (
	// CodeHitDepthCap is logged when entity expansion hits maxEntityDepth.
	CodeHitDepthCap = "HIT_DEPTH_CAP"
	// CodeHitSubsCap is logged when entity expansion hits
	// maxEntitySubstitutions.
	CodeHitSubsCap = "HIT_SUBS_CAP"
)

// LogLimitHit logs one of the two stable limit codes with its location and
// a human-readable detail, fatal=true for codes that abort the parse
// (substitution cap) vs. merely change behavior for the current reference
// (depth cap, which just stops expanding further).
func (s *Sink) LogLimitHit(code, detail string, location fileoffset.FileOffset, fatal bool) {
	event := s.logger.Warn()
	if fatal {
		event = s.logger.Error()
	}
	ev := event.Str("code", code).Str("detail", detail)
	if location.Offset != nil {
		ev = ev.Uint64("offset", *location.Offset)
	}
	ev.Msg("entity expansion limit reached")
}

// Warn logs an arbitrary warning through the structured sink, used for
// semantic (SVG-layer) diagnostics that are worth surfacing in logs in
// addition to being returned to the caller via Collector.
func (s *Sink) Warn(w Warning) {
	ev := s.logger.Warn().Str("reason", w.Reason)
	if w.Location.Offset != nil {
		ev = ev.Uint64("offset", *w.Location.Offset)
	}
	ev.Msg("parse warning")
}
