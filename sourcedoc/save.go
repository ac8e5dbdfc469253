package sourcedoc

import (
	"fmt"

	"github.com/arturoeanton/go-svgxml/diagnostics"
)

// SaveResult is the outcome of SaveDocument: the updated text and the
// OffsetMap translating old offsets (e.g. for diagnostics still pointing
// at the pre-edit document) into the new one.
type SaveResult struct {
	UpdatedText string
	OffsetMap   *OffsetMap
}

// SaveDocument plans entries with ReplaceSpanPlanner, applies the result
// against doc via ApplyReplacements, and logs the outcome through sink
// (if non-nil). This is the entry point the edit pipeline converges on:
// DOM mutations become EditOperations become Entry values here.
func SaveDocument(doc *SourceDocument, entries []Entry, sink *diagnostics.Sink) (SaveResult, error) {
	planned, err := Plan(entries)
	if err != nil {
		return SaveResult{}, fmt.Errorf("sourcedoc: save failed during planning: %w", err)
	}

	replacements := make([]Replacement, len(planned))
	for i, p := range planned {
		replacements[i] = p.Replacement
	}

	updated, offsetMap, err := doc.ApplyReplacements(replacements)
	if err != nil {
		return SaveResult{}, fmt.Errorf("sourcedoc: save failed while applying replacements: %w", err)
	}

	if sink != nil {
		for _, p := range planned {
			if p.UsedFallback {
				sink.Warn(diagnostics.Warning{Reason: "save: promoted fallback replacement"})
			}
		}
	}

	return SaveResult{UpdatedText: updated, OffsetMap: offsetMap}, nil
}
