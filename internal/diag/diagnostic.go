package diag

import (
	"keel/internal/source"
)

// Note attaches secondary context to a diagnostic, e.g. "declared here".
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single finding produced by a compilation phase.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote returns a copy of the diagnostic with one more note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	notes := make([]Note, 0, len(d.Notes)+1)
	notes = append(notes, d.Notes...)
	notes = append(notes, Note{Span: sp, Msg: msg})
	d.Notes = notes
	return d
}
