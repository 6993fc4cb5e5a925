package models

import "fmt"

// ExtractionLog is an append-only list of operator-facing messages.
type ExtractionLog struct {
	entries []string
}

// Addf appends a formatted entry.
func (l *ExtractionLog) Addf(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// Append appends entries in order.
func (l *ExtractionLog) Append(entries ...string) {
	l.entries = append(l.entries, entries...)
}

// Entries returns a copy of the entries.
func (l *ExtractionLog) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *ExtractionLog) Len() int {
	return len(l.entries)
}
