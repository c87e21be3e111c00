package store

import (
	"fmt"
	"strings"
)

// Entry is one row of the key-value mapping.
type Entry struct {
	// ID is the primary key in the db. Assigned by SQLite on insert and
	// never touched by the user; exposed for listing and debugging only.
	ID int64

	// Name is the identifier set and accessed by users.
	Name string

	// Value is the primary payload.
	Value string

	// Alternate is a secondary payload that value can be toggled to.
	// Particularly useful for true/false style switches.
	Alternate string
}

// Pair returns value and alternate space-joined. No escaping: values
// containing spaces render ambiguously, callers own that tradeoff.
func (e Entry) Pair() string {
	return fmt.Sprintf("%s %s", e.Value, e.Alternate)
}

// JSON renders the entry as a single-line JSON object.
//
// The format is fixed for script compatibility: _id is numeric in storage
// but serialized as a JSON string, and fields are emitted verbatim without
// JSON escaping.
func (e Entry) JSON() string {
	return fmt.Sprintf(`{ "_id": "%d", "name": "%s", "value": "%s", "alternate": "%s" }`,
		e.ID, e.Name, e.Value, e.Alternate)
}

// Debug renders the entry in the historical list format.
func (e Entry) Debug() string {
	return fmt.Sprintf("Entry { _id: %d, name: %q, value: %q, alternate: %q }",
		e.ID, e.Name, e.Value, e.Alternate)
}

// Display renders the entry as space-separated columns (name value
// alternate), the shell-friendly list format.
func (e Entry) Display() string {
	return fmt.Sprintf("%s %s %s", e.Name, e.Value, e.Alternate)
}

// ListFormat selects the per-line rendering for list output.
type ListFormat string

const (
	// ListDebug is the historical default list rendering.
	ListDebug ListFormat = "debug"

	// ListDisplay is the shell-friendly columnar rendering.
	ListDisplay ListFormat = "display"

	// ListJSON renders one JSON object per line.
	ListJSON ListFormat = "json"
)

// FormatEntries renders entries one newline-terminated line per entry in the
// given format. An empty slice renders as the empty string.
func FormatEntries(entries []Entry, format ListFormat) (string, error) {
	var b strings.Builder
	for _, e := range entries {
		switch format {
		case ListDebug:
			b.WriteString(e.Debug())
		case ListDisplay:
			b.WriteString(e.Display())
		case ListJSON:
			b.WriteString(e.JSON())
		default:
			return "", fmt.Errorf("unknown list format %q", format)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
