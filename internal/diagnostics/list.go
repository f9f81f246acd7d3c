package diagnostics

// List is an append-only, capped sequence of diagnostics.
// Entries past the limit are dropped.
type List struct {
	limit   int
	entries []*DiagnosticError
	dropped int
}

func NewList(limit int) *List {
	return &List{limit: limit}
}

// Add appends d and reports whether it was kept.
func (l *List) Add(d *DiagnosticError) bool {
	if l.limit > 0 && len(l.entries) >= l.limit {
		l.dropped++
		return false
	}
	l.entries = append(l.entries, d)
	return true
}

func (l *List) Len() int { return len(l.entries) }

// Dropped returns how many entries were refused because the list was full.
func (l *List) Dropped() int { return l.dropped }

func (l *List) Entries() []*DiagnosticError {
	return l.entries
}
