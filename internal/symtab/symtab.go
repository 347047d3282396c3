// Package symtab records identifier occurrences found during scanning.
//
// DESIGN PHILOSOPHY:
// This language has no declarations at the lexical level, so the symbol
// table is an occurrence ledger rather than a scope tree: every valid
// identifier token is recorded under its name with the position of its
// first appearance and a running frequency count.
//
// KEY DESIGN CHOICES:
// - One entry per distinct name; the first occurrence wins the position
// - First-occurrence order is preserved so reports are deterministic
// - The table is an append-only sink: the scanner writes, readers only read
package symtab

// KindIdentifier is the symbol kind for every entry. The language has a
// single lexical namespace, but keeping the kind explicit keeps report
// formats stable if more kinds ever appear.
const KindIdentifier = "identifier"

// Entry describes one distinct identifier.
//
// DESIGN CHOICE: Store plain line/column ints rather than a richer position
// type because:
// - The table must not depend on the scanner package (the scanner owns it)
// - First-occurrence position never changes, so two ints are enough
type Entry struct {
	// Name is the identifier text.
	Name string

	// Kind is always KindIdentifier for this language.
	Kind string

	// FirstLine and FirstColumn locate the first occurrence (1-based).
	// They are set on insertion and never updated.
	FirstLine   int
	FirstColumn int

	// Frequency counts occurrences of this name, starting at 1.
	Frequency int
}

// Table maps identifier names to entries while preserving insertion order.
//
// DESIGN CHOICE: A map plus an order slice rather than an ordered-map
// dependency because:
// - Lookup stays O(1), iteration stays insertion-ordered
// - The pattern is small enough that a library would be heavier than the code
type Table struct {
	entries map[string]*Entry
	order   []string
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// RecordOccurrence notes one occurrence of name at the given position.
// The first occurrence creates the entry; later occurrences only bump the
// frequency and never touch the stored position.
func (t *Table) RecordOccurrence(name string, line, column int) {
	if e, ok := t.entries[name]; ok {
		e.Frequency++
		return
	}
	t.entries[name] = &Entry{
		Name:        name,
		Kind:        KindIdentifier,
		FirstLine:   line,
		FirstColumn: column,
		Frequency:   1,
	}
	t.order = append(t.order, name)
}

// Entries returns the entries in first-occurrence order.
// The returned slice holds copies, so callers cannot mutate the table.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.entries[name])
	}
	return out
}

// Lookup returns the entry for name, if present.
func (t *Table) Lookup(name string) (Entry, bool) {
	if e, ok := t.entries[name]; ok {
		return *e, true
	}
	return Entry{}, false
}

// Len returns the number of distinct identifiers recorded.
func (t *Table) Len() int {
	return len(t.order)
}
