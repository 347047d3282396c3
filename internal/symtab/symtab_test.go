package symtab

import (
	"testing"
)

func TestTable_RecordOccurrence(t *testing.T) {
	table := NewTable()

	table.RecordOccurrence("Count", 1, 5)
	table.RecordOccurrence("Count", 2, 1)
	table.RecordOccurrence("Count", 3, 9)

	entry, ok := table.Lookup("Count")
	if !ok {
		t.Fatal("expected Count to be present")
	}
	if entry.Frequency != 3 {
		t.Errorf("Frequency = %d, want 3", entry.Frequency)
	}
	if entry.FirstLine != 1 || entry.FirstColumn != 5 {
		t.Errorf("first occurrence = %d:%d, want 1:5", entry.FirstLine, entry.FirstColumn)
	}
	if entry.Kind != KindIdentifier {
		t.Errorf("Kind = %q, want %q", entry.Kind, KindIdentifier)
	}
}

func TestTable_InsertionOrder(t *testing.T) {
	table := NewTable()

	table.RecordOccurrence("Zeta", 1, 1)
	table.RecordOccurrence("Alpha", 1, 6)
	table.RecordOccurrence("Mid", 1, 12)
	table.RecordOccurrence("Alpha", 2, 1)

	entries := table.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries() returned %d entries, want 3", len(entries))
	}

	expectedOrder := []string{"Zeta", "Alpha", "Mid"}
	for i, name := range expectedOrder {
		if entries[i].Name != name {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestTable_LookupMissing(t *testing.T) {
	table := NewTable()
	if _, ok := table.Lookup("Missing"); ok {
		t.Error("expected Lookup on an empty table to report absence")
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}
}

func TestTable_EntriesAreCopies(t *testing.T) {
	table := NewTable()
	table.RecordOccurrence("A", 1, 1)

	entries := table.Entries()
	entries[0].Frequency = 99

	entry, _ := table.Lookup("A")
	if entry.Frequency != 1 {
		t.Errorf("mutating a returned entry changed the table: Frequency = %d", entry.Frequency)
	}
}
