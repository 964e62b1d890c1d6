package asset

// Lookup resolves pointers to records.
type Lookup interface {
	Find(p PPtr) (Record, bool)
}

// Table is a frozen pointer-to-record map. It is safe for concurrent use
// because nothing mutates it after Build.
type Table struct {
	records map[PPtr]Record
}

// Find implements Lookup.
func (t *Table) Find(p PPtr) (Record, bool) {
	rec, ok := t.records[p]
	return rec, ok
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// TableBuilder collects entries for a Table. It is not safe for
// concurrent use.
type TableBuilder struct {
	records map[PPtr]Record
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{records: make(map[PPtr]Record)}
}

// Insert maps p to rec, replacing an earlier entry.
func (b *TableBuilder) Insert(p PPtr, rec Record) {
	b.records[p] = rec
}

// Build freezes the collected entries. The builder is reset and may be
// reused.
func (b *TableBuilder) Build() *Table {
	t := &Table{records: b.records}
	b.records = make(map[PPtr]Record)
	return t
}
