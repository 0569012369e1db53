package domain

// Record is one row of named cells. Columns absent from the row read as blank.
type Record map[string]Value

func (r Record) Get(column string) Value {
	if v, ok := r[column]; ok {
		return v
	}
	return BlankValue()
}

// Clone returns a shallow copy safe to mutate independently.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IsBlank reports whether every cell of the row is blank.
func (r Record) IsBlank() bool {
	for _, v := range r {
		if !v.IsBlank() {
			return false
		}
	}
	return true
}

// Table is an ordered set of named-column records.
type Table struct {
	Columns []string
	Rows    []Record
}

func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// DropBlankRows removes fully-blank rows, preserving order.
func (t Table) DropBlankRows() Table {
	kept := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		if !row.IsBlank() {
			kept = append(kept, row)
		}
	}
	return Table{Columns: t.Columns, Rows: kept}
}
