package sheet

// Row is a header-keyed record. Number is the 1-based position among data
// rows; Line is the worksheet row it came from.
type Row struct {
	Number int
	Line   int
	cells  map[string]Value
}

func NewRow(number int, cells map[string]Value) Row {
	if cells == nil {
		cells = map[string]Value{}
	}
	return Row{Number: number, Line: number + 1, cells: cells}
}

// Get returns the cell under header, or an empty value.
func (r Row) Get(header string) Value {
	if r.cells == nil {
		return Value{}
	}
	return r.cells[header]
}

// IsBlank reports whether every cell is empty.
func (r Row) IsBlank() bool {
	for _, v := range r.cells {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}

// Cells returns a copy of the non-empty cells, for failure reports.
func (r Row) Cells() map[string]Value {
	out := make(map[string]Value, len(r.cells))
	for k, v := range r.cells {
		if v.IsEmpty() {
			continue
		}
		out[k] = v
	}
	return out
}
