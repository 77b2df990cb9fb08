package mfmv

import "github.com/deepteams/mdconfig/internal/av1"

// Cell is one entry of the temporal motion field.
type Cell struct {
	MV             av1.MV
	RefFrameOffset int8
}

// Field is the dense temporal motion field at half mode-info resolution.
type Field struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// NewField returns a field for a miRows x miCols picture with every cell
// invalid.
func NewField(miRows, miCols int) *Field {
	f := &Field{
		Rows: (miRows + 1) >> 1,
		Cols: (miCols + 1) >> 1,
	}
	f.Cells = make([]Cell, f.Rows*f.Cols)
	f.Reset()
	return f
}

// Reset marks every cell invalid.
func (f *Field) Reset() {
	for i := range f.Cells {
		f.Cells[i] = Cell{MV: av1.InvalidMV}
	}
}

// At returns the cell at (row, col).
func (f *Field) At(row, col int) Cell {
	return f.Cells[row*f.Cols+col]
}

// Valid counts the cells holding a projected vector.
func (f *Field) Valid() int {
	n := 0
	for i := range f.Cells {
		if !f.Cells[i].MV.IsInvalid() {
			n++
		}
	}
	return n
}
