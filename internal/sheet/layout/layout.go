package layout

import (
	"fmt"
	"strconv"
	"time"
)

// DateFormat renders the generation date.
const DateFormat = "2006-01-02"

// Sampler supplies one character per populated cell.
type Sampler interface {
	Next() (byte, error)
}

// Header is a row or column label.
type Header struct {
	// Index is 1-based.
	Index int
	Label string
}

// Cell is one grid position. A zero Value marks a blank cell.
type Cell struct {
	Row   int
	Col   int
	Value byte
}

// Blank reports whether the cell is intentionally left empty.
func (c Cell) Blank() bool {
	return c.Value == 0
}

// Text returns the cell character, or "" for a blank cell.
func (c Cell) Text() string {
	if c.Blank() {
		return ""
	}
	return string(c.Value)
}

// Rect is an axis-aligned box in points, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Layout is a fully described sheet ready for rendering.
type Layout struct {
	Settings Settings
	Dimensions

	// OffsetX and OffsetY place the top-left corner of the header+grid block.
	OffsetX float64
	OffsetY float64

	ColumnHeaders []Header
	RowHeaders    []Header

	// Cells holds Rows*Cols entries in row-major order.
	Cells []Cell

	// Date is the generation date at midnight UTC.
	Date time.Time
}

// Build computes the layout and draws one character per populated cell in
// row-major order.
func Build(settings Settings, sampler Sampler, date time.Time) (Layout, error) {
	if sampler == nil {
		return Layout{}, fmt.Errorf("sampler is required")
	}
	dims, err := ComputeDimensions(settings)
	if err != nil {
		return Layout{}, err
	}

	g := settings.Geometry
	l := Layout{
		Settings:      settings,
		Dimensions:    dims,
		OffsetX:       (g.PageWidth - float64(dims.Cols+1)*g.CellSize) / 2,
		OffsetY:       (g.PageHeight - float64(dims.Rows+1)*g.CellSize) / 2,
		ColumnHeaders: headers(dims.Cols),
		RowHeaders:    headers(dims.Rows),
		Cells:         make([]Cell, 0, dims.Rows*dims.Cols),
		Date:          calendarDate(date),
	}

	for row := 0; row < dims.Rows; row++ {
		for col := 0; col < dims.Cols; col++ {
			cell := Cell{Row: row, Col: col}
			if row < settings.ContentRows {
				ch, err := sampler.Next()
				if err != nil {
					return Layout{}, fmt.Errorf("sample cell (%d, %d): %w", row, col, err)
				}
				cell.Value = ch
			}
			l.Cells = append(l.Cells, cell)
		}
	}
	return l, nil
}

// Label formats a 1-based index as its last decimal digit.
func Label(index int) string {
	return strconv.Itoa(index % 10)
}

func headers(n int) []Header {
	out := make([]Header, n)
	for i := range out {
		out[i] = Header{Index: i + 1, Label: Label(i + 1)}
	}
	return out
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Cell returns the cell at the internal row and column.
func (l Layout) Cell(row, col int) Cell {
	return l.Cells[row*l.Cols+col]
}

// PopulatedRows is the number of rows that received characters.
func (l Layout) PopulatedRows() int {
	return min(l.Rows, l.Settings.ContentRows)
}

// PopulatedCells is the number of non-blank cells.
func (l Layout) PopulatedCells() int {
	return l.PopulatedRows() * l.Cols
}

// DateString formats the generation date.
func (l Layout) DateString() string {
	return l.Date.Format(DateFormat)
}

// Block is the header+grid bounding box.
func (l Layout) Block() Rect {
	size := l.Settings.Geometry.CellSize
	return Rect{
		X: l.OffsetX,
		Y: l.OffsetY,
		W: float64(l.Cols+1) * size,
		H: float64(l.Rows+1) * size,
	}
}

// ColumnHeaderRect locates the header for 0-based column col.
func (l Layout) ColumnHeaderRect(col int) Rect {
	return l.box(l.OffsetX+float64(col+1)*l.cellSize(), l.OffsetY)
}

// RowHeaderRect locates the header for 0-based internal row row.
func (l Layout) RowHeaderRect(row int) Rect {
	return l.box(l.OffsetX, l.OffsetY+float64(row+1)*l.cellSize())
}

// CellRect locates the cell at the internal row and column.
func (l Layout) CellRect(row, col int) Rect {
	size := l.cellSize()
	return l.box(l.OffsetX+float64(col+1)*size, l.OffsetY+float64(row+1)*size)
}

func (l Layout) box(x, y float64) Rect {
	size := l.cellSize()
	return Rect{X: x, Y: y, W: size, H: size}
}

func (l Layout) cellSize() float64 {
	return l.Settings.Geometry.CellSize
}
