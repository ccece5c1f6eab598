// Package render paints a sheet layout onto a page canvas.
package render

import (
	"fmt"

	"github.com/louisbranch/password-sheet/internal/sheet/layout"
)

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Gray returns a neutral color of the given level.
func Gray(level float64) Color {
	return Color{R: level, G: level, B: level}
}

// Black is the text color for headers and cells.
var Black = Color{}

// Font names a built-in page font.
type Font struct {
	Family string
	Size   float64
}

// RectStyle controls how a rectangle is painted.
type RectStyle struct {
	Fill      bool
	FillColor Color
	Stroke    Color
	LineWidth float64
}

// Canvas is the drawing surface a layout is painted on. Coordinates are in
// points with the origin at the top-left; y in Text is the baseline.
type Canvas interface {
	Rect(r layout.Rect, style RectStyle)
	Text(x, y float64, text string, font Font, color Color)
	StringWidth(text string, font Font) float64
}

// Theme holds the visual constants of a sheet.
type Theme struct {
	CellFont    Font
	FooterFont  Font
	HeaderFill  Color
	Border      Color
	LineWidth   float64
	FooterColor Color
	// FooterBaseline is the distance of the footer baseline from the page bottom.
	FooterBaseline float64
	// BaselineLift raises glyphs above the geometric center of a cell.
	BaselineLift float64
}

// DefaultTheme matches the printed sheet: Courier 14 in light grey boxes.
func DefaultTheme() Theme {
	return Theme{
		CellFont:       Font{Family: "Courier", Size: 14},
		FooterFont:     Font{Family: "Helvetica", Size: 8},
		HeaderFill:     Gray(0.85),
		Border:         Gray(0.7),
		LineWidth:      0.5,
		FooterColor:    Gray(0.5),
		FooterBaseline: 10 * layout.Millimeter,
		BaselineLift:   2,
	}
}

// FooterText returns the caption printed under the grid.
func FooterText(l layout.Layout) string {
	return fmt.Sprintf("Generated: %s", l.DateString())
}

// Draw paints headers, bordered cells and the footer for l.
func Draw(l layout.Layout, c Canvas, theme Theme) {
	header := RectStyle{Fill: true, FillColor: theme.HeaderFill, Stroke: theme.Border, LineWidth: theme.LineWidth}
	border := RectStyle{Stroke: theme.Border, LineWidth: theme.LineWidth}

	for col, h := range l.ColumnHeaders {
		r := l.ColumnHeaderRect(col)
		c.Rect(r, header)
		centerText(c, r, h.Label, theme)
	}
	for row, h := range l.RowHeaders {
		r := l.RowHeaderRect(row)
		c.Rect(r, header)
		centerText(c, r, h.Label, theme)
	}

	for _, cell := range l.Cells {
		r := l.CellRect(cell.Row, cell.Col)
		c.Rect(r, border)
		if cell.Blank() {
			continue
		}
		centerText(c, r, cell.Text(), theme)
	}

	g := l.Settings.Geometry
	c.Text(g.Margin, g.PageHeight-theme.FooterBaseline, FooterText(l), theme.FooterFont, theme.FooterColor)
}

func centerText(c Canvas, r layout.Rect, text string, theme Theme) {
	font := theme.CellFont
	width := c.StringWidth(text, font)
	x := r.X + (r.W-width)/2
	y := r.Y + (r.H+font.Size)/2 - theme.BaselineLift
	c.Text(x, y, text, font, Black)
}
