// Package layout computes the password-sheet grid for a fixed page.
//
// # Geometry
//
// One cell is reserved on each axis for headers, so the usable area is the
// page minus both margins minus one cell. Columns and rows are the usable
// extent divided by the cell size and floored; columns are further capped by
// Settings.MaxColumns. A geometry that leaves no room for a single column or
// row is rejected with ErrInvalidGeometry instead of yielding an empty grid.
//
// # Coordinates
//
// Positions are in points with the origin at the top-left of the page. The
// header row sits above the grid and the header column to its left; the
// combined block is centered on the page. Internal row 0 is the topmost grid
// row and carries the row label "1", so labels increase top to bottom.
//
// # Content cutoff
//
// Rows with an internal index at or beyond Settings.ContentRows are always
// blank. The cutoff is a fixed business rule (25) rather than a function of
// the page size.
package layout
