package layout

import (
	"fmt"
	"math"
	"strconv"

	apperrors "github.com/louisbranch/password-sheet/internal/platform/errors"
)

// Millimeter is one millimeter expressed in points.
const Millimeter = 72 / 25.4

const (
	// DefaultMaxColumns caps the grid width.
	DefaultMaxColumns = 20
	// DefaultContentRows is the number of rows that receive characters.
	DefaultContentRows = 25
	// MaxGridCells bounds Cols*Rows so a huge page cannot exhaust memory.
	MaxGridCells = 1 << 20
)

// ErrInvalidGeometry matches any configuration error raised by the engine.
var ErrInvalidGeometry = apperrors.New(apperrors.CodeSheetGeometryInvalid, "invalid sheet geometry")

// Geometry describes the page in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	CellSize   float64
}

// A4 returns the default portrait A4 geometry with 15mm margins and 8mm cells.
func A4() Geometry {
	return Geometry{
		PageWidth:  210 * Millimeter,
		PageHeight: 297 * Millimeter,
		Margin:     15 * Millimeter,
		CellSize:   8 * Millimeter,
	}
}

// Settings is the immutable configuration consumed by Build.
type Settings struct {
	Geometry    Geometry
	MaxColumns  int
	ContentRows int
}

// DefaultSettings returns A4 geometry with the standard column cap and
// content cutoff.
func DefaultSettings() Settings {
	return Settings{
		Geometry:    A4(),
		MaxColumns:  DefaultMaxColumns,
		ContentRows: DefaultContentRows,
	}
}

// Dimensions is the derived grid size, excluding headers.
type Dimensions struct {
	Cols int
	Rows int
}

// ComputeDimensions derives the grid size from settings.
func ComputeDimensions(settings Settings) (Dimensions, error) {
	g := settings.Geometry
	if !finite(g.PageWidth) || !finite(g.PageHeight) {
		return Dimensions{}, invalidGeometry("page size must be finite", g, Dimensions{})
	}
	if g.PageWidth <= 0 || g.PageHeight <= 0 {
		return Dimensions{}, invalidGeometry("page size must be positive", g, Dimensions{})
	}
	if !finite(g.Margin) || g.Margin < 0 {
		return Dimensions{}, invalidGeometry("margin must be finite and not negative", g, Dimensions{})
	}
	if g.CellSize <= 0 || !finite(g.CellSize) {
		return Dimensions{}, invalidGeometry("cell size must be positive", g, Dimensions{})
	}
	if settings.MaxColumns <= 0 {
		return Dimensions{}, invalidGeometry("max columns must be positive", g, Dimensions{})
	}
	if settings.ContentRows < 0 {
		return Dimensions{}, invalidGeometry("content rows must not be negative", g, Dimensions{})
	}

	usableWidth := g.PageWidth - 2*g.Margin - g.CellSize
	usableHeight := g.PageHeight - 2*g.Margin - g.CellSize

	dims := Dimensions{
		Cols: floorCells(usableWidth, g.CellSize),
		Rows: floorCells(usableHeight, g.CellSize),
	}
	if dims.Cols > settings.MaxColumns {
		dims.Cols = settings.MaxColumns
	}
	if dims.Cols <= 0 || dims.Rows <= 0 {
		return Dimensions{}, invalidGeometry("page too small for a single grid cell", g, dims)
	}
	if dims.Rows > MaxGridCells/dims.Cols {
		return Dimensions{}, invalidGeometry("grid too large", g, dims)
	}
	return dims, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// floorCells returns how many whole cells fit in extent, or 0 when none do.
func floorCells(extent, cell float64) int {
	n := math.Floor(extent / cell)
	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

func invalidGeometry(message string, g Geometry, dims Dimensions) error {
	return apperrors.WithMetadata(apperrors.CodeSheetGeometryInvalid, message, map[string]string{
		"page_width":  formatPoints(g.PageWidth),
		"page_height": formatPoints(g.PageHeight),
		"margin":      formatPoints(g.Margin),
		"cell_size":   formatPoints(g.CellSize),
		"cols":        strconv.Itoa(dims.Cols),
		"rows":        strconv.Itoa(dims.Rows),
	})
}

func formatPoints(v float64) string {
	return fmt.Sprintf("%.2fpt", v)
}
