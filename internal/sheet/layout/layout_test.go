package layout

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	apperrors "github.com/louisbranch/password-sheet/internal/platform/errors"
	"github.com/louisbranch/password-sheet/internal/sheet/charset"
)

// countingSampler cycles through the alphabet and counts draws.
type countingSampler struct {
	calls int
}

func (s *countingSampler) Next() (byte, error) {
	alphabet := charset.Alphabet()
	ch := alphabet[s.calls%len(alphabet)]
	s.calls++
	return ch, nil
}

type failingSampler struct{ after int }

func (s *failingSampler) Next() (byte, error) {
	if s.after == 0 {
		return 0, errors.New("no entropy")
	}
	s.after--
	return 'x', nil
}

var testDate = time.Date(2026, time.October, 14, 18, 30, 0, 0, time.FixedZone("JST", 9*3600))

func expectedDimensions(s Settings) Dimensions {
	g := s.Geometry
	cols := int(math.Floor((g.PageWidth - 2*g.Margin - g.CellSize) / g.CellSize))
	rows := int(math.Floor((g.PageHeight - 2*g.Margin - g.CellSize) / g.CellSize))
	return Dimensions{Cols: min(cols, s.MaxColumns), Rows: rows}
}

func TestComputeDimensionsA4(t *testing.T) {
	settings := DefaultSettings()
	dims, err := ComputeDimensions(settings)
	if err != nil {
		t.Fatalf("ComputeDimensions() error = %v", err)
	}
	if want := expectedDimensions(settings); dims != want {
		t.Fatalf("ComputeDimensions() = %+v, want %+v", dims, want)
	}
	if dims.Cols != DefaultMaxColumns {
		t.Fatalf("Cols = %d, want capped at %d", dims.Cols, DefaultMaxColumns)
	}
	if dims.Rows != 32 {
		t.Fatalf("Rows = %d, want 32", dims.Rows)
	}
}

func TestComputeDimensionsLetterPoints(t *testing.T) {
	settings := Settings{
		Geometry:    Geometry{PageWidth: 595, PageHeight: 842, Margin: 42.5, CellSize: 22.7},
		MaxColumns:  20,
		ContentRows: 25,
	}
	dims, err := ComputeDimensions(settings)
	if err != nil {
		t.Fatalf("ComputeDimensions() error = %v", err)
	}
	if want := expectedDimensions(settings); dims != want {
		t.Fatalf("ComputeDimensions() = %+v, want %+v", dims, want)
	}
	if dims.Cols != 20 {
		t.Fatalf("Cols = %d, want 20", dims.Cols)
	}
}

func TestComputeDimensionsFloorsRemainders(t *testing.T) {
	// Usable extent is 3.9 cells wide and 2.5 cells tall.
	settings := Settings{
		Geometry:    Geometry{PageWidth: 49, PageHeight: 35, Margin: 0, CellSize: 10},
		MaxColumns:  20,
		ContentRows: 25,
	}
	dims, err := ComputeDimensions(settings)
	if err != nil {
		t.Fatalf("ComputeDimensions() error = %v", err)
	}
	if dims != (Dimensions{Cols: 3, Rows: 2}) {
		t.Fatalf("ComputeDimensions() = %+v, want {Cols:3 Rows:2}", dims)
	}
}

func TestComputeDimensionsRejectsDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{
			name: "usable area below one cell",
			settings: Settings{
				Geometry:    Geometry{PageWidth: 30, PageHeight: 30, Margin: 5, CellSize: 15},
				MaxColumns:  20,
				ContentRows: 25,
			},
		},
		{
			name: "no columns",
			settings: Settings{
				Geometry:    Geometry{PageWidth: 25, PageHeight: 500, Margin: 0, CellSize: 20},
				MaxColumns:  20,
				ContentRows: 25,
			},
		},
		{
			name: "no rows",
			settings: Settings{
				Geometry:    Geometry{PageWidth: 500, PageHeight: 25, Margin: 0, CellSize: 20},
				MaxColumns:  20,
				ContentRows: 25,
			},
		},
		{
			name: "margins exceed page",
			settings: Settings{
				Geometry:    Geometry{PageWidth: 100, PageHeight: 100, Margin: 80, CellSize: 10},
				MaxColumns:  20,
				ContentRows: 25,
			},
		},
		{
			name: "zero cell size",
			settings: Settings{
				Geometry:    Geometry{PageWidth: 100, PageHeight: 100},
				MaxColumns:  20,
				ContentRows: 25,
			},
		},
		{
			name: "infinite page height",
			settings: Settings{
				Geometry:    Geometry{PageWidth: 100, PageHeight: math.Inf(1), Margin: 0, CellSize: 10},
				MaxColumns:  20,
				ContentRows: 25,
			},
		},
		{
			name: "infinite page width",
			settings: Settings{
				Geometry:    Geometry{PageWidth: math.Inf(1), PageHeight: 100, Margin: 0, CellSize: 10},
				MaxColumns:  20,
				ContentRows: 25,
			},
		},
		{
			name: "NaN margin",
			settings: Settings{
				Geometry:    Geometry{PageWidth: 100, PageHeight: 100, Margin: math.NaN(), CellSize: 10},
				MaxColumns:  20,
				ContentRows: 25,
			},
		},
		{
			name: "negative margin",
			settings: Settings{
				Geometry:    Geometry{PageWidth: 100, PageHeight: 100, Margin: -5, CellSize: 10},
				MaxColumns:  20,
				ContentRows: 25,
			},
		},
		{
			name: "tiny cell on huge page",
			settings: Settings{
				Geometry:    Geometry{PageWidth: 1e6, PageHeight: 1e12, Margin: 0, CellSize: 1e-3},
				MaxColumns:  20,
				ContentRows: 25,
			},
		},
		{
			name: "zero column cap",
			settings: Settings{
				Geometry:    A4(),
				ContentRows: 25,
			},
		},
		{
			name: "negative content rows",
			settings: Settings{
				Geometry:    A4(),
				MaxColumns:  20,
				ContentRows: -1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := &countingSampler{}
			l, err := Build(tt.settings, sampler, testDate)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("Build() error = %v, want %v", err, ErrInvalidGeometry)
			}
			if apperrors.GetCode(err) != apperrors.CodeSheetGeometryInvalid {
				t.Fatalf("GetCode() = %q, want %q", apperrors.GetCode(err), apperrors.CodeSheetGeometryInvalid)
			}
			if l.Cells != nil || l.Cols != 0 || l.Rows != 0 {
				t.Fatalf("expected zero Layout on error, got %+v", l.Dimensions)
			}
			if sampler.calls != 0 {
				t.Fatalf("sampler called %d times, want 0", sampler.calls)
			}
		})
	}
}

func TestBuildPopulatesCellsRowMajor(t *testing.T) {
	settings := DefaultSettings()
	sampler := &countingSampler{}
	l, err := Build(settings, sampler, testDate)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got, want := len(l.Cells), l.Rows*l.Cols; got != want {
		t.Fatalf("len(Cells) = %d, want %d", got, want)
	}
	if got, want := sampler.calls, l.Cols*min(l.Rows, DefaultContentRows); got != want {
		t.Fatalf("sampler calls = %d, want %d", got, want)
	}
	if got, want := l.PopulatedCells(), 500; got != want {
		t.Fatalf("PopulatedCells() = %d, want %d", got, want)
	}

	alphabet := charset.Alphabet()
	populated := 0
	for i, cell := range l.Cells {
		if cell.Row != i/l.Cols || cell.Col != i%l.Cols {
			t.Fatalf("Cells[%d] at (%d, %d), want (%d, %d)", i, cell.Row, cell.Col, i/l.Cols, i%l.Cols)
		}
		if cell.Row >= DefaultContentRows {
			if !cell.Blank() {
				t.Fatalf("cell (%d, %d) = %q, want blank past content cutoff", cell.Row, cell.Col, cell.Value)
			}
			continue
		}
		if cell.Blank() {
			t.Fatalf("cell (%d, %d) is blank, want populated", cell.Row, cell.Col)
		}
		if want := alphabet[populated%len(alphabet)]; cell.Value != want {
			t.Fatalf("cell (%d, %d) = %q, want %q (row-major order)", cell.Row, cell.Col, cell.Value, want)
		}
		populated++
	}
	if populated != l.PopulatedCells() {
		t.Fatalf("populated = %d, want %d", populated, l.PopulatedCells())
	}
}

func TestBuildShortSheetNeverHitsCutoff(t *testing.T) {
	settings := Settings{
		Geometry:    Geometry{PageWidth: 400, PageHeight: 200, Margin: 10, CellSize: 20},
		MaxColumns:  20,
		ContentRows: 25,
	}
	sampler := &countingSampler{}
	l, err := Build(settings, sampler, testDate)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if l.Rows >= DefaultContentRows {
		t.Fatalf("Rows = %d, want fewer than %d", l.Rows, DefaultContentRows)
	}
	for _, cell := range l.Cells {
		if cell.Blank() {
			t.Fatalf("cell (%d, %d) unexpectedly blank", cell.Row, cell.Col)
		}
	}
	if sampler.calls != l.Rows*l.Cols {
		t.Fatalf("sampler calls = %d, want %d", sampler.calls, l.Rows*l.Cols)
	}
}

func TestBuildHeaders(t *testing.T) {
	l, err := Build(DefaultSettings(), &countingSampler{}, testDate)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(l.ColumnHeaders) != l.Cols || len(l.RowHeaders) != l.Rows {
		t.Fatalf("headers = %d cols, %d rows; want %d, %d", len(l.ColumnHeaders), len(l.RowHeaders), l.Cols, l.Rows)
	}
	for i, h := range l.ColumnHeaders {
		if h.Index != i+1 || h.Label != strconv.Itoa((i+1)%10) {
			t.Fatalf("ColumnHeaders[%d] = %+v", i, h)
		}
	}
	for j, h := range l.RowHeaders {
		if h.Index != j+1 || h.Label != strconv.Itoa((j+1)%10) {
			t.Fatalf("RowHeaders[%d] = %+v", j, h)
		}
	}
	if l.ColumnHeaders[9].Label != "0" || l.ColumnHeaders[10].Label != "1" {
		t.Fatalf("column 10/11 labels = %q/%q, want 0/1", l.ColumnHeaders[9].Label, l.ColumnHeaders[10].Label)
	}
	if l.RowHeaders[29].Label != "0" {
		t.Fatalf("row 30 label = %q, want 0", l.RowHeaders[29].Label)
	}
}

func TestBuildCentersBlock(t *testing.T) {
	settings := DefaultSettings()
	l, err := Build(settings, &countingSampler{}, testDate)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	g := settings.Geometry
	block := l.Block()
	if diff := math.Abs((block.X + block.W/2) - g.PageWidth/2); diff > 1e-9 {
		t.Fatalf("block horizontal center off by %v", diff)
	}
	if diff := math.Abs((block.Y + block.H/2) - g.PageHeight/2); diff > 1e-9 {
		t.Fatalf("block vertical center off by %v", diff)
	}
}

func TestRectsIncreaseTopToBottom(t *testing.T) {
	l, err := Build(DefaultSettings(), &countingSampler{}, testDate)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	size := l.Settings.Geometry.CellSize

	top := l.CellRect(0, 0)
	if top.X != l.OffsetX+size || top.Y != l.OffsetY+size {
		t.Fatalf("CellRect(0, 0) = %+v, want origin one cell inside the block", top)
	}
	if next := l.CellRect(1, 0); next.Y <= top.Y {
		t.Fatalf("CellRect(1, 0).Y = %v, want below %v", next.Y, top.Y)
	}
	if h := l.RowHeaderRect(0); h.Y != top.Y || h.X != l.OffsetX {
		t.Fatalf("RowHeaderRect(0) = %+v, want aligned with row 0", h)
	}
	if h := l.ColumnHeaderRect(3); h.X != l.CellRect(0, 3).X || h.Y != l.OffsetY {
		t.Fatalf("ColumnHeaderRect(3) = %+v, want aligned with column 3", h)
	}
}

func TestBuildCarriesCalendarDate(t *testing.T) {
	l, err := Build(DefaultSettings(), &countingSampler{}, testDate)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := l.DateString(); got != "2026-10-14" {
		t.Fatalf("DateString() = %q, want %q", got, "2026-10-14")
	}
	if h, m, s := l.Date.Clock(); h != 0 || m != 0 || s != 0 {
		t.Fatalf("Date has time of day %02d:%02d:%02d", h, m, s)
	}
}

func TestBuildPropagatesSamplerError(t *testing.T) {
	_, err := Build(DefaultSettings(), &failingSampler{after: 3}, testDate)
	if err == nil || !strings.Contains(err.Error(), "sample cell (0, 3)") {
		t.Fatalf("Build() error = %v, want sampler failure at (0, 3)", err)
	}
}

func TestBuildRequiresSampler(t *testing.T) {
	if _, err := Build(DefaultSettings(), nil, testDate); err == nil {
		t.Fatal("expected error for nil sampler")
	}
}

func TestBuildTwiceSharesShapeNotContent(t *testing.T) {
	sampler, err := charset.NewSampler(charset.DefaultWeights(), nil)
	if err != nil {
		t.Fatalf("NewSampler() error = %v", err)
	}
	first, err := Build(DefaultSettings(), sampler, testDate)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := Build(DefaultSettings(), sampler, testDate)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if first.Dimensions != second.Dimensions || first.OffsetX != second.OffsetX || first.OffsetY != second.OffsetY {
		t.Fatalf("layouts differ in shape: %+v vs %+v", first.Dimensions, second.Dimensions)
	}
	same := true
	for i := range first.Cells {
		if first.Cells[i].Blank() != second.Cells[i].Blank() {
			t.Fatalf("blank pattern differs at %d", i)
		}
		if first.Cells[i].Value != second.Cells[i].Value {
			same = false
		}
		if !first.Cells[i].Blank() && strings.IndexByte(charset.Ambiguous, first.Cells[i].Value) >= 0 {
			t.Fatalf("cell %d = %q, an ambiguous glyph", i, first.Cells[i].Value)
		}
	}
	if same {
		t.Fatal("two independent sheets produced identical characters")
	}
}
