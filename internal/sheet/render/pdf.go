package render

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"

	apperrors "github.com/louisbranch/password-sheet/internal/platform/errors"
	"github.com/louisbranch/password-sheet/internal/sheet/layout"
)

// ContentType is the media type of PDF output.
const ContentType = "application/pdf"

// PDF is a single-page Canvas backed by fpdf.
type PDF struct {
	doc    *fpdf.Fpdf
	closed bool
}

// NewPDF starts a one-page document sized to g. The creation date is pinned
// to date so output metadata matches the printed footer.
func NewPDF(g layout.Geometry, title string, date time.Time) *PDF {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreationDate(date)
	doc.SetModificationDate(date)
	if title != "" {
		doc.SetTitle(title, true)
	}
	doc.AddPage()
	return &PDF{doc: doc}
}

// Rect implements Canvas.
func (p *PDF) Rect(r layout.Rect, style RectStyle) {
	p.doc.SetLineWidth(style.LineWidth)
	p.doc.SetDrawColor(channels(style.Stroke))
	op := "D"
	if style.Fill {
		p.doc.SetFillColor(channels(style.FillColor))
		op = "FD"
	}
	p.doc.Rect(r.X, r.Y, r.W, r.H, op)
}

// Text implements Canvas.
func (p *PDF) Text(x, y float64, text string, font Font, color Color) {
	p.doc.SetFont(font.Family, "", font.Size)
	p.doc.SetTextColor(channels(color))
	p.doc.Text(x, y, text)
}

// StringWidth implements Canvas.
func (p *PDF) StringWidth(text string, font Font) float64 {
	p.doc.SetFont(font.Family, "", font.Size)
	return p.doc.GetStringWidth(text)
}

// Bytes finalizes the document. It may be called once.
func (p *PDF) Bytes() ([]byte, error) {
	if p.closed {
		return nil, apperrors.New(apperrors.CodeSheetRenderFailed, "pdf already finalized")
	}
	p.closed = true

	var buf bytes.Buffer
	if err := p.doc.Output(&buf); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeSheetRenderFailed, "write pdf", err)
	}
	return buf.Bytes(), nil
}

// RenderPDF paints l with theme and returns the finished document.
func RenderPDF(l layout.Layout, theme Theme) ([]byte, error) {
	if len(l.Cells) == 0 {
		return nil, errors.New("layout has no cells")
	}
	p := NewPDF(l.Settings.Geometry, "Password Sheet", l.Date)
	Draw(l, p, theme)
	out, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("render sheet: %w", err)
	}
	return out, nil
}

func channels(c Color) (int, int, int) {
	return channel(c.R), channel(c.G), channel(c.B)
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
