// Package sheet generates printable password sheets.
//
// A Generator draws a fresh layout for every call and renders it to PDF. It
// holds only read-only configuration, so one Generator may serve concurrent
// requests; the random source it reads from must tolerate concurrent reads
// (crypto/rand.Reader does).
package sheet

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/password-sheet/internal/sheet/charset"
	"github.com/louisbranch/password-sheet/internal/sheet/layout"
	"github.com/louisbranch/password-sheet/internal/sheet/render"
)

const tracerName = "github.com/louisbranch/password-sheet/internal/sheet"

// DefaultFilename is the CLI output file name.
const DefaultFilename = "password_sheet.pdf"

// Options configures a Generator. Zero fields fall back to defaults.
type Options struct {
	Settings layout.Settings
	Weights  charset.Weights
	Theme    render.Theme
	// Source supplies randomness; nil uses crypto/rand.
	Source io.Reader
	// Clock supplies the generation date; nil uses time.Now.
	Clock func() time.Time
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Sheet is one generated document.
type Sheet struct {
	Layout layout.Layout
	PDF    []byte
}

// Filename is the download name embedding the generation date.
func (s Sheet) Filename() string {
	return Filename(s.Layout.Date)
}

// Filename returns password_sheet_<YYYY-MM-DD>.pdf for date.
func Filename(date time.Time) string {
	return fmt.Sprintf("password_sheet_%s.pdf", date.Format(layout.DateFormat))
}

// Generator builds sheets from fixed configuration.
type Generator struct {
	settings layout.Settings
	theme    render.Theme
	sampler  *charset.Sampler
	clock    func() time.Time
	tracer   trace.Tracer
}

// NewGenerator validates opts and returns a Generator.
func NewGenerator(opts Options) (*Generator, error) {
	if opts.Settings == (layout.Settings{}) {
		opts.Settings = layout.DefaultSettings()
	}
	if opts.Weights == (charset.Weights{}) {
		opts.Weights = charset.DefaultWeights()
	}
	if opts.Theme == (render.Theme{}) {
		opts.Theme = render.DefaultTheme()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	if _, err := layout.ComputeDimensions(opts.Settings); err != nil {
		return nil, fmt.Errorf("validate geometry: %w", err)
	}
	sampler, err := charset.NewSampler(opts.Weights, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("init sampler: %w", err)
	}

	return &Generator{
		settings: opts.Settings,
		theme:    opts.Theme,
		sampler:  sampler,
		clock:    opts.Clock,
		tracer:   opts.TracerProvider.Tracer(tracerName),
	}, nil
}

// Layout draws a new layout without rendering it.
func (g *Generator) Layout(ctx context.Context) (layout.Layout, error) {
	_, span := g.tracer.Start(ctx, "sheet.Layout")
	defer span.End()

	l, err := layout.Build(g.settings, g.sampler, g.clock())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build layout")
		return layout.Layout{}, fmt.Errorf("build layout: %w", err)
	}
	span.SetAttributes(layoutAttributes(l)...)
	return l, nil
}

// Generate draws a new layout and renders it to PDF.
func (g *Generator) Generate(ctx context.Context) (Sheet, error) {
	ctx, span := g.tracer.Start(ctx, "sheet.Generate")
	defer span.End()

	l, err := g.Layout(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "layout")
		return Sheet{}, err
	}

	pdf, err := render.RenderPDF(l, g.theme)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render")
		return Sheet{}, err
	}

	span.SetAttributes(layoutAttributes(l)...)
	span.SetAttributes(attribute.Int("sheet.pdf_bytes", len(pdf)))
	return Sheet{Layout: l, PDF: pdf}, nil
}

func layoutAttributes(l layout.Layout) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("sheet.cols", l.Cols),
		attribute.Int("sheet.rows", l.Rows),
		attribute.Int("sheet.populated_cells", l.PopulatedCells()),
	}
}
