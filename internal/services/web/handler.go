package web

import (
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/password-sheet/internal/platform/errors"
	"github.com/louisbranch/password-sheet/internal/platform/i18n"
	"github.com/louisbranch/password-sheet/internal/sheet/render"
)

const tracerName = "github.com/louisbranch/password-sheet/internal/services/web"

// Route paths.
const (
	RouteIndex    = "/"
	RouteGenerate = "/api/generate"
	RouteHealth   = "/healthz"
)

type handler struct {
	config    Config
	generator Generator
	tracer    trace.Tracer
}

// NewHandler creates the HTTP handler for the sheet routes.
func NewHandler(config Config, generator Generator) http.Handler {
	h := &handler{
		config:    config,
		generator: generator,
		tracer:    otel.Tracer(tracerName),
	}

	mux := http.NewServeMux()
	mux.Handle(RouteIndex, h.traced("GET /", getOnly(h.handleIndex)))
	mux.Handle(RouteGenerate, h.traced("GET /api/generate", getOnly(h.handleGenerate)))
	mux.HandleFunc(RouteHealth, getOnly(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	return mux
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != RouteIndex {
		http.NotFound(w, r)
		return
	}
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	page := InfoPage(PageParams{
		Lang:          tag.String(),
		Loc:           i18n.Printer(tag),
		DownloadURL:   RouteGenerate,
		RepositoryURL: h.config.RepositoryURL,
	})
	templ.Handler(page).ServeHTTP(w, r)
}

func (h *handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, err := h.generator.Generate(ctx)
	if err != nil {
		status := apperrors.HTTPStatus(err)
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate sheet")
		log.Printf("generate sheet: %v", err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	header := w.Header()
	header.Set("Content-Type", render.ContentType)
	header.Set("Content-Disposition", "attachment; filename="+s.Filename())
	header.Set("Content-Length", strconv.Itoa(len(s.PDF)))
	header.Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(s.PDF); err != nil {
		log.Printf("write sheet: %v", err)
	}
}

// traced wraps next in a server span continuing any incoming trace context.
func (h *handler) traced(name string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := h.tracer.Start(ctx, name,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(r.Method),
				semconv.URLPath(r.URL.Path),
			),
		)
		defer span.End()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r.WithContext(ctx))
		span.SetAttributes(attribute.Int("http.response.status_code", rec.status))
	})
}

func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
