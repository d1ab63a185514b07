package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/avatargen/internal/avatar/color"
	"github.com/louisbranch/avatargen/internal/avatar/grapheme"
	"github.com/louisbranch/avatargen/internal/avatar/options"
	"github.com/louisbranch/avatargen/internal/avatar/render"
	"github.com/louisbranch/avatargen/internal/platform/timeouts"
	"github.com/louisbranch/avatargen/internal/random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	cacheControlImmutable = "public, max-age=31536000, immutable"
	cacheControlNoCache   = "no-cache"

	allowedMethods = "GET, HEAD"
	upPath         = "/up"

	tracerName = "github.com/louisbranch/avatargen/internal/services/avatar/app"
	spanName   = "avatar.render"
)

// Config defines the inputs for the avatar HTTP boundary.
type Config struct {
	HTTPAddr string
	// PathPrefix carries avatar text; empty means options.DefaultPrefix.
	PathPrefix string
	// Extractor segments avatar text; nil means grapheme.Default.
	Extractor         grapheme.Extractor
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Server hosts the avatar HTTP process.
type Server struct {
	httpAddr        string
	shutdownTimeout time.Duration
	httpServer      *http.Server
}

// avatarHandler answers every path with an image. Each request draws its
// colors from a fresh source, so nothing is shared between requests.
type avatarHandler struct {
	parser    options.Parser
	renderer  render.Renderer
	extractor grapheme.Extractor
	newSource func() color.Source
	tracer    trace.Tracer
}

// NewHandler creates the avatar routes with crypto-seeded colors and the
// global tracer provider.
func NewHandler(config Config) http.Handler {
	return newHandler(config, newRandomSource, otel.Tracer(tracerName))
}

func newRandomSource() color.Source {
	return random.NewRand()
}

func newHandler(config Config, newSource func() color.Source, tracer trace.Tracer) http.Handler {
	extractor := config.Extractor
	if extractor == nil {
		extractor = grapheme.Default
	}
	avatars := &avatarHandler{
		parser:    options.Parser{Prefix: config.PathPrefix, Extractor: extractor},
		renderer:  render.Renderer{Extractor: extractor},
		extractor: extractor,
		newSource: newSource,
		tracer:    tracer,
	}

	// Paths are dispatched without ServeMux so "//" and ".." in avatar text
	// are rendered instead of redirected to a cleaned path.
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == upPath {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
			return
		}
		avatars.ServeHTTP(w, r)
	})
}

func (h *avatarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", allowedMethods)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	_, span := h.tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	result := h.parser.Parse(r.URL.EscapedPath(), r.URL.Query())
	spec := result.Spec
	spec.Color1, spec.Color2 = color.Gradient(h.newSource())
	body := h.renderer.Render(spec)

	span.SetAttributes(
		attribute.Int("avatar.size", spec.Size),
		attribute.String("avatar.shape", string(spec.Shape)),
		attribute.Int("avatar.graphemes", h.extractor.Count(spec.Text)),
		attribute.Bool("avatar.root", result.Root),
	)

	header := w.Header()
	header.Set("Content-Type", render.ContentType)
	if result.Root {
		header.Set("Cache-Control", cacheControlNoCache)
	} else {
		header.Set("Cache-Control", cacheControlImmutable)
	}
	header.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		log.Printf("avatar: write response failed path=%q remote=%s err=%v", r.URL.Path, r.RemoteAddr, err)
	}
}

// NewServer builds a configured avatar server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.ReadHeaderTimeout <= 0 {
		config.ReadHeaderTimeout = timeouts.ReadHeader
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = timeouts.Shutdown
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(config),
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}
	return &Server{
		httpAddr:        httpAddr,
		shutdownTimeout: config.ShutdownTimeout,
		httpServer:      httpServer,
	}, nil
}

// Run creates and serves an avatar server until the context ends.
func Run(ctx context.Context, config Config) error {
	server, err := NewServer(config)
	if err != nil {
		return fmt.Errorf("init avatar server: %w", err)
	}
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve avatar: %w", err)
	}
	return nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("avatar server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("avatar server listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
