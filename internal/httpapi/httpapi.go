package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/application/service"
	"github.com/TemirB/catalog-sync/internal/catalog"
	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type CrossReference interface {
	LookupWithStats(ctx context.Context, barcode string) (*service.Match, service.LookupStats, error)
	Link(ctx context.Context, barcode string) (*service.Match, error)
}

type POSCatalog interface {
	FindAllProducts(ctx context.Context) ([]catalog.Product, error)
	FindProductByID(ctx context.Context, id string) (catalog.Product, error)
	FindCategoriesByProduct(ctx context.Context, p catalog.Product) ([]*catalog.Category, error)
	RootCategories(ctx context.Context) ([]*catalog.Category, error)
}

type StorefrontCatalog interface {
	FindAllProducts(ctx context.Context) ([]*domain.Product, error)
	FindProductByID(ctx context.Context, id string) (*domain.Product, error)
}

type Refresher interface {
	RefreshAndAwait(ctx context.Context) error
}

type Server struct {
	xref       CrossReference
	pos        POSCatalog
	storefront StorefrontCatalog
	refresh    map[string]Refresher
	logger     *zap.Logger
	metrics    observability.Metrics
	router     chi.Router
}

func New(xref CrossReference, pos POSCatalog, storefront StorefrontCatalog, refresh map[string]Refresher, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		xref:       xref,
		pos:        pos,
		storefront: storefront,
		refresh:    refresh,
		logger:     logger,
		metrics:    metrics,
		router:     chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID, middleware.Recoverer, ObserveRequests(s.metrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Get("/metrics", s.getMetrics)

	r.Route("/products", func(r chi.Router) {
		r.Get("/pos", s.listPOSProducts)
		r.Get("/pos/{id}", s.getPOSProduct)
		r.Get("/storefront", s.listStorefrontProducts)
		r.Get("/storefront/*", s.getStorefrontProduct)
	})
	r.Get("/categories", s.listCategories)

	r.Get("/barcodes/{barcode}", s.lookupBarcode)
	r.Post("/barcodes/{barcode}/link", s.linkBarcode)

	r.Post("/refresh/{catalog}", s.refreshCatalog)
}

func (s *Server) listPOSProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := s.pos.FindAllProducts(r.Context())
	if err != nil {
		s.fail(w, "list pos products", err)
		return
	}
	out := make([]posProductView, 0, len(ps))
	for _, p := range ps {
		out = append(out, newPOSProductView(p, nil))
	}
	writeJSON(w, out)
}

func (s *Server) getPOSProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.pos.FindProductByID(r.Context(), id)
	if err != nil {
		s.fail(w, "get pos product", err)
		return
	}
	path, err := s.pos.FindCategoriesByProduct(r.Context(), p)
	if err != nil {
		s.fail(w, "get pos product categories", err)
		return
	}
	writeJSON(w, newPOSProductView(p, path))
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	roots, err := s.pos.RootCategories(r.Context())
	if err != nil {
		s.fail(w, "list categories", err)
		return
	}
	out := make([]categoryView, 0, len(roots))
	for _, c := range roots {
		out = append(out, newCategoryView(c))
	}
	writeJSON(w, out)
}

func (s *Server) listStorefrontProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := s.storefront.FindAllProducts(r.Context())
	if err != nil {
		s.fail(w, "list storefront products", err)
		return
	}
	out := make([]storefrontProductView, 0, len(ps))
	for _, p := range ps {
		out = append(out, newStorefrontProductView(p))
	}
	writeJSON(w, out)
}

// Storefront ids are GIDs and contain slashes, hence the wildcard route.
func (s *Server) getStorefrontProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "*")
	if id == "" {
		http.Error(w, "product id required", http.StatusBadRequest)
		return
	}
	p, err := s.storefront.FindProductByID(r.Context(), id)
	if err != nil {
		s.fail(w, "get storefront product", err)
		return
	}
	writeJSON(w, newStorefrontProductView(p))
}

func (s *Server) lookupBarcode(w http.ResponseWriter, r *http.Request) {
	barcode := strings.TrimSpace(chi.URLParam(r, "barcode"))
	m, st, err := s.xref.LookupWithStats(r.Context(), barcode)

	observability.AppendServerTiming(w, "pos", st.POSMs, "")
	observability.AppendServerTiming(w, "storefront", st.StorefrontMs, "")
	observability.AppendServerTiming(w, "db", st.DBMs, "")
	observability.SetIfPos(w, "X-DB-Time", st.DBMs)

	if err != nil {
		s.fail(w, "lookup barcode", err)
		return
	}
	writeJSON(w, newMatchView(m))
}

func (s *Server) linkBarcode(w http.ResponseWriter, r *http.Request) {
	barcode := strings.TrimSpace(chi.URLParam(r, "barcode"))
	m, err := s.xref.Link(r.Context(), barcode)
	if err != nil {
		s.fail(w, "link barcode", err)
		return
	}
	writeJSON(w, newMatchView(m))
}

func (s *Server) refreshCatalog(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "catalog")

	var targets []string
	switch {
	case name == domain.CatalogAll:
		targets = []string{domain.CatalogPOS, domain.CatalogStorefront}
	case s.refresh[name] != nil:
		targets = []string{name}
	default:
		http.Error(w, "unknown catalog", http.StatusNotFound)
		return
	}

	for _, t := range targets {
		store, ok := s.refresh[t]
		if !ok {
			continue
		}
		start := time.Now()
		if err := store.RefreshAndAwait(r.Context()); err != nil {
			s.logger.Error("manual refresh failed", zap.String("catalog", t), zap.Error(err))
			http.Error(w, "refresh failed", http.StatusBadGateway)
			return
		}
		observability.AppendServerTiming(w, t, float64(time.Since(start).Microseconds())/1000.0, "")
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getMetrics(w http.ResponseWriter, _ *http.Request) {
	snap, ok := s.metrics.(interface{ Snapshot() observability.Snapshot })
	if !ok {
		http.Error(w, "metrics not recorded", http.StatusNotFound)
		return
	}
	writeJSON(w, snap.Snapshot())
}

// fail maps store and service errors to a status. Remote failures surface
// as 502: the mirror could not be loaded and no earlier snapshot exists.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "request cancelled", http.StatusGatewayTimeout)
	default:
		s.logger.Error(op, zap.Error(err))
		http.Error(w, "upstream error", http.StatusBadGateway)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// ListenAndServe serves until ctx is done, then drains in-flight requests
// for up to grace.
func (s *Server) ListenAndServe(ctx context.Context, addr string, grace time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Handler() http.Handler { return s.router }
