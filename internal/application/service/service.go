package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TemirB/catalog-sync/internal/catalog"
	"github.com/TemirB/catalog-sync/internal/datastore"
	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/observability"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type POSCatalog interface {
	FindVariationByBarcode(ctx context.Context, barcode string) (*catalog.Variation, error)
}

type StorefrontCatalog interface {
	FindVariantByBarcode(ctx context.Context, barcode string) (datastore.VariantRef, error)
}

type SyncRecords interface {
	FindByBarcodes(ctx context.Context, barcodes []string) ([]*domain.SyncProduct, error)
	ApplyUpdates(ctx context.Context, id uuid.UUID, updates map[string]any) error
}

// Match is everything known about one barcode. Any part may be missing.
type Match struct {
	Barcode    string
	POS        *catalog.Variation
	Storefront *datastore.VariantRef
	Sync       *domain.SyncProduct
}

// Linked reports whether the barcode exists on both sides.
func (m *Match) Linked() bool { return m.POS != nil && m.Storefront != nil }

type Service struct {
	pos        POSCatalog
	storefront StorefrontCatalog
	records    SyncRecords
	logger     *zap.Logger
	metrics    observability.Metrics
}

func NewService(pos POSCatalog, storefront StorefrontCatalog, records SyncRecords, logger *zap.Logger, metrics observability.Metrics) *Service {
	return &Service{
		pos:        pos,
		storefront: storefront,
		records:    records,
		logger:     logger,
		metrics:    metrics,
	}
}

func (s *Service) Lookup(ctx context.Context, barcode string) (*Match, error) {
	m, _, err := s.LookupWithStats(ctx, barcode)
	return m, err
}

// LookupWithStats resolves barcode in the POS catalog, the storefront catalog
// and the sync records. A source that does not know the barcode is skipped;
// any other failure aborts the lookup.
func (s *Service) LookupWithStats(ctx context.Context, barcode string) (*Match, LookupStats, error) {
	var st LookupStats
	m := &Match{Barcode: barcode}

	t0 := time.Now()
	v, err := s.pos.FindVariationByBarcode(ctx, barcode)
	st.POSMs = convertToMs(t0)
	switch {
	case err == nil:
		m.POS = v
	case !errors.Is(err, domain.ErrNotFound):
		s.logger.Error("pos lookup failed", zap.String("barcode", barcode), zap.Error(err))
		return nil, st, fmt.Errorf("pos lookup: %w", err)
	}

	t0 = time.Now()
	ref, err := s.storefront.FindVariantByBarcode(ctx, barcode)
	st.StorefrontMs = convertToMs(t0)
	switch {
	case err == nil:
		m.Storefront = &ref
	case !errors.Is(err, domain.ErrNotFound):
		s.logger.Error("storefront lookup failed", zap.String("barcode", barcode), zap.Error(err))
		return nil, st, fmt.Errorf("storefront lookup: %w", err)
	}

	t0 = time.Now()
	records, err := s.records.FindByBarcodes(ctx, []string{barcode})
	st.DBMs = convertToMs(t0)
	if err != nil {
		s.logger.Error("sync record lookup failed", zap.String("barcode", barcode), zap.Error(err))
		return nil, st, fmt.Errorf("sync lookup: %w", err)
	}
	if len(records) > 0 {
		m.Sync = records[0]
	}

	s.metrics.ObserveLookup(string(SourcePOS), st.POSMs)
	s.metrics.ObserveLookup(string(SourceStorefront), st.StorefrontMs)
	s.metrics.ObserveLookup(string(SourceDB), st.DBMs)

	if m.POS == nil && m.Storefront == nil && m.Sync == nil {
		return nil, st, fmt.Errorf("barcode %q: %w", barcode, domain.ErrNotFound)
	}

	s.logger.Info("barcode resolved",
		zap.String("barcode", barcode),
		zap.Bool("pos", m.POS != nil),
		zap.Bool("storefront", m.Storefront != nil),
		zap.Bool("sync", m.Sync != nil),
		zap.Float64("pos_ms", st.POSMs),
		zap.Float64("storefront_ms", st.StorefrontMs),
		zap.Float64("db_ms", st.DBMs),
	)
	return m, st, nil
}

// Link records on the sync record of barcode which POS and storefront
// products carry it and marks the record synced.
func (s *Service) Link(ctx context.Context, barcode string) (*Match, error) {
	m, err := s.Lookup(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if m.Sync == nil {
		return nil, fmt.Errorf("sync record for %q: %w", barcode, domain.ErrNotFound)
	}
	if !m.Linked() {
		return nil, &domain.ValidationError{
			Operation:  "link",
			UserErrors: []domain.UserError{{Field: []string{"barcode"}, Message: "not present in both catalogs"}},
		}
	}

	updates := map[string]any{
		"artooId":   m.POS.Product().ID(),
		"shopifyId": m.Storefront.Product.ID,
		"synced":    true,
	}
	if err := s.records.ApplyUpdates(ctx, m.Sync.ID, updates); err != nil {
		s.logger.Error("link failed", zap.String("barcode", barcode), zap.Stringer("sync_id", m.Sync.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("barcode linked",
		zap.String("barcode", barcode),
		zap.String("artoo_id", m.POS.Product().ID()),
		zap.String("shopify_id", m.Storefront.Product.ID),
	)
	return m, nil
}
