package database

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/TemirB/catalog-sync/internal/config"
	"github.com/TemirB/catalog-sync/internal/domain"
)

// querier is the part of pgxpool.Pool the repository uses.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// updatable maps the keys accepted by ApplyUpdates to their columns.
var updatable = map[string]string{
	"artooId":   "artoo_id",
	"shopifyId": "shopify_id",
	"vendor":    "vendor",
	"type":      "type",
	"tags":      "tags",
	"synced":    "synced",
}

const productColumns = `p.id, p.artoo_id, p.shopify_id, p.vendor, p.type, p.tags, p.synced, p.updated_at`

// SyncRepo stores the links between POS and storefront products.
type SyncRepo struct {
	db     querier
	tables config.Tables
}

var _ domain.SyncRepository = (*SyncRepo)(nil)

func NewSyncRepo(db querier, t config.Tables) *SyncRepo { return &SyncRepo{db: db, tables: t} }

func (r *SyncRepo) qt(tbl string) string { return fmt.Sprintf(`"%s"."%s"`, r.tables.Schema, tbl) }

func (r *SyncRepo) FindByArtooID(ctx context.Context, artooID string) (*domain.SyncProduct, error) {
	return r.findOne(ctx, "p.artoo_id = $1", artooID)
}

func (r *SyncRepo) FindByShopifyID(ctx context.Context, shopifyID string) (*domain.SyncProduct, error) {
	return r.findOne(ctx, "p.shopify_id = $1", shopifyID)
}

// FindByBarcodes returns every product owning a variant with one of barcodes.
func (r *SyncRepo) FindByBarcodes(ctx context.Context, barcodes []string) ([]*domain.SyncProduct, error) {
	if len(barcodes) == 0 {
		return nil, nil
	}
	return r.findMany(ctx, fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s p JOIN %s v ON v.product_id = p.id
		WHERE v.barcode = ANY($1)
		ORDER BY p.updated_at DESC
	`, productColumns, r.qt(r.tables.SyncProduct), r.qt(r.tables.SyncVariant)), barcodes)
}

func (r *SyncRepo) FindSynced(ctx context.Context) ([]*domain.SyncProduct, error) {
	return r.findMany(ctx, fmt.Sprintf(`
		SELECT %s FROM %s p WHERE p.synced ORDER BY p.updated_at DESC
	`, productColumns, r.qt(r.tables.SyncProduct)))
}

// ApplyUpdates sets the given fields of one product. Keys are the record
// field names (artooId, shopifyId, vendor, type, tags, synced).
func (r *SyncRepo) ApplyUpdates(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	sql, args, err := r.updateStatement(id, updates)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update sync product %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sync product %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// updateStatement builds the UPDATE for ApplyUpdates with columns in a
// stable order.
func (r *SyncRepo) updateStatement(id uuid.UUID, updates map[string]any) (string, []any, error) {
	if len(updates) == 0 {
		return "", nil, &domain.ValidationError{
			Operation:  "apply sync updates",
			UserErrors: []domain.UserError{{Message: "no fields to update"}},
		}
	}

	keys := make([]string, 0, len(updates))
	var unknown []domain.UserError
	for k := range updates {
		if _, ok := updatable[k]; !ok {
			unknown = append(unknown, domain.UserError{Field: []string{k}, Message: "not updatable"})
			continue
		}
		keys = append(keys, k)
	}
	if len(unknown) > 0 {
		slices.SortFunc(unknown, func(a, b domain.UserError) int { return strings.Compare(a.Field[0], b.Field[0]) })
		return "", nil, &domain.ValidationError{Operation: "apply sync updates", UserErrors: unknown}
	}
	slices.Sort(keys)

	sets := make([]string, 0, len(keys)+1)
	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		sets = append(sets, fmt.Sprintf("%s = $%d", updatable[k], i+1))
		args = append(args, updates[k])
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id.String())

	sql := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`,
		r.qt(r.tables.SyncProduct), strings.Join(sets, ", "), len(args))
	return sql, args, nil
}

func (r *SyncRepo) findOne(ctx context.Context, where string, arg any) (*domain.SyncProduct, error) {
	ps, err := r.findMany(ctx, fmt.Sprintf(`
		SELECT %s FROM %s p WHERE %s LIMIT 1
	`, productColumns, r.qt(r.tables.SyncProduct), where), arg)
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, fmt.Errorf("sync product %v: %w", arg, domain.ErrNotFound)
	}
	return ps[0], nil
}

func (r *SyncRepo) findMany(ctx context.Context, sql string, args ...any) ([]*domain.SyncProduct, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		out  []*domain.SyncProduct
		byID = make(map[uuid.UUID]*domain.SyncProduct)
	)
	for rows.Next() {
		var p domain.SyncProduct
		if err := rows.Scan(&p.ID, &p.ArtooID, &p.ShopifyID, &p.Vendor, &p.Type, &p.Tags, &p.Synced, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	if err := r.loadVariants(ctx, byID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SyncRepo) loadVariants(ctx context.Context, byID map[uuid.UUID]*domain.SyncProduct) error {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id.String())
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT id, product_id, barcode FROM %s
		WHERE product_id = ANY($1::uuid[])
		ORDER BY barcode
	`, r.qt(r.tables.SyncVariant)), ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.SyncVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Barcode); err != nil {
			return err
		}
		if p, ok := byID[v.ProductID]; ok {
			p.Variants = append(p.Variants, v)
		}
	}
	return rows.Err()
}
