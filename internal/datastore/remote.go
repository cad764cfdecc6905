package datastore

import (
	"context"

	"github.com/TemirB/catalog-sync/internal/domain"
	"github.com/TemirB/catalog-sync/internal/pkg/paging"
	"github.com/TemirB/catalog-sync/internal/storefront"
)

//go:generate mockgen -source internal/datastore/remote.go -destination=internal/datastore/datastore_mock_test.go -package=datastore

// POSRemote is the POS API as seen by the store.
type POSRemote interface {
	ListGroups(ctx context.Context, page int) ([]*domain.Group, error)
	ListItems(ctx context.Context, page int, name string) ([]*domain.Item, error)
	CreateItem(ctx context.Context, it domain.UnsavedItem) (*domain.Item, error)
	UpdateItem(ctx context.Context, id int, it domain.UnsavedItem) (*domain.Item, error)
	DeleteItem(ctx context.Context, id int) error
	CreateGroup(ctx context.Context, g domain.UnsavedGroup) (*domain.Group, error)
	UpdateGroup(ctx context.Context, id int, g domain.UnsavedGroup) (*domain.Group, error)
	DeleteGroup(ctx context.Context, id int) error
}

// StorefrontRemote is the storefront API as seen by the store.
type StorefrontRemote interface {
	ListProducts(ctx context.Context, cursor string) ([]*domain.Product, paging.PageInfo, error)
	CreateProduct(ctx context.Context, p domain.UnsavedProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, p domain.UnsavedProduct) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	CreateVariants(ctx context.Context, productID string, vs []domain.UnsavedVariant, strategy storefront.CreateStrategy, locationID string) ([]*domain.Variant, error)
	UpdateVariants(ctx context.Context, productID string, vs []*domain.Variant) ([]*domain.Variant, error)
	DeleteVariants(ctx context.Context, productID string, ids []string) error
	DeleteMetafields(ctx context.Context, refs []storefront.MetafieldRef) error
	PrimaryLocation(ctx context.Context) (storefront.Location, error)
}
