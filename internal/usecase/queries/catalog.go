package queries

import (
	"context"

	"github.com/google/uuid"
)

type CatalogFilter struct {
	Category *string
	Search   *string
}

// ProductReadStore is the read-side port. The public listing already excludes
// products of non-active vendors at the SQL level.
type ProductReadStore interface {
	List(ctx context.Context, filter CatalogFilter) ([]*ProductView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*ProductView, error)
}

type CatalogQueries interface {
	ListProducts(ctx context.Context, filter CatalogFilter) ([]*ProductView, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListVendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*ProductView, error)
}

type catalogQueriesImpl struct {
	store ProductReadStore
}

func NewCatalogQueries(store ProductReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, filter CatalogFilter) ([]*ProductView, error) {
	return q.store.List(ctx, filter)
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *catalogQueriesImpl) ListVendorProducts(ctx context.Context, vendorID uuid.UUID) ([]*ProductView, error) {
	return q.store.ListByVendor(ctx, vendorID)
}
