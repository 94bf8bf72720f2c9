package queries

import (
	"context"

	"github.com/google/uuid"
)

type VendorReadStore interface {
	List(ctx context.Context, status *string) ([]*VendorView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*VendorView, error)
}

type VendorQueries interface {
	ListVendors(ctx context.Context, status *string) ([]*VendorView, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*VendorView, error)
}

type vendorQueriesImpl struct {
	store VendorReadStore
}

func NewVendorQueries(store VendorReadStore) VendorQueries {
	return &vendorQueriesImpl{store: store}
}

func (q *vendorQueriesImpl) ListVendors(ctx context.Context, status *string) ([]*VendorView, error) {
	return q.store.List(ctx, status)
}

func (q *vendorQueriesImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*VendorView, error) {
	return q.store.FindByUserID(ctx, userID)
}
