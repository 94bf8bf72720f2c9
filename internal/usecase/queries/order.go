package queries

import (
	"context"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByReference(ctx context.Context, reference string) (*OrderView, error)
	List(ctx context.Context) ([]*OrderView, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*OrderView, error)
}

type OrderQueries interface {
	GetByReference(ctx context.Context, reference string) (*OrderView, error)
	ListAll(ctx context.Context) ([]*OrderView, error)
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByReference(ctx context.Context, reference string) (*OrderView, error) {
	return q.store.FindByReference(ctx, reference)
}

func (q *orderQueriesImpl) ListAll(ctx context.Context) ([]*OrderView, error) {
	return q.store.List(ctx)
}

func (q *orderQueriesImpl) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]*OrderView, error) {
	return q.store.ListByVendor(ctx, vendorID)
}
