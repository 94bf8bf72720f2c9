package commands

import (
	"context"

	"vicqa-tradehub/internal/domain/cart"
	"vicqa-tradehub/internal/domain/order"
	"vicqa-tradehub/internal/domain/product"
	"vicqa-tradehub/internal/domain/vendor"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra; commands only
// depend on these interfaces.

// CartStore persists carts after every mutation. Load of an unknown token
// yields an empty cart, never an error. Save failures are reported but the
// in-memory mutation stands; callers surface them as warnings.
type CartStore interface {
	Load(ctx context.Context, token uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, c *cart.Cart) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*product.Product, error)
	Create(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByReference(ctx context.Context, reference string) (*order.Order, error)
	UpdateStatus(ctx context.Context, o *order.Order) error
}

type VendorRepository interface {
	Create(ctx context.Context, v *vendor.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*vendor.Vendor, error)
	UpdateStatus(ctx context.Context, v *vendor.Vendor) error
}

// AdminNotifier relays the new-order summary to the marketplace operator
// (email or SMS gateway, depending on configuration).
type AdminNotifier interface {
	NotifyOrderPaid(ctx context.Context, o *order.Order) error
}
