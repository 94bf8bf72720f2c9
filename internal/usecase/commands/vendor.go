package commands

import (
	"context"

	"vicqa-tradehub/internal/domain/order"
	"vicqa-tradehub/internal/domain/user"
	"vicqa-tradehub/internal/domain/vendor"
	"vicqa-tradehub/internal/infra"
	"vicqa-tradehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVendorExists      = errs.New("vendor already registered for this user")
	ErrVendorInvalid     = errs.New("vendor validation failed")
	ErrVendorWriteFailed = errs.New("failed to write vendor")
	ErrOrderNotFound     = errs.New("order not found")
	ErrNotOrderVendor    = errs.New("order contains no products of this vendor")
	ErrInvalidTransition = errs.New("invalid fulfillment transition")
)

type RegisterVendorParams struct {
	Name      string
	StoreName string
}

type VendorCommands interface {
	Register(ctx context.Context, userID uuid.UUID, params RegisterVendorParams) (uuid.UUID, error)
	SetStatus(ctx context.Context, vendorID uuid.UUID, status string) error
	AdvanceOrder(ctx context.Context, actorUserID uuid.UUID, actorRole user.Role, reference string, status string) error
}

type vendorCommandsImpl struct {
	vendorRepo  VendorRepository
	orderRepo   OrderRepository
	productRepo ProductRepository
}

func NewVendorCommands(vendorRepo VendorRepository, orderRepo OrderRepository, productRepo ProductRepository) VendorCommands {
	return &vendorCommandsImpl{
		vendorRepo:  vendorRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Register creates a pending vendor account. Approval is an admin action.
func (v *vendorCommandsImpl) Register(ctx context.Context, userID uuid.UUID, params RegisterVendorParams) (uuid.UUID, error) {
	if _, err := v.vendorRepo.FindByUserID(ctx, userID); err == nil {
		return uuid.Nil, ErrVendorExists
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, errs.Wrap(err, "failed to look up vendor")
	}

	vnd, err := vendor.NewVendor(userID, params.Name, params.StoreName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrVendorInvalid)
	}

	if err := v.vendorRepo.Create(ctx, vnd); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrVendorExists
		}
		return uuid.Nil, errs.Mark(err, ErrVendorWriteFailed)
	}
	return vnd.ID(), nil
}

// SetStatus is the admin moderation switch: approve (active) or suspend.
func (v *vendorCommandsImpl) SetStatus(ctx context.Context, vendorID uuid.UUID, status string) error {
	parsed, err := vendor.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrVendorInvalid)
	}

	vnd, err := v.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVendorNotFound
		}
		return errs.Wrap(err, "failed to look up vendor")
	}

	if err := vnd.SetStatus(parsed); err != nil {
		return errs.Mark(err, ErrVendorInvalid)
	}

	if err := v.vendorRepo.UpdateStatus(ctx, vnd); err != nil {
		return errs.Mark(err, ErrVendorWriteFailed)
	}
	return nil
}

// AdvanceOrder moves a paid order one step along the fulfillment chain.
// Vendors may only advance orders that carry at least one of their own
// products; admins may advance any order.
func (v *vendorCommandsImpl) AdvanceOrder(ctx context.Context, actorUserID uuid.UUID, actorRole user.Role, reference string, status string) error {
	to := order.Status(status)

	ord, err := v.orderRepo.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Wrap(err, "failed to look up order")
	}

	if actorRole != user.RoleAdmin {
		if err := v.checkOrderVendor(ctx, actorUserID, ord); err != nil {
			return err
		}
	}

	if err := ord.AdvanceFulfillment(to); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	if err := v.orderRepo.UpdateStatus(ctx, ord); err != nil {
		return errs.Wrap(err, "failed to update order status")
	}
	return nil
}

// checkOrderVendor resolves the acting user's vendor account and refuses the
// order unless one of its line snapshots points at a product that vendor owns.
// Lines whose product has since been deleted cannot prove ownership.
func (v *vendorCommandsImpl) checkOrderVendor(ctx context.Context, actorUserID uuid.UUID, ord *order.Order) error {
	vnd, err := v.vendorRepo.FindByUserID(ctx, actorUserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVendorNotFound
		}
		return errs.Wrap(err, "failed to look up vendor")
	}

	ids := make([]uuid.UUID, 0, len(ord.Lines()))
	for _, line := range ord.Lines() {
		ids = append(ids, line.ProductID)
	}

	products, err := v.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errs.Wrap(err, "failed to look up order products")
	}
	for _, p := range products {
		if p.IsOwnedBy(vnd.ID()) {
			return nil
		}
	}
	return ErrNotOrderVendor
}
