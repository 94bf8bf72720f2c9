package commands

import (
	"context"

	"vicqa-tradehub/internal/domain/product"
	"vicqa-tradehub/internal/domain/user"
	"vicqa-tradehub/internal/infra"
	"vicqa-tradehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVendorNotFound     = errs.New("vendor not found")
	ErrNotProductOwner    = errs.New("product belongs to another vendor")
	ErrProductInvalid     = errs.New("product validation failed")
	ErrProductWriteFailed = errs.New("failed to write product")
)

type ProductParams struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	Features    []string
}

type ProductCommands interface {
	Create(ctx context.Context, actorUserID uuid.UUID, params ProductParams) (uuid.UUID, error)
	Update(ctx context.Context, actorUserID uuid.UUID, productID uuid.UUID, params ProductParams) error
	Delete(ctx context.Context, actorUserID uuid.UUID, actorRole user.Role, productID uuid.UUID) error
}

type productCommandsImpl struct {
	productRepo ProductRepository
	vendorRepo  VendorRepository
}

func NewProductCommands(productRepo ProductRepository, vendorRepo VendorRepository) ProductCommands {
	return &productCommandsImpl{
		productRepo: productRepo,
		vendorRepo:  vendorRepo,
	}
}

func (p *productCommandsImpl) Create(ctx context.Context, actorUserID uuid.UUID, params ProductParams) (uuid.UUID, error) {
	vnd, err := p.vendorRepo.FindByUserID(ctx, actorUserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrVendorNotFound
		}
		return uuid.Nil, errs.Wrap(err, "failed to look up vendor")
	}

	prod, err := product.NewProduct(
		vnd.ID(),
		params.Name, params.Description,
		params.Price,
		params.Category, params.ImageURL,
		params.Features,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrProductInvalid)
	}

	if err := p.productRepo.Create(ctx, prod); err != nil {
		return uuid.Nil, errs.Mark(err, ErrProductWriteFailed)
	}
	return prod.ID(), nil
}

func (p *productCommandsImpl) Update(ctx context.Context, actorUserID uuid.UUID, productID uuid.UUID, params ProductParams) error {
	vnd, err := p.vendorRepo.FindByUserID(ctx, actorUserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVendorNotFound
		}
		return errs.Wrap(err, "failed to look up vendor")
	}

	existing, err := p.productRepo.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Wrap(err, "failed to look up product")
	}
	if !existing.IsOwnedBy(vnd.ID()) {
		return ErrNotProductOwner
	}

	updated, err := product.NewProduct(
		vnd.ID(),
		params.Name, params.Description,
		params.Price,
		params.Category, params.ImageURL,
		params.Features,
	)
	if err != nil {
		return errs.Mark(err, ErrProductInvalid)
	}
	updated = product.ReconstructProduct(
		existing.ID(), vnd.ID(),
		updated.Name(), updated.Description(),
		updated.Price(),
		updated.Category(), updated.ImageURL(),
		updated.Features(),
		existing.CreatedAt(), existing.UpdatedAt(),
	)

	if err := p.productRepo.Update(ctx, updated); err != nil {
		return errs.Mark(err, ErrProductWriteFailed)
	}
	return nil
}

// Delete removes a listing. Vendors may delete their own products; admins may
// delete anything (moderation path).
func (p *productCommandsImpl) Delete(ctx context.Context, actorUserID uuid.UUID, actorRole user.Role, productID uuid.UUID) error {
	existing, err := p.productRepo.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Wrap(err, "failed to look up product")
	}

	if actorRole != user.RoleAdmin {
		vnd, err := p.vendorRepo.FindByUserID(ctx, actorUserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVendorNotFound
			}
			return errs.Wrap(err, "failed to look up vendor")
		}
		if !existing.IsOwnedBy(vnd.ID()) {
			return ErrNotProductOwner
		}
	}

	if err := p.productRepo.Delete(ctx, productID); err != nil {
		return errs.Mark(err, ErrProductWriteFailed)
	}
	return nil
}
