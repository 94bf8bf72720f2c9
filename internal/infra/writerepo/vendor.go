package writerepo

import (
	"context"
	"time"

	"vicqa-tradehub/internal/domain/vendor"
	"vicqa-tradehub/internal/infra"
	"vicqa-tradehub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VendorRepository struct {
	db *pgxpool.Pool
}

func NewVendorRepository(db *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{db: db}
}

const vendorColumns = `id, user_id, name, store_name, status, member_since, updated_at`

func (r *VendorRepository) Create(ctx context.Context, v *vendor.Vendor) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO vendors (id, user_id, name, store_name, status, member_since, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now(), now())`,
		v.ID(), v.UserID(), v.Name(), v.StoreName(), string(v.Status()))
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("vendor already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert vendor", err)
	}
	return nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	return r.findBy(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id)
}

func (r *VendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*vendor.Vendor, error) {
	return r.findBy(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE user_id = $1`, userID)
}

func (r *VendorRepository) findBy(ctx context.Context, query string, arg any) (*vendor.Vendor, error) {
	var (
		id, userID      uuid.UUID
		name, storeName string
		status          string
		memberSince     time.Time
		updatedAt       time.Time
	)
	err := r.db.QueryRow(ctx, query, arg).
		Scan(&id, &userID, &name, &storeName, &status, &memberSince, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vendor", err)
	}
	return vendor.ReconstructVendor(id, userID, name, storeName, vendor.Status(status), memberSince, updatedAt), nil
}

func (r *VendorRepository) UpdateStatus(ctx context.Context, v *vendor.Vendor) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE vendors SET status = $2, updated_at = now() WHERE id = $1`,
		v.ID(), string(v.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to update vendor status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vendor not found", nil, infra.KindNotFound)
	}
	return nil
}
