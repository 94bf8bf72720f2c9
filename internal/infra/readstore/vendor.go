package readstore

import (
	"context"

	"vicqa-tradehub/internal/infra"
	"vicqa-tradehub/internal/pkg/pgconv"
	"vicqa-tradehub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VendorReadStore struct {
	db *pgxpool.Pool
}

func NewVendorReadStore(db *pgxpool.Pool) *VendorReadStore {
	return &VendorReadStore{db: db}
}

const vendorViewSelect = `
	SELECT id, user_id, name, store_name, status, member_since
	FROM vendors`

func (s *VendorReadStore) List(ctx context.Context, status *string) ([]*queries.VendorView, error) {
	query := vendorViewSelect
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY member_since DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendors", err)
	}
	defer rows.Close()

	views := make([]*queries.VendorView, 0)
	for rows.Next() {
		v, err := scanVendorView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vendor row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vendor rows", err)
	}
	return views, nil
}

func (s *VendorReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.VendorView, error) {
	row := s.db.QueryRow(ctx, vendorViewSelect+` WHERE user_id = $1`, userID)

	v, err := scanVendorView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vendor", err)
	}
	return v, nil
}

func scanVendorView(row pgx.Row) (*queries.VendorView, error) {
	var v queries.VendorView
	err := row.Scan(&v.ID, &v.UserID, &v.Name, &v.StoreName, &v.Status, &v.MemberSince)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
