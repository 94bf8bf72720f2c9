package readstore

import (
	"context"
	"strconv"

	"vicqa-tradehub/internal/domain/vendor"
	"vicqa-tradehub/internal/infra"
	"vicqa-tradehub/internal/pkg/pgconv"
	"vicqa-tradehub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductReadStore struct {
	db *pgxpool.Pool
}

func NewProductReadStore(db *pgxpool.Pool) *ProductReadStore {
	return &ProductReadStore{db: db}
}

const productViewSelect = `
	SELECT p.id, p.vendor_id, v.store_name, p.name, p.description, p.price,
	       p.category, p.image_url, p.features, p.created_at, p.updated_at
	FROM products p
	JOIN vendors v ON v.id = p.vendor_id`

// List returns the public catalog. Listings of pending or suspended vendors
// are filtered out here rather than in application code.
func (s *ProductReadStore) List(ctx context.Context, filter queries.CatalogFilter) ([]*queries.ProductView, error) {
	query := productViewSelect + ` WHERE v.status = $1`
	args := []any{string(vendor.StatusActive)}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += ` AND p.category = $` + strconv.Itoa(len(args))
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		ph := `$` + strconv.Itoa(len(args))
		query += ` AND (p.name ILIKE ` + ph + ` OR p.description ILIKE ` + ph + `)`
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	return collectProductViews(rows)
}

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row := s.db.QueryRow(ctx, productViewSelect+` WHERE p.id = $1`, id)

	v, err := scanProductView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return v, nil
}

func (s *ProductReadStore) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*queries.ProductView, error) {
	rows, err := s.db.Query(ctx,
		productViewSelect+` WHERE p.vendor_id = $1 ORDER BY p.created_at DESC`, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendor products", err)
	}
	defer rows.Close()

	return collectProductViews(rows)
}

func collectProductViews(rows pgx.Rows) ([]*queries.ProductView, error) {
	views := make([]*queries.ProductView, 0)
	for rows.Next() {
		v, err := scanProductView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return views, nil
}

func scanProductView(row pgx.Row) (*queries.ProductView, error) {
	var v queries.ProductView
	err := row.Scan(&v.ID, &v.VendorID, &v.StoreName, &v.Name, &v.Description, &v.Price,
		&v.Category, &v.ImageURL, &v.Features, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
