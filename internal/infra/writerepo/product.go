package writerepo

import (
	"context"
	"time"

	"vicqa-tradehub/internal/domain/product"
	"vicqa-tradehub/internal/infra"
	"vicqa-tradehub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, vendor_id, name, description, price, category, image_url, features, created_at, updated_at`

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by id", err)
	}
	return p, nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products by ids", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]*product.Product, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		out[p.ID()] = p
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return out, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (id, vendor_id, name, description, price, category, image_url, features, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`,
		p.ID(), p.VendorID(), p.Name(), p.Description(), p.Price(), p.Category(), p.ImageURL(), p.Features())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("product already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products
		 SET name = $2, description = $3, price = $4, category = $5, image_url = $6, features = $7, updated_at = now()
		 WHERE id = $1`,
		p.ID(), p.Name(), p.Description(), p.Price(), p.Category(), p.ImageURL(), p.Features())
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*product.Product, error) {
	var (
		id, vendorID      uuid.UUID
		name, description string
		price             float64
		category          string
		imageURL          string
		features          []string
		createdAt         time.Time
		updatedAt         time.Time
	)
	if err := row.Scan(&id, &vendorID, &name, &description, &price, &category, &imageURL, &features, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return product.ReconstructProduct(id, vendorID, name, description, price, category, imageURL, features, createdAt, updatedAt), nil
}
