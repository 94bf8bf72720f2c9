package readstore

import (
	"context"
	"encoding/json"

	"vicqa-tradehub/internal/domain/order"
	"vicqa-tradehub/internal/infra"
	"vicqa-tradehub/internal/pkg/pgconv"
	"vicqa-tradehub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderReadStore struct {
	db *pgxpool.Pool
}

func NewOrderReadStore(db *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{db: db}
}

const orderViewSelect = `
	SELECT id, reference, customer_name, email, phone, address, lines,
	       subtotal, shipping_fee, discount, coupon_code, total, amount,
	       status, created_at, paid_at
	FROM orders`

func (s *OrderReadStore) FindByReference(ctx context.Context, reference string) (*queries.OrderView, error) {
	row := s.db.QueryRow(ctx, orderViewSelect+` WHERE reference = $1`, reference)

	v, err := scanOrderView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return v, nil
}

func (s *OrderReadStore) List(ctx context.Context) ([]*queries.OrderView, error) {
	rows, err := s.db.Query(ctx, orderViewSelect+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	return collectOrderViews(rows)
}

// ListByVendor returns orders containing at least one line for a product of
// the vendor. Line items live in a jsonb column, so membership is tested by
// unnesting the snapshot array against the products table.
func (s *OrderReadStore) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*queries.OrderView, error) {
	rows, err := s.db.Query(ctx, orderViewSelect+`
		WHERE EXISTS (
			SELECT 1
			FROM jsonb_array_elements(lines) AS line
			JOIN products p ON p.id = (line->>'productId')::uuid
			WHERE p.vendor_id = $1
		)
		ORDER BY created_at DESC`, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendor orders", err)
	}
	defer rows.Close()

	return collectOrderViews(rows)
}

func collectOrderViews(rows pgx.Rows) ([]*queries.OrderView, error) {
	views := make([]*queries.OrderView, 0)
	for rows.Next() {
		v, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}
	return views, nil
}

func scanOrderView(row pgx.Row) (*queries.OrderView, error) {
	var (
		v          queries.OrderView
		linesJSON  []byte
		couponCode string
		paidAt     pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Reference, &v.Customer, &v.Email, &v.Phone, &v.Address, &linesJSON,
		&v.Subtotal, &v.ShippingFee, &v.Discount, &couponCode, &v.Total, &v.Amount,
		&v.Status, &v.CreatedAt, &paidAt)
	if err != nil {
		return nil, err
	}

	// stored snapshots use the popup metadata field names, not the view tags
	var snapshots []order.LineSnapshot
	if err := json.Unmarshal(linesJSON, &snapshots); err != nil {
		return nil, err
	}
	v.Lines = make([]queries.OrderLineView, 0, len(snapshots))
	for _, line := range snapshots {
		v.Lines = append(v.Lines, queries.OrderLineView{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	if couponCode != "" {
		v.CouponCode = &couponCode
	}
	v.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	return &v, nil
}
