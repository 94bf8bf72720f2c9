package writerepo

import (
	"context"
	"encoding/json"
	"time"

	"vicqa-tradehub/internal/domain/order"
	"vicqa-tradehub/internal/domain/user"
	"vicqa-tradehub/internal/infra"
	"vicqa-tradehub/internal/pkg/errs"
	"vicqa-tradehub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	lines, err := json.Marshal(o.Lines())
	if err != nil {
		return errs.Wrap(err, "failed to encode order lines")
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO orders (
			id, reference, cart_token, customer_name, email, phone, address,
			lines, subtotal, shipping_fee, discount, coupon_code, total, amount,
			status, created_at, paid_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), NULL)`,
		o.ID(), o.Reference(), o.CartToken(),
		o.Contact().Name(), o.Contact().Email().Value(), o.Contact().Phone(), o.Address(),
		lines, o.Subtotal(), o.ShippingFee(), o.Discount(), o.CouponCode(), o.Total(), o.Amount(),
		string(o.Status()))
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("order reference already used", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert order", err)
	}
	return nil
}

func (r *OrderRepository) FindByReference(ctx context.Context, reference string) (*order.Order, error) {
	var (
		id, cartToken           uuid.UUID
		ref, name, email, phone string
		address, couponCode     string
		linesJSON               []byte
		subtotal, shipping      float64
		discount, total         float64
		amount                  int64
		status                  string
		createdAt               time.Time
		paidAt                  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, reference, cart_token, customer_name, email, phone, address,
		        lines, subtotal, shipping_fee, discount, coupon_code, total, amount,
		        status, created_at, paid_at
		 FROM orders WHERE reference = $1`, reference).
		Scan(&id, &ref, &cartToken, &name, &email, &phone, &address,
			&linesJSON, &subtotal, &shipping, &discount, &couponCode, &total, &amount,
			&status, &createdAt, &paidAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by reference", err)
	}

	var lines []order.LineSnapshot
	if err := json.Unmarshal(linesJSON, &lines); err != nil {
		return nil, infra.WrapRepoErr("failed to decode order lines", err)
	}
	contact, err := user.NewContact(name, email, phone)
	if err != nil {
		return nil, infra.WrapRepoErr("stored order has invalid contact", err)
	}

	return order.ReconstructOrder(
		id, ref, cartToken, contact, address, lines,
		subtotal, shipping, discount, couponCode, total, amount,
		order.Status(status), createdAt, pgconv.TimePtrFromPgtype(paidAt),
	), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $2, paid_at = $3 WHERE id = $1`,
		o.ID(), string(o.Status()), pgconv.TimePtrToPgtype(o.PaidAt()))
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
