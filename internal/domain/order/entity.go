package order

import (
	"errors"
	"time"

	"vicqa-tradehub/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart           = errors.New("order requires at least one line")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrAlreadyPaid         = errors.New("order is already paid")
	ErrNotPaid             = errors.New("order has not been paid")
	ErrInvalidStatusChange = errors.New("invalid fulfillment transition")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	default:
		return false
	}
}

// fulfillment advances strictly forward once payment has landed
var nextStatus = map[Status]Status{
	StatusPaid:       StatusProcessing,
	StatusProcessing: StatusShipped,
	StatusShipped:    StatusDelivered,
}

// LineSnapshot freezes the product name and price the buyer saw; later
// catalog edits never rewrite history.
type LineSnapshot struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// Order records one checkout attempt. It is created pending alongside the
// gateway init object and marked paid by the webhook.
type Order struct {
	id          uuid.UUID
	reference   string
	cartToken   uuid.UUID
	contact     user.Contact
	address     string
	lines       []LineSnapshot
	subtotal    float64
	shippingFee float64
	discount    float64
	couponCode  string
	total       float64
	amount      int64
	status      Status
	createdAt   time.Time
	paidAt      *time.Time
}

func NewOrder(
	reference string,
	cartToken uuid.UUID,
	contact user.Contact,
	address string,
	lines []LineSnapshot,
	subtotal, shippingFee, discount float64,
	couponCode string,
	total float64,
	amount int64,
) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	return &Order{
		id:          uuid.New(),
		reference:   reference,
		cartToken:   cartToken,
		contact:     contact,
		address:     address,
		lines:       lines,
		subtotal:    subtotal,
		shippingFee: shippingFee,
		discount:    discount,
		couponCode:  couponCode,
		total:       total,
		amount:      amount,
		status:      StatusPending,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	reference string,
	cartToken uuid.UUID,
	contact user.Contact,
	address string,
	lines []LineSnapshot,
	subtotal, shippingFee, discount float64,
	couponCode string,
	total float64,
	amount int64,
	status Status,
	createdAt time.Time,
	paidAt *time.Time,
) *Order {
	return &Order{
		id:          id,
		reference:   reference,
		cartToken:   cartToken,
		contact:     contact,
		address:     address,
		lines:       lines,
		subtotal:    subtotal,
		shippingFee: shippingFee,
		discount:    discount,
		couponCode:  couponCode,
		total:       total,
		amount:      amount,
		status:      status,
		createdAt:   createdAt,
		paidAt:      paidAt,
	}
}

// MarkPaid transitions pending → paid. Paying twice is rejected so webhook
// redelivery cannot double-notify.
func (o *Order) MarkPaid(at time.Time) error {
	if o.status != StatusPending {
		return ErrAlreadyPaid
	}
	o.status = StatusPaid
	o.paidAt = &at
	return nil
}

// AdvanceFulfillment moves paid → processing → shipped → delivered, one step
// at a time.
func (o *Order) AdvanceFulfillment(to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if o.status == StatusPending {
		return ErrNotPaid
	}
	if nextStatus[o.status] != to {
		return ErrInvalidStatusChange
	}
	o.status = to
	return nil
}

func (o *Order) ID() uuid.UUID         { return o.id }
func (o *Order) Reference() string     { return o.reference }
func (o *Order) CartToken() uuid.UUID  { return o.cartToken }
func (o *Order) Contact() user.Contact { return o.contact }
func (o *Order) Address() string       { return o.address }
func (o *Order) Lines() []LineSnapshot { return append([]LineSnapshot(nil), o.lines...) }
func (o *Order) Subtotal() float64     { return o.subtotal }
func (o *Order) ShippingFee() float64  { return o.shippingFee }
func (o *Order) Discount() float64     { return o.discount }
func (o *Order) CouponCode() string    { return o.couponCode }
func (o *Order) Total() float64        { return o.total }
func (o *Order) Amount() int64         { return o.amount }
func (o *Order) Status() Status        { return o.status }
func (o *Order) CreatedAt() time.Time  { return o.createdAt }
func (o *Order) PaidAt() *time.Time    { return o.paidAt }
