package coupon

import (
	"errors"
	"strings"
)

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrEmptyCode      = errors.New("coupon code is required")
)

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

// Coupon is a static table entry. Codes are matched case-insensitively;
// the canonical form is upper case.
type Coupon struct {
	code  string
	kind  Kind
	value float64
}

func NewCoupon(code string, kind Kind, value float64) (Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Coupon{}, ErrEmptyCode
	}
	if kind != KindPercentage && kind != KindFixed {
		return Coupon{}, errors.New("coupon kind must be percentage or fixed")
	}
	if value < 0 {
		return Coupon{}, errors.New("coupon value cannot be negative")
	}
	return Coupon{code: code, kind: kind, value: value}, nil
}

func (c Coupon) Code() string   { return c.code }
func (c Coupon) Kind() Kind     { return c.kind }
func (c Coupon) Value() float64 { return c.value }

// DiscountFor computes the discount amount for a subtotal. Fixed coupons are
// not clamped here; whether a discount may exceed the subtotal is a checkout
// policy decision, not a table property.
func (c Coupon) DiscountFor(subtotal float64) float64 {
	if c.kind == KindPercentage {
		return subtotal * c.value / 100.0
	}
	return c.value
}

// Table is the static process-wide coupon configuration. It is never mutated
// after construction.
type Table struct {
	byCode map[string]Coupon
}

func NewTable(coupons []Coupon) *Table {
	byCode := make(map[string]Coupon, len(coupons))
	for _, c := range coupons {
		byCode[c.code] = c
	}
	return &Table{byCode: byCode}
}

// Resolve looks a code up case-insensitively.
func (t *Table) Resolve(code string) (Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Coupon{}, ErrEmptyCode
	}
	c, ok := t.byCode[normalized]
	if !ok {
		return Coupon{}, ErrCouponNotFound
	}
	return c, nil
}

// Applied pairs a discount amount with the code that produced it. The two
// fields always change together: applying a new code replaces both, and a
// rejected code clears both.
type Applied struct {
	Code     string
	Discount float64
}

// Apply resolves a code against the table and computes the discount for the
// given subtotal. On rejection the zero Applied is returned so any previously
// applied discount is dropped atomically with the failed lookup.
func (t *Table) Apply(code string, subtotal float64) (Applied, error) {
	c, err := t.Resolve(code)
	if err != nil {
		return Applied{}, err
	}
	return Applied{Code: c.Code(), Discount: c.DiscountFor(subtotal)}, nil
}
