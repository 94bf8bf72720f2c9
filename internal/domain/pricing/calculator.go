package pricing

import (
	"errors"
	"math"

	"vicqa-tradehub/internal/domain/cart"
)

var (
	ErrNegativeTotal = errors.New("discount drives the payable total below zero")
	ErrUnknownPolicy = errors.New("unknown negative total policy")
)

// NegativeTotalPolicy decides what to do when a fixed discount exceeds
// subtotal plus shipping. The historical behavior passed the negative amount
// straight to the gateway; that is preserved behind PolicyAllow.
type NegativeTotalPolicy string

const (
	PolicyClamp  NegativeTotalPolicy = "clamp"
	PolicyReject NegativeTotalPolicy = "reject"
	PolicyAllow  NegativeTotalPolicy = "allow"
)

func ParsePolicy(s string) (NegativeTotalPolicy, error) {
	switch NegativeTotalPolicy(s) {
	case PolicyClamp, PolicyReject, PolicyAllow:
		return NegativeTotalPolicy(s), nil
	default:
		return "", ErrUnknownPolicy
	}
}

// Quote is the exact (unrounded) breakdown of a payable amount.
// Total == Subtotal + ShippingFee - Discount holds before any policy or
// minor-unit rounding is applied.
type Quote struct {
	Subtotal    float64
	ShippingFee float64
	Discount    float64
	Total       float64
}

// ComputeQuote sums materialized line totals and combines them with the
// selected shipping fee and applied discount. Summation keeps full float
// precision; display rounding happens at the presentation layer and
// minor-unit rounding happens exactly once, in MinorUnits.
func ComputeQuote(lines []cart.MaterializedLine, shippingFee, discount float64) Quote {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Product.Price() * float64(l.Quantity)
	}
	return Quote{
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Discount:    discount,
		Total:       subtotal + shippingFee - discount,
	}
}

// EnforcePolicy applies the configured negative-total policy to a quote.
// PolicyClamp floors the total at zero, PolicyReject refuses the quote, and
// PolicyAllow returns it untouched.
func (q Quote) EnforcePolicy(policy NegativeTotalPolicy) (Quote, error) {
	if q.Total >= 0 {
		return q, nil
	}
	switch policy {
	case PolicyClamp:
		q.Total = 0
		return q, nil
	case PolicyReject:
		return Quote{}, ErrNegativeTotal
	case PolicyAllow:
		return q, nil
	default:
		return Quote{}, ErrUnknownPolicy
	}
}

// MinorUnits converts an amount in major currency units to the gateway's
// integer minor units, rounding once to the nearest unit. Rounding only here
// avoids compounding per-line rounding error.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
