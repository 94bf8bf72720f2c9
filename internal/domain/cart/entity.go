package cart

import (
	"errors"

	"vicqa-tradehub/internal/domain/product"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Line is one (product reference, quantity) pair. Quantity is never below 1;
// a decrement under 1 removes the line instead.
type Line struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// Cart is an ordered sequence of lines, at most one per product. Order is
// insertion order and survives quantity updates.
type Cart struct {
	token uuid.UUID
	lines []Line
}

func NewCart(token uuid.UUID) *Cart {
	return &Cart{token: token}
}

func ReconstructCart(token uuid.UUID, lines []Line) *Cart {
	kept := make([]Line, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		if _, dup := seen[l.ProductID]; dup {
			continue
		}
		seen[l.ProductID] = struct{}{}
		kept = append(kept, l)
	}
	return &Cart{token: token, lines: kept}
}

// Add merges into an existing line or appends a new one with quantity 1.
func (c *Cart) Add(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{ProductID: productID, Quantity: 1})
}

// Remove deletes the line if present. Removing an absent product is a no-op,
// not an error.
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the line's quantity. Quantities below 1 behave as
// Remove. Setting a quantity on an absent product is a no-op.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsInCart(productID uuid.UUID) bool {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return true
		}
	}
	return false
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Token() uuid.UUID { return c.token }

// Lines returns a copy of the raw stored lines, including ones that may no
// longer resolve against the catalog.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// MaterializedLine is a display-ready line joined against the live catalog.
type MaterializedLine struct {
	Product  *product.Product
	Quantity int
}

// Materialize joins stored lines against the catalog. Lines whose product no
// longer resolves are excluded from the result but deliberately left in
// storage, matching the persisted-reference semantics.
func (c *Cart) Materialize(catalog map[uuid.UUID]*product.Product) []MaterializedLine {
	out := make([]MaterializedLine, 0, len(c.lines))
	for _, l := range c.lines {
		p, ok := catalog[l.ProductID]
		if !ok {
			continue
		}
		out = append(out, MaterializedLine{Product: p, Quantity: l.Quantity})
	}
	return out
}
