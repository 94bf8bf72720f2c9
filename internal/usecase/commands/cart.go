package commands

import (
	"context"
	"log/slog"

	"vicqa-tradehub/internal/domain/cart"
	"vicqa-tradehub/internal/domain/product"
	"vicqa-tradehub/internal/infra"
	"vicqa-tradehub/internal/pkg/errs"
	"vicqa-tradehub/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrCartLoadFailed  = errs.New("failed to load cart")
)

// CartResult carries the refreshed view plus a non-fatal persistence warning.
// When PersistWarning is set the mutation took effect in memory but the
// write-behind store rejected it, so the cart may drift across restarts.
type CartResult struct {
	View           *queries.CartView
	PersistWarning error
}

type CartCommands interface {
	AddItem(ctx context.Context, token, productID uuid.UUID) (*CartResult, error)
	RemoveItem(ctx context.Context, token, productID uuid.UUID) (*CartResult, error)
	SetQuantity(ctx context.Context, token, productID uuid.UUID, quantity int) (*CartResult, error)
	Clear(ctx context.Context, token uuid.UUID) (*CartResult, error)
}

type cartCommandsImpl struct {
	store       CartStore
	productRepo ProductRepository
}

func NewCartCommands(store CartStore, productRepo ProductRepository) CartCommands {
	return &cartCommandsImpl{
		store:       store,
		productRepo: productRepo,
	}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, token, productID uuid.UUID) (*CartResult, error) {
	// Adding requires a resolvable product; stale references can only enter
	// a cart by the catalog shrinking afterwards.
	if _, err := c.productRepo.FindByID(ctx, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "failed to look up product")
	}

	return c.mutate(ctx, token, func(crt *cart.Cart) {
		crt.Add(productID)
	})
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, token, productID uuid.UUID) (*CartResult, error) {
	return c.mutate(ctx, token, func(crt *cart.Cart) {
		crt.Remove(productID)
	})
}

func (c *cartCommandsImpl) SetQuantity(ctx context.Context, token, productID uuid.UUID, quantity int) (*CartResult, error) {
	return c.mutate(ctx, token, func(crt *cart.Cart) {
		crt.SetQuantity(productID, quantity)
	})
}

func (c *cartCommandsImpl) Clear(ctx context.Context, token uuid.UUID) (*CartResult, error) {
	return c.mutate(ctx, token, func(crt *cart.Cart) {
		crt.Clear()
	})
}

func (c *cartCommandsImpl) mutate(ctx context.Context, token uuid.UUID, fn func(*cart.Cart)) (*CartResult, error) {
	crt, err := c.store.Load(ctx, token)
	if err != nil {
		return nil, errs.Mark(err, ErrCartLoadFailed)
	}

	fn(crt)

	// A failed save is downgraded to a warning: the in-memory state keeps the
	// mutation and the user is told persistence is degraded.
	var warning error
	if saveErr := c.store.Save(ctx, crt); saveErr != nil {
		slog.Warn("cart persistence failed, keeping in-memory state",
			"cart_token", token, "error", saveErr)
		warning = saveErr
	}

	view, err := MaterializeCart(ctx, crt, c.productRepo)
	if err != nil {
		return nil, err
	}

	return &CartResult{View: view, PersistWarning: warning}, nil
}

// materializeLines joins a cart against the live catalog. Unresolvable lines
// are excluded from the result but remain stored.
func materializeLines(ctx context.Context, crt *cart.Cart, productRepo ProductRepository) ([]cart.MaterializedLine, error) {
	lines := crt.Lines()
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}

	catalog := map[uuid.UUID]*product.Product{}
	if len(ids) > 0 {
		var err error
		catalog, err = productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, errs.Wrap(err, "failed to materialize cart")
		}
	}

	return crt.Materialize(catalog), nil
}

func buildCartView(crt *cart.Cart, materialized []cart.MaterializedLine) *queries.CartView {
	view := &queries.CartView{
		Token: crt.Token(),
		Lines: make([]queries.CartLineView, 0, len(materialized)),
	}
	for _, m := range materialized {
		lineTotal := m.Product.Price() * float64(m.Quantity)
		view.Lines = append(view.Lines, queries.CartLineView{
			ProductID: m.Product.ID(),
			Name:      m.Product.Name(),
			Price:     m.Product.Price(),
			ImageURL:  m.Product.ImageURL(),
			Quantity:  m.Quantity,
			LineTotal: lineTotal,
		})
		view.Subtotal += lineTotal
	}
	view.IsEmpty = len(view.Lines) == 0
	return view
}

// MaterializeCart builds the display-ready read model for a cart.
func MaterializeCart(ctx context.Context, crt *cart.Cart, productRepo ProductRepository) (*queries.CartView, error) {
	materialized, err := materializeLines(ctx, crt, productRepo)
	if err != nil {
		return nil, err
	}
	return buildCartView(crt, materialized), nil
}
