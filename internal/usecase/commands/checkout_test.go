//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vicqa-tradehub/internal/domain/cart"
	"vicqa-tradehub/internal/domain/order"
	"vicqa-tradehub/internal/domain/pricing"
	"vicqa-tradehub/internal/domain/product"
	"vicqa-tradehub/internal/domain/user"
	"vicqa-tradehub/internal/infra/staticdata"
	"vicqa-tradehub/internal/pkg/clock"
	"vicqa-tradehub/internal/pkg/config"
	"vicqa-tradehub/internal/pkg/errs"
	"vicqa-tradehub/internal/usecase/commands"
	"vicqa-tradehub/tests/common/builder"
	commandsmock "vicqa-tradehub/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	store    *commandsmock.MockCartStore
	products *commandsmock.MockProductRepository
	orders   *commandsmock.MockOrderRepository
	notifier *commandsmock.MockAdminNotifier
	clock    *clock.MockClock
	commands commands.CheckoutCommands
}

func newCheckoutFixture(t *testing.T, policy pricing.NegativeTotalPolicy) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &checkoutFixture{
		store:    commandsmock.NewMockCartStore(ctrl),
		products: commandsmock.NewMockProductRepository(ctrl),
		orders:   commandsmock.NewMockOrderRepository(ctrl),
		notifier: commandsmock.NewMockAdminNotifier(ctrl),
		clock:    clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.commands = commands.NewCheckoutCommands(
		f.store,
		f.products,
		f.orders,
		staticdata.DefaultZones(),
		staticdata.DefaultCoupons(),
		f.notifier,
		policy,
		config.PaystackConfig{PublicKey: "pk_test_abc", SecretKey: "sk_test_abc", Currency: "GHS"},
		f.clock,
	)
	return f
}

func validParams() commands.CheckoutParams {
	return commands.CheckoutParams{
		Name:   "Abena Serwaa",
		Email:  "abena@example.com",
		Phone:  "+233209998877",
		Region: "Greater Accra",
		Town:   "Accra",
	}
}

func stockCart(f *checkoutFixture, token uuid.UUID, items ...*product.Product) {
	lines := make([]cart.Line, 0, len(items))
	catalog := make(map[uuid.UUID]*product.Product, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, p := range items {
		lines = append(lines, cart.Line{ProductID: p.ID(), Quantity: 1})
		catalog[p.ID()] = p
		ids = append(ids, p.ID())
	}
	f.store.EXPECT().Load(gomock.Any(), token).Return(cart.ReconstructCart(token, lines), nil)
	f.products.EXPECT().FindByIDs(gomock.Any(), ids).Return(catalog, nil)
}

func TestCheckoutCommands_Checkout(t *testing.T) {
	t.Run("creates a pending order and returns the popup config", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		token := uuid.New()
		p := builder.NewProductBuilder().WithName("Bolga Basket").WithPrice(120.00).BuildReconstructed()
		stockCart(f, token, p)

		var created *order.Order
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *order.Order) error {
				created = o
				return nil
			})

		result, err := f.commands.Checkout(context.Background(), token, validParams())
		require.NoError(t, err)

		// 120.00 + Greater Accra fee 11.96
		assert.InDelta(t, 120.00, result.Quote.Subtotal, 1e-9)
		assert.InDelta(t, 131.96, result.Quote.Total, 1e-9)
		assert.Equal(t, int64(13196), result.Amount)
		assert.Equal(t, result.Reference, result.Popup.Reference)
		assert.Equal(t, "pk_test_abc", result.Popup.PublicKey)
		assert.Equal(t, "GHS", result.Popup.Currency)

		require.NotNil(t, created)
		assert.Equal(t, result.Reference, created.Reference())
		assert.Equal(t, order.StatusPending, created.Status())
		assert.Equal(t, token, created.CartToken())
		assert.Equal(t, "Accra, Greater Accra", created.Address())
		assert.Equal(t, int64(13196), created.Amount())
	})

	t.Run("applies a percentage coupon to the subtotal only", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		token := uuid.New()
		p := builder.NewProductBuilder().WithPrice(100.00).BuildReconstructed()
		stockCart(f, token, p)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		params := validParams()
		code := "SAVE10"
		params.CouponCode = &code

		result, err := f.commands.Checkout(context.Background(), token, params)
		require.NoError(t, err)

		assert.InDelta(t, 10.00, result.Quote.Discount, 1e-9)
		assert.InDelta(t, 101.96, result.Quote.Total, 1e-9)
	})

	t.Run("empty cart cannot check out", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		token := uuid.New()
		f.store.EXPECT().Load(gomock.Any(), token).Return(cart.NewCart(token), nil)

		_, err := f.commands.Checkout(context.Background(), token, validParams())
		assert.ErrorIs(t, err, commands.ErrEmptyCart)
	})

	t.Run("unknown coupon is rejected", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		token := uuid.New()
		p := builder.NewProductBuilder().BuildReconstructed()
		stockCart(f, token, p)

		params := validParams()
		code := "NOSUCHCODE"
		params.CouponCode = &code

		_, err := f.commands.Checkout(context.Background(), token, params)
		assert.ErrorIs(t, err, commands.ErrCouponRejected)
	})

	t.Run("empty coupon code checks out as no coupon", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		token := uuid.New()
		p := builder.NewProductBuilder().WithPrice(100.00).BuildReconstructed()
		stockCart(f, token, p)

		var created *order.Order
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *order.Order) error {
				created = o
				return nil
			})

		params := validParams()
		code := ""
		params.CouponCode = &code

		result, err := f.commands.Checkout(context.Background(), token, params)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, result.Quote.Discount, 1e-9)
		assert.InDelta(t, 111.96, result.Quote.Total, 1e-9)
		require.NotNil(t, created)
		assert.Equal(t, "", created.CouponCode())
	})

	t.Run("town outside the selected region is rejected", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		token := uuid.New()
		p := builder.NewProductBuilder().BuildReconstructed()
		stockCart(f, token, p)

		params := validParams()
		params.Town = "Kumasi"

		_, err := f.commands.Checkout(context.Background(), token, params)
		assert.ErrorIs(t, err, commands.ErrTownInvalid)
	})

	t.Run("reject policy refuses a discount larger than the total", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyReject)
		token := uuid.New()
		// GHS20OFF exceeds a 5.00 subtotal even with shipping
		p := builder.NewProductBuilder().WithPrice(5.00).BuildReconstructed()
		stockCart(f, token, p)

		params := validParams()
		params.Region = "Central"
		params.Town = "Cape Coast"
		code := "GHS20OFF"
		params.CouponCode = &code

		_, err := f.commands.Checkout(context.Background(), token, params)
		assert.ErrorIs(t, err, commands.ErrNegativeTotal)
	})

	t.Run("clamp policy floors the same order at zero", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		token := uuid.New()
		p := builder.NewProductBuilder().WithPrice(5.00).BuildReconstructed()
		stockCart(f, token, p)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		params := validParams()
		params.Region = "Central"
		params.Town = "Cape Coast"
		code := "GHS20OFF"
		params.CouponCode = &code

		result, err := f.commands.Checkout(context.Background(), token, params)
		require.NoError(t, err)

		assert.Equal(t, 0.0, result.Quote.Total)
		assert.Equal(t, int64(0), result.Amount)
	})

	t.Run("missing contact fields map to field errors", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		token := uuid.New()
		p := builder.NewProductBuilder().BuildReconstructed()
		stockCart(f, token, p)

		params := validParams()
		params.Email = "not-an-email"

		_, err := f.commands.Checkout(context.Background(), token, params)
		assert.ErrorIs(t, err, commands.ErrInvalidEmail)
	})
}

func paidFixtureOrder(t *testing.T, token uuid.UUID, status order.Status) *order.Order {
	t.Helper()
	contact, err := user.NewContact("Abena Serwaa", "abena@example.com", "+233209998877")
	require.NoError(t, err)

	var paidAt *time.Time
	if status != order.StatusPending {
		at := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
		paidAt = &at
	}
	return order.ReconstructOrder(
		uuid.New(),
		"ref-"+uuid.NewString(),
		token,
		contact,
		"Accra, Greater Accra",
		[]order.LineSnapshot{{ProductID: uuid.New(), Name: "Bolga Basket", Quantity: 1, Price: 120.00}},
		120.00, 11.96, 0, "", 131.96, 13196,
		status,
		time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		paidAt,
	)
}

func TestCheckoutCommands_HandleGatewayEvent(t *testing.T) {
	t.Run("ignores everything except charge.success", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)

		err := f.commands.HandleGatewayEvent(context.Background(), commands.GatewayEvent{Event: "charge.failed"})
		assert.NoError(t, err)
	})

	t.Run("marks the order paid, clears the cart and notifies the admin", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		token := uuid.New()
		ord := paidFixtureOrder(t, token, order.StatusPending)

		f.orders.EXPECT().FindByReference(gomock.Any(), ord.Reference()).Return(ord, nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), ord).Return(nil)
		f.store.EXPECT().Load(gomock.Any(), token).
			Return(cart.ReconstructCart(token, []cart.Line{{ProductID: uuid.New(), Quantity: 1}}), nil)
		f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *cart.Cart) error {
				assert.Empty(t, c.Lines())
				return nil
			})
		f.notifier.EXPECT().NotifyOrderPaid(gomock.Any(), ord).Return(nil)

		err := f.commands.HandleGatewayEvent(context.Background(), commands.GatewayEvent{
			Event: "charge.success",
			Data:  commands.GatewayEventData{Reference: ord.Reference(), Amount: ord.Amount()},
		})
		require.NoError(t, err)

		assert.Equal(t, order.StatusPaid, ord.Status())
		require.NotNil(t, ord.PaidAt())
		assert.Equal(t, f.clock.Now(), *ord.PaidAt())
	})

	t.Run("unknown reference is acknowledged so the gateway stops retrying", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		f.orders.EXPECT().FindByReference(gomock.Any(), "missing-ref").
			Return(nil, errs.New("not found"))

		err := f.commands.HandleGatewayEvent(context.Background(), commands.GatewayEvent{
			Event: "charge.success",
			Data:  commands.GatewayEventData{Reference: "missing-ref"},
		})
		assert.NoError(t, err)
	})

	t.Run("replayed delivery is acknowledged without a second update", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		ord := paidFixtureOrder(t, uuid.New(), order.StatusPaid)

		f.orders.EXPECT().FindByReference(gomock.Any(), ord.Reference()).Return(ord, nil)

		err := f.commands.HandleGatewayEvent(context.Background(), commands.GatewayEvent{
			Event: "charge.success",
			Data:  commands.GatewayEventData{Reference: ord.Reference()},
		})
		assert.NoError(t, err)
	})

	t.Run("notification failure does not bounce the webhook", func(t *testing.T) {
		f := newCheckoutFixture(t, pricing.PolicyClamp)
		token := uuid.New()
		ord := paidFixtureOrder(t, token, order.StatusPending)

		f.orders.EXPECT().FindByReference(gomock.Any(), ord.Reference()).Return(ord, nil)
		f.orders.EXPECT().UpdateStatus(gomock.Any(), ord).Return(nil)
		f.store.EXPECT().Load(gomock.Any(), token).Return(cart.NewCart(token), nil)
		f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().NotifyOrderPaid(gomock.Any(), ord).Return(errs.New("smtp timeout"))

		err := f.commands.HandleGatewayEvent(context.Background(), commands.GatewayEvent{
			Event: "charge.success",
			Data:  commands.GatewayEventData{Reference: ord.Reference()},
		})
		assert.NoError(t, err)
	})
}
