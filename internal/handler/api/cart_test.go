//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"vicqa-tradehub/internal/handler/api"
	"vicqa-tradehub/internal/handler/middleware"
	"vicqa-tradehub/internal/infra"
	"vicqa-tradehub/internal/usecase/commands"
	"vicqa-tradehub/internal/usecase/queries"
	"vicqa-tradehub/tests/common/httptest"
	commandsmock "vicqa-tradehub/tests/mock/commands"
	queriesmock "vicqa-tradehub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)

	cart := s.router.Group("/cart", middleware.CartToken())
	cart.GET("", s.handler.Get)
	cart.DELETE("", s.handler.Clear)
	cart.POST("/items", s.handler.AddItem)
	cart.PUT("/items/:id", s.handler.SetQuantity)
	cart.DELETE("/items/:id", s.handler.RemoveItem)
	cart.GET("/quote", s.handler.Quote)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func cartTokenHeader(token uuid.UUID) map[string]string {
	return map[string]string{middleware.CartTokenHeader: token.String()}
}

func emptyCartView(token uuid.UUID) *queries.CartView {
	return &queries.CartView{Token: token, Lines: []queries.CartLineView{}, IsEmpty: true}
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: returns the cart for the presented token", func() {
		token := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), token).Return(emptyCartView(token), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, cartTokenHeader(token))

		s.Equal(http.StatusOK, rec.Code)
		var body map[string]any
		s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal(token.String(), body["token"])
		s.Equal(true, body["is_empty"])
	})

	s.Run("success: mints and echoes a token when none is presented", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, token uuid.UUID) (*queries.CartView, error) {
				return emptyCartView(token), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		issued := rec.Header().Get(middleware.CartTokenHeader)
		s.NotEmpty(issued)
		_, err := uuid.Parse(issued)
		s.NoError(err)
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"
	token := uuid.New()
	productID := uuid.New()

	s.Run("success: returns 200 with the refreshed cart", func() {
		view := &queries.CartView{
			Token: token,
			Lines: []queries.CartLineView{{
				ProductID: productID, Name: "Kente Throw Pillow", Price: 49.99, Quantity: 1, LineTotal: 49.99,
			}},
			Subtotal: 49.99,
		}
		s.mockCommands.EXPECT().AddItem(gomock.Any(), token, productID).
			Return(&commands.CartResult{View: view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"product_id": productID.String()}, cartTokenHeader(token))

		s.Equal(http.StatusOK, rec.Code)
		var body map[string]any
		s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Empty(body["warning"])
		s.InDelta(49.99, body["subtotal"], 1e-9)
	})

	s.Run("success: persistence failure degrades to a warning, not an error", func() {
		result := &commands.CartResult{
			View:           emptyCartView(token),
			PersistWarning: infra.WrapRepoErr("redis down", nil, infra.KindStoreUnavailable),
		}
		s.mockCommands.EXPECT().AddItem(gomock.Any(), token, productID).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"product_id": productID.String()}, cartTokenHeader(token))

		s.Equal(http.StatusOK, rec.Code)
		var body map[string]any
		s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.NotEmpty(body["warning"])
	})

	s.Run("error: 400 Bad Request when product_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{}, cartTokenHeader(token))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown product", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), token, productID).
			Return(nil, commands.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"product_id": productID.String()}, cartTokenHeader(token))
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 503 Service Unavailable when the cart store is down", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), token, productID).
			Return(nil, commands.ErrCartLoadFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"product_id": productID.String()}, cartTokenHeader(token))
		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	token := uuid.New()

	s.Run("error: 400 Bad Request for a malformed product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/cart/items/not-a-uuid", nil, cartTokenHeader(token))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("success: removing an item returns the refreshed cart", func() {
		productID := uuid.New()
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), token, productID).
			Return(&commands.CartResult{View: emptyCartView(token)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/cart/items/"+productID.String(), nil, cartTokenHeader(token))
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestSetQuantity() {
	token := uuid.New()
	productID := uuid.New()

	s.Run("success: quantity zero is accepted and removes the line", func() {
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), token, productID, 0).
			Return(&commands.CartResult{View: emptyCartView(token)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/cart/items/"+productID.String(), map[string]any{"quantity": 0}, cartTokenHeader(token))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for a negative quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/cart/items/"+productID.String(), map[string]any{"quantity": -1}, cartTokenHeader(token))
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestQuote() {
	token := uuid.New()

	s.Run("success: returns the priced quote", func() {
		code := "SAVE10"
		s.mockQueries.EXPECT().Quote(gomock.Any(), token, queries.QuoteParams{
			Region: "Greater Accra", Town: "Accra", CouponCode: &code,
		}).Return(&queries.QuoteView{
			Subtotal: 100, ShippingFee: 11.96, Discount: 10, Total: 101.96, Amount: 10196,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/cart/quote?region=Greater+Accra&town=Accra&coupon=SAVE10", nil, cartTokenHeader(token))

		s.Equal(http.StatusOK, rec.Code)
		var body map[string]any
		s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.InDelta(float64(10196), body["amount"], 1e-9)
	})

	s.Run("error: 400 Bad Request for an unservable destination", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), token, gomock.Any()).
			Return(nil, queries.ErrQuoteDestination)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/cart/quote?region=Atlantis", nil, cartTokenHeader(token))
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
