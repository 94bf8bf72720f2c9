package api

import (
	"errors"
	"net/http"

	reqdto "vicqa-tradehub/internal/handler/dto/request"
	resdto "vicqa-tradehub/internal/handler/dto/response"
	"vicqa-tradehub/internal/handler/httperr"
	"vicqa-tradehub/internal/handler/middleware"
	"vicqa-tradehub/internal/usecase/commands"
	"vicqa-tradehub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Get the cart for the X-Cart-Token header, materialized against the live catalog
// @Tags cart
// @Produce json
// @Param X-Cart-Token header string false "Cart token (issued if missing)"
// @Success 200 {object} resdto.CartResponse
// @Failure 500 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	token, ok := middleware.GetCartToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Cart token missing", nil)
		return
	}
	view, err := h.q.Get(c.Request.Context(), token)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add one unit of a product; an existing line increments instead
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Cart token (issued if missing)"
// @Param request body reqdto.AddCartItemRequest true "Product to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	token, ok := middleware.GetCartToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Cart token missing", nil)
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AddItem(c.Request.Context(), token, req.ProductID)
	if err != nil {
		h.abortCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Remove cart item
// @Description Remove a product line; removing an absent product is a no-op
// @Tags cart
// @Produce json
// @Param X-Cart-Token header string false "Cart token (issued if missing)"
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	token, productID, ok := h.tokenAndProduct(c)
	if !ok {
		return
	}
	result, err := h.cmds.RemoveItem(c.Request.Context(), token, productID)
	if err != nil {
		h.abortCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Set line quantity
// @Description Set a line's quantity; values below 1 remove the line
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Cart token (issued if missing)"
// @Param id path string true "Product ID"
// @Param request body reqdto.SetCartQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	token, productID, ok := h.tokenAndProduct(c)
	if !ok {
		return
	}
	var req reqdto.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SetQuantity(c.Request.Context(), token, productID, req.Quantity)
	if err != nil {
		h.abortCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Clear cart
// @Description Remove every line from the cart
// @Tags cart
// @Produce json
// @Param X-Cart-Token header string false "Cart token (issued if missing)"
// @Success 200 {object} resdto.CartResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	token, ok := middleware.GetCartToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Cart token missing", nil)
		return
	}
	result, err := h.cmds.Clear(c.Request.Context(), token)
	if err != nil {
		h.abortCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Quote order total
// @Description Preview subtotal, shipping, discount and payable amount for the current cart
// @Tags cart
// @Produce json
// @Param X-Cart-Token header string false "Cart token (issued if missing)"
// @Param region query string false "Delivery region"
// @Param town query string false "Delivery town"
// @Param coupon query string false "Coupon code"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Router /cart/quote [get]
func (h *CartHandler) Quote(c *gin.Context) {
	token, ok := middleware.GetCartToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Cart token missing", nil)
		return
	}
	var req reqdto.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.Quote(c.Request.Context(), token, queries.QuoteParams{
		Region:     req.Region,
		Town:       req.Town,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrTownWithoutRegion), errors.Is(err, queries.ErrQuoteDestination):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid destination", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to quote", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

func (h *CartHandler) tokenAndProduct(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	token, ok := middleware.GetCartToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Cart token missing", nil)
		return uuid.Nil, uuid.Nil, false
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return token, productID, true
}

func (h *CartHandler) abortCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, commands.ErrCartLoadFailed):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Cart store unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cart operation failed", nil)
	}
}
