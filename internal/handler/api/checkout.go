package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	reqdto "vicqa-tradehub/internal/handler/dto/request"
	resdto "vicqa-tradehub/internal/handler/dto/response"
	"vicqa-tradehub/internal/handler/httperr"
	"vicqa-tradehub/internal/handler/middleware"
	"vicqa-tradehub/internal/infra/paystack"
	"vicqa-tradehub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds     commands.CheckoutCommands
	verifier *paystack.Verifier
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, verifier *paystack.Verifier) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, verifier: verifier}
}

// @Summary Checkout
// @Description Validate contact and destination, price the cart, record a pending order and return the payment popup config
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Cart token (issued if missing)"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	token, ok := middleware.GetCartToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Cart token missing", nil)
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Checkout(c.Request.Context(), token, req.ToParams())
	if err != nil {
		h.abortCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// Webhook receives gateway deliveries. The HMAC signature is checked over
// the raw body before anything is decoded; a bad signature is dropped with
// 401 and never retried against the use case layer.
//
// @Summary Payment webhook
// @Description Gateway event sink; only signed charge.success deliveries have an effect
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Paystack-Signature header string true "HMAC-SHA512 of the raw body"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /webhooks/paystack [post]
func (h *CheckoutHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	if !h.verifier.Verify(body, c.GetHeader(paystack.SignatureHeader)) {
		slog.Warn("webhook signature verification failed", "client_ip", c.ClientIP())
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("invalid signature"), "Invalid signature", nil)
		return
	}

	var event commands.GatewayEvent
	if err := json.Unmarshal(body, &event); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", nil)
		return
	}

	if err := h.cmds.HandleGatewayEvent(c.Request.Context(), event); err != nil {
		// Non-nil means a transient store failure; ask the gateway to retry.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Event processing failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *CheckoutHandler) abortCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEmptyCart):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cart is empty", nil)
	case errors.Is(err, commands.ErrNameRequired),
		errors.Is(err, commands.ErrInvalidEmail),
		errors.Is(err, commands.ErrPhoneRequired),
		errors.Is(err, commands.ErrRegionRequired),
		errors.Is(err, commands.ErrRegionUnknown),
		errors.Is(err, commands.ErrTownInvalid):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrCouponRejected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Coupon code was rejected", nil)
	case errors.Is(err, commands.ErrNegativeTotal):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Discount exceeds the payable total", nil)
	case errors.Is(err, commands.ErrCartLoadFailed):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Cart store unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
	}
}
