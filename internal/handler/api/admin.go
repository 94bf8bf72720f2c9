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

type AdminHandler struct {
	vendorCmds commands.VendorCommands
	vendorQ    queries.VendorQueries
	orderQ     queries.OrderQueries
}

func NewAdminHandler(
	vendorCmds commands.VendorCommands,
	vendorQ queries.VendorQueries,
	orderQ queries.OrderQueries,
) *AdminHandler {
	return &AdminHandler{
		vendorCmds: vendorCmds,
		vendorQ:    vendorQ,
		orderQ:     orderQ,
	}
}

// @Summary List vendors
// @Description List vendor accounts, optionally filtered by moderation status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (active, pending, suspended)"
// @Success 200 {array} resdto.VendorResponse
// @Failure 403 {object} map[string]string
// @Router /admin/vendors [get]
func (h *AdminHandler) ListVendors(c *gin.Context) {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}
	items, err := h.vendorQ.ListVendors(c.Request.Context(), status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list vendors", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": resdto.FromVendorList(items)})
}

// @Summary Set vendor status
// @Description Approve (active) or suspend a vendor account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Param request body reqdto.SetVendorStatusRequest true "Target status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/vendors/{id}/status [put]
func (h *AdminHandler) SetVendorStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.SetVendorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.vendorCmds.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrVendorNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vendor not found", nil)
		case errors.Is(err, commands.ErrVendorInvalid):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id.String(), "status": req.Status})
}

// @Summary List orders
// @Description List every order, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 403 {object} map[string]string
// @Router /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	items, err := h.orderQ.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromOrderList(items)})
}

// @Summary Get order
// @Description Get an order by its gateway reference
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Order reference"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{reference} [get]
func (h *AdminHandler) GetOrder(c *gin.Context) {
	view, err := h.orderQ.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Advance order fulfillment
// @Description Move a paid order one step forward regardless of which vendor it belongs to
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Order reference"
// @Param request body reqdto.AdvanceOrderRequest true "Target status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/orders/{reference}/status [put]
func (h *AdminHandler) AdvanceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	reference := c.Param("reference")
	if err := h.vendorCmds.AdvanceOrder(c.Request.Context(), userID, role, reference, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Invalid fulfillment transition", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"reference": reference, "status": req.Status})
}
