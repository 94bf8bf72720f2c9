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
)

type VendorHandler struct {
	cmds        commands.VendorCommands
	productCmds commands.ProductCommands
	q           queries.VendorQueries
	catalogQ    queries.CatalogQueries
	orderQ      queries.OrderQueries
}

func NewVendorHandler(
	cmds commands.VendorCommands,
	productCmds commands.ProductCommands,
	q queries.VendorQueries,
	catalogQ queries.CatalogQueries,
	orderQ queries.OrderQueries,
) *VendorHandler {
	return &VendorHandler{
		cmds:        cmds,
		productCmds: productCmds,
		q:           q,
		catalogQ:    catalogQ,
		orderQ:      orderQ,
	}
}

// @Summary Register vendor
// @Description Register the authenticated user as a vendor; the account starts pending until an admin approves it
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterVendorRequest true "Vendor registration"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vendors [post]
func (h *VendorHandler) Register(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Register(c.Request.Context(), userID, commands.RegisterVendorParams{
		Name:      req.Name,
		StoreName: req.StoreName,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVendorExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vendor already registered", nil)
		case errors.Is(err, commands.ErrVendorInvalid):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vendor details", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Registration failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String(), "status": "pending"})
}

// @Summary Get own vendor profile
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VendorResponse
// @Failure 404 {object} map[string]string
// @Router /vendors/me [get]
func (h *VendorHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.q.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVendorView(view))
}

// @Summary List own products
// @Description List the calling vendor's products regardless of moderation status
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ProductResponse
// @Failure 404 {object} map[string]string
// @Router /vendors/me/products [get]
func (h *VendorHandler) MyProducts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	vnd, err := h.q.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Vendor not found", nil)
		return
	}
	items, err := h.catalogQ.ListVendorProducts(c.Request.Context(), vnd.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(items)})
}

// @Summary List own orders
// @Description List orders containing at least one of the calling vendor's products
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /vendors/me/orders [get]
func (h *VendorHandler) MyOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	vnd, err := h.q.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Vendor not found", nil)
		return
	}
	items, err := h.orderQ.ListForVendor(c.Request.Context(), vnd.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromOrderList(items)})
}

// @Summary Advance order fulfillment
// @Description Move a paid order one step forward (processing, shipped, delivered); only orders carrying one of the caller's products
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Order reference"
// @Param request body reqdto.AdvanceOrderRequest true "Target status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vendors/me/orders/{reference}/status [put]
func (h *VendorHandler) AdvanceOrder(c *gin.Context) {
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
	if err := h.cmds.AdvanceOrder(c.Request.Context(), userID, role, reference, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, commands.ErrVendorNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vendor not found", nil)
		case errors.Is(err, commands.ErrNotOrderVendor):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Order belongs to another vendor", nil)
		case errors.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Invalid fulfillment transition", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"reference": reference, "status": req.Status})
}
