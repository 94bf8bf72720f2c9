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

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.CatalogQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.CatalogQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary Create product
// @Description Create a listing owned by the calling vendor
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProductRequest true "Product details"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		h.abortProductError(c, err)
		return
	}
	view, err := h.q.GetProduct(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProductView(view))
}

// @Summary Update product
// @Description Update an own listing; ownership is enforced against the calling vendor
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.ProductRequest true "Product details"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), userID, id, req.ToParams()); err != nil {
		h.abortProductError(c, err)
		return
	}
	view, err := h.q.GetProduct(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Delete product
// @Description Delete an own listing (admins can delete any)
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), userID, role, id); err != nil {
		h.abortProductError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) abortProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVendorNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Vendor not found", nil)
	case errors.Is(err, commands.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, commands.ErrNotProductOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Product belongs to another vendor", nil)
	case errors.Is(err, commands.ErrProductInvalid):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product details", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Product operation failed", nil)
	}
}
