package api

import (
	"net/http"

	"vicqa-tradehub/internal/domain/shipping"
	resdto "vicqa-tradehub/internal/handler/dto/response"
	"vicqa-tradehub/internal/handler/httperr"
	"vicqa-tradehub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	q     queries.CatalogQueries
	zones *shipping.Resolver
}

func NewCatalogHandler(q queries.CatalogQueries, zones *shipping.Resolver) *CatalogHandler {
	return &CatalogHandler{q: q, zones: zones}
}

// @Summary List products
// @Description List the public catalog, optionally filtered by category or search term
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Search term matched against name and description"
// @Success 200 {array} resdto.ProductResponse
// @Failure 500 {object} map[string]string
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var filter queries.CatalogFilter
	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := c.Query("search"); v != "" {
		filter.Search = &v
	}

	items, err := h.q.ListProducts(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(items)})
}

// @Summary Get product
// @Description Get a single product by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetProduct(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary List shipping zones
// @Description List delivery regions with their fees and served towns
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ZoneResponse
// @Router /shipping-zones [get]
func (h *CatalogHandler) ListZones(c *gin.Context) {
	zones := h.zones.Zones()
	resp := make([]resdto.ZoneResponse, len(zones))
	for i, z := range zones {
		resp[i] = resdto.ZoneResponse{
			Region: z.Region(),
			Fee:    z.Fee(),
			Towns:  z.Towns(),
		}
	}
	c.JSON(http.StatusOK, gin.H{"zones": resp})
}
