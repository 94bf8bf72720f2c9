package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vicqa-tradehub/internal/domain/user"
	"vicqa-tradehub/internal/handler/api"
	"vicqa-tradehub/internal/handler/middleware"
	"vicqa-tradehub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	productHandler *api.ProductHandler,
	vendorHandler *api.VendorHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, cartHandler, checkoutHandler, productHandler, vendorHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	productHandler *api.ProductHandler,
	vendorHandler *api.VendorHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: catalogHandler.ListProducts},
			{Method: http.MethodGet, Path: "/products/:id", Handler: catalogHandler.GetProduct},
			{Method: http.MethodGet, Path: "/shipping-zones", Handler: catalogHandler.ListZones},
		})

		cart := apiGroup.Group("/cart")
		cart.Use(middleware.CartToken())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.Get},
				{Method: http.MethodDelete, Path: "", Handler: cartHandler.Clear},
				{Method: http.MethodGet, Path: "/quote", Handler: cartHandler.Quote},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPut, Path: "/items/:id", Handler: cartHandler.SetQuantity},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: cartHandler.RemoveItem},
			})
		}

		checkoutGroup := apiGroup.Group("/checkout")
		checkoutGroup.Use(middleware.CartToken())
		addRoutes(checkoutGroup, []route{
			{Method: http.MethodPost, Path: "", Handler: checkoutHandler.Checkout},
		})

		apiGroup.POST("/webhooks/paystack", checkoutHandler.Webhook)

		vendors := apiGroup.Group("/vendors")
		vendors.Use(authMiddleware.RequireAuth())
		{
			addRoutes(vendors, []route{
				{Method: http.MethodPost, Path: "", Handler: vendorHandler.Register},
				{Method: http.MethodGet, Path: "/me", Handler: vendorHandler.Me},
			})

			vendorOnly := vendors.Group("")
			vendorOnly.Use(authMiddleware.RequireRoleAtLeast(user.RoleVendor))
			addRoutes(vendorOnly, []route{
				{Method: http.MethodGet, Path: "/me/products", Handler: vendorHandler.MyProducts},
				{Method: http.MethodGet, Path: "/me/orders", Handler: vendorHandler.MyOrders},
				{Method: http.MethodPut, Path: "/me/orders/:reference/status", Handler: vendorHandler.AdvanceOrder},
			})
		}

		products := apiGroup.Group("/products")
		products.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleVendor))
		{
			addRoutes(products, []route{
				{Method: http.MethodPost, Path: "", Handler: productHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: productHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: productHandler.Delete},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/vendors", Handler: adminHandler.ListVendors},
				{Method: http.MethodPut, Path: "/vendors/:id/status", Handler: adminHandler.SetVendorStatus},
				{Method: http.MethodGet, Path: "/orders", Handler: adminHandler.ListOrders},
				{Method: http.MethodGet, Path: "/orders/:reference", Handler: adminHandler.GetOrder},
				{Method: http.MethodPut, Path: "/orders/:reference/status", Handler: adminHandler.AdvanceOrder},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
