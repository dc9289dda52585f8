package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studio-booking/internal/domain/user"
	"studio-booking/internal/handler/api"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Density      *api.DensityHandler
	Credit       *api.CreditHandler
	Usage        *api.UsageHandler
	Unit         *api.UnitHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register,
					Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapManageUsers)}},
			})
		}

		availability := apiGroup.Group("/availability")
		availability.Use(authMiddleware.RequireAuth())
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Availability.Buckets},
				{Method: http.MethodGet, Path: "/offers", Handler: h.Availability.Offers},
			})
		}

		units := apiGroup.Group("/units")
		units.Use(authMiddleware.RequireAuth())
		{
			addRoutes(units, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Unit.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Unit.GetByID},
				{Method: http.MethodGet, Path: "/:id/density", Handler: h.Density.Timeline},
				{Method: http.MethodGet, Path: "/:id/blackouts", Handler: h.Unit.ListBlackouts},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		bookings.Use(authMiddleware.RequireCapability(user.CapBook))
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.BookCustomRange},
				{Method: http.MethodPost, Path: "/redeem", Handler: h.Booking.RedeemOffer},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetByID},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
			})
		}

		credits := apiGroup.Group("/credits")
		credits.Use(authMiddleware.RequireAuth())
		{
			addRoutes(credits, []route{
				{Method: http.MethodGet, Path: "/balance", Handler: h.Credit.Balance},
				{Method: http.MethodGet, Path: "/history", Handler: h.Credit.History},
				{Method: http.MethodPost, Path: "", Handler: h.Credit.Append,
					Mw: []gin.HandlerFunc{authMiddleware.RequireCapability(user.CapManageCredits)}},
			})
		}

		usage := apiGroup.Group("/usage")
		usage.Use(authMiddleware.RequireAuth())
		usage.Use(authMiddleware.RequireCapability(user.CapIngestUsage))
		{
			addRoutes(usage, []route{
				{Method: http.MethodPost, Path: "/reports", Handler: h.Usage.IngestReport},
				{Method: http.MethodPost, Path: "/reports/batch", Handler: h.Usage.IngestBatch},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireCapability(user.CapManageUnits))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/units", Handler: h.Unit.ListAll},
				{Method: http.MethodPost, Path: "/units", Handler: h.Unit.Create},
				{Method: http.MethodPut, Path: "/units/:id/active", Handler: h.Unit.SetActive},
				{Method: http.MethodPost, Path: "/blackouts", Handler: h.Unit.CreateBlackout},
				{Method: http.MethodDelete, Path: "/blackouts/:id", Handler: h.Unit.DeleteBlackout},
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
