package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"poolside/internal/domain/user"
	"poolside/internal/handler/api"
	"poolside/internal/handler/middleware"
	"poolside/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Pool         *api.PoolHandler
	Reservation  *api.ReservationHandler
	Availability *api.AvailabilityHandler
	Payment      *api.PaymentHandler
	Webhook      *api.WebhookHandler
	Owner        *api.OwnerHandler
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
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})
		}

		pools := apiGroup.Group("/pools")
		{
			addRoutes(pools, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Pool.ListPools},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Pool.GetPool},
			})

			authRequired := pools.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Pool.CreatePool,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
				{Method: http.MethodPost, Path: "/:id/availability-requests", Handler: h.Availability.CreateRequest},
			})
		}

		availabilityRequests := apiGroup.Group("/availability-requests")
		availabilityRequests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(availabilityRequests, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Availability.DecideRequest},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.UpdateReservationStatus},
				{Method: http.MethodPost, Path: "/:id/payment-intent", Handler: h.Payment.CreatePaymentIntent},
			})
		}

		owner := apiGroup.Group("/owner")
		owner.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleOwner))
		{
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Owner.ListReservations},
				{Method: http.MethodGet, Path: "/revenue", Handler: h.Owner.Revenue},
			})
		}

		// authenticated by the gateway signature, never by JWT
		webhooks := apiGroup.Group("/webhooks")
		{
			addRoutes(webhooks, []route{
				{Method: http.MethodPost, Path: "/stripe", Handler: h.Webhook.HandleStripeEvent},
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
