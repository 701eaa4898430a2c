package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentwheels/internal/domain/user"
	"rentwheels/internal/handler/api"
	"rentwheels/internal/handler/middleware"
	"rentwheels/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Vehicle      *api.VehicleHandler
	Cart         *api.CartHandler
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Recurring    *api.RecurringHandler
	Waitlist     *api.WaitlistHandler
	Review       *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
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
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.SignUp},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Public catalog
		vehicles := apiGroup.Group("/vehicles")
		{
			addRoutes(vehicles, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Vehicle.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Vehicle.Get},
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: h.Availability.VehicleCalendar},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByVehicle},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability/fleet", Handler: h.Availability.FleetCalendar},
		})

		// Agent fleet management
		agent := apiGroup.Group("/agent")
		agent.Use(authMiddleware.RequireAuth(), authMiddleware.RequireUserType(user.TypeAgent))
		{
			addRoutes(agent, []route{
				{Method: http.MethodGet, Path: "/vehicles", Handler: h.Vehicle.ListMine},
				{Method: http.MethodPost, Path: "/vehicles", Handler: h.Vehicle.Create},
				{Method: http.MethodPut, Path: "/vehicles/:id", Handler: h.Vehicle.Update},
				{Method: http.MethodDelete, Path: "/vehicles/:id", Handler: h.Vehicle.Delete},
				{Method: http.MethodGet, Path: "/earnings", Handler: h.Vehicle.Earnings},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Cart.Checkout},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.Modify},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/early-return", Handler: h.Booking.EarlyReturn},
				{Method: http.MethodPost, Path: "/:id/late-return", Handler: h.Booking.LateReturn},
			})
		}

		recurring := apiGroup.Group("/recurring")
		recurring.Use(authMiddleware.RequireAuth())
		{
			addRoutes(recurring, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Recurring.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Recurring.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Recurring.Get},
				{Method: http.MethodPost, Path: "/:id/pause", Handler: h.Recurring.Pause},
				{Method: http.MethodPost, Path: "/:id/resume", Handler: h.Recurring.Resume},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Recurring.Cancel},
			})
		}

		waitlist := apiGroup.Group("/waitlist")
		waitlist.Use(authMiddleware.RequireAuth())
		{
			addRoutes(waitlist, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Waitlist.Join},
				{Method: http.MethodGet, Path: "", Handler: h.Waitlist.ListMine},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Waitlist.Remove},
				{Method: http.MethodPost, Path: "/check", Handler: h.Waitlist.Check},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Review.ListMine},
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
