package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"luxstay-api/internal/domain/user"
	"luxstay-api/internal/handler/api"
	"luxstay-api/internal/handler/middleware"
	"luxstay-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Hotel       *api.HotelHandler
	Room        *api.RoomHandler
	Reservation *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	ownerOnly := authMiddleware.RequireRole(user.RoleHotelOwner, user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPatch, Path: "/me", Handler: h.Auth.UpdateMe, Mw: []gin.HandlerFunc{requireAuth}},
		})

		hotels := apiGroup.Group("/hotels")
		addRoutes(hotels, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Hotel.List},
			{Method: http.MethodGet, Path: "/owner/my-hotels", Handler: h.Hotel.ListOwned, Mw: []gin.HandlerFunc{requireAuth, ownerOnly}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Hotel.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Hotel.Create, Mw: []gin.HandlerFunc{requireAuth, ownerOnly}},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Hotel.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Hotel.Delete, Mw: []gin.HandlerFunc{requireAuth}},
		})

		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/hotel/:hotelId", Handler: h.Room.ListByHotel},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Room.Availability},
			{Method: http.MethodPost, Path: "", Handler: h.Room.Create, Mw: []gin.HandlerFunc{requireAuth, ownerOnly}},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Room.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete, Mw: []gin.HandlerFunc{requireAuth}},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/hotel-owner", Handler: h.Reservation.ListForHotelOwner, Mw: []gin.HandlerFunc{ownerOnly}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Reservation.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Cancel},
		})
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
