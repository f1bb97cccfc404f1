package api

import (
	"log"
	stdhttp "net/http"

	intconfig "dealership/internal/config"
	h "dealership/internal/http/handlers"
	"dealership/internal/http/middleware"
	"dealership/internal/resources"
	"dealership/internal/ws"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hub *ws.Hub) *gin.Engine {
	h.Configure(env, hub)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.Static(env.UploadBaseURL, env.UploadDir)

	auth := middleware.RequireAuth([]byte(env.JWTSecret))
	adminOnly := middleware.RequireRoles("admin", "supervisor")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", auth, adminOnly, h.Register)
		authGroup.GET("/me", auth, h.Me)

		// Reference tables (vehicle types, colors, branches, supervisors,
		// categories, sales profiles) share one CRUD shape.
		mountCollection(api, auth, adminOnly, resources.VehicleTypes)
		mountCollection(api, auth, adminOnly, resources.Colors)
		mountCollection(api, auth, adminOnly, resources.Branches)
		mountCollection(api, auth, adminOnly, resources.Supervisors)
		mountCollection(api, auth, adminOnly, resources.Categories)
		mountCollection(api, auth, adminOnly, resources.SalesProfiles)

		// Orders (SPK)
		orders := api.Group("/orders", auth)
		orders.GET("", h.GetOrders)
		orders.GET("/export", h.ExportOrders)
		orders.GET("/:documentId", h.GetOrderByDocumentID)
		orders.PUT("/:documentId/flags", adminOnly, h.UpdateOrderFlags)
		orders.GET("/:documentId/document", h.GetOrderDocument)

		// Sales location monitoring
		locations := api.Group("/sales-locations", auth)
		locations.POST("", h.CreateSalesLocation)
		locations.GET("/latest", h.GetLatestSalesLocations)

		// Live feed for the monitoring screen. The browser websocket API
		// cannot send an Authorization header, so this endpoint stays open.
		api.GET("/ws/locations", h.SalesLocationFeed)

		// Uploads
		api.POST("/upload", auth, h.Upload)
	}

	return r
}

func mountCollection(api *gin.RouterGroup, auth, adminOnly gin.HandlerFunc, s resources.Schema) {
	g := api.Group("/"+s.Name, auth)
	g.GET("", h.ListCollection(s))
	g.GET("/:documentId", h.GetCollectionRecord(s))
	g.POST("", adminOnly, h.CreateCollectionRecord(s))
	g.PUT("/:documentId", adminOnly, h.UpdateCollectionRecord(s))
	g.DELETE("/:documentId", adminOnly, h.DeleteCollectionRecord(s))
}
