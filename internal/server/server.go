// Package server binds the shop's HTTP surface to the stores.
package server

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/giftlab/internal/auth"
	"github.com/matthieukhl/giftlab/internal/config"
	"github.com/matthieukhl/giftlab/internal/database"
	"github.com/matthieukhl/giftlab/internal/mail"
	"github.com/matthieukhl/giftlab/internal/store"
)

type Server struct {
	router  *gin.Engine
	db      *database.DB
	cfg     *config.Config
	catalog *store.CatalogStore
	users   *store.UserStore
	orders  *store.OrderStore
	reviews *store.ReviewStore
	contact *store.ContactStore
	auth    *auth.Service
	mailer  mail.Mailer
}

// NewServer creates a new server instance wired to the given database and
// mailer. Handlers share no state beyond the store; each request stands
// alone.
func NewServer(cfg *config.Config, db *database.DB, mailer mail.Mailer, authSvc *auth.Service) *Server {
	router := gin.Default()

	server := &Server{
		router:  router,
		db:      db,
		cfg:     cfg,
		catalog: store.NewCatalogStore(db),
		users:   store.NewUserStore(db),
		orders:  store.NewOrderStore(db),
		reviews: store.NewReviewStore(db),
		contact: store.NewContactStore(db),
		auth:    authSvc,
		mailer:  mailer,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	api.GET("/health", s.healthCheck)

	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)
	api.GET("/auth/me", s.requireAuth, s.me)
	api.GET("/users/orders", s.requireAuth, s.listUserOrders)

	api.GET("/categories", s.listCategories)
	api.GET("/categories/:id/subcategories", s.listSubcategories)
	api.GET("/subcategories", s.listAllSubcategories)
	api.GET("/subcategories/:id/products", s.listSubcategoryProducts)
	api.GET("/products", s.listProducts)
	api.GET("/products/:id", s.getProduct)

	api.GET("/products/:id/reviews", s.listReviews)
	api.POST("/products/:id/reviews", s.createReview)

	api.POST("/orders", s.createOrder)
	api.POST("/contact", s.submitContact)

	admin := api.Group("", s.requireAuth, s.requireAdmin)
	admin.POST("/categories", s.createCategory)
	admin.PUT("/categories/:id", s.updateCategory)
	admin.DELETE("/categories/:id", s.deleteCategory)
	admin.POST("/subcategories", s.createSubcategory)
	admin.PUT("/subcategories/:id", s.updateSubcategory)
	admin.DELETE("/subcategories/:id", s.deleteSubcategory)
	admin.POST("/products", s.createProduct)
	admin.PUT("/products/:id", s.updateProduct)
	admin.DELETE("/products/:id", s.deleteProduct)
	admin.GET("/orders", s.listOrders)
	admin.PUT("/orders/:id/status", s.updateOrderStatus)
	admin.PUT("/orders/:id/total", s.updateOrderTotal)
	admin.GET("/contact-messages", s.listContactMessages)
	admin.POST("/upload", s.uploadImage)

	// Uploaded images are served straight from disk.
	s.router.Static("/uploads", s.cfg.Uploads.Dir)

	// SPA fallback: anything that is not API or uploads goes to the client
	// build when one is present.
	s.router.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/uploads/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		index := filepath.Join(s.cfg.Server.StaticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusOK, gin.H{"message": "API is running"})
			return
		}
		requested := filepath.Join(s.cfg.Server.StaticDir, filepath.Clean(p))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(index)
	})
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "giftlab",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// respondStoreError translates store sentinels into client-facing statuses.
// Anything unexpected becomes a generic 500 so internals never leak.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, store.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": "referenced entity does not exist"})
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
