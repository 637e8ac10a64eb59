// Package http wires the REST API: route registration, the authorization
// guard in front of protected routes, and the JSON response envelope.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront-api/internal/service"
	"storefront-api/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth      service.AuthService
	users     service.UserService
	catalog   service.CatalogService
	storage   storage.Service
	bucket    string
	keyPrefix string
	logger    logrus.FieldLogger
}

func NewHandler(auth service.AuthService, users service.UserService, catalog service.CatalogService, store storage.Service, bucket, keyPrefix string, logger logrus.FieldLogger) *Handler {
	return &Handler{
		auth:      auth,
		users:     users,
		catalog:   catalog,
		storage:   store,
		bucket:    bucket,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")

	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})
	api.POST("/auth/login", h.login)
	api.GET("/files/:kind/image/:filename", h.downloadFile)

	protected := api.Group("")
	protected.Use(h.requireAuth())
	{
		protected.POST("/auth/authenticated", h.renewSession)
		protected.POST("/auth/change-password", h.changePassword)

		protected.GET("/category", h.listCategories)
		protected.GET("/category/:id", h.getCategory)
		protected.POST("/category/search-paginate", h.searchCategories)
		protected.POST("/category", h.createCategory)
		protected.PUT("/category/:id", h.updateCategory)
		protected.DELETE("/category/:id", h.deleteCategory)

		protected.POST("/product/search", h.searchProducts)
		protected.POST("/product", h.createProduct)
		protected.PUT("/product/:id", h.updateProduct)
		protected.DELETE("/product/:id", h.deleteProduct)

		protected.GET("/user/many", h.listUsers)
		protected.POST("/user", h.createUser)
		protected.PUT("/user/:id", h.updateUser)
		protected.DELETE("/user/:id", h.deleteUser)

		protected.POST("/files/:kind", h.uploadFile)
		protected.DELETE("/files/:kind/delete/:filename", h.deleteFile)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// fail writes the uniform failure envelope.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
