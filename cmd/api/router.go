package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/container"
)

// SetupRouter đăng ký toàn bộ routes và middleware chain
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "Unhealthy", "Database is not reachable")
			return
		}
		response.Success(ctx, http.StatusOK, "OK", gin.H{
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	})

	v1 := router.Group("/api/v1")

	authRequired := middleware.AuthMiddleware(c.JWTManager)
	adminRequired := middleware.AdminMiddleware()

	// ===== Auth =====
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
		auth.GET("/me", authRequired, c.UserHandler.GetProfile)
	}

	// ===== Authors =====
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.GetAll)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.POST("", authRequired, adminRequired, c.AuthorHandler.Create)
		authors.PUT("/:id", authRequired, adminRequired, c.AuthorHandler.Update)
		authors.DELETE("/:id", authRequired, adminRequired, c.AuthorHandler.Delete)
	}

	// ===== Genres =====
	genres := v1.Group("/genres")
	{
		genres.GET("", c.GenreHandler.GetAll)
		genres.GET("/:id", c.GenreHandler.GetByID)
		genres.POST("", authRequired, adminRequired, c.GenreHandler.Create)
		genres.PUT("/:id", authRequired, adminRequired, c.GenreHandler.Update)
		genres.DELETE("/:id", authRequired, adminRequired, c.GenreHandler.Delete)
	}

	// ===== Books =====
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.GetBooks)
		books.GET("/:id", c.BookHandler.GetBook)
		books.GET("/genre/:genreId", c.BookHandler.GetBooksByGenre)
		books.POST("", authRequired, adminRequired, c.BookHandler.CreateBook)
		books.PUT("/:id", authRequired, adminRequired, c.BookHandler.UpdateBook)
		books.PUT("/:id/genres", authRequired, adminRequired, c.BookHandler.AssignGenres)
		books.DELETE("/:id", authRequired, adminRequired, c.BookHandler.DeleteBook)
	}

	// ===== Catalog (remote integration + hybrid search) =====
	catalog := v1.Group("/catalog")
	{
		catalog.GET("/search", c.CatalogHandler.SearchRemote)
		catalog.GET("/books/:id", c.CatalogHandler.GetRemoteBook)
		catalog.GET("/hybrid-search", c.CatalogHandler.HybridSearch)
		catalog.GET("/full-books", c.CatalogHandler.FullBooks)
		catalog.GET("/cover", c.CatalogHandler.CoverByTitle)
		catalog.POST("/import/:id", authRequired, adminRequired, c.CatalogHandler.ImportByID)
		catalog.POST("/import", authRequired, adminRequired, c.CatalogHandler.ImportRecord)
		catalog.POST("/import/bulk", authRequired, adminRequired, c.CatalogHandler.BulkImport)
	}

	return router
}
