// Package app assembles repositories, services and handlers into the HTTP
// router.
package app

import (
	"net/http"
	"time"

	"familykitchen/internal/config"
	"familykitchen/internal/middleware"
	"familykitchen/internal/modules/auth"
	"familykitchen/internal/modules/comment"
	"familykitchen/internal/modules/dish"
	"familykitchen/internal/modules/ingredient"
	"familykitchen/internal/modules/selection"
	"familykitchen/internal/modules/upload"
	jwtsvc "familykitchen/internal/pkg/jwt"
	"familykitchen/internal/pkg/response"
	"familykitchen/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires every module against db. extra middleware runs first;
// cmd/api passes the request logger there so tests stay quiet.
func NewRouter(db *gorm.DB, cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	dishRepo := repository.NewDishRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	selectionRepo := repository.NewSelectionRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j), auth.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: cfg.SameSite(),
		Path:     cfg.CookiePath,
	})
	dishHandler := dish.NewHandler(dish.NewService(dishRepo))
	commentHandler := comment.NewHandler(comment.NewService(commentRepo, dishRepo))
	selectionHandler := selection.NewHandler(selection.NewService(selectionRepo, dishRepo))
	ingredientHandler := ingredient.NewHandler(ingredient.NewService(ingredientRepo))
	uploadHandler := upload.NewHandler(upload.NewService(uploadRepo, upload.Config{
		Dir:         cfg.UploadDir,
		URLBase:     cfg.UploadURLBase,
		MaxFileSize: cfg.UploadMaxBytes,
	}))

	metrics := middleware.NewMetrics()

	r := gin.New()
	r.Use(extra...)
	r.Use(metrics.Middleware())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.AllowedOrigins...))

	r.Static(upload.RoutePrefix, cfg.UploadDir)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			response.Success(c, http.StatusOK, gin.H{
				"status": "ok",
				"time":   time.Now().UTC(),
			})
		})

		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.SessionAuth(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			dishHandler.RegisterRoutes(protected)
			commentHandler.RegisterRoutes(protected)
			selectionHandler.RegisterRoutes(protected)
			ingredientHandler.RegisterRoutes(protected)
			uploadHandler.RegisterRoutes(protected)
		}
	}

	return r
}
