// Package server assembles the HTTP surface from the repositories and
// module handlers.
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"starwars/internal/config"
	"starwars/internal/database"
	"starwars/internal/middleware"
	"starwars/internal/modules/auth"
	"starwars/internal/modules/catalog"
	"starwars/internal/modules/favorite"
	"starwars/internal/modules/feed"
	jwtsvc "starwars/internal/pkg/jwt"
	"starwars/internal/pkg/response"
	"starwars/internal/repository"
)

// Server holds the router and the long lived feed hub.
type Server struct {
	Router *gin.Engine
	Hub    *feed.Hub
}

func New(cfg *config.Config, db *gorm.DB, logger *log.Logger) *Server {
	userRepo := repository.NewUserRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	speciesRepo := repository.NewSpeciesRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	hub := feed.NewHub(logger)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j, cfg.JWTAccessTTL))
	catalogHandler := catalog.NewHandler(catalog.NewService(planetRepo, speciesRepo, characterRepo))
	favoriteHandler := favorite.NewHandler(
		favorite.NewService(favoriteRepo, characterRepo, planetRepo, speciesRepo, hub),
	)
	feedHandler := feed.NewHandler(hub)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), db); err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(j))

	authHandler.RegisterRoutes(v1, protected)
	catalogHandler.RegisterRoutes(v1, protected)
	favoriteHandler.RegisterRoutes(protected)
	feedHandler.RegisterRoutes(protected)

	return &Server{Router: r, Hub: hub}
}
