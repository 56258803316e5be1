package favorite

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starwars/internal/domain"
	"starwars/internal/middleware"
	"starwars/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	favorites := protected.Group("/favorites")
	{
		favorites.GET("", h.GetFavorites)
		favorites.POST("/:kind/:id", h.AddFavorite)
		favorites.DELETE("/:kind/:id", h.RemoveFavorite)
		favorites.GET("/:kind/:id/check", h.CheckFavorite)
	}
}

func (h *Handler) GetFavorites(c *gin.Context) {
	favs, err := h.service.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, favs)
}

func (h *Handler) AddFavorite(c *gin.Context) {
	kind, id, ok := parseTarget(c)
	if !ok {
		return
	}

	link, err := h.service.Add(c.Request.Context(), middleware.UserID(c), kind, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, link)
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	kind, id, ok := parseTarget(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), middleware.UserID(c), kind, id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CheckFavorite(c *gin.Context) {
	kind, id, ok := parseTarget(c)
	if !ok {
		return
	}

	exists, err := h.service.Check(c.Request.Context(), middleware.UserID(c), kind, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"is_favorite": exists})
}

func parseTarget(c *gin.Context) (domain.FavoriteKind, int64, bool) {
	kind, ok := domain.ParseFavoriteKind(c.Param("kind"))
	if !ok {
		response.Error(c, http.StatusNotFound, "UNKNOWN_KIND", "Favorites exist for characters, planets and species")
		return "", 0, false
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return "", 0, false
	}
	return kind, id, true
}
