package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starwars/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/planets", h.ListPlanets)
		public.GET("/planets/:id", h.GetPlanet)
		public.GET("/species", h.ListSpecies)
		public.GET("/species/:id", h.GetSpecies)
		public.GET("/characters", h.ListCharacters)
		public.GET("/characters/:id", h.GetCharacter)
	}

	if protected != nil {
		protected.POST("/planets", h.CreatePlanet)
		protected.PUT("/planets/:id", h.UpdatePlanet)
		protected.DELETE("/planets/:id", h.DeletePlanet)
		protected.POST("/species", h.CreateSpecies)
		protected.PUT("/species/:id", h.UpdateSpecies)
		protected.DELETE("/species/:id", h.DeleteSpecies)
		protected.POST("/characters", h.CreateCharacter)
		protected.PUT("/characters/:id", h.UpdateCharacter)
		protected.DELETE("/characters/:id", h.DeleteCharacter)
	}
}

/* ---------- PLANET HANDLERS ---------- */

// ListPlanets handles GET /api/v1/planets
func (h *Handler) ListPlanets(c *gin.Context) {
	items, err := h.service.ListPlanets(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GetPlanet handles GET /api/v1/planets/:id
func (h *Handler) GetPlanet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.service.GetPlanet(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// CreatePlanet handles POST /api/v1/planets
func (h *Handler) CreatePlanet(c *gin.Context) {
	var req PlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	p, err := h.service.CreatePlanet(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// UpdatePlanet handles PUT /api/v1/planets/:id
func (h *Handler) UpdatePlanet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req PlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	p, err := h.service.UpdatePlanet(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// DeletePlanet handles DELETE /api/v1/planets/:id
func (h *Handler) DeletePlanet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePlanet(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

/* ---------- SPECIES HANDLERS ---------- */

// ListSpecies handles GET /api/v1/species
func (h *Handler) ListSpecies(c *gin.Context) {
	items, err := h.service.ListSpecies(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GetSpecies handles GET /api/v1/species/:id
func (h *Handler) GetSpecies(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, err := h.service.GetSpecies(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, s)
}

// CreateSpecies handles POST /api/v1/species
func (h *Handler) CreateSpecies(c *gin.Context) {
	var req SpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	s, err := h.service.CreateSpecies(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, s)
}

// UpdateSpecies handles PUT /api/v1/species/:id
func (h *Handler) UpdateSpecies(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	s, err := h.service.UpdateSpecies(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, s)
}

// DeleteSpecies handles DELETE /api/v1/species/:id
func (h *Handler) DeleteSpecies(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSpecies(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

/* ---------- CHARACTER HANDLERS ---------- */

// ListCharacters handles GET /api/v1/characters
func (h *Handler) ListCharacters(c *gin.Context) {
	items, err := h.service.ListCharacters(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GetCharacter handles GET /api/v1/characters/:id
func (h *Handler) GetCharacter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ch, err := h.service.GetCharacter(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ch)
}

// CreateCharacter handles POST /api/v1/characters
func (h *Handler) CreateCharacter(c *gin.Context) {
	var req CharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	ch, err := h.service.CreateCharacter(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ch)
}

// UpdateCharacter handles PUT /api/v1/characters/:id
func (h *Handler) UpdateCharacter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	ch, err := h.service.UpdateCharacter(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ch)
}

// DeleteCharacter handles DELETE /api/v1/characters/:id
func (h *Handler) DeleteCharacter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCharacter(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}
