package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sujalreset-source/streaming-backend/domain"
	"github.com/sujalreset-source/streaming-backend/dto"
	"github.com/sujalreset-source/streaming-backend/gateway"
	"github.com/sujalreset-source/streaming-backend/middleware"
	"github.com/sujalreset-source/streaming-backend/service"
)

type ArtistHandler struct {
	svc service.ArtistService
}

func NewArtistHandler(svc service.ArtistService) *ArtistHandler { return &ArtistHandler{svc: svc} }

func (h *ArtistHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	g := r.Group("/artists", auth)

	g.GET("", h.ListArtists)
	g.GET("/all", h.ListAllArtists)
	g.GET("/:id", h.GetArtist)

	g.POST("", middleware.AdminOnly(), h.CreateArtist)
	g.PUT("/:id", middleware.AdminOnly(), h.UpdateArtist)
	g.DELETE("/:id", middleware.AdminOnly(), h.DeleteArtist)
}

func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var req dto.CreateArtistRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "artist name and subscription cycle are required (1m, 3m, 6m, 12m)"})
		return
	}

	cycle, err := gateway.CycleFromLabel(req.Cycle)
	if err != nil {
		respondError(c, err)
		return
	}

	image, closeImage, err := fileFromForm(c, "cover_image")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeImage()

	artist, err := h.svc.Create(c.Request.Context(), service.CreateArtistInput{
		Name:     req.Name,
		Bio:      req.Bio,
		Location: req.Location,
		Image:    image,
		// Author-chosen base currency defaults to USD at this boundary.
		BasePrice: domain.Price{Currency: "USD", Amount: req.SubscriptionPrice},
		Cycle:     cycle,
		CreatedBy: c.GetString("user_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "artist": artist})
}

func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	var req dto.UpdateArtistRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	image, closeImage, err := fileFromForm(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeImage()

	artist, err := h.svc.Update(c.Request.Context(), service.UpdateArtistInput{
		ArtistID:          c.Param("id"),
		Name:              req.Name,
		Bio:               req.Bio,
		Location:          req.Location,
		SubscriptionPrice: req.SubscriptionPrice,
		CycleLabel:        req.Cycle,
		Image:             image,
		UpdatedBy:         c.GetString("user_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "artist": artist})
}

func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "artist deleted successfully",
		"artist_id": id,
	})
}

func (h *ArtistHandler) ListArtists(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	resp, err := h.svc.ListPaginated(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ArtistHandler) ListAllArtists(c *gin.Context) {
	artists, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "artists": artists})
}

func (h *ArtistHandler) GetArtist(c *gin.Context) {
	resp, err := h.svc.GetByIdentifier(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
