package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujalreset-source/streaming-backend/dto"
	"github.com/sujalreset-source/streaming-backend/middleware"
	"github.com/sujalreset-source/streaming-backend/service"
)

type SongHandler struct {
	songs  service.SongService
	albums service.AlbumService
}

func NewSongHandler(songs service.SongService, albums service.AlbumService) *SongHandler {
	return &SongHandler{songs: songs, albums: albums}
}

func (h *SongHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	r.POST("/songs", auth, h.CreateSong)
	r.PUT("/songs/:id", auth, middleware.AdminOnly(), h.UpdateSong)
	r.POST("/albums", auth, h.CreateAlbum)
	r.GET("/artists/:id/songs", auth, h.GetArtistSongs)
}

func (h *SongHandler) CreateSong(c *gin.Context) {
	var req dto.CreateSongRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	audio, closeAudio, err := fileFromForm(c, "audio")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeAudio()

	cover, closeCover, err := fileFromForm(c, "cover_image")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeCover()

	song, err := h.songs.Create(c.Request.Context(), service.CreateSongInput{
		ArtistID: c.GetString("artist_id"),
		Req:      req,
		Audio:    audio,
		Cover:    cover,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "song": song})
}

func (h *SongHandler) UpdateSong(c *gin.Context) {
	var req dto.UpdateSongRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	audio, closeAudio, err := fileFromForm(c, "audio")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeAudio()

	cover, closeCover, err := fileFromForm(c, "cover_image")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeCover()

	song, err := h.songs.Update(c.Request.Context(), service.UpdateSongInput{
		SongID: c.Param("id"),
		Req:    req,
		Audio:  audio,
		Cover:  cover,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "song": song})
}

func (h *SongHandler) CreateAlbum(c *gin.Context) {
	var req dto.CreateAlbumRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	cover, closeCover, err := fileFromForm(c, "cover_image")
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeCover()

	album, err := h.albums.Create(c.Request.Context(), service.CreateAlbumInput{
		ArtistID: c.GetString("artist_id"),
		Req:      req,
		Cover:    cover,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "album": album})
}

func (h *SongHandler) GetArtistSongs(c *gin.Context) {
	songs, err := h.songs.ListByArtist(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "songs": songs})
}
