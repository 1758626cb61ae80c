package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujalreset-source/streaming-backend/domain"
	"github.com/sujalreset-source/streaming-backend/logger"
	"github.com/sujalreset-source/streaming-backend/service"
)

// respondError maps the domain error taxonomy onto HTTP statuses and the
// {success, message} envelope. Unexpected failures are logged server-side
// and surfaced as a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err) || errors.Is(err, domain.ErrUnsupportedCurrency):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, domain.ErrNotArtist) || errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, domain.ErrArtistNotFound) ||
		errors.Is(err, domain.ErrAlbumNotFound) ||
		errors.Is(err, domain.ErrSongNotFound) ||
		errors.Is(err, domain.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, domain.ErrInvalidStatusChange):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	default:
		logger.Error(logger.EventGeneral, "Request failed", logger.Fields(
			"path", c.FullPath(),
			"error", err.Error(),
		))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
	}
}

// fileFromForm pulls an optional multipart file. A missing field returns
// (nil, nil); the caller decides whether that is an error.
func fileFromForm(c *gin.Context, field string) (*service.FileUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		// gin reports absent fields as http.ErrMissingFile.
		return nil, func() {}, nil
	}

	f, err := header.Open()
	if err != nil {
		return nil, func() {}, domain.Validationf("failed to read uploaded file %q", field)
	}

	return &service.FileUpload{
		Reader:      f,
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, func() { f.Close() }, nil
}
