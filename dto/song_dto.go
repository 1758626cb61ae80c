package dto

import (
	"time"

	"github.com/sujalreset-source/streaming-backend/domain"
)

// CreateSongRequest carries the multipart form fields of a song upload.
// BasePrice arrives as a JSON string and AlbumOnly as a string flag; both
// are parsed once at the boundary by the service.
type CreateSongRequest struct {
	Title       string `form:"title" json:"title"`
	Genre       string `form:"genre" json:"genre"`
	Duration    int    `form:"duration" json:"duration"`
	BasePrice   string `form:"base_price" json:"base_price"`
	AccessType  string `form:"access_type" json:"access_type"`
	ReleaseDate string `form:"release_date" json:"release_date"`
	AlbumOnly   string `form:"album_only" json:"album_only"`
	AlbumID     string `form:"album" json:"album"`
	ISRC        string `form:"isrc" json:"isrc"`
}

// UpdateSongRequest carries the optional fields of an admin song edit.
// Absent fields leave the stored values untouched.
type UpdateSongRequest struct {
	Title       string `form:"title" json:"title"`
	Genre       string `form:"genre" json:"genre"`
	Duration    int    `form:"duration" json:"duration"`
	BasePrice   string `form:"base_price" json:"base_price"`
	AccessType  string `form:"access_type" json:"access_type"`
	ReleaseDate string `form:"release_date" json:"release_date"`
	AlbumID     string `form:"album" json:"album"`
	ISRC        string `form:"isrc" json:"isrc"`
}

type SongResponse struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"`
	ArtistID        string                  `json:"artist_id"`
	Genre           []string                `json:"genre"`
	Duration        int                     `json:"duration"`
	AccessType      string                  `json:"access_type"`
	BasePrice       *domain.Price           `json:"base_price,omitempty"`
	ConvertedPrices []domain.ConvertedPrice `json:"converted_prices,omitempty"`
	AlbumOnly       bool                    `json:"album_only"`
	AlbumID         string                  `json:"album_id,omitempty"`
	AudioURL        string                  `json:"audio_url"`
	CoverImage      string                  `json:"cover_image,omitempty"`
	ReleaseDate     string                  `json:"release_date,omitempty"`
	ISRC            string                  `json:"isrc,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

func ShapeSong(s *domain.Song) SongResponse {
	resp := SongResponse{
		ID:              s.ID.Hex(),
		Title:           s.Title,
		ArtistID:        s.ArtistID.Hex(),
		Genre:           s.Genre,
		Duration:        s.Duration,
		AccessType:      string(s.AccessType),
		BasePrice:       s.BasePrice,
		ConvertedPrices: s.ConvertedPrices,
		AlbumOnly:       s.AlbumOnly,
		AudioURL:        s.AudioURL,
		CoverImage:      s.CoverImage,
		ReleaseDate:     s.ReleaseDate,
		ISRC:            s.ISRC,
		CreatedAt:       s.CreatedAt,
	}
	if s.AlbumID != nil {
		resp.AlbumID = s.AlbumID.Hex()
	}
	return resp
}
