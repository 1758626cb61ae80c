package dto

import (
	"time"

	"github.com/sujalreset-source/streaming-backend/domain"
)

type CreateAlbumRequest struct {
	Title      string `form:"title" json:"title"`
	Genre      string `form:"genre" json:"genre"`
	AccessType string `form:"access_type" json:"access_type"`
}

type AlbumResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	ArtistID   string    `json:"artist_id"`
	CoverImage string    `json:"cover_image,omitempty"`
	Genre      []string  `json:"genre"`
	AccessType string    `json:"access_type"`
	CreatedAt  time.Time `json:"created_at"`
}

func ShapeAlbum(a *domain.Album) AlbumResponse {
	return AlbumResponse{
		ID:         a.ID.Hex(),
		Title:      a.Title,
		ArtistID:   a.ArtistID.Hex(),
		CoverImage: a.CoverImage,
		Genre:      a.Genre,
		AccessType: string(a.AccessType),
		CreatedAt:  a.CreatedAt,
	}
}
