package dto

import (
	"time"

	"github.com/sujalreset-source/streaming-backend/domain"
)

type CreateArtistRequest struct {
	Name              string  `form:"name" json:"name" binding:"required"`
	Bio               string  `form:"bio" json:"bio"`
	Location          string  `form:"location" json:"location"`
	SubscriptionPrice float64 `form:"subscription_price" json:"subscription_price"`
	Cycle             string  `form:"cycle" json:"cycle" binding:"required"`
}

type UpdateArtistRequest struct {
	Name              string   `form:"name" json:"name"`
	Bio               string   `form:"bio" json:"bio"`
	Location          string   `form:"location" json:"location"`
	SubscriptionPrice *float64 `form:"subscription_price" json:"subscription_price"`
	Cycle             string   `form:"cycle" json:"cycle"`
}

// PlanResponse whitelists the externally visible plan fields. Raw gateway
// identifiers never leave the service.
type PlanResponse struct {
	Cycle           string                  `json:"cycle"`
	BasePrice       domain.Price            `json:"base_price"`
	ConvertedPrices []domain.ConvertedPrice `json:"converted_prices"`
}

type ArtistResponse struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Slug              string         `json:"slug"`
	Bio               string         `json:"bio,omitempty"`
	Location          string         `json:"location,omitempty"`
	Image             string         `json:"image,omitempty"`
	SubscriptionPlans []PlanResponse `json:"subscription_plans"`
	SongCount         *int64         `json:"song_count,omitempty"`
	AlbumCount        *int64         `json:"album_count,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"total_pages"`
}

// ListArtistsResponse is the full cached payload for the paginated listing.
type ListArtistsResponse struct {
	Success    bool             `json:"success"`
	Artists    []ArtistResponse `json:"artists"`
	Pagination Pagination       `json:"pagination"`
}

// ArtistDetailResponse is the cached payload for single-artist reads.
type ArtistDetailResponse struct {
	Success bool           `json:"success"`
	Artist  ArtistResponse `json:"artist"`
}

func shapePlans(plans []domain.SubscriptionPlan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanResponse{
			Cycle:           p.Cycle,
			BasePrice:       p.BasePrice,
			ConvertedPrices: p.ConvertedPrices,
		})
	}
	return out
}

// ShapeArtist maps the persisted record onto the external representation.
// Pure and idempotent.
func ShapeArtist(a *domain.Artist) ArtistResponse {
	return ArtistResponse{
		ID:                a.ID.Hex(),
		Name:              a.Name,
		Slug:              a.Slug,
		Bio:               a.Bio,
		Location:          a.Location,
		Image:             a.Image,
		SubscriptionPlans: shapePlans(a.SubscriptionPlans),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func ShapeArtistWithCounts(a *domain.Artist, songCount, albumCount int64) ArtistResponse {
	shaped := ShapeArtist(a)
	shaped.SongCount = &songCount
	shaped.AlbumCount = &albumCount
	return shaped
}
