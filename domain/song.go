package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AccessType string

const (
	AccessFree         AccessType = "free"
	AccessSubscription AccessType = "subscription"
	AccessPurchaseOnly AccessType = "purchase-only"
)

func (a AccessType) Valid() bool {
	switch a {
	case AccessFree, AccessSubscription, AccessPurchaseOnly:
		return true
	}
	return false
}

type Song struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title           string              `bson:"title" json:"title"`
	ArtistID        primitive.ObjectID  `bson:"artist" json:"artist_id"`
	Genre           []string            `bson:"genre" json:"genre"`
	Duration        int                 `bson:"duration" json:"duration"` // seconds
	AccessType      AccessType          `bson:"access_type" json:"access_type"`
	BasePrice       *Price              `bson:"base_price,omitempty" json:"base_price,omitempty"`
	ConvertedPrices []ConvertedPrice    `bson:"converted_prices,omitempty" json:"converted_prices,omitempty"`
	AlbumOnly       bool                `bson:"album_only" json:"album_only"`
	AlbumID         *primitive.ObjectID `bson:"album,omitempty" json:"album_id,omitempty"`
	AudioURL        string              `bson:"audio_url" json:"audio_url"`
	AudioKey        string              `bson:"audio_key" json:"-"`
	CoverImage      string              `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	ReleaseDate     string              `bson:"release_date,omitempty" json:"release_date,omitempty"` // ISO date
	ISRC            string              `bson:"isrc,omitempty" json:"isrc,omitempty"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}
