package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Album struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	ArtistID   primitive.ObjectID `bson:"artist" json:"artist_id"`
	CoverImage string             `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Genre      []string           `bson:"genre" json:"genre"`
	AccessType AccessType         `bson:"access_type" json:"access_type"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
