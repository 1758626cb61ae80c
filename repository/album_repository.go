package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sujalreset-source/streaming-backend/domain"
)

type AlbumRepository interface {
	Create(ctx context.Context, a *domain.Album) error
	// FindByIDAndArtist scopes the lookup to the owning artist so an album
	// id belonging to someone else resolves the same as a missing one.
	FindByIDAndArtist(ctx context.Context, id, artistID primitive.ObjectID) (*domain.Album, error)
	CountByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error)
}

type albumRepository struct {
	col *mongo.Collection
}

func NewAlbumRepository(db *mongo.Database) AlbumRepository {
	col := db.Collection("albums")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "artist", Value: 1}},
	})

	return &albumRepository{col: col}
}

func (r *albumRepository) Create(ctx context.Context, a *domain.Album) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (r *albumRepository) FindByIDAndArtist(ctx context.Context, id, artistID primitive.ObjectID) (*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var album domain.Album
	err := r.col.FindOne(ctx, bson.M{"_id": id, "artist": artistID}).Decode(&album)
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) CountByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"artist": artistID})
}
