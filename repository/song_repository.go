package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sujalreset-source/streaming-backend/domain"
)

type SongRepository interface {
	Create(ctx context.Context, s *domain.Song) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Song, error)
	Replace(ctx context.Context, s *domain.Song) error
	FindByArtist(ctx context.Context, artistID primitive.ObjectID) ([]*domain.Song, error)
	CountByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error)
}

type songRepository struct {
	col *mongo.Collection
}

func NewSongRepository(db *mongo.Database) SongRepository {
	col := db.Collection("songs")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "artist", Value: 1}}},
		{Keys: bson.D{{Key: "album", Value: 1}}},
		{Keys: bson.D{{Key: "isrc", Value: 1}}, Options: options.Index().SetSparse(true)},
	})

	return &songRepository{col: col}
}

func (r *songRepository) Create(ctx context.Context, s *domain.Song) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return nil
}

func (r *songRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var song domain.Song
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&song); err != nil {
		return nil, err
	}
	return &song, nil
}

func (r *songRepository) Replace(ctx context.Context, s *domain.Song) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *songRepository) FindByArtist(ctx context.Context, artistID primitive.ObjectID) ([]*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"artist": artistID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []*domain.Song
	for cur.Next(ctx) {
		var s domain.Song
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, cur.Err()
}

func (r *songRepository) CountByArtist(ctx context.Context, artistID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"artist": artistID})
}
