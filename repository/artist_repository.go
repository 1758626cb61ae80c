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

type ArtistRepository interface {
	Create(ctx context.Context, a *domain.Artist) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Artist, error)
	Replace(ctx context.Context, a *domain.Artist) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListWithCounts(ctx context.Context, page, limit int64) ([]domain.ArtistWithCounts, error)
	ListAll(ctx context.Context) ([]*domain.Artist, error)
	Count(ctx context.Context) (int64, error)
}

type artistRepository struct {
	col *mongo.Collection
}

func NewArtistRepository(db *mongo.Database) ArtistRepository {
	col := db.Collection("artists")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})

	return &artistRepository{col: col}
}

func (r *artistRepository) Create(ctx context.Context, a *domain.Artist) error {
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

func (r *artistRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var artist domain.Artist
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindBySlug(ctx context.Context, slug string) (*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var artist domain.Artist
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// Replace writes the whole document back. Update paths load, mutate and
// save once, matching the single-write boundary of the create path.
func (r *artistRepository) Replace(ctx context.Context, a *domain.Artist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListWithCounts pages newest-first and joins per-artist song and album
// counts in a single aggregation.
func (r *artistRepository) ListWithCounts(ctx context.Context, page, limit int64) ([]domain.ArtistWithCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	skip := (page - 1) * limit
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "songs"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "artist"},
			{Key: "as", Value: "songs"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "albums"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "artist"},
			{Key: "as", Value: "albums"},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "slug", Value: 1},
			{Key: "image", Value: 1},
			{Key: "location", Value: 1},
			{Key: "bio", Value: 1},
			{Key: "subscription_plans", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "updated_at", Value: 1},
			{Key: "song_count", Value: bson.D{{Key: "$size", Value: "$songs"}}},
			{Key: "album_count", Value: bson.D{{Key: "$size", Value: "$albums"}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.ArtistWithCounts
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *artistRepository) ListAll(ctx context.Context) ([]*domain.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []*domain.Artist
	for cur.Next(ctx) {
		var a domain.Artist
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, cur.Err()
}

func (r *artistRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}
