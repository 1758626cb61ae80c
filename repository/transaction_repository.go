package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sujalreset-source/streaming-backend/domain"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Transaction, error)
	// UpdateStatus transitions a pending transaction and stamps the
	// invoice number in the same write. Matched-zero means the record was
	// missing or already settled.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.TransactionStatus, invoiceNumber string) error
}

type transactionRepository struct {
	col *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) TransactionRepository {
	col := db.Collection("transactions")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})

	return &transactionRepository{col: col}
}

func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid
	}
	return nil
}

func (r *transactionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var tx domain.Transaction
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.TransactionStatus, invoiceNumber string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if invoiceNumber != "" {
		set["invoice_number"] = invoiceNumber
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": domain.TxPending},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvalidStatusChange
	}
	return nil
}
