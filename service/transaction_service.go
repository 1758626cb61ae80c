package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sujalreset-source/streaming-backend/domain"
	"github.com/sujalreset-source/streaming-backend/logger"
	"github.com/sujalreset-source/streaming-backend/repository"
)

type RecordTransactionInput struct {
	UserID   string
	ItemType domain.ItemType
	ItemID   string
	ArtistID string
	Gateway  domain.Gateway
	Amount   float64
	Currency string
	Metadata map[string]string
}

type TransactionService interface {
	Record(ctx context.Context, in RecordTransactionInput) (*domain.Transaction, error)
	// Settle applies a gateway callback: pending transactions move to paid
	// or failed; anything else is rejected.
	Settle(ctx context.Context, transactionID string, status domain.TransactionStatus) error
}

type transactionService struct {
	transactions repository.TransactionRepository
}

func NewTransactionService(transactions repository.TransactionRepository) TransactionService {
	return &transactionService{transactions: transactions}
}

func (s *transactionService) Record(ctx context.Context, in RecordTransactionInput) (*domain.Transaction, error) {
	if in.UserID == "" {
		return nil, domain.Validationf("user id is required")
	}
	itemID, err := primitive.ObjectIDFromHex(in.ItemID)
	if err != nil {
		return nil, domain.Validationf("invalid item id")
	}
	switch in.ItemType {
	case domain.ItemSong, domain.ItemAlbum, domain.ItemArtistSubscription:
	default:
		return nil, domain.Validationf("invalid item type")
	}
	switch in.Gateway {
	case domain.GatewayStripe, domain.GatewayRazorpay, domain.GatewayPayPal:
	default:
		return nil, domain.Validationf("invalid gateway")
	}

	var artistID *primitive.ObjectID
	if in.ArtistID != "" {
		id, err := primitive.ObjectIDFromHex(in.ArtistID)
		if err != nil {
			return nil, domain.Validationf("invalid artist id")
		}
		artistID = &id
	}

	now := time.Now().UTC()
	tx := &domain.Transaction{
		UserID:    in.UserID,
		ItemType:  in.ItemType,
		ItemID:    itemID,
		ArtistID:  artistID,
		Gateway:   in.Gateway,
		Amount:    in.Amount,
		Currency:  in.Currency,
		Status:    domain.TxPending,
		Metadata:  in.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) Settle(ctx context.Context, transactionID string, status domain.TransactionStatus) error {
	if status != domain.TxPaid && status != domain.TxFailed {
		return domain.Validationf("status must be paid or failed")
	}

	id, err := primitive.ObjectIDFromHex(transactionID)
	if err != nil {
		return domain.ErrTransactionNotFound
	}
	if _, err := s.transactions.FindByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	invoice := ""
	if status == domain.TxPaid {
		invoice = newInvoiceNumber(id)
	}

	if err := s.transactions.UpdateStatus(ctx, id, status, invoice); err != nil {
		return err
	}

	logger.Info(logger.EventGeneral, "Transaction settled", logger.Fields(
		"transaction_id", transactionID,
		"status", string(status),
	))
	return nil
}

func newInvoiceNumber(id primitive.ObjectID) string {
	return fmt.Sprintf("INV-%s-%s", time.Now().UTC().Format("20060102"), id.Hex()[18:])
}
