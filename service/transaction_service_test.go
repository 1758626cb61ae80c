package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sujalreset-source/streaming-backend/domain"
)

type mockTransactionRepo struct {
	Created      []*domain.Transaction
	FindResp     *domain.Transaction
	UpdateErr    error
	LastStatus   domain.TransactionStatus
	LastInvoice  string
	UpdateCalled bool
}

func (m *mockTransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	t.ID = primitive.NewObjectID()
	m.Created = append(m.Created, t)
	return nil
}

func (m *mockTransactionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Transaction, error) {
	if m.FindResp != nil {
		return m.FindResp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockTransactionRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.TransactionStatus, invoiceNumber string) error {
	m.UpdateCalled = true
	m.LastStatus = status
	m.LastInvoice = invoiceNumber
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	return nil
}

func TestRecordTransactionStartsPending(t *testing.T) {
	repo := &mockTransactionRepo{}
	svc := NewTransactionService(repo)

	tx, err := svc.Record(context.Background(), RecordTransactionInput{
		UserID:   "user-1",
		ItemType: domain.ItemSong,
		ItemID:   primitive.NewObjectID().Hex(),
		Gateway:  domain.GatewayStripe,
		Amount:   2.5,
		Currency: "USD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Status != domain.TxPending {
		t.Errorf("status: got %q, want pending", tx.Status)
	}
	if len(repo.Created) != 1 {
		t.Fatalf("expected one write, got %d", len(repo.Created))
	}
}

func TestRecordTransactionValidation(t *testing.T) {
	svc := NewTransactionService(&mockTransactionRepo{})
	itemID := primitive.NewObjectID().Hex()

	cases := map[string]RecordTransactionInput{
		"missing user":  {ItemType: domain.ItemSong, ItemID: itemID, Gateway: domain.GatewayStripe},
		"bad item id":   {UserID: "u", ItemType: domain.ItemSong, ItemID: "nope", Gateway: domain.GatewayStripe},
		"bad item type": {UserID: "u", ItemType: "merch", ItemID: itemID, Gateway: domain.GatewayStripe},
		"bad gateway":   {UserID: "u", ItemType: domain.ItemSong, ItemID: itemID, Gateway: "square"},
		"bad artist id": {UserID: "u", ItemType: domain.ItemArtistSubscription, ItemID: itemID, Gateway: domain.GatewayPayPal, ArtistID: "nope"},
	}
	for name, in := range cases {
		if _, err := svc.Record(context.Background(), in); !domain.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestSettleRejectsNonTerminalStatus(t *testing.T) {
	repo := &mockTransactionRepo{FindResp: &domain.Transaction{ID: primitive.NewObjectID()}}
	svc := NewTransactionService(repo)

	err := svc.Settle(context.Background(), repo.FindResp.ID.Hex(), domain.TxPending)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.UpdateCalled {
		t.Error("status update must not run for a rejected status")
	}
}

func TestSettleUnknownTransaction(t *testing.T) {
	svc := NewTransactionService(&mockTransactionRepo{})

	err := svc.Settle(context.Background(), primitive.NewObjectID().Hex(), domain.TxPaid)
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestSettlePaidAssignsInvoice(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockTransactionRepo{FindResp: &domain.Transaction{ID: id, Status: domain.TxPending}}
	svc := NewTransactionService(repo)

	if err := svc.Settle(context.Background(), id.Hex(), domain.TxPaid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.LastStatus != domain.TxPaid {
		t.Errorf("status: got %q, want paid", repo.LastStatus)
	}
	if !strings.HasPrefix(repo.LastInvoice, "INV-") {
		t.Errorf("invoice number not assigned: %q", repo.LastInvoice)
	}
	if !strings.HasSuffix(repo.LastInvoice, id.Hex()[18:]) {
		t.Errorf("invoice number missing transaction suffix: %q", repo.LastInvoice)
	}
}

func TestSettleFailedSkipsInvoice(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockTransactionRepo{FindResp: &domain.Transaction{ID: id, Status: domain.TxPending}}
	svc := NewTransactionService(repo)

	if err := svc.Settle(context.Background(), id.Hex(), domain.TxFailed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.LastInvoice != "" {
		t.Errorf("failed settlement must not mint an invoice, got %q", repo.LastInvoice)
	}
}

func TestSettlePropagatesStatusConflict(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockTransactionRepo{
		FindResp:  &domain.Transaction{ID: id, Status: domain.TxPaid},
		UpdateErr: domain.ErrInvalidStatusChange,
	}
	svc := NewTransactionService(repo)

	err := svc.Settle(context.Background(), id.Hex(), domain.TxFailed)
	if !errors.Is(err, domain.ErrInvalidStatusChange) {
		t.Fatalf("expected ErrInvalidStatusChange, got %v", err)
	}
}
