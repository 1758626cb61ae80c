package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ItemType string

const (
	ItemSong               ItemType = "song"
	ItemAlbum              ItemType = "album"
	ItemArtistSubscription ItemType = "artist-subscription"
)

type Gateway string

const (
	GatewayStripe   Gateway = "stripe"
	GatewayRazorpay Gateway = "razorpay"
	GatewayPayPal   Gateway = "paypal"
)

type TransactionStatus string

const (
	TxPending TransactionStatus = "pending"
	TxPaid    TransactionStatus = "paid"
	TxFailed  TransactionStatus = "failed"
)

// Transaction is an append-mostly payment record. Status only moves
// forward from pending on gateway callbacks.
type Transaction struct {
	ID                   primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID               string              `bson:"user_id" json:"user_id"`
	ItemType             ItemType            `bson:"item_type" json:"item_type"`
	ItemID               primitive.ObjectID  `bson:"item_id" json:"item_id"`
	ArtistID             *primitive.ObjectID `bson:"artist,omitempty" json:"artist_id,omitempty"`
	Gateway              Gateway             `bson:"gateway" json:"gateway"`
	Amount               float64             `bson:"amount" json:"amount"`
	Currency             string              `bson:"currency" json:"currency"`
	Status               TransactionStatus   `bson:"status" json:"status"`
	PaymentIntentID      string              `bson:"payment_intent_id,omitempty" json:"-"`
	RazorpayOrderID      string              `bson:"razorpay_order_id,omitempty" json:"-"`
	StripeSubscriptionID string              `bson:"stripe_subscription_id,omitempty" json:"-"`
	PayPalOrderID        string              `bson:"paypal_order_id,omitempty" json:"-"`
	InvoiceNumber        string              `bson:"invoice_number,omitempty" json:"invoice_number,omitempty"`
	Metadata             map[string]string   `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt            time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time           `bson:"updated_at" json:"updated_at"`
}
