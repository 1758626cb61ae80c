package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Price struct {
	Currency string  `bson:"currency" json:"currency"`
	Amount   float64 `bson:"amount" json:"amount"`
}

// ConvertedPrice carries the base price expressed in one other supported
// currency. Amount is nil when no rate is recorded for the pair.
type ConvertedPrice struct {
	Currency string   `bson:"currency" json:"currency"`
	Amount   *float64 `bson:"amount" json:"amount"`
}

// SubscriptionPlan is embedded in Artist and has no independent lifecycle.
type SubscriptionPlan struct {
	Cycle           string            `bson:"cycle" json:"cycle"`
	BasePrice       Price             `bson:"base_price" json:"base_price"`
	StripePriceID   string            `bson:"stripe_price_id,omitempty" json:"stripe_price_id,omitempty"`
	RazorpayPlanID  string            `bson:"razorpay_plan_id,omitempty" json:"razorpay_plan_id,omitempty"`
	PayPalPlans     map[string]string `bson:"paypal_plans,omitempty" json:"paypal_plans,omitempty"`
	ConvertedPrices []ConvertedPrice  `bson:"converted_prices" json:"converted_prices"`
}

type Artist struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Slug              string             `bson:"slug" json:"slug"`
	Bio               string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Location          string             `bson:"location,omitempty" json:"location,omitempty"`
	Image             string             `bson:"image,omitempty" json:"image,omitempty"`
	SubscriptionPlans []SubscriptionPlan `bson:"subscription_plans" json:"subscription_plans"`
	CreatedBy         string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy         string             `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

// ArtistWithCounts is the aggregation result for listing endpoints.
type ArtistWithCounts struct {
	Artist     `bson:",inline"`
	SongCount  int64 `bson:"song_count" json:"song_count"`
	AlbumCount int64 `bson:"album_count" json:"album_count"`
}
