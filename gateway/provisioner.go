package gateway

import (
	"context"

	"github.com/sujalreset-source/streaming-backend/domain"
)

// PlanIDs holds the externally issued recurring-plan identifiers, one per
// payment gateway. PayPal needs a plan per currency.
type PlanIDs struct {
	StripePriceID  string
	RazorpayPlanID string
	PayPalPlans    map[string]string
}

// PlanProvisioner creates and replaces recurring billing plans on the
// payment gateways. Implementations must not persist anything.
type PlanProvisioner interface {
	CreatePlans(ctx context.Context, artistName string, base domain.Price, cycle Cycle, converted []domain.ConvertedPrice) (*PlanIDs, error)

	// UpdatePlans provisions fresh plans for the new price/cycle and swaps
	// the identifiers on the artist's first plan entry in place. Gateway
	// plans are immutable once created, so an update is a re-provision.
	UpdatePlans(ctx context.Context, artist *domain.Artist, base domain.Price, cycle Cycle, converted []domain.ConvertedPrice) error
}

// zero-decimal currencies are charged in whole units on every gateway.
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true,
	"KRW": true,
	"HUF": true,
	"VND": true,
}

// minorUnits expresses an amount in the smallest currency unit, the form
// Stripe and Razorpay expect.
func minorUnits(currency string, amount float64) int64 {
	if zeroDecimalCurrencies[currency] {
		return int64(amount + 0.5)
	}
	return int64(amount*100 + 0.5)
}
