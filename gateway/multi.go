package gateway

import (
	"context"
	"fmt"

	"github.com/sujalreset-source/streaming-backend/domain"
	"github.com/sujalreset-source/streaming-backend/logger"
)

// Config carries gateway credentials.
type Config struct {
	StripeKey      string
	RazorpayKeyID  string
	RazorpaySecret string
	PayPalClientID string
	PayPalSecret   string
	PayPalSandbox  bool
}

type multiProvisioner struct {
	stripe   *stripeClient
	razorpay *razorpayClient
	paypal   *paypalClient
}

// NewMultiProvisioner wires the three gateway clients behind the
// PlanProvisioner interface.
func NewMultiProvisioner(cfg Config) (PlanProvisioner, error) {
	pp, err := newPayPalClient(cfg.PayPalClientID, cfg.PayPalSecret, cfg.PayPalSandbox)
	if err != nil {
		return nil, err
	}
	return &multiProvisioner{
		stripe:   newStripeClient(cfg.StripeKey),
		razorpay: newRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpaySecret),
		paypal:   pp,
	}, nil
}

func (m *multiProvisioner) CreatePlans(ctx context.Context, artistName string, base domain.Price, cycle Cycle, converted []domain.ConvertedPrice) (*PlanIDs, error) {
	stripeID, err := m.stripe.createPlan(artistName, base, cycle)
	if err != nil {
		return nil, err
	}

	razorpayID, err := m.razorpay.createPlan(artistName, base, cycle)
	if err != nil {
		return nil, err
	}

	paypalPlans, err := m.paypal.createPlans(ctx, artistName, base, cycle, converted)
	if err != nil {
		return nil, err
	}

	logger.Info(logger.EventGeneral, "Provisioned subscription plans", logger.Fields(
		"artist", artistName,
		"cycle", cycle.Label,
		"currency", base.Currency,
	))

	return &PlanIDs{
		StripePriceID:  stripeID,
		RazorpayPlanID: razorpayID,
		PayPalPlans:    paypalPlans,
	}, nil
}

func (m *multiProvisioner) UpdatePlans(ctx context.Context, artist *domain.Artist, base domain.Price, cycle Cycle, converted []domain.ConvertedPrice) error {
	if len(artist.SubscriptionPlans) == 0 {
		return fmt.Errorf("artist %s has no subscription plan to update", artist.Slug)
	}

	plans, err := m.CreatePlans(ctx, artist.Name, base, cycle, converted)
	if err != nil {
		return err
	}

	// Gateway plans are immutable, so the entry is swapped wholesale. The
	// old gateway objects stay behind for existing subscribers.
	plan := &artist.SubscriptionPlans[0]
	plan.Cycle = cycle.Label
	plan.BasePrice = base
	plan.StripePriceID = plans.StripePriceID
	plan.RazorpayPlanID = plans.RazorpayPlanID
	plan.PayPalPlans = plans.PayPalPlans
	plan.ConvertedPrices = converted

	return nil
}
