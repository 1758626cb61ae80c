package gateway

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/sujalreset-source/streaming-backend/domain"
)

type razorpayClient struct {
	client *razorpay.Client
}

func newRazorpayClient(keyID, keySecret string) *razorpayClient {
	return &razorpayClient{client: razorpay.NewClient(keyID, keySecret)}
}

func razorpayPeriod(cycle Cycle) string {
	if cycle.Interval == "year" {
		return "yearly"
	}
	return "monthly"
}

func (r *razorpayClient) createPlan(artistName string, base domain.Price, cycle Cycle) (string, error) {
	data := map[string]interface{}{
		"period":   razorpayPeriod(cycle),
		"interval": cycle.IntervalCount,
		"item": map[string]interface{}{
			"name":     fmt.Sprintf("%s subscription (%s)", artistName, cycle.Label),
			"amount":   minorUnits(base.Currency, base.Amount),
			"currency": base.Currency,
		},
	}

	plan, err := r.client.Plan.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay plan creation failed: %w", err)
	}

	id, ok := plan["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("razorpay plan response missing id")
	}
	return id, nil
}
