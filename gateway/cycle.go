package gateway

import "github.com/sujalreset-source/streaming-backend/domain"

// Cycle is the billing interval descriptor derived from the request-level
// cycle label (1m, 3m, 6m, 12m).
type Cycle struct {
	Label         string
	Interval      string // "month" or "year"
	IntervalCount int
}

func CycleFromLabel(label string) (Cycle, error) {
	switch label {
	case "1m":
		return Cycle{Label: label, Interval: "month", IntervalCount: 1}, nil
	case "3m":
		return Cycle{Label: label, Interval: "month", IntervalCount: 3}, nil
	case "6m":
		return Cycle{Label: label, Interval: "month", IntervalCount: 6}, nil
	case "12m":
		return Cycle{Label: label, Interval: "year", IntervalCount: 1}, nil
	}
	return Cycle{}, domain.Validationf("invalid subscription cycle %q (expected 1m, 3m, 6m, 12m)", label)
}
