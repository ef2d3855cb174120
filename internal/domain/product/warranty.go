package product

import (
	"time"

	"warrantydesk/internal/shared/biztime"
)

// Coverage describes the warranty state of a product at a point in time.
// A nil DaysLeft/EndDate means the warranty status is unavailable (missing
// purchase date or duration), which is distinct from expired.
type Coverage struct {
	OnWarranty bool
	DaysLeft   *int
	EndDate    *time.Time
}

// Available reports whether the warranty status could be determined.
func (c Coverage) Available() bool {
	return c.EndDate != nil
}

// ComputeCoverage derives the warranty coverage from a purchase date and a
// duration in months. Deterministic for a fixed now; no side effects.
//
// The warranty window runs through the end of the day the warranty ends on:
// days left is the ceiling of the remaining time to that instant, in whole
// days. A negative remainder means the warranty has expired (days left 0).
func ComputeCoverage(purchaseDate *time.Time, warrantyMonths *int, now time.Time) Coverage {
	if purchaseDate == nil || warrantyMonths == nil {
		return Coverage{OnWarranty: false, DaysLeft: nil, EndDate: nil}
	}

	endDate := biztime.AddMonthsClamped(biztime.TruncateToDate(*purchaseDate), *warrantyMonths)
	remaining := biztime.EndOfDay(endDate).Sub(now)

	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}

	if days < 0 {
		zero := 0
		return Coverage{OnWarranty: false, DaysLeft: &zero, EndDate: &endDate}
	}

	return Coverage{OnWarranty: true, DaysLeft: &days, EndDate: &endDate}
}
