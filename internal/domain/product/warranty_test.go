package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warrantydesk/internal/shared/biztime"
)

func dateOf(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := biztime.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestComputeCoverage_Unavailable(t *testing.T) {
	now := dateOf(t, "2024-06-01")
	purchase := dateOf(t, "2024-01-01")
	months := 12

	tests := []struct {
		name           string
		purchaseDate   *time.Time
		warrantyMonths *int
	}{
		{"nil purchase date", nil, &months},
		{"nil warranty months", &purchase, nil},
		{"both nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cov := ComputeCoverage(tt.purchaseDate, tt.warrantyMonths, now)
			assert.False(t, cov.OnWarranty)
			assert.Nil(t, cov.DaysLeft)
			assert.Nil(t, cov.EndDate)
			assert.False(t, cov.Available())
		})
	}
}

func TestComputeCoverage_MonthOverflowClamps(t *testing.T) {
	purchase := dateOf(t, "2024-01-31")
	months := 1
	now := dateOf(t, "2024-02-01")

	cov := ComputeCoverage(&purchase, &months, now)
	require.NotNil(t, cov.EndDate)
	// Jan 31 + 1 month lands on the last day of February, never Mar 2.
	assert.Equal(t, "2024-02-29", biztime.FormatDate(*cov.EndDate))
	assert.True(t, cov.OnWarranty)
}

func TestComputeCoverage_PrinterScenario(t *testing.T) {
	purchase := dateOf(t, "2024-01-01")
	months := 12
	now := biztime.EndOfDay(dateOf(t, "2024-06-01"))

	cov := ComputeCoverage(&purchase, &months, now)
	require.NotNil(t, cov.EndDate)
	require.NotNil(t, cov.DaysLeft)
	assert.Equal(t, "2025-01-01", biztime.FormatDate(*cov.EndDate))
	assert.True(t, cov.OnWarranty)
	assert.Equal(t, 214, *cov.DaysLeft)
}

func TestComputeCoverage_Expired(t *testing.T) {
	purchase := dateOf(t, "2022-01-01")
	months := 6
	now := dateOf(t, "2024-06-01")

	cov := ComputeCoverage(&purchase, &months, now)
	require.NotNil(t, cov.DaysLeft)
	assert.False(t, cov.OnWarranty)
	assert.Equal(t, 0, *cov.DaysLeft)
	require.NotNil(t, cov.EndDate)
	assert.Equal(t, "2022-07-01", biztime.FormatDate(*cov.EndDate))
}

func TestComputeCoverage_LastDayBoundary(t *testing.T) {
	purchase := dateOf(t, "2024-01-01")
	months := 1
	endDate := dateOf(t, "2024-02-01")

	// Any instant before the end-of-day boundary is still on warranty.
	cov := ComputeCoverage(&purchase, &months, endDate.Add(12*time.Hour))
	require.NotNil(t, cov.DaysLeft)
	assert.True(t, cov.OnWarranty)
	assert.Equal(t, 1, *cov.DaysLeft)

	// Exactly at the boundary: zero days left, still on warranty.
	cov = ComputeCoverage(&purchase, &months, biztime.EndOfDay(endDate))
	require.NotNil(t, cov.DaysLeft)
	assert.True(t, cov.OnWarranty)
	assert.Equal(t, 0, *cov.DaysLeft)

	// Just past the boundary the ceiling still lands on zero whole days,
	// which counts as covered, mirroring the inclusive day arithmetic.
	cov = ComputeCoverage(&purchase, &months, biztime.EndOfDay(endDate).Add(time.Second))
	require.NotNil(t, cov.DaysLeft)
	assert.True(t, cov.OnWarranty)
	assert.Equal(t, 0, *cov.DaysLeft)

	// A full day past the boundary: expired.
	cov = ComputeCoverage(&purchase, &months, biztime.EndOfDay(endDate).Add(24*time.Hour+time.Second))
	require.NotNil(t, cov.DaysLeft)
	assert.False(t, cov.OnWarranty)
	assert.Equal(t, 0, *cov.DaysLeft)
}

func TestComputeCoverage_Deterministic(t *testing.T) {
	purchase := dateOf(t, "2024-01-01")
	months := 24
	now := dateOf(t, "2024-06-01")

	first := ComputeCoverage(&purchase, &months, now)
	second := ComputeCoverage(&purchase, &months, now)
	assert.Equal(t, *first.DaysLeft, *second.DaysLeft)
	assert.Equal(t, *first.EndDate, *second.EndDate)
	assert.Equal(t, first.OnWarranty, second.OnWarranty)
	assert.GreaterOrEqual(t, *first.DaysLeft, 0)
}
