package pricing

import (
	"testing"
	"time"

	"freezestore/pkg/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeReservationFinancials(t *testing.T) {
	tests := []struct {
		name        string
		spaces      int
		days        int
		pricePerDay float64
		fee         float64
		rate        float64
		want        Financials
	}{
		{
			name: "three spaces for thirty days", spaces: 3, days: 30, pricePerDay: 150, fee: 500, rate: 0.16,
			want: Financials{Subtotal: 14000, Tax: 2240, Total: 16240},
		},
		{
			name: "single space single day", spaces: 1, days: 1, pricePerDay: 150, fee: 500, rate: 0.16,
			want: Financials{Subtotal: 650, Tax: 104, Total: 754},
		},
		{
			name: "no tax", spaces: 2, days: 10, pricePerDay: 100, fee: 0, rate: 0,
			want: Financials{Subtotal: 2000, Tax: 0, Total: 2000},
		},
		{
			name: "zero spaces still charges the fee", spaces: 0, days: 10, pricePerDay: 150, fee: 500, rate: 0.5,
			want: Financials{Subtotal: 500, Tax: 250, Total: 750},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeReservationFinancials(tt.spaces, tt.days, tt.pricePerDay, tt.fee, tt.rate)
			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.want.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.want.Total, got.Total, 1e-9)
		})
	}
}

func TestQuote(t *testing.T) {
	q := DefaultConfig().Quote(3, 30)

	assert.Equal(t, 13500.0, q.StorageCost)
	assert.Equal(t, 500.0, q.HandlingFee)
	assert.Equal(t, "IVA (16%)", q.TaxLabel)
	assert.InDelta(t, 16240, q.Total, 1e-9)
}

func TestRecompute_UsesSnapshot(t *testing.T) {
	r := model.Reservation{SpaceIDs: []int{1, 2}, TotalDays: 10, PricePerDay: 100, HandlingFee: 200, TaxRate: 0.1}

	got := Recompute(r)
	assert.InDelta(t, 2200, got.Subtotal, 1e-9)
	assert.InDelta(t, 220, got.Tax, 1e-9)
	assert.InDelta(t, 2420, got.Total, 1e-9)
}

func TestReservationTaxRate(t *testing.T) {
	tests := []struct {
		name string
		r    model.Reservation
		want float64
	}{
		{name: "snapshot wins", r: model.Reservation{TaxRate: 0.08, Subtotal: 1000, Tax: 160}, want: 0.08},
		{name: "derived from stored tax", r: model.Reservation{Subtotal: 1000, Tax: 160}, want: 0.16},
		{name: "nothing to derive from", r: model.Reservation{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ReservationTaxRate(tt.r), 1e-12)
		})
	}
}

func TestEndDate(t *testing.T) {
	start := time.Date(2024, 1, 30, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC), EndDate(start, 30))
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  model.ReservationStatus
	}{
		{name: "ended yesterday", start: now.Add(-30 * day), end: now.Add(-day), want: model.StatusExpired},
		{name: "in progress", start: now.Add(-day), end: now.Add(10 * day), want: model.StatusActive},
		{name: "ends exactly now", start: now.Add(-day), end: now, want: model.StatusActive},
		{name: "starts in the future", start: now.Add(5 * day), end: now.Add(35 * day), want: model.StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.start, tt.end, now))
		})
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	past := model.Reservation{StartDate: now.AddDate(0, 0, -40), EndDate: now.AddDate(0, 0, -10)}

	assert.Equal(t, model.StatusExpired, EffectiveStatus(past, now))

	past.Status = model.StatusActive
	assert.Equal(t, model.StatusExpired, EffectiveStatus(past, now), "stored active is re-derived")

	past.Status = model.StatusCompleted
	assert.Equal(t, model.StatusCompleted, EffectiveStatus(past, now))
}

func TestTaxLabel(t *testing.T) {
	assert.Equal(t, "IVA (16%)", TaxLabel(0.16))
	assert.Equal(t, "IVA (8%)", TaxLabel(0.08))
	assert.Equal(t, "IVA (10.5%)", TaxLabel(0.105))
	assert.Equal(t, "IVA (0%)", TaxLabel(0))
}
