// Package pricing holds the reservation money and status rules.
// Every function is pure; inputs are validated by callers.
package pricing

import (
	"math"
	"strconv"
	"time"

	"freezestore/pkg/model"
)

type Config struct {
	PricePerDayPerSpace float64 `json:"price_per_day_per_space"`
	HandlingFee         float64 `json:"handling_fee"`
	TaxRate             float64 `json:"tax_rate"`
}

func DefaultConfig() Config {
	return Config{PricePerDayPerSpace: 150, HandlingFee: 500, TaxRate: 0.16}
}

type Financials struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeReservationFinancials applies subtotal = spaces*days*price + fee, tax = subtotal*rate,
// total = subtotal + tax, in that order and without rounding.
func ComputeReservationFinancials(spaceCount, totalDays int, pricePerDay, handlingFee, taxRate float64) Financials {
	subtotal := StorageCost(spaceCount, totalDays, pricePerDay) + handlingFee
	tax := subtotal * taxRate
	return Financials{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

func StorageCost(spaceCount, totalDays int, pricePerDay float64) float64 {
	return float64(spaceCount*totalDays) * pricePerDay
}

type Quote struct {
	SpaceCount  int     `json:"space_count"`
	TotalDays   int     `json:"total_days"`
	PricePerDay float64 `json:"price_per_day"`
	StorageCost float64 `json:"storage_cost"`
	HandlingFee float64 `json:"handling_fee"`
	TaxRate     float64 `json:"tax_rate"`
	TaxLabel    string  `json:"tax_label"`
	Financials
}

func (c Config) Quote(spaceCount, totalDays int) Quote {
	return Quote{
		SpaceCount:  spaceCount,
		TotalDays:   totalDays,
		PricePerDay: c.PricePerDayPerSpace,
		StorageCost: StorageCost(spaceCount, totalDays, c.PricePerDayPerSpace),
		HandlingFee: c.HandlingFee,
		TaxRate:     c.TaxRate,
		TaxLabel:    TaxLabel(c.TaxRate),
		Financials:  ComputeReservationFinancials(spaceCount, totalDays, c.PricePerDayPerSpace, c.HandlingFee, c.TaxRate),
	}
}

// Recompute prices r again from its own price, fee and tax snapshot.
func Recompute(r model.Reservation) Financials {
	return ComputeReservationFinancials(len(r.SpaceIDs), r.TotalDays, r.PricePerDay, r.HandlingFee, ReservationTaxRate(r))
}

// ReservationTaxRate is the rate r was priced with. Records stored before the rate was
// snapshotted fall back to their own Tax/Subtotal ratio.
func ReservationTaxRate(r model.Reservation) float64 {
	if r.TaxRate != 0 || r.Subtotal == 0 {
		return r.TaxRate
	}
	return r.Tax / r.Subtotal
}

func EndDate(start time.Time, totalDays int) time.Time {
	return start.AddDate(0, 0, totalDays)
}

// DeriveStatus labels a reservation from its dates alone. A reservation that has not
// started yet is active; derivation never yields completed.
func DeriveStatus(start, end, now time.Time) model.ReservationStatus {
	if end.Before(now) {
		return model.StatusExpired
	}
	return model.StatusActive
}

// EffectiveStatus keeps a manually stored completed and derives everything else.
func EffectiveStatus(r model.Reservation, now time.Time) model.ReservationStatus {
	if r.Status == model.StatusCompleted {
		return model.StatusCompleted
	}
	return DeriveStatus(r.StartDate, r.EndDate, now)
}

// TaxLabel renders the rate the way it is printed on tickets, e.g. "IVA (16%)".
func TaxLabel(rate float64) string {
	percent := math.Round(rate*10000) / 100
	return "IVA (" + strconv.FormatFloat(percent, 'f', -1, 64) + "%)"
}
