// Package seed fills an empty store with the demonstration warehouse: 25 clients and
// 40 reservations dated relative to the current time.
package seed

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"freezestore/internal/pricing"
	"freezestore/internal/store"
	"freezestore/pkg/clock"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"
	"freezestore/pkg/sanitizer"
)

// Load seeds st unless it already holds clients or reservations. It reports whether
// anything was written.
func Load(ctx context.Context, st *store.Store, cfg pricing.Config, clk clock.Clock, log *logger.Logger) (bool, error) {
	snap := st.Snapshot()
	if len(snap.Clients) > 0 || len(snap.Reservations) > 0 {
		log.Info("Store already populated, skipping seed",
			"clients", len(snap.Clients),
			"reservations", len(snap.Reservations),
		)
		return false, nil
	}

	now := clk.Now()
	for i, c := range clients {
		client := model.Client{
			ID:        store.ClientIDPrefix + strconv.Itoa(i+1),
			Name:      c.name,
			RFC:       c.rfc,
			Phone:     sanitizer.NormalizePhone(c.phone),
			Email:     c.email,
			CreatedAt: now.AddDate(0, 0, -c.daysAgo).UTC(),
		}
		if err := st.AddClient(ctx, client); err != nil {
			return true, fmt.Errorf("seed client %s: %w", client.ID, err)
		}
	}

	for i, r := range reservations {
		reservation := Reservation(store.ReservationIDPrefix+strconv.Itoa(i+1), r.clientID, r.spaceIDs,
			now.AddDate(0, 0, -r.startDaysAgo), r.days, cfg, now)
		if err := st.AddReservation(ctx, reservation); err != nil {
			return true, fmt.Errorf("seed reservation %s: %w", reservation.ID, err)
		}
	}

	log.Info("Seed data loaded", "clients", len(clients), "reservations", len(reservations))
	return true, nil
}

// Reservation prices a reservation with cfg and labels it against now.
func Reservation(id, clientID string, spaceIDs []int, start time.Time, days int, cfg pricing.Config, now time.Time) model.Reservation {
	end := pricing.EndDate(start, days)
	financials := pricing.ComputeReservationFinancials(len(spaceIDs), days, cfg.PricePerDayPerSpace, cfg.HandlingFee, cfg.TaxRate)
	return model.Reservation{
		ID:          id,
		ClientID:    clientID,
		SpaceIDs:    slices.Clone(spaceIDs),
		StartDate:   start,
		EndDate:     end,
		TotalDays:   days,
		PricePerDay: cfg.PricePerDayPerSpace,
		HandlingFee: cfg.HandlingFee,
		TaxRate:     cfg.TaxRate,
		Subtotal:    financials.Subtotal,
		Tax:         financials.Tax,
		Total:       financials.Total,
		Status:      pricing.DeriveStatus(start, end, now),
	}
}
