package service

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"freezestore/internal/pricing"
	reservationerrors "freezestore/internal/reservations/errors"
	"freezestore/internal/reservations/validator"
	"freezestore/internal/spaces"
	"freezestore/internal/store"
	"freezestore/internal/wizard"
	apperrors "freezestore/pkg/errors"
	"freezestore/pkg/model"
)

// createState is threaded through the create flow. The flow runs under the store's
// write lock, so snap is the state the new reservation will be appended to.
type createState struct {
	input *model.ReservationInput
	snap  store.Snapshot

	client      model.Client
	spaceIDs    []int
	start       time.Time
	end         time.Time
	financials  pricing.Financials
	reservation model.Reservation
}

func newCreateFlow(cfg pricing.Config) *wizard.Flow[createState] {
	return wizard.NewFlow("create-reservation",
		wizard.NewStep("client", clientStep),
		wizard.NewStep("spaces", spacesStep),
		wizard.NewStep("dates", datesStep),
		wizard.NewStep("pricing", func(_ context.Context, st *createState) error {
			st.financials = pricing.ComputeReservationFinancials(
				len(st.spaceIDs), st.input.TotalDays, cfg.PricePerDayPerSpace, cfg.HandlingFee, cfg.TaxRate)
			return nil
		}),
		wizard.NewStep("confirmation", func(_ context.Context, st *createState) error {
			st.reservation = model.Reservation{
				ID:          st.snap.NextReservationID(),
				ClientID:    st.client.ID,
				SpaceIDs:    st.spaceIDs,
				StartDate:   st.start,
				EndDate:     st.end,
				TotalDays:   st.input.TotalDays,
				PricePerDay: cfg.PricePerDayPerSpace,
				HandlingFee: cfg.HandlingFee,
				TaxRate:     cfg.TaxRate,
				Subtotal:    st.financials.Subtotal,
				Tax:         st.financials.Tax,
				Total:       st.financials.Total,
				Status:      pricing.DeriveStatus(st.start, st.end, st.snap.Now),
			}
			return nil
		}),
	)
}

func clientStep(_ context.Context, st *createState) error {
	client, ok := st.snap.Client(st.input.ClientID)
	if !ok {
		return apperrors.Wrap(reservationerrors.ErrClientNotFound, apperrors.CodeValidation,
			"Reservation client does not exist", http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"client_id": st.input.ClientID})
	}
	st.client = client
	return nil
}

// spacesStep takes the requested ids when given, all of which must be available,
// and otherwise asks the suggestion heuristic.
func spacesStep(_ context.Context, st *createState) error {
	if len(st.input.SpaceIDs) == 0 {
		available := spaces.Available(st.snap.Spaces)
		suggested := spaces.Suggest(available, st.input.SpacesNeeded)
		if len(suggested) == 0 {
			return apperrors.Wrap(reservationerrors.ErrNotEnoughSpaces, apperrors.CodeConflict,
				fmt.Sprintf("Only %d spaces are available", len(available)), http.StatusConflict).
				WithDetails(map[string]any{"requested": st.input.SpacesNeeded, "available": len(available)})
		}
		st.spaceIDs = suggested
		return nil
	}

	ids := slices.Clone(st.input.SpaceIDs)
	slices.Sort(ids)
	var taken []int
	for _, id := range ids {
		if st.snap.Spaces[id-1].Status != model.SpaceAvailable {
			taken = append(taken, id)
		}
	}
	if len(taken) > 0 {
		return apperrors.Wrap(reservationerrors.ErrSpaceTaken, apperrors.CodeConflict,
			"Requested spaces are already reserved", http.StatusConflict).
			WithDetails(map[string]any{"space_ids": taken})
	}
	st.spaceIDs = ids
	return nil
}

func datesStep(_ context.Context, st *createState) error {
	start, err := validator.ParseStartDate(st.input.StartDate)
	if err != nil {
		return apperrors.Validation("Invalid start date", map[string]any{"start_date": st.input.StartDate})
	}
	st.start = start
	st.end = pricing.EndDate(start, st.input.TotalDays)
	return nil
}
