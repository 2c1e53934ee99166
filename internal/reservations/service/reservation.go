package service

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"freezestore/internal/events"
	"freezestore/internal/pricing"
	reservationerrors "freezestore/internal/reservations/errors"
	"freezestore/internal/reservations/validator"
	"freezestore/internal/store"
	"freezestore/internal/wizard"
	apperrors "freezestore/pkg/errors"
	httputil "freezestore/pkg/http"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"
	"freezestore/pkg/sanitizer"
	"freezestore/pkg/validation"
)

type ReservationService interface {
	Quote(ctx context.Context, input *model.QuoteInput) (pricing.Quote, error)
	Create(ctx context.Context, input *model.ReservationInput) (model.Reservation, error)
	Extend(ctx context.Context, id string, input *model.ExtendInput) (model.Reservation, error)
	Complete(ctx context.Context, id string) (model.Reservation, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context, filter model.ReservationFilter, limit int, offset int64) (*model.ReservationList, error)
	GetByID(ctx context.Context, id string) (model.Reservation, error)
}

type reservationService struct {
	store      *store.Store
	validator  *validator.ReservationValidator
	pricing    pricing.Config
	publisher  events.Publisher
	log        *logger.Logger
	createFlow *wizard.Flow[createState]
}

func NewReservationService(
	st *store.Store,
	validator *validator.ReservationValidator,
	pricingConfig pricing.Config,
	publisher events.Publisher,
	log *logger.Logger,
) ReservationService {
	s := &reservationService{
		store:     st,
		validator: validator,
		pricing:   pricingConfig,
		publisher: publisher,
		log:       log,
	}
	s.createFlow = newCreateFlow(pricingConfig)
	return s
}

func (s *reservationService) Quote(_ context.Context, input *model.QuoteInput) (pricing.Quote, error) {
	if err := s.validationError(s.validator.ValidateQuote(input), "Invalid quote request"); err != nil {
		return pricing.Quote{}, err
	}
	return s.pricing.Quote(input.SpacesNeeded, input.TotalDays), nil
}

func (s *reservationService) Create(ctx context.Context, input *model.ReservationInput) (model.Reservation, error) {
	input.ClientID = strings.TrimSpace(input.ClientID)
	input.StartDate = strings.TrimSpace(input.StartDate)
	if err := s.validationError(s.validator.ValidateCreate(input), "Invalid reservation request"); err != nil {
		return model.Reservation{}, err
	}

	reservation, err := s.store.AddReservationWith(ctx, func(snap store.Snapshot) (model.Reservation, error) {
		state := &createState{input: input, snap: snap}
		if err := s.createFlow.Run(ctx, state); err != nil {
			return model.Reservation{}, err
		}
		return state.reservation, nil
	})
	if err != nil {
		var stepErr *wizard.StepError
		if errors.As(err, &stepErr) {
			s.log.Warn("Reservation create rejected", "client_id", input.ClientID, "step", stepErr.Step, "error", stepErr.Err)
		}
		if apperrors.IsAppError(err) {
			return model.Reservation{}, apperrors.AsAppError(err)
		}
		s.log.Error("Failed to create reservation", "client_id", input.ClientID, "error", err)
		return model.Reservation{}, apperrors.Internal("Failed to create reservation", err)
	}

	s.log.Info("Reservation created successfully",
		"id", reservation.ID,
		"client_id", reservation.ClientID,
		"spaces", reservation.SpaceIDs,
		"total", reservation.Total,
	)
	events.Emit(ctx, s.publisher, s.log, events.Event{Type: events.ReservationCreated, Key: reservation.ID, Payload: reservation})
	return reservation, nil
}

// Extend adds days to the reservation and reprices it from its own price, fee and
// tax snapshot. Space ids are untouched.
func (s *reservationService) Extend(ctx context.Context, id string, input *model.ExtendInput) (model.Reservation, error) {
	if id == "" {
		return model.Reservation{}, apperrors.InvalidInput("Reservation ID cannot be empty")
	}
	if err := s.validationError(s.validator.ValidateExtend(input), "Invalid extend request"); err != nil {
		return model.Reservation{}, err
	}

	updated, found, err := s.store.UpdateReservationWith(ctx, id, func(current model.Reservation, _ store.Snapshot) (model.ReservationPatch, error) {
		if current.Status == model.StatusCompleted {
			return model.ReservationPatch{}, alreadyCompleted(id)
		}
		current.TotalDays += input.Days
		financials := pricing.Recompute(current)
		return model.ReservationPatch{
			TotalDays: &current.TotalDays,
			Subtotal:  &financials.Subtotal,
			Tax:       &financials.Tax,
			Total:     &financials.Total,
		}, nil
	})
	if err := s.updateError(id, found, err, "extend"); err != nil {
		return model.Reservation{}, err
	}

	s.log.Info("Reservation extended", "id", id, "days", input.Days, "total_days", updated.TotalDays, "end_date", updated.EndDate)
	events.Emit(ctx, s.publisher, s.log, events.Event{Type: events.ReservationExtended, Key: id, Payload: updated})
	return updated, nil
}

// Complete marks the reservation completed. Its spaces stay claimed until it is deleted.
func (s *reservationService) Complete(ctx context.Context, id string) (model.Reservation, error) {
	if id == "" {
		return model.Reservation{}, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	updated, found, err := s.store.UpdateReservationWith(ctx, id, func(current model.Reservation, _ store.Snapshot) (model.ReservationPatch, error) {
		if current.Status == model.StatusCompleted {
			return model.ReservationPatch{}, alreadyCompleted(id)
		}
		completed := model.StatusCompleted
		return model.ReservationPatch{Status: &completed}, nil
	})
	if err := s.updateError(id, found, err, "complete"); err != nil {
		return model.Reservation{}, err
	}

	s.log.Info("Reservation completed", "id", id)
	events.Emit(ctx, s.publisher, s.log, events.Event{Type: events.ReservationCompleted, Key: id, Payload: updated})
	return updated, nil
}

func (s *reservationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	existing, _ := s.store.Reservation(id)
	found, err := s.store.DeleteReservation(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete reservation", "id", id, "error", err)
		return apperrors.Internal("Failed to delete reservation", err)
	}
	if !found {
		return apperrors.NotFoundWithID("Reservation", id)
	}

	s.log.Info("Reservation deleted", "id", id, "released_spaces", existing.SpaceIDs)
	events.Emit(ctx, s.publisher, s.log, events.Event{Type: events.ReservationDeleted, Key: id, Payload: existing})
	return nil
}

// GetAll filters by effective status and a search term over client name, client RFC,
// reservation id and space ids. Counts always cover every reservation.
func (s *reservationService) GetAll(_ context.Context, filter model.ReservationFilter, limit int, offset int64) (*model.ReservationList, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperrors.InvalidInput("invalid status filter: " + string(filter.Status))
	}

	snap := s.store.Snapshot()
	clientsByID := make(map[string]model.Client, len(snap.Clients))
	for _, c := range snap.Clients {
		clientsByID[c.ID] = c
	}

	term := sanitizer.NormalizeSearch(filter.Search)
	var counts model.StatusCounts
	matched := make([]model.Reservation, 0, len(snap.Reservations))
	for _, r := range snap.Reservations {
		counts.Add(r.Status)
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if term != "" && !matchesReservation(r, clientsByID[r.ClientID], term) {
			continue
		}
		matched = append(matched, r)
	}

	return &model.ReservationList{
		Reservations: httputil.Page(matched, limit, offset),
		Total:        int64(len(matched)),
		Counts:       counts,
	}, nil
}

func matchesReservation(r model.Reservation, client model.Client, term string) bool {
	if strings.Contains(strings.ToLower(client.Name), term) ||
		strings.Contains(strings.ToLower(client.RFC), term) ||
		strings.Contains(strings.ToLower(r.ID), term) {
		return true
	}
	return slices.ContainsFunc(r.SpaceIDs, func(id int) bool {
		return strings.Contains(strconv.Itoa(id), term)
	})
}

func (s *reservationService) GetByID(_ context.Context, id string) (model.Reservation, error) {
	if id == "" {
		return model.Reservation{}, apperrors.InvalidInput("Reservation ID cannot be empty")
	}
	reservation, ok := s.store.Reservation(id)
	if !ok {
		return model.Reservation{}, apperrors.NotFoundWithID("Reservation", id)
	}
	return reservation, nil
}

func (s *reservationService) validationError(err error, message string) error {
	if err == nil {
		return nil
	}
	var validationErrs validation.ValidationErrors
	if errors.As(err, &validationErrs) {
		s.log.Warn(message, "error", err)
		return validationErrs.AppError(message)
	}
	return apperrors.Internal("Failed to validate request", err)
}

func (s *reservationService) updateError(id string, found bool, err error, op string) error {
	if !found {
		return apperrors.NotFoundWithID("Reservation", id)
	}
	if err == nil {
		return nil
	}
	if apperrors.IsAppError(err) {
		return apperrors.AsAppError(err)
	}
	s.log.Error("Failed to update reservation", "id", id, "operation", op, "error", err)
	return apperrors.Internal("Failed to "+op+" reservation", err)
}

func alreadyCompleted(id string) error {
	return apperrors.Wrap(reservationerrors.ErrAlreadyCompleted, apperrors.CodeConflict,
		"Reservation is already completed", http.StatusConflict).
		WithDetails(map[string]any{"id": id})
}
