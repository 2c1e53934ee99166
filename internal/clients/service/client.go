package service

import (
	"context"
	"errors"
	"strings"

	"freezestore/internal/clients/validator"
	"freezestore/internal/events"
	"freezestore/internal/store"
	apperrors "freezestore/pkg/errors"
	httputil "freezestore/pkg/http"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"
	"freezestore/pkg/sanitizer"
	"freezestore/pkg/validation"
)

type ClientService interface {
	Create(ctx context.Context, input *model.ClientInput) (model.Client, error)
	GetAll(ctx context.Context, search string, limit int, offset int64) ([]model.Client, int64, error)
	GetByID(ctx context.Context, id string) (*model.ClientProfile, error)
}

type clientService struct {
	store     *store.Store
	validator *validator.ClientValidator
	publisher events.Publisher
	log       *logger.Logger
}

func NewClientService(
	st *store.Store,
	validator *validator.ClientValidator,
	publisher events.Publisher,
	log *logger.Logger,
) ClientService {
	return &clientService{
		store:     st,
		validator: validator,
		publisher: publisher,
		log:       log,
	}
}

func (s *clientService) Create(ctx context.Context, input *model.ClientInput) (model.Client, error) {
	s.sanitize(input)
	if err := s.validate(input); err != nil {
		return model.Client{}, err
	}

	client, err := s.store.AddClientWith(ctx, func(snap store.Snapshot) (model.Client, error) {
		return model.Client{
			ID:        snap.NextClientID(),
			Name:      input.Name,
			RFC:       input.RFC,
			Phone:     input.Phone,
			Email:     input.Email,
			CreatedAt: snap.Now.UTC(),
		}, nil
	})
	if err != nil {
		s.log.Error("Failed to create client", "rfc", input.RFC, "error", err)
		return model.Client{}, apperrors.Internal("Failed to create client", err)
	}

	s.log.Info("Client created successfully", "id", client.ID, "rfc", client.RFC)
	events.Emit(ctx, s.publisher, s.log, events.Event{Type: events.ClientCreated, Key: client.ID, Payload: client})
	return client, nil
}

func (s *clientService) sanitize(input *model.ClientInput) {
	input.Name = sanitizer.NormalizeName(input.Name)
	input.RFC = sanitizer.NormalizeRFC(input.RFC)
	input.Phone = sanitizer.NormalizePhone(input.Phone)
	input.Email = sanitizer.NormalizeEmail(input.Email)
}

func (s *clientService) validate(input *model.ClientInput) error {
	err := s.validator.Validate(input)
	if err == nil {
		return nil
	}

	var validationErrs validation.ValidationErrors
	if errors.As(err, &validationErrs) {
		s.log.Warn("Client validation failed", "rfc", input.RFC, "error", err)
		return validationErrs.AppError("Invalid client input")
	}
	return apperrors.Internal("Failed to validate client", err)
}

// GetAll filters by a case-insensitive substring of name, RFC or email, then pages.
func (s *clientService) GetAll(_ context.Context, search string, limit int, offset int64) ([]model.Client, int64, error) {
	clients := s.store.Clients()

	if term := sanitizer.NormalizeSearch(search); term != "" {
		matched := clients[:0]
		for _, c := range clients {
			if matchesClient(c, term) {
				matched = append(matched, c)
			}
		}
		clients = matched
	}

	return httputil.Page(clients, limit, offset), int64(len(clients)), nil
}

func matchesClient(c model.Client, term string) bool {
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.RFC), term) ||
		strings.Contains(strings.ToLower(c.Email), term)
}

func (s *clientService) GetByID(_ context.Context, id string) (*model.ClientProfile, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Client ID cannot be empty")
	}

	snap := s.store.Snapshot()
	client, ok := snap.Client(id)
	if !ok {
		return nil, apperrors.NotFoundWithID("Client", id)
	}

	return BuildProfile(client, snap.ReservationsFor(id)), nil
}

// BuildProfile summarizes a client's reservations. Statuses must already be effective.
func BuildProfile(client model.Client, reservations []model.Reservation) *model.ClientProfile {
	profile := &model.ClientProfile{
		Client:       client,
		Reservations: reservations,
	}
	if profile.Reservations == nil {
		profile.Reservations = []model.Reservation{}
	}
	for _, r := range reservations {
		profile.TotalBilled += r.Total
		if r.Status == model.StatusActive {
			profile.ActiveReservations++
			profile.ActiveSpaces += len(r.SpaceIDs)
		}
	}
	return profile
}
