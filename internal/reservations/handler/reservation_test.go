package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freezestore/internal/pricing"
	"freezestore/internal/reservations/service"
	apperrors "freezestore/pkg/errors"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReservationService struct {
	quoteFunc    func(ctx context.Context, input *model.QuoteInput) (pricing.Quote, error)
	createFunc   func(ctx context.Context, input *model.ReservationInput) (model.Reservation, error)
	extendFunc   func(ctx context.Context, id string, input *model.ExtendInput) (model.Reservation, error)
	completeFunc func(ctx context.Context, id string) (model.Reservation, error)
	deleteFunc   func(ctx context.Context, id string) error
	getAllFunc   func(ctx context.Context, filter model.ReservationFilter, limit int, offset int64) (*model.ReservationList, error)
	getByIDFunc  func(ctx context.Context, id string) (model.Reservation, error)
}

func (m *mockReservationService) Quote(ctx context.Context, input *model.QuoteInput) (pricing.Quote, error) {
	return m.quoteFunc(ctx, input)
}

func (m *mockReservationService) Create(ctx context.Context, input *model.ReservationInput) (model.Reservation, error) {
	return m.createFunc(ctx, input)
}

func (m *mockReservationService) Extend(ctx context.Context, id string, input *model.ExtendInput) (model.Reservation, error) {
	return m.extendFunc(ctx, id, input)
}

func (m *mockReservationService) Complete(ctx context.Context, id string) (model.Reservation, error) {
	return m.completeFunc(ctx, id)
}

func (m *mockReservationService) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockReservationService) GetAll(ctx context.Context, filter model.ReservationFilter, limit int, offset int64) (*model.ReservationList, error) {
	return m.getAllFunc(ctx, filter, limit, offset)
}

func (m *mockReservationService) GetByID(ctx context.Context, id string) (model.Reservation, error) {
	return m.getByIDFunc(ctx, id)
}

var _ service.ReservationService = (*mockReservationService)(nil)

func serve(svc service.ReservationService, method, target, body string) *httptest.ResponseRecorder {
	router := httprouter.New()
	NewReservationHandler(svc, logger.Discard()).RegisterRoutes(router)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestQuote(t *testing.T) {
	svc := &mockReservationService{
		quoteFunc: func(_ context.Context, input *model.QuoteInput) (pricing.Quote, error) {
			return pricing.DefaultConfig().Quote(input.SpacesNeeded, input.TotalDays), nil
		},
	}

	rec := serve(svc, http.MethodPost, "/api/v1/reservations/quote", `{"spaces_needed":3,"total_days":30}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data pricing.Quote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 16240, resp.Data.Total, 1e-9)
	assert.Equal(t, "IVA (16%)", resp.Data.TaxLabel)
}

func TestCreate(t *testing.T) {
	var got model.ReservationInput
	svc := &mockReservationService{
		createFunc: func(_ context.Context, input *model.ReservationInput) (model.Reservation, error) {
			got = *input
			return model.Reservation{ID: "r41", ClientID: input.ClientID, SpaceIDs: []int{1, 2}}, nil
		},
	}

	rec := serve(svc, http.MethodPost, "/api/v1/reservations",
		`{"client_id":"c1","spaces_needed":2,"total_days":15,"start_date":"2024-03-15"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "c1", got.ClientID)
	assert.Equal(t, 2, got.SpacesNeeded)
	assert.Equal(t, "2024-03-15", got.StartDate)
	assert.Contains(t, rec.Body.String(), `"id":"r41"`)
}

func TestCreate_Conflict(t *testing.T) {
	svc := &mockReservationService{
		createFunc: func(context.Context, *model.ReservationInput) (model.Reservation, error) {
			return model.Reservation{}, apperrors.Conflict("Requested spaces are already reserved")
		},
	}

	rec := serve(svc, http.MethodPost, "/api/v1/reservations",
		`{"client_id":"c1","spaces_needed":1,"total_days":1,"start_date":"2024-03-15","space_ids":[3]}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), apperrors.CodeConflict)
}

func TestGetAll(t *testing.T) {
	var gotFilter model.ReservationFilter
	svc := &mockReservationService{
		getAllFunc: func(_ context.Context, filter model.ReservationFilter, limit int, offset int64) (*model.ReservationList, error) {
			gotFilter = filter
			return &model.ReservationList{
				Reservations: []model.Reservation{{ID: "r1"}},
				Total:        1,
				Counts:       model.StatusCounts{All: 40, Active: 20, Expired: 15, Completed: 5},
			}, nil
		},
	}

	tests := []struct {
		name       string
		target     string
		wantFilter model.ReservationFilter
	}{
		{name: "no filter", target: "/api/v1/reservations"},
		{name: "all is empty", target: "/api/v1/reservations?status=all", wantFilter: model.ReservationFilter{}},
		{name: "status and search", target: "/api/v1/reservations?status=expired&search=norte",
			wantFilter: model.ReservationFilter{Status: model.StatusExpired, Search: "norte"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(svc, http.MethodGet, tt.target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantFilter, gotFilter)

			var resp struct {
				Data       []model.Reservation `json:"data"`
				TotalCount int64               `json:"total_count"`
				Limit      int                 `json:"limit"`
				Counts     model.StatusCounts  `json:"counts"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Data, 1)
			assert.Equal(t, int64(1), resp.TotalCount)
			assert.Equal(t, 10, resp.Limit)
			assert.Equal(t, 40, resp.Counts.All)
		})
	}
}

func TestExtend(t *testing.T) {
	var gotID string
	var gotDays int
	svc := &mockReservationService{
		extendFunc: func(_ context.Context, id string, input *model.ExtendInput) (model.Reservation, error) {
			gotID, gotDays = id, input.Days
			return model.Reservation{ID: id, TotalDays: 45}, nil
		},
	}

	rec := serve(svc, http.MethodPost, "/api/v1/reservations/id/r7/extend", `{"days":15}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "r7", gotID)
	assert.Equal(t, 15, gotDays)
}

func TestComplete(t *testing.T) {
	svc := &mockReservationService{
		completeFunc: func(_ context.Context, id string) (model.Reservation, error) {
			return model.Reservation{ID: id, Status: model.StatusCompleted}, nil
		},
	}

	rec := serve(svc, http.MethodPost, "/api/v1/reservations/id/r7/complete", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestDelete(t *testing.T) {
	svc := &mockReservationService{
		deleteFunc: func(_ context.Context, id string) error {
			if id == "r1" {
				return nil
			}
			return apperrors.NotFoundWithID("Reservation", id)
		},
	}

	assert.Equal(t, http.StatusNoContent, serve(svc, http.MethodDelete, "/api/v1/reservations/id/r1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(svc, http.MethodDelete, "/api/v1/reservations/id/r2", "").Code)
}

func TestGetByID(t *testing.T) {
	svc := &mockReservationService{
		getByIDFunc: func(_ context.Context, id string) (model.Reservation, error) {
			return model.Reservation{ID: id, ClientID: "c3"}, nil
		},
	}

	rec := serve(svc, http.MethodGet, "/api/v1/reservations/id/r12", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"client_id":"c3"`)
}
