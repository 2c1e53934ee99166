package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"freezestore/internal/spaces/service"
	apperrors "freezestore/pkg/errors"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSpaceService struct {
	getAllFunc  func(ctx context.Context, status model.SpaceStatus, section model.Section) (*service.SpaceList, error)
	suggestFunc func(ctx context.Context, count int) (*service.Suggestion, error)
}

func (m *mockSpaceService) GetAll(ctx context.Context, status model.SpaceStatus, section model.Section) (*service.SpaceList, error) {
	return m.getAllFunc(ctx, status, section)
}

func (m *mockSpaceService) Suggest(ctx context.Context, count int) (*service.Suggestion, error) {
	return m.suggestFunc(ctx, count)
}

func serve(svc service.SpaceService, target string) *httptest.ResponseRecorder {
	router := httprouter.New()
	NewSpaceHandler(svc, logger.Discard()).RegisterRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetAll_PassesFilters(t *testing.T) {
	var gotStatus model.SpaceStatus
	var gotSection model.Section
	svc := &mockSpaceService{
		getAllFunc: func(_ context.Context, status model.SpaceStatus, section model.Section) (*service.SpaceList, error) {
			gotStatus, gotSection = status, section
			return &service.SpaceList{Spaces: []model.Space{{ID: 26, Section: model.SectionB, Status: model.SpaceAvailable}}}, nil
		},
	}

	rec := serve(svc, "/api/v1/spaces?status=available&section=B")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.SpaceAvailable, gotStatus)
	assert.Equal(t, model.SectionB, gotSection)
	assert.Contains(t, rec.Body.String(), `"id":26`)
}

func TestGetAll_InvalidFilter(t *testing.T) {
	svc := &mockSpaceService{
		getAllFunc: func(context.Context, model.SpaceStatus, model.Section) (*service.SpaceList, error) {
			return nil, apperrors.InvalidInput("invalid section filter: Z")
		},
	}

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/spaces?section=Z").Code)
}

func TestSuggest(t *testing.T) {
	svc := &mockSpaceService{
		suggestFunc: func(_ context.Context, count int) (*service.Suggestion, error) {
			return &service.Suggestion{Count: count, SpaceIDs: []int{4, 5, 6}, Available: 90}, nil
		},
	}

	rec := serve(svc, "/api/v1/spaces/suggest?count=3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"space_ids":[4,5,6]`)

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/spaces/suggest").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/spaces/suggest?count=two").Code)
}
