package service

import (
	"context"
	"testing"
	"time"

	clientsrepo "freezestore/internal/clients/repository"
	reservationsrepo "freezestore/internal/reservations/repository"
	"freezestore/internal/store"
	"freezestore/pkg/clock"
	apperrors "freezestore/pkg/errors"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) SpaceService {
	t.Helper()
	st := store.New(
		clientsrepo.NewMemoryClientRepository(),
		reservationsrepo.NewMemoryReservationRepository(),
		clock.NewFixed(now),
		logger.Discard(),
	)
	ctx := context.Background()
	require.NoError(t, st.AddReservation(ctx, model.Reservation{ID: "r1", ClientID: "c1", SpaceIDs: []int{1, 2, 3}, StartDate: now, EndDate: now.AddDate(0, 0, 30)}))
	require.NoError(t, st.AddReservation(ctx, model.Reservation{ID: "r2", ClientID: "c2", SpaceIDs: []int{30}, StartDate: now, EndDate: now.AddDate(0, 0, 3)}))
	return NewSpaceService(st, logger.Discard())
}

func TestGetAll(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, err := svc.GetAll(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all.Spaces, model.TotalSpaces)
	assert.Equal(t, model.SpaceCounts{Total: 100, Available: 96, Reserved: 3, ExpiringSoon: 1}, all.Counts)
	assert.Equal(t, now, all.DerivedAt)
	require.Len(t, all.Sections, 4)
	assert.Equal(t, 3, all.Sections[0].Occupied)
	assert.Equal(t, 1, all.Sections[1].Occupied)

	expiring, err := svc.GetAll(ctx, model.SpaceExpiringSoon, "")
	require.NoError(t, err)
	require.Len(t, expiring.Spaces, 1)
	assert.Equal(t, 30, expiring.Spaces[0].ID)
	assert.Equal(t, 100, expiring.Counts.Total)

	sectionC, err := svc.GetAll(ctx, model.SpaceAvailable, model.SectionC)
	require.NoError(t, err)
	assert.Len(t, sectionC.Spaces, 25)

	_, err = svc.GetAll(ctx, "full", "")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidInput))
	_, err = svc.GetAll(ctx, "", "E")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidInput))
}

func TestSuggest(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Suggest(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, got.SpaceIDs)
	assert.Equal(t, 96, got.Available)

	got, err = svc.Suggest(context.Background(), 97)
	require.NoError(t, err)
	assert.Empty(t, got.SpaceIDs)
}
