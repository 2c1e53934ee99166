package sweep

import (
	"context"
	"testing"
	"time"

	clientsrepo "freezestore/internal/clients/repository"
	"freezestore/internal/events"
	"freezestore/internal/events/eventstest"
	reservationsrepo "freezestore/internal/reservations/repository"
	"freezestore/internal/store"
	"freezestore/pkg/clock"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Sweeper, *store.Store, *clock.Manual, *eventstest.Recorder) {
	t.Helper()
	clk := clock.NewManual(start)
	st := store.New(
		clientsrepo.NewMemoryClientRepository(),
		reservationsrepo.NewMemoryReservationRepository(),
		clk,
		logger.Discard(),
	)
	rec := eventstest.NewRecorder()
	return New(st, rec, logger.Discard()), st, clk, rec
}

func TestRun_FollowsTheClock(t *testing.T) {
	sweeper, st, clk, rec := setup(t)
	ctx := context.Background()
	require.NoError(t, st.AddReservation(ctx, model.Reservation{ID: "r1", ClientID: "c1", SpaceIDs: []int{3, 4}, StartDate: start, EndDate: start.AddDate(0, 0, 10)}))

	result := sweeper.Run(ctx)
	assert.Equal(t, 2, result.Counts.Reserved)
	assert.Empty(t, result.Announced)
	assert.Empty(t, rec.Events())

	clk.Advance(4 * 24 * time.Hour)
	result = sweeper.Run(ctx)
	assert.Equal(t, 2, result.Counts.ExpiringSoon)
	assert.Equal(t, []string{"r1"}, result.Announced)

	got := rec.Events()
	require.Len(t, got, 1)
	assert.Equal(t, events.SpaceExpiringSoon, got[0].Type)
	payload, ok := got[0].Payload.(ExpiringSoon)
	require.True(t, ok)
	assert.Equal(t, []int{3, 4}, payload.SpaceIDs)
	assert.Equal(t, 6, payload.DaysUntilExpiry)
	assert.Equal(t, "c1", payload.ClientID)
	assert.Equal(t, start.AddDate(0, 0, 10), payload.EndDate)
}

func TestRun_AnnouncesOncePerEndDate(t *testing.T) {
	sweeper, st, _, rec := setup(t)
	ctx := context.Background()
	require.NoError(t, st.AddReservation(ctx, model.Reservation{ID: "r1", ClientID: "c1", SpaceIDs: []int{1}, StartDate: start, EndDate: start.AddDate(0, 0, 2), TotalDays: 2}))

	sweeper.Run(ctx)
	sweeper.Run(ctx)
	assert.Len(t, rec.Events(), 1)

	// extending moves the end date; a later expiry is announced again
	days := 5
	_, err := st.UpdateReservation(ctx, "r1", model.ReservationPatch{TotalDays: &days})
	require.NoError(t, err)
	result := sweeper.Run(ctx)
	assert.Equal(t, []string{"r1"}, result.Announced)
	assert.Len(t, rec.Events(), 2)
}

func TestSchedule(t *testing.T) {
	sweeper, _, _, _ := setup(t)

	assert.NoError(t, sweeper.Schedule("@every 1h"))
	assert.Error(t, sweeper.Schedule("every hour"))

	sweeper.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sweeper.Stop(ctx)
}
