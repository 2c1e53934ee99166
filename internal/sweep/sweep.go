// Package sweep periodically re-derives space statuses against the wall clock and
// announces reservations whose spaces are about to expire.
package sweep

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"freezestore/internal/events"
	"freezestore/internal/spaces"
	"freezestore/internal/store"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"

	cron "github.com/robfig/cron/v3"
)

// ExpiringSoon is the payload of a space.expiring_soon event.
type ExpiringSoon struct {
	ReservationID   string    `json:"reservation_id"`
	ClientID        string    `json:"client_id"`
	SpaceIDs        []int     `json:"space_ids"`
	EndDate         time.Time `json:"end_date"`
	DaysUntilExpiry int       `json:"days_until_expiry"`
}

type Result struct {
	Counts    model.SpaceCounts
	Announced []string
}

type Sweeper struct {
	store     *store.Store
	publisher events.Publisher
	log       *logger.Logger
	cron      *cron.Cron

	mu sync.Mutex
	// announced maps a reservation id to the end date it was announced for, so an
	// extension re-arms the announcement.
	announced map[string]time.Time
}

func New(st *store.Store, publisher events.Publisher, log *logger.Logger) *Sweeper {
	return &Sweeper{
		store:     st,
		publisher: publisher,
		log:       log,
		cron:      cron.New(),
		announced: make(map[string]time.Time),
	}
}

// Schedule registers Run under a standard cron spec or descriptor such as "@every 1h".
func (s *Sweeper) Schedule(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { s.Run(context.Background()) }); err != nil {
		return fmt.Errorf("schedule expiry sweep %q: %w", spec, err)
	}
	s.log.Info("Expiry sweep scheduled", "schedule", spec)
	return nil
}

func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running sweep to finish or ctx to end.
func (s *Sweeper) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Expiry sweep did not stop in time", "error", ctx.Err())
	}
}

// Run refreshes the space list and publishes one event per reservation holding
// expiring-soon spaces that has not been announced for its current end date.
func (s *Sweeper) Run(ctx context.Context) Result {
	derived := s.store.Refresh()
	result := Result{Counts: spaces.Count(derived)}

	byReservation := make(map[string]*ExpiringSoon)
	var order []string
	for _, space := range derived {
		if space.Status != model.SpaceExpiringSoon {
			continue
		}
		entry, ok := byReservation[space.ReservationID]
		if !ok {
			entry = &ExpiringSoon{
				ReservationID:   space.ReservationID,
				ClientID:        space.ClientID,
				DaysUntilExpiry: *space.DaysUntilExpiry,
			}
			byReservation[space.ReservationID] = entry
			order = append(order, space.ReservationID)
		}
		entry.SpaceIDs = append(entry.SpaceIDs, space.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range order {
		reservation, ok := s.store.Reservation(id)
		if !ok {
			continue
		}
		if end, seen := s.announced[id]; seen && end.Equal(reservation.EndDate) {
			continue
		}
		entry := byReservation[id]
		entry.EndDate = reservation.EndDate
		events.Emit(ctx, s.publisher, s.log, events.Event{Type: events.SpaceExpiringSoon, Key: id, Payload: *entry})
		s.announced[id] = reservation.EndDate
		result.Announced = append(result.Announced, id)
	}

	for id := range s.announced {
		if !slices.Contains(order, id) {
			delete(s.announced, id)
		}
	}

	s.log.Info("Expiry sweep completed",
		"available", result.Counts.Available,
		"reserved", result.Counts.Reserved,
		"expiring_soon", result.Counts.ExpiringSoon,
		"announced", len(result.Announced),
	)
	return result
}
