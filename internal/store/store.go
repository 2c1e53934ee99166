// Package store owns the client and reservation collections and the space list derived
// from them. It is a write-through cache over the repositories: a single writer mutates
// both, re-derives spaces, and only then releases the lock, so readers see either the
// state before a mutation or the state after it.
package store

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	clientsrepo "freezestore/internal/clients/repository"
	"freezestore/internal/pricing"
	reservationsrepo "freezestore/internal/reservations/repository"
	"freezestore/internal/spaces"
	"freezestore/pkg/clock"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"
)

const (
	ClientIDPrefix      = "c"
	ReservationIDPrefix = "r"
)

type Store struct {
	mu           sync.RWMutex
	clients      []model.Client
	reservations []model.Reservation
	spaces       []model.Space
	derivedAt    time.Time
	seq          int64

	clientRepo      clientsrepo.ClientRepository
	reservationRepo reservationsrepo.ReservationRepository
	clock           clock.Clock
	log             *logger.Logger
}

func New(
	clientRepo clientsrepo.ClientRepository,
	reservationRepo reservationsrepo.ReservationRepository,
	clk clock.Clock,
	log *logger.Logger,
) *Store {
	s := &Store{
		clientRepo:      clientRepo,
		reservationRepo: reservationRepo,
		clock:           clk,
		log:             log,
	}
	s.rederive()
	return s
}

// Load replaces the cached collections with the repositories' contents.
func (s *Store) Load(ctx context.Context) error {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load clients: %w", err)
	}
	reservations, err := s.reservationRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load reservations: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = clients
	s.reservations = reservations
	s.seq = 0
	for _, c := range clients {
		s.seq = max(s.seq, c.Sequence)
	}
	for _, r := range reservations {
		s.seq = max(s.seq, r.Sequence)
	}
	s.rederive()

	s.log.Info("Store loaded", "clients", len(clients), "reservations", len(reservations))
	return nil
}

// rederive must be called with the write lock held.
func (s *Store) rederive() {
	s.derivedAt = s.clock.Now()
	s.spaces = spaces.Derive(s.reservations, s.derivedAt)
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

// AddClient appends c as given. Id uniqueness is the caller's concern.
func (s *Store) AddClient(ctx context.Context, c model.Client) error {
	_, err := s.AddClientWith(ctx, func(Snapshot) (model.Client, error) { return c, nil })
	return err
}

// AddClientWith builds the client from a consistent snapshot and appends it under the
// same lock, so ids derived from the snapshot cannot collide. build must not call the Store.
func (s *Store) AddClientWith(ctx context.Context, build func(Snapshot) (model.Client, error)) (model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := build(s.snapshotLocked())
	if err != nil {
		return model.Client{}, err
	}
	c.Sequence = s.seq + 1
	if err := s.clientRepo.Create(ctx, &c); err != nil {
		return model.Client{}, err
	}
	s.nextSeq()
	s.clients = append(s.clients, c)
	return c, nil
}

// AddReservation appends a fully formed reservation and re-derives spaces.
func (s *Store) AddReservation(ctx context.Context, r model.Reservation) error {
	_, err := s.AddReservationWith(ctx, func(Snapshot) (model.Reservation, error) { return r, nil })
	return err
}

// AddReservationWith is the atomic form of AddReservation. build must not call the Store.
func (s *Store) AddReservationWith(ctx context.Context, build func(Snapshot) (model.Reservation, error)) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := build(s.snapshotLocked())
	if err != nil {
		return model.Reservation{}, err
	}
	r = r.Clone()
	r.Sequence = s.seq + 1
	if err := s.reservationRepo.Create(ctx, &r); err != nil {
		return model.Reservation{}, err
	}
	s.nextSeq()
	s.reservations = append(s.reservations, r)
	s.rederive()
	return s.effective(r), nil
}

// UpdateReservation merges patch into the reservation with id. It reports false, and does
// nothing, when the id is unknown. Financials are stored as given, never recomputed here.
func (s *Store) UpdateReservation(ctx context.Context, id string, patch model.ReservationPatch) (bool, error) {
	_, found, err := s.UpdateReservationWith(ctx, id, func(model.Reservation, Snapshot) (model.ReservationPatch, error) {
		return patch, nil
	})
	return found, err
}

// UpdateReservationWith computes the patch from the current reservation under the write
// lock. build must not call the Store.
func (s *Store) UpdateReservationWith(
	ctx context.Context,
	id string,
	build func(current model.Reservation, snap Snapshot) (model.ReservationPatch, error),
) (model.Reservation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfReservation(id)
	if i < 0 {
		return model.Reservation{}, false, nil
	}

	current := s.reservations[i].Clone()
	patch, err := build(s.effective(current), s.snapshotLocked())
	if err != nil {
		return model.Reservation{}, true, err
	}

	updated := applyPatch(current, patch)
	if err := s.reservationRepo.Update(ctx, &updated); err != nil {
		return model.Reservation{}, true, err
	}
	s.reservations[i] = updated
	s.rederive()
	return s.effective(updated), true, nil
}

func applyPatch(r model.Reservation, p model.ReservationPatch) model.Reservation {
	if p.SpaceIDs != nil {
		r.SpaceIDs = slices.Clone(p.SpaceIDs)
	}
	if p.TotalDays != nil {
		r.TotalDays = *p.TotalDays
		r.EndDate = pricing.EndDate(r.StartDate, r.TotalDays)
	}
	if p.Subtotal != nil {
		r.Subtotal = *p.Subtotal
	}
	if p.Tax != nil {
		r.Tax = *p.Tax
	}
	if p.Total != nil {
		r.Total = *p.Total
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	return r
}

// DeleteReservation removes the reservation and frees its spaces. It reports whether the id existed.
func (s *Store) DeleteReservation(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfReservation(id)
	if i < 0 {
		return false, nil
	}
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		return true, err
	}
	s.reservations = slices.Delete(s.reservations, i, i+1)
	s.rederive()
	return true, nil
}

// Refresh re-derives and caches spaces against the current time without changing any
// reservation.
func (s *Store) Refresh() []model.Space {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rederive()
	return slices.Clone(s.spaces)
}

// Spaces is the space list as of the clock's current time.
func (s *Store) Spaces() []model.Space {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spacesAt(s.clock.Now())
}

// spacesAt reuses the cached derivation only when it was computed for now.
// Callers hold at least the read lock.
func (s *Store) spacesAt(now time.Time) []model.Space {
	if now.Equal(s.derivedAt) {
		return slices.Clone(s.spaces)
	}
	return spaces.Derive(s.reservations, now)
}

func (s *Store) Clients() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.clients)
}

func (s *Store) Client(id string) (model.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findClient(s.clients, id)
}

// Reservations returns copies in list order with their effective status.
func (s *Store) Reservations() []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.effectiveAt(s.clock.Now())
}

func (s *Store) Reservation(id string) (model.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOfReservation(id)
	if i < 0 {
		return model.Reservation{}, false
	}
	return s.effective(s.reservations[i].Clone()), true
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// snapshotLocked reads the clock once so statuses and spaces agree on the instant.
func (s *Store) snapshotLocked() Snapshot {
	now := s.clock.Now()
	return Snapshot{
		Now:          now,
		Clients:      slices.Clone(s.clients),
		Reservations: s.effectiveAt(now),
		Spaces:       s.spacesAt(now),
	}
}

func (s *Store) effectiveAt(now time.Time) []model.Reservation {
	out := make([]model.Reservation, len(s.reservations))
	for i, r := range s.reservations {
		r = r.Clone()
		r.Status = pricing.EffectiveStatus(r, now)
		out[i] = r
	}
	return out
}

func (s *Store) effective(r model.Reservation) model.Reservation {
	r.Status = pricing.EffectiveStatus(r, s.clock.Now())
	return r
}

func (s *Store) indexOfReservation(id string) int {
	return slices.IndexFunc(s.reservations, func(r model.Reservation) bool { return r.ID == id })
}

func findClient(clients []model.Client, id string) (model.Client, bool) {
	i := slices.IndexFunc(clients, func(c model.Client) bool { return c.ID == id })
	if i < 0 {
		return model.Client{}, false
	}
	return clients[i], true
}

// nextID returns prefix followed by one more than the largest numeric suffix in use.
func nextID(prefix string, ids []string) string {
	highest := 0
	for _, id := range ids {
		rest, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > highest {
			highest = n
		}
	}
	return prefix + strconv.Itoa(highest+1)
}
