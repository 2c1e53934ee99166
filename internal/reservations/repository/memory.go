package repository

import (
	"context"
	"slices"
	"sync"

	reservationserrors "freezestore/internal/reservations/errors"
	"freezestore/pkg/model"
)

type memoryReservationRepository struct {
	mu           sync.RWMutex
	reservations []model.Reservation
}

// NewMemoryReservationRepository keeps reservations for the lifetime of the process.
func NewMemoryReservationRepository() ReservationRepository {
	return &memoryReservationRepository{}
}

func (r *memoryReservationRepository) Create(_ context.Context, reservation *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reservations = append(r.reservations, reservation.Clone())
	return nil
}

func (r *memoryReservationRepository) FindAll(_ context.Context) ([]model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Reservation, len(r.reservations))
	for i, res := range r.reservations {
		out[i] = res.Clone()
	}
	return out, nil
}

func (r *memoryReservationRepository) Update(_ context.Context, reservation *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(reservation.ID)
	if i < 0 {
		return reservationserrors.ErrNotFound
	}
	r.reservations[i] = reservation.Clone()
	return nil
}

func (r *memoryReservationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return reservationserrors.ErrNotFound
	}
	r.reservations = slices.Delete(r.reservations, i, i+1)
	return nil
}

func (r *memoryReservationRepository) indexOf(id string) int {
	return slices.IndexFunc(r.reservations, func(res model.Reservation) bool { return res.ID == id })
}
