package store

import (
	"slices"
	"time"

	"freezestore/pkg/model"
)

// Snapshot is a consistent, caller-owned copy of the store at one instant.
type Snapshot struct {
	Now          time.Time
	Clients      []model.Client
	Reservations []model.Reservation
	Spaces       []model.Space
}

func (s Snapshot) Client(id string) (model.Client, bool) {
	return findClient(s.Clients, id)
}

func (s Snapshot) Reservation(id string) (model.Reservation, bool) {
	i := slices.IndexFunc(s.Reservations, func(r model.Reservation) bool { return r.ID == id })
	if i < 0 {
		return model.Reservation{}, false
	}
	return s.Reservations[i], true
}

func (s Snapshot) NextClientID() string {
	ids := make([]string, len(s.Clients))
	for i, c := range s.Clients {
		ids[i] = c.ID
	}
	return nextID(ClientIDPrefix, ids)
}

func (s Snapshot) NextReservationID() string {
	ids := make([]string, len(s.Reservations))
	for i, r := range s.Reservations {
		ids[i] = r.ID
	}
	return nextID(ReservationIDPrefix, ids)
}

// ReservationsFor returns the client's reservations in list order.
func (s Snapshot) ReservationsFor(clientID string) []model.Reservation {
	var out []model.Reservation
	for _, r := range s.Reservations {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	return out
}
