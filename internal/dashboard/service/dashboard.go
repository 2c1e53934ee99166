// Package service aggregates the warehouse overview shown on the dashboard.
package service

import (
	"cmp"
	"context"
	"math"
	"slices"
	"time"

	"freezestore/internal/spaces"
	"freezestore/internal/store"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"
)

const topClientsLimit = 5

type TopClient struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Spaces   int    `json:"spaces"`
}

type ClientCounts struct {
	Total        int `json:"total"`
	WithActive   int `json:"with_active_reservations"`
	NewThisMonth int `json:"new_this_month"`
}

type Summary struct {
	GeneratedAt    time.Time              `json:"generated_at"`
	Spaces         model.SpaceCounts      `json:"spaces"`
	OccupiedSpaces int                    `json:"occupied_spaces"`
	OccupancyRate  float64                `json:"occupancy_rate"`
	MonthlyRevenue float64                `json:"monthly_revenue"`
	Sections       []spaces.SectionCounts `json:"sections"`
	TopClients     []TopClient            `json:"top_clients"`
	Reservations   model.StatusCounts     `json:"reservations"`
	Clients        ClientCounts           `json:"clients"`
}

type DashboardService interface {
	Get(ctx context.Context) (*Summary, error)
}

type dashboardService struct {
	store *store.Store
	log   *logger.Logger
}

func NewDashboardService(st *store.Store, log *logger.Logger) DashboardService {
	return &dashboardService{store: st, log: log}
}

func (s *dashboardService) Get(_ context.Context) (*Summary, error) {
	return Summarize(s.store.Snapshot()), nil
}

// Summarize computes every dashboard figure from one snapshot.
func Summarize(snap store.Snapshot) *Summary {
	counts := spaces.Count(snap.Spaces)
	summary := &Summary{
		GeneratedAt:    snap.Now,
		Spaces:         counts,
		OccupiedSpaces: counts.Occupied(),
		OccupancyRate:  occupancyRate(counts),
		Sections:       spaces.CountBySection(snap.Spaces),
		TopClients:     []TopClient{},
	}

	activeSpaces := make(map[string]int)
	var order []string
	for _, r := range snap.Reservations {
		summary.Reservations.Add(r.Status)
		if r.Status != model.StatusActive {
			continue
		}
		if sameMonth(r.StartDate, snap.Now) {
			summary.MonthlyRevenue += r.Total
		}
		if _, seen := activeSpaces[r.ClientID]; !seen {
			order = append(order, r.ClientID)
		}
		activeSpaces[r.ClientID] += len(r.SpaceIDs)
	}

	names := make(map[string]string, len(snap.Clients))
	for _, c := range snap.Clients {
		names[c.ID] = c.Name
		summary.Clients.Total++
		if activeSpaces[c.ID] > 0 {
			summary.Clients.WithActive++
		}
		if sameMonth(c.CreatedAt, snap.Now) {
			summary.Clients.NewThisMonth++
		}
	}

	for _, id := range order {
		summary.TopClients = append(summary.TopClients, TopClient{ClientID: id, Name: names[id], Spaces: activeSpaces[id]})
	}
	slices.SortStableFunc(summary.TopClients, func(a, b TopClient) int {
		return cmp.Compare(b.Spaces, a.Spaces)
	})
	if len(summary.TopClients) > topClientsLimit {
		summary.TopClients = summary.TopClients[:topClientsLimit]
	}

	return summary
}

// occupancyRate is a percentage rounded to one decimal.
func occupancyRate(c model.SpaceCounts) float64 {
	if c.Total == 0 {
		return 0
	}
	return math.Round(float64(c.Occupied())/float64(c.Total)*1000) / 10
}

func sameMonth(t, now time.Time) bool {
	t = t.In(now.Location())
	return t.Year() == now.Year() && t.Month() == now.Month()
}
