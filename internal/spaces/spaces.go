// Package spaces derives the state of the 100 warehouse spaces from the reservation
// list and suggests spaces for new reservations.
package spaces

import (
	"math"
	"time"

	"freezestore/pkg/model"
)

// ExpiringSoonDays is the inclusive threshold under which a claimed space is flagged.
const ExpiringSoonDays = 7

const sectionSize = 25

func SectionFor(id int) model.Section {
	switch {
	case id <= sectionSize:
		return model.SectionA
	case id <= 2*sectionSize:
		return model.SectionB
	case id <= 3*sectionSize:
		return model.SectionC
	default:
		return model.SectionD
	}
}

func ValidID(id int) bool {
	return id >= 1 && id <= model.TotalSpaces
}

// DaysUntil rounds the remaining time up to whole days. Past dates give zero or negative values.
func DaysUntil(end, now time.Time) int {
	return int(math.Ceil(float64(end.Sub(now)) / float64(24*time.Hour)))
}

// Derive overlays reservations onto the fixed layout. When two reservations claim the
// same id the later one in list order wins. The result always has TotalSpaces entries.
func Derive(reservations []model.Reservation, now time.Time) []model.Space {
	claims := make(map[int]*model.Reservation, model.TotalSpaces)
	for i := range reservations {
		for _, id := range reservations[i].SpaceIDs {
			claims[id] = &reservations[i]
		}
	}

	out := make([]model.Space, model.TotalSpaces)
	for i := range out {
		id := i + 1
		space := model.Space{ID: id, Section: SectionFor(id), Status: model.SpaceAvailable}

		if r, ok := claims[id]; ok {
			days := DaysUntil(r.EndDate, now)
			space.Status = model.SpaceReserved
			if days <= ExpiringSoonDays {
				space.Status = model.SpaceExpiringSoon
			}
			space.ReservationID = r.ID
			space.ClientID = r.ClientID
			space.DaysUntilExpiry = &days
		}
		out[i] = space
	}
	return out
}

func Available(spaces []model.Space) []model.Space {
	return Filter(spaces, model.SpaceAvailable, "")
}

// Filter keeps spaces matching status and section. Empty values match everything.
func Filter(spaces []model.Space, status model.SpaceStatus, section model.Section) []model.Space {
	out := make([]model.Space, 0, len(spaces))
	for _, s := range spaces {
		if status != "" && s.Status != status {
			continue
		}
		if section != "" && s.Section != section {
			continue
		}
		out = append(out, s)
	}
	return out
}

func Count(spaces []model.Space) model.SpaceCounts {
	counts := model.SpaceCounts{Total: len(spaces)}
	for _, s := range spaces {
		switch s.Status {
		case model.SpaceAvailable:
			counts.Available++
		case model.SpaceReserved:
			counts.Reserved++
		case model.SpaceExpiringSoon:
			counts.ExpiringSoon++
		}
	}
	return counts
}

type SectionCounts struct {
	Section   model.Section `json:"section"`
	Occupied  int           `json:"occupied"`
	Available int           `json:"available"`
}

func CountBySection(spaces []model.Space) []SectionCounts {
	index := make(map[model.Section]int, len(model.Sections))
	out := make([]SectionCounts, len(model.Sections))
	for i, section := range model.Sections {
		index[section] = i
		out[i].Section = section
	}
	for _, s := range spaces {
		i := index[s.Section]
		if s.Status == model.SpaceAvailable {
			out[i].Available++
		} else {
			out[i].Occupied++
		}
	}
	return out
}
