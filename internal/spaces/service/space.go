package service

import (
	"context"
	"time"

	"freezestore/internal/spaces"
	"freezestore/internal/store"
	apperrors "freezestore/pkg/errors"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"
)

type SpaceList struct {
	Spaces    []model.Space          `json:"spaces"`
	Counts    model.SpaceCounts      `json:"counts"`
	Sections  []spaces.SectionCounts `json:"sections"`
	DerivedAt time.Time              `json:"derived_at"`
}

type Suggestion struct {
	Count     int   `json:"count"`
	SpaceIDs  []int `json:"space_ids"`
	Available int   `json:"available"`
}

type SpaceService interface {
	GetAll(ctx context.Context, status model.SpaceStatus, section model.Section) (*SpaceList, error)
	Suggest(ctx context.Context, count int) (*Suggestion, error)
}

type spaceService struct {
	store *store.Store
	log   *logger.Logger
}

func NewSpaceService(st *store.Store, log *logger.Logger) SpaceService {
	return &spaceService{store: st, log: log}
}

// GetAll returns the filtered spaces. Counts cover the whole warehouse regardless of filters.
func (s *spaceService) GetAll(_ context.Context, status model.SpaceStatus, section model.Section) (*SpaceList, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.InvalidInput("invalid status filter: " + string(status))
	}
	if section != "" && !section.Valid() {
		return nil, apperrors.InvalidInput("invalid section filter: " + string(section))
	}

	snap := s.store.Snapshot()
	return &SpaceList{
		Spaces:    spaces.Filter(snap.Spaces, status, section),
		Counts:    spaces.Count(snap.Spaces),
		Sections:  spaces.CountBySection(snap.Spaces),
		DerivedAt: snap.Now,
	}, nil
}

// Suggest never fails for an unmeetable count; the suggestion is simply empty.
func (s *spaceService) Suggest(_ context.Context, count int) (*Suggestion, error) {
	available := spaces.Available(s.store.Spaces())
	ids := spaces.Suggest(available, count)
	s.log.Debug("Spaces suggested", "count", count, "available", len(available), "space_ids", ids)
	return &Suggestion{Count: count, SpaceIDs: ids, Available: len(available)}, nil
}
