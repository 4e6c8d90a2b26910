// Package service provides business logic between API handlers and data stores.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fightgraph/fightgraph/internal/domain"
	"github.com/fightgraph/fightgraph/internal/models"
)

// FighterStore is the data-access interface FighterService depends on.
// It reuses domain.FighterService since the method sets are identical.
type FighterStore = domain.FighterService

// Compile-time check: *FighterService must satisfy domain.FighterService.
var _ domain.FighterService = (*FighterService)(nil)

// FighterService wraps FighterStore with context-aware logging.
type FighterService struct {
	store FighterStore
	log   *logrus.Logger
}

// NewFighterService creates a FighterService.
func NewFighterService(store FighterStore, log *logrus.Logger) *FighterService {
	return &FighterService{store: store, log: log}
}

// ListFighters returns roster entries, optionally filtered by division.
func (s *FighterService) ListFighters(ctx context.Context, division string, limit int) ([]models.Fighter, error) {
	s.log.WithFields(logrus.Fields{
		"division": division,
		"limit":    limit,
	}).Debug("fighter.list")

	return s.store.ListFighters(ctx, division, limit)
}

// GetFighter returns one fighter by ID.
func (s *FighterService) GetFighter(ctx context.Context, fighterID string) (*models.Fighter, error) {
	s.log.WithField("fighter_id", fighterID).Debug("fighter.get")

	return s.store.GetFighter(ctx, fighterID)
}

// CreateFighter adds a roster entry.
func (s *FighterService) CreateFighter(ctx context.Context, req models.CreateFighterRequest) (*models.Fighter, error) {
	s.log.WithField("name", req.Name).Debug("fighter.create")

	return s.store.CreateFighter(ctx, req)
}

// CreateBout records a bout under the given fighter.
func (s *FighterService) CreateBout(ctx context.Context, fighterID string, req models.CreateBoutRequest) (*models.BoutRecord, error) {
	s.log.WithFields(logrus.Fields{
		"fighter_id": fighterID,
		"event":      req.EventName,
	}).Debug("fighter.create_bout")

	return s.store.CreateBout(ctx, fighterID, req)
}
