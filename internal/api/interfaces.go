package api

import "github.com/fightgraph/fightgraph/internal/domain"

// Repository aliases for the handler dependencies. Handlers depend on
// the domain interfaces rather than re-declaring equivalent ones.
type (
	// FighterRepository defines roster operations used by FighterHandler.
	FighterRepository = domain.FighterService
	// HistoryRepository defines the reconciliation operation used by HistoryHandler.
	HistoryRepository = domain.HistoryService
	// StreakRepository defines the batch streak operation used by StreakHandler.
	StreakRepository = domain.StreakService
	// GraphRepository defines the aggregation operation used by GraphHandler.
	GraphRepository = domain.GraphService
)
