package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fightgraph/fightgraph/internal/models"
)

// HistoryHandler serves reconciled fight histories.
type HistoryHandler struct {
	repo HistoryRepository
	log  *logrus.Logger
}

// NewHistoryHandler creates a HistoryHandler with the given repository and logger.
func NewHistoryHandler(repo HistoryRepository, log *logrus.Logger) *HistoryHandler {
	return &HistoryHandler{repo: repo, log: log}
}

// GetHistory handles GET /api/fighters/:id/history.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	fighterID := c.Param("id")
	if err := validatePathID(fighterID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	entries, err := h.repo.FightHistory(c.Request.Context(), fighterID)
	if err != nil {
		if errors.Is(err, models.ErrFighterNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "fighter not found")

			return
		}

		h.log.WithError(err).Error("reconciling fight history")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"fighter_id": fighterID, "fights": entries, "count": len(entries)})
}
