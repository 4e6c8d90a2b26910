package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fightgraph/fightgraph/internal/models"
)

// StreakHandler serves streak computation endpoints.
type StreakHandler struct {
	repo StreakRepository
	log  *logrus.Logger
}

// NewStreakHandler creates a StreakHandler with the given repository and logger.
func NewStreakHandler(repo StreakRepository, log *logrus.Logger) *StreakHandler {
	return &StreakHandler{repo: repo, log: log}
}

// Batch handles POST /api/streaks: one set-oriented computation for the
// whole fighter batch.
func (h *StreakHandler) Batch(c *gin.Context) {
	var req models.StreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON payload")

		return
	}

	results, err := h.repo.Streaks(c.Request.Context(), req)
	if err != nil {
		if isValidationError(err) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("computing streaks")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"streaks": results})
}

// GetStreak handles GET /api/fighters/:id/streak, a single-fighter
// convenience over the batch computation.
func (h *StreakHandler) GetStreak(c *gin.Context) {
	fighterID := c.Param("id")
	if err := validatePathID(fighterID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	req := models.StreakRequest{FighterIDs: []string{fighterID}}

	if raw, ok := c.GetQuery("window"); ok {
		w, err := parseWindow(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		req.Window = &w
	}

	results, err := h.repo.Streaks(c.Request.Context(), req)
	if err != nil {
		if isValidationError(err) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("computing streak")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, results[fighterID])
}

// isValidationError reports whether an error from the streak service is
// caller input being rejected at the boundary, as opposed to an upstream
// fetch failure.
func isValidationError(err error) bool {
	return errors.Is(err, models.ErrMissingFighterIDs) ||
		errors.Is(err, models.ErrBatchTooLarge) ||
		errors.Is(err, models.ErrInvalidWindow)
}
