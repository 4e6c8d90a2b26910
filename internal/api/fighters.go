package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fightgraph/fightgraph/internal/models"
)

// FighterHandler serves roster endpoints.
type FighterHandler struct {
	repo FighterRepository
	log  *logrus.Logger
}

// NewFighterHandler creates a FighterHandler with the given repository and logger.
func NewFighterHandler(repo FighterRepository, log *logrus.Logger) *FighterHandler {
	return &FighterHandler{repo: repo, log: log}
}

// List handles GET /api/fighters.
func (h *FighterHandler) List(c *gin.Context) {
	division := c.Query("division")
	limit := parseInt(c.DefaultQuery("limit", "100"), 100)

	fighters, err := h.repo.ListFighters(c.Request.Context(), division, limit)
	if err != nil {
		h.log.WithError(err).Error("listing fighters")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"fighters": fighters, "count": len(fighters)})
}

// Get handles GET /api/fighters/:id.
func (h *FighterHandler) Get(c *gin.Context) {
	fighterID := c.Param("id")
	if err := validatePathID(fighterID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	fighter, err := h.repo.GetFighter(c.Request.Context(), fighterID)
	if err != nil {
		if errors.Is(err, models.ErrFighterNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "fighter not found")

			return
		}

		h.log.WithError(err).Error("getting fighter")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, fighter)
}

// Create handles POST /api/fighters.
func (h *FighterHandler) Create(c *gin.Context) {
	var req models.CreateFighterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON payload")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	fighter, err := h.repo.CreateFighter(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "fighter already exists")

			return
		}

		h.log.WithError(err).Error("creating fighter")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusCreated, fighter)
}

// CreateBout handles POST /api/fighters/:id/bouts.
func (h *FighterHandler) CreateBout(c *gin.Context) {
	fighterID := c.Param("id")
	if err := validatePathID(fighterID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.CreateBoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON payload")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	bout, err := h.repo.CreateBout(c.Request.Context(), fighterID, req)
	if err != nil {
		if errors.Is(err, models.ErrFighterNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "fighter not found")

			return
		}

		h.log.WithError(err).Error("creating bout")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusCreated, bout)
}
