package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fightgraph/fightgraph/internal/models"
)

// GraphHandler serves the fighter relationship graph.
type GraphHandler struct {
	repo GraphRepository
	log  *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given repository and logger.
func NewGraphHandler(repo GraphRepository, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{repo: repo, log: log}
}

// Get handles GET /api/graph.
func (h *GraphHandler) Get(c *gin.Context) {
	filters := models.GraphFilters{
		Division: c.Query("division"),
		GroupBy:  c.Query("group_by"),
		Limit:    parseInt(c.DefaultQuery("limit", "0"), 0),
	}

	if raw := c.Query("from"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "from must be YYYY-MM-DD")

			return
		}

		filters.From = d
	}

	if raw := c.Query("to"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "to must be YYYY-MM-DD")

			return
		}

		filters.To = d
	}

	result, err := h.repo.RelationshipGraph(c.Request.Context(), filters)
	if err != nil {
		if isFilterError(err) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("aggregating relationship graph")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}

// isFilterError reports whether graph filters were rejected at the boundary.
func isFilterError(err error) bool {
	return errors.Is(err, models.ErrInvalidGroupBy) ||
		errors.Is(err, models.ErrInvalidLimit) ||
		errors.Is(err, models.ErrInvalidDateRange)
}
