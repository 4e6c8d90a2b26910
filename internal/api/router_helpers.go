package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fightgraph/fightgraph/internal/middleware"
)

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}

		log.WithFields(fields).Info("request")
	}
}

// maxQueryLimit caps the maximum number of items per query.
const maxQueryLimit = 1000

// maxPathIDLen caps path identifier length.
const maxPathIDLen = 255

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}

	if v > maxQueryLimit {
		return maxQueryLimit
	}

	return v
}

// parseWindow parses a streak window query value; unlike parseInt, zero
// is meaningful (unbounded) and negative values are rejected.
func parseWindow(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("window must be a non-negative integer")
	}

	return v, nil
}

// parseDate parses a YYYY-MM-DD query value.
func parseDate(s string) (*time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return &d, nil
}

// validatePathID rejects empty or oversized path identifiers.
func validatePathID(id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}

	if len(id) > maxPathIDLen {
		return fmt.Errorf("id exceeds maximum length of %d", maxPathIDLen)
	}

	return nil
}
