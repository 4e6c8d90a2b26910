package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fightgraph/fightgraph/internal/api"
	"github.com/fightgraph/fightgraph/internal/models"
)

func TestGetGraph_PassesFilters(t *testing.T) {
	t.Parallel()

	repo := &mockGraphRepo{
		graphFn: func(_ context.Context, filters models.GraphFilters) (*models.GraphResult, error) {
			if filters.Division != "welterweight" {
				t.Errorf("division = %q, want welterweight", filters.Division)
			}
			if filters.Limit != 50 {
				t.Errorf("limit = %d, want 50", filters.Limit)
			}
			if filters.From == nil || !filters.From.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
				t.Errorf("from = %v, want 2023-01-01", filters.From)
			}

			return &models.GraphResult{
				Nodes: []models.GraphNode{{FighterID: "f1", Name: "Ana Silva"}},
				Links: []models.GraphLink{},
			}, nil
		},
	}

	r := gin.New()
	r.GET("/graph", api.NewGraphHandler(repo, testLogger()).Get)

	w := doRequest(r, http.MethodGet, "/graph?division=welterweight&limit=50&from=2023-01-01", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body models.GraphResult
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(body.Nodes) != 1 || body.Nodes[0].FighterID != "f1" {
		t.Errorf("unexpected nodes: %+v", body.Nodes)
	}
}

func TestGetGraph_BadDate(t *testing.T) {
	t.Parallel()

	repo := &mockGraphRepo{}

	r := gin.New()
	r.GET("/graph", api.NewGraphHandler(repo, testLogger()).Get)

	for _, q := range []string{"from=yesterday", "to=2023-13-45"} {
		w := doRequest(r, http.MethodGet, "/graph?"+q, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: expected 400, got %d", q, w.Code)
		}
	}
}

func TestGetGraph_InvalidGroupBy(t *testing.T) {
	t.Parallel()

	repo := &mockGraphRepo{
		graphFn: func(_ context.Context, filters models.GraphFilters) (*models.GraphResult, error) {
			if err := filters.Validate(); err != nil {
				return nil, err
			}

			return &models.GraphResult{}, nil
		},
	}

	r := gin.New()
	r.GET("/graph", api.NewGraphHandler(repo, testLogger()).Get)

	w := doRequest(r, http.MethodGet, "/graph?group_by=weight_class", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetGraph_LimitCapped(t *testing.T) {
	t.Parallel()

	repo := &mockGraphRepo{
		graphFn: func(_ context.Context, filters models.GraphFilters) (*models.GraphResult, error) {
			if filters.Limit != 1000 {
				t.Errorf("limit = %d, want capped at 1000", filters.Limit)
			}

			return &models.GraphResult{}, nil
		},
	}

	r := gin.New()
	r.GET("/graph", api.NewGraphHandler(repo, testLogger()).Get)

	w := doRequest(r, http.MethodGet, "/graph?limit=999999", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
