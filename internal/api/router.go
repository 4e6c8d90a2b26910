package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/fightgraph/fightgraph/internal/dbpool"
	"github.com/fightgraph/fightgraph/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Pool        *dbpool.Pool
	Fighters    FighterRepository
	History     HistoryRepository
	Streaks     StreakRepository
	Graph       GraphRepository
	CORSOrigins []string
	Version     string
}

// maxBodySize limits request bodies; streak batches are the largest
// expected payload and stay far below this.
const maxBodySize = 1 << 20 // 1 MB

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pool, log, deps.Version)
	fighters := NewFighterHandler(deps.Fighters, log)
	history := NewHistoryHandler(deps.History, log)
	streaks := NewStreakHandler(deps.Streaks, log)
	graph := NewGraphHandler(deps.Graph, log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Roster.
	api.GET("/fighters", fighters.List)
	api.POST("/fighters", fighters.Create)
	api.GET("/fighters/:id", fighters.Get)
	api.POST("/fighters/:id/bouts", fighters.CreateBout)

	// Reconciled history and streaks.
	api.GET("/fighters/:id/history", history.GetHistory)
	api.GET("/fighters/:id/streak", streaks.GetStreak)
	api.POST("/streaks", streaks.Batch)

	// Relationship graph.
	api.GET("/graph", graph.Get)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(r.Group("/api/v1"), deps)

	return r
}
