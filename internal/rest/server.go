package rest

import (
	"net/http"

	"github.com/giftcraft/authentiq/internal/database"
	"github.com/giftcraft/authentiq/internal/rest/handler"
	"github.com/giftcraft/authentiq/internal/rest/middleware"
	"github.com/klauspost/compress/gzhttp"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the review pipeline REST API.
type Server struct {
	flagHandler     *handler.FlagHandler
	queueHandler    *handler.QueueHandler
	decisionHandler *handler.DecisionHandler
	statsHandler    *handler.StatsHandler
	settingsHandler *handler.SettingsHandler
}

// NewServer creates a new REST API server.
func NewServer(db database.Client, logger *zap.Logger) http.Handler {
	// Create server instance with handlers
	server := &Server{
		flagHandler:     handler.NewFlagHandler(db, logger),
		queueHandler:    handler.NewQueueHandler(db, logger),
		decisionHandler: handler.NewDecisionHandler(db, logger),
		statsHandler:    handler.NewStatsHandler(db, logger),
		settingsHandler: handler.NewSettingsHandler(db, logger),
	}

	auth := middleware.NewAuth(logger)

	router := bunrouter.New()

	router.WithGroup("/v1", func(g *bunrouter.Group) {
		// Classifier-facing ingestion endpoint
		g.POST("/flags", server.flagHandler.SubmitFlag)

		// Admin-facing review surfaces
		g.Use(auth.AsMiddleware).WithGroup("", func(g *bunrouter.Group) {
			g.GET("/queue", server.queueHandler.ListQueue)
			g.GET("/queue/:id", server.queueHandler.GetEntry)

			g.POST("/decisions", server.decisionHandler.SubmitDecision)
			g.POST("/decisions/batch", server.decisionHandler.SubmitBatch)

			g.GET("/images/:type/:id/history", server.decisionHandler.GetHistory)

			g.GET("/stats", server.statsHandler.GetOverview)
			g.GET("/stats/categories", server.statsHandler.GetCategoryStats)

			g.GET("/settings/thresholds", server.settingsHandler.GetThresholds)
			g.PUT("/settings/thresholds", server.settingsHandler.UpdateThresholds)
		})
	})

	// Add gzip compression
	return gzhttp.GzipHandler(router)
}
