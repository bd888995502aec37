// Package web exposes the tracker over HTTP as a JSON API. It is a thin
// layer: every endpoint delegates to the record store and the pure helpers,
// adding no semantics of its own.
package web

import (
	"github.com/gin-gonic/gin"

	"github.com/melusiness/tamstar/internal/config"
	"github.com/melusiness/tamstar/internal/track"
)

// Server is the tamstar API server
type Server struct {
	store  *track.Store
	cfg    *config.Config
	router *gin.Engine
}

// NewServer creates a new API server
func NewServer(store *track.Store, cfg *config.Config) *Server {
	router := gin.Default()

	s := &Server{
		store:  store,
		cfg:    cfg,
		router: router,
	}

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/records", s.handleListRecords)
		api.GET("/records/day/:date", s.handleRecordsForDay)
		api.POST("/records", s.handleCreateRecord)
		api.PUT("/records/:id", s.handleUpdateRecord)
		api.DELETE("/records/:id", s.handleDeleteRecord)
		api.GET("/settings", s.handleGetSettings)
		api.PUT("/settings", s.handleUpdateSettings)
		api.GET("/day/:date", s.handleDayReport)
		api.GET("/calendar/:year/:month", s.handleCalendar)
		api.GET("/export.ics", s.handleExport)
	}

	return s
}

// Run starts the API server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
