package api

import (
	"errors"
	"net/http"

	"github.com/atsdev/go-ats-search/internal/config"
	"github.com/atsdev/go-ats-search/internal/db"
	"github.com/atsdev/go-ats-search/internal/syncer"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server serves HTTP requests for the service
type Server struct {
	config  config.Config
	store   db.Store
	service *syncer.Service
	router  *gin.Engine
}

// NewServer creates a new HTTP server and setups routing
func NewServer(config config.Config, store db.Store, service *syncer.Service) (*Server, error) {
	server := &Server{
		config:  config,
		store:   store,
		service: service,
	}

	server.setupRouter()

	return server, nil
}

// setupRouter sets up the HTTP routing
func (server *Server) setupRouter() {
	router := gin.Default()

	routerV1 := router.Group("/api/v1")

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	// === candidates ===
	routerV1.POST("/candidates", server.createCandidate)
	routerV1.GET("/candidates", server.listCandidates)
	routerV1.GET("/candidates/:id", server.getCandidate)
	routerV1.PATCH("/candidates/:id", server.updateCandidate)
	routerV1.DELETE("/candidates/:id", server.deleteCandidate)
	routerV1.POST("/candidates/search", server.searchCandidates)

	// === jobs ===
	routerV1.POST("/jobs", server.createJob)
	routerV1.GET("/jobs", server.listJobs)
	routerV1.GET("/jobs/:id", server.getJob)
	routerV1.PATCH("/jobs/:id", server.updateJob)
	routerV1.DELETE("/jobs/:id", server.deleteJob)
	routerV1.POST("/jobs/search", server.searchJobs)

	// === job applications ===
	routerV1.POST("/applications", server.createApplication)

	// === sync queue monitor ===
	routerV1.GET("/queue", server.listQueueEvents)

	// === bulk reconciliation ===
	routerV1.POST("/sync/candidates", server.syncCandidates)
	routerV1.POST("/sync/jobs", server.syncJobs)

	server.router = router
}

// Start runs the HTTP server on a given address
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func errorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}

// statusFromError maps domain failures onto HTTP status codes.
func statusFromError(err error) int {
	if errors.Is(err, syncer.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
