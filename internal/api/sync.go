package api

import (
	"net/http"

	"github.com/atsdev/go-ats-search/internal/model"
	"github.com/gin-gonic/gin"
)

// syncCandidates replays the whole candidates table into the search index
func (server *Server) syncCandidates(ctx *gin.Context) {
	count, err := server.service.Reconcile(ctx, model.Candidates)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"synced": count})
}

// syncJobs replays the whole jobs table into the search index
func (server *Server) syncJobs(ctx *gin.Context) {
	count, err := server.service.Reconcile(ctx, model.Jobs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"synced": count})
}
