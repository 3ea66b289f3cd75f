package api

import (
	"net/http"
	"time"

	"github.com/atsdev/go-ats-search/internal/model"
	"github.com/gin-gonic/gin"
)

type createApplicationRequest struct {
	CandidateID string     `json:"candidateId" binding:"required"`
	JobID       string     `json:"jobId" binding:"required"`
	Status      string     `json:"status"`
	AppliedDate *time.Time `json:"appliedDate"`
	Notes       string     `json:"notes"`
}

// createApplication links a candidate to a job posting
func (server *Server) createApplication(ctx *gin.Context) {
	var request createApplicationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	application := model.Application{
		CandidateID: request.CandidateID,
		JobID:       request.JobID,
		Status:      request.Status,
		AppliedDate: request.AppliedDate,
		Notes:       request.Notes,
	}

	created, err := server.service.CreateApplication(ctx, application)
	if err != nil {
		ctx.JSON(statusFromError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
