package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/atsdev/go-ats-search/internal/model"
	"github.com/atsdev/go-ats-search/internal/search"
	"github.com/gin-gonic/gin"
)

var salaryRangeError = errors.New("salary min cannot be greater than salary max")

type createJobRequest struct {
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description" binding:"required"`
	Department     string     `json:"department" binding:"required"`
	Location       string     `json:"location" binding:"required"`
	EmploymentType string     `json:"employmentType" binding:"required"`
	SalaryMin      int32      `json:"salaryMin" binding:"min=0"`
	SalaryMax      int32      `json:"salaryMax" binding:"min=0"`
	SkillsRequired []string   `json:"skillsRequired" binding:"required"`
	PostedDate     *time.Time `json:"postedDate"`
	ClosingDate    *time.Time `json:"closingDate"`
	Status         string     `json:"status"`
}

func (request *createJobRequest) document() map[string]any {
	doc := map[string]any{
		"title":          request.Title,
		"description":    request.Description,
		"department":     request.Department,
		"location":       request.Location,
		"employmentType": request.EmploymentType,
		"salaryMin":      request.SalaryMin,
		"salaryMax":      request.SalaryMax,
		"skillsRequired": request.SkillsRequired,
	}

	now := time.Now().UTC().Truncate(24 * time.Hour)
	doc["postedDate"] = now
	if request.PostedDate != nil {
		doc["postedDate"] = request.PostedDate.UTC().Truncate(24 * time.Hour)
	}
	doc["closingDate"] = now
	if request.ClosingDate != nil {
		doc["closingDate"] = request.ClosingDate.UTC().Truncate(24 * time.Hour)
	}

	status := request.Status
	if status == "" {
		status = "Open"
	}
	doc["status"] = status

	return doc
}

// createJob handles creating a job posting in both stores
func (server *Server) createJob(ctx *gin.Context) {
	var request createJobRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if request.SalaryMin > request.SalaryMax {
		ctx.JSON(http.StatusBadRequest, errorResponse(salaryRangeError))
		return
	}

	job, err := server.service.Create(ctx, model.Jobs, request.document())
	if err != nil {
		ctx.JSON(statusFromError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, job)
}

// listJobs returns the full job corpus, newest postings first
func (server *Server) listJobs(ctx *gin.Context) {
	jobs, err := server.service.List(ctx, model.Jobs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}

// getJob returns one job by its identifier
func (server *Server) getJob(ctx *gin.Context) {
	var request entityIDRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	job, err := server.service.Get(ctx, model.Jobs, request.ID)
	if err != nil {
		ctx.JSON(statusFromError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, job)
}

type updateJobRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Department     *string    `json:"department"`
	Location       *string    `json:"location"`
	EmploymentType *string    `json:"employmentType"`
	SalaryMin      *int32     `json:"salaryMin" binding:"omitempty,min=0"`
	SalaryMax      *int32     `json:"salaryMax" binding:"omitempty,min=0"`
	SkillsRequired []string   `json:"skillsRequired"`
	PostedDate     *time.Time `json:"postedDate"`
	ClosingDate    *time.Time `json:"closingDate"`
	Status         *string    `json:"status"`
}

func (request *updateJobRequest) partial() map[string]any {
	partial := map[string]any{}

	setIfPresent(partial, "title", request.Title)
	setIfPresent(partial, "description", request.Description)
	setIfPresent(partial, "department", request.Department)
	setIfPresent(partial, "location", request.Location)
	setIfPresent(partial, "employmentType", request.EmploymentType)
	setIfPresent(partial, "status", request.Status)

	if request.SalaryMin != nil {
		partial["salaryMin"] = *request.SalaryMin
	}
	if request.SalaryMax != nil {
		partial["salaryMax"] = *request.SalaryMax
	}
	if request.SkillsRequired != nil {
		partial["skillsRequired"] = request.SkillsRequired
	}
	if request.PostedDate != nil {
		partial["postedDate"] = *request.PostedDate
	}
	if request.ClosingDate != nil {
		partial["closingDate"] = *request.ClosingDate
	}

	return partial
}

// updateJob applies a partial update to an existing job posting
func (server *Server) updateJob(ctx *gin.Context) {
	var uriRequest entityIDRequest
	if err := ctx.ShouldBindUri(&uriRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request updateJobRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if request.SalaryMin != nil && request.SalaryMax != nil && *request.SalaryMin > *request.SalaryMax {
		ctx.JSON(http.StatusBadRequest, errorResponse(salaryRangeError))
		return
	}

	job, err := server.service.Update(ctx, model.Jobs, uriRequest.ID, request.partial())
	if err != nil {
		ctx.JSON(statusFromError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// deleteJob removes a job posting from both stores
func (server *Server) deleteJob(ctx *gin.Context) {
	var request entityIDRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := server.service.Delete(ctx, model.Jobs, request.ID); err != nil {
		ctx.JSON(statusFromError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}

// searchJobs runs a translated search against the job index
func (server *Server) searchJobs(ctx *gin.Context) {
	var request searchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	filters, err := search.ParseFilters(request.Filters)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	jobs, err := server.service.Search(ctx, model.Jobs, request.Query, filters)
	if err != nil {
		ctx.JSON(statusFromError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, jobs)
}
