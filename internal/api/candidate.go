package api

import (
	"net/http"
	"time"

	"github.com/atsdev/go-ats-search/internal/model"
	"github.com/atsdev/go-ats-search/internal/search"
	"github.com/atsdev/go-ats-search/pkg/validation"
	"github.com/gin-gonic/gin"
)

type createCandidateRequest struct {
	Name                 string     `json:"name" binding:"required"`
	Email                string     `json:"email" binding:"required"`
	Mobile               string     `json:"mobile" binding:"required"`
	Gender               string     `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	DateOfBirth          *time.Time `json:"dateOfBirth"`
	FathersName          string     `json:"fathersName"`
	Age                  *int       `json:"age" binding:"omitempty,min=0"`
	Address              string     `json:"address"`
	HiringProgram        string     `json:"hiringProgram"`
	SecondaryNumber      string     `json:"secondaryNumber"`
	Industry             string     `json:"industry"`
	FunctionalArea       string     `json:"functionalArea"`
	CurrentOrganization  string     `json:"currentOrganization"`
	CurrentDesignation   string     `json:"currentDesignation"`
	PreferredLocation    string     `json:"preferredLocation"`
	CurrentLocation      string     `json:"currentLocation"`
	Nationality          string     `json:"nationality"`
	NoticePeriod         string     `json:"noticePeriod"`
	Relocate             *bool      `json:"relocate"`
	LookingForRemoteWork *bool      `json:"lookingForRemoteWork"`
	MaritalStatus        string     `json:"maritalStatus" binding:"omitempty,oneof=Single Married Divorced Widowed"`
	PrimarySource        string     `json:"primarySource"`
	SecondarySource      string     `json:"secondarySource"`
	Skills               []string   `json:"skills"`
	Language             []string   `json:"language"`
	Certificates         []string   `json:"certificates"`
}

// document converts the request into the search document shape. Optional
// attributes the caller did not send stay absent rather than zero-valued.
func (request *createCandidateRequest) document() map[string]any {
	doc := map[string]any{
		"name":   request.Name,
		"email":  request.Email,
		"mobile": request.Mobile,
	}

	setIfNotEmpty(doc, "gender", request.Gender)
	setIfNotEmpty(doc, "fathersName", request.FathersName)
	setIfNotEmpty(doc, "address", request.Address)
	setIfNotEmpty(doc, "hiringProgram", request.HiringProgram)
	setIfNotEmpty(doc, "secondaryNumber", request.SecondaryNumber)
	setIfNotEmpty(doc, "industry", request.Industry)
	setIfNotEmpty(doc, "functionalArea", request.FunctionalArea)
	setIfNotEmpty(doc, "currentOrganization", request.CurrentOrganization)
	setIfNotEmpty(doc, "currentDesignation", request.CurrentDesignation)
	setIfNotEmpty(doc, "preferredLocation", request.PreferredLocation)
	setIfNotEmpty(doc, "currentLocation", request.CurrentLocation)
	setIfNotEmpty(doc, "nationality", request.Nationality)
	setIfNotEmpty(doc, "noticePeriod", request.NoticePeriod)
	setIfNotEmpty(doc, "maritalStatus", request.MaritalStatus)
	setIfNotEmpty(doc, "primarySource", request.PrimarySource)
	setIfNotEmpty(doc, "secondarySource", request.SecondarySource)

	if request.DateOfBirth != nil {
		doc["dateOfBirth"] = *request.DateOfBirth
	}
	if request.Age != nil {
		doc["age"] = *request.Age
	}
	if request.Relocate != nil {
		doc["relocate"] = *request.Relocate
	}
	if request.LookingForRemoteWork != nil {
		doc["lookingForRemoteWork"] = *request.LookingForRemoteWork
	}
	if len(request.Skills) > 0 {
		doc["skills"] = request.Skills
	}
	if len(request.Language) > 0 {
		doc["language"] = request.Language
	}
	if len(request.Certificates) > 0 {
		doc["certificates"] = request.Certificates
	}

	return doc
}

func setIfNotEmpty(doc map[string]any, key, value string) {
	if value != "" {
		doc[key] = value
	}
}

// createCandidate handles creating a candidate in both stores
func (server *Server) createCandidate(ctx *gin.Context) {
	var request createCandidateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := validation.ValidateEmail(request.Email); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	candidate, err := server.service.Create(ctx, model.Candidates, request.document())
	if err != nil {
		ctx.JSON(statusFromError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, candidate)
}

// listCandidates returns the full candidate corpus, newest first
func (server *Server) listCandidates(ctx *gin.Context) {
	candidates, err := server.service.List(ctx, model.Candidates)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, candidates)
}

type entityIDRequest struct {
	ID string `uri:"id" binding:"required"`
}

// getCandidate returns one candidate by its identifier
func (server *Server) getCandidate(ctx *gin.Context) {
	var request entityIDRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	candidate, err := server.service.Get(ctx, model.Candidates, request.ID)
	if err != nil {
		ctx.JSON(statusFromError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, candidate)
}

type updateCandidateRequest struct {
	Name                 *string    `json:"name"`
	Email                *string    `json:"email"`
	Mobile               *string    `json:"mobile"`
	Gender               *string    `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	DateOfBirth          *time.Time `json:"dateOfBirth"`
	FathersName          *string    `json:"fathersName"`
	Age                  *int       `json:"age" binding:"omitempty,min=0"`
	Address              *string    `json:"address"`
	HiringProgram        *string    `json:"hiringProgram"`
	SecondaryNumber      *string    `json:"secondaryNumber"`
	Industry             *string    `json:"industry"`
	FunctionalArea       *string    `json:"functionalArea"`
	CurrentOrganization  *string    `json:"currentOrganization"`
	CurrentDesignation   *string    `json:"currentDesignation"`
	PreferredLocation    *string    `json:"preferredLocation"`
	CurrentLocation      *string    `json:"currentLocation"`
	Nationality          *string    `json:"nationality"`
	NoticePeriod         *string    `json:"noticePeriod"`
	Relocate             *bool      `json:"relocate"`
	LookingForRemoteWork *bool      `json:"lookingForRemoteWork"`
	MaritalStatus        *string    `json:"maritalStatus" binding:"omitempty,oneof=Single Married Divorced Widowed"`
	PrimarySource        *string    `json:"primarySource"`
	SecondarySource      *string    `json:"secondarySource"`
	Skills               []string   `json:"skills"`
	Language             []string   `json:"language"`
	Certificates         []string   `json:"certificates"`
}

func (request *updateCandidateRequest) partial() map[string]any {
	partial := map[string]any{}

	setIfPresent(partial, "name", request.Name)
	setIfPresent(partial, "email", request.Email)
	setIfPresent(partial, "mobile", request.Mobile)
	setIfPresent(partial, "gender", request.Gender)
	setIfPresent(partial, "fathersName", request.FathersName)
	setIfPresent(partial, "address", request.Address)
	setIfPresent(partial, "hiringProgram", request.HiringProgram)
	setIfPresent(partial, "secondaryNumber", request.SecondaryNumber)
	setIfPresent(partial, "industry", request.Industry)
	setIfPresent(partial, "functionalArea", request.FunctionalArea)
	setIfPresent(partial, "currentOrganization", request.CurrentOrganization)
	setIfPresent(partial, "currentDesignation", request.CurrentDesignation)
	setIfPresent(partial, "preferredLocation", request.PreferredLocation)
	setIfPresent(partial, "currentLocation", request.CurrentLocation)
	setIfPresent(partial, "nationality", request.Nationality)
	setIfPresent(partial, "noticePeriod", request.NoticePeriod)
	setIfPresent(partial, "maritalStatus", request.MaritalStatus)
	setIfPresent(partial, "primarySource", request.PrimarySource)
	setIfPresent(partial, "secondarySource", request.SecondarySource)

	if request.DateOfBirth != nil {
		partial["dateOfBirth"] = *request.DateOfBirth
	}
	if request.Age != nil {
		partial["age"] = *request.Age
	}
	if request.Relocate != nil {
		partial["relocate"] = *request.Relocate
	}
	if request.LookingForRemoteWork != nil {
		partial["lookingForRemoteWork"] = *request.LookingForRemoteWork
	}
	if request.Skills != nil {
		partial["skills"] = request.Skills
	}
	if request.Language != nil {
		partial["language"] = request.Language
	}
	if request.Certificates != nil {
		partial["certificates"] = request.Certificates
	}

	return partial
}

func setIfPresent(partial map[string]any, key string, value *string) {
	if value != nil {
		partial[key] = *value
	}
}

// updateCandidate applies a partial update to an existing candidate
func (server *Server) updateCandidate(ctx *gin.Context) {
	var uriRequest entityIDRequest
	if err := ctx.ShouldBindUri(&uriRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request updateCandidateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if request.Email != nil {
		if err := validation.ValidateEmail(*request.Email); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}

	candidate, err := server.service.Update(ctx, model.Candidates, uriRequest.ID, request.partial())
	if err != nil {
		ctx.JSON(statusFromError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, candidate)
}

// deleteCandidate removes a candidate from both stores
func (server *Server) deleteCandidate(ctx *gin.Context) {
	var request entityIDRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := server.service.Delete(ctx, model.Candidates, request.ID); err != nil {
		ctx.JSON(statusFromError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}

type searchRequest struct {
	Query   string         `json:"query"`
	Filters map[string]any `json:"filters"`
}

// searchCandidates runs a translated search against the candidate index
func (server *Server) searchCandidates(ctx *gin.Context) {
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

	candidates, err := server.service.Search(ctx, model.Candidates, request.Query, filters)
	if err != nil {
		ctx.JSON(statusFromError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, candidates)
}
