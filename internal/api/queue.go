package api

import (
	"net/http"

	"github.com/atsdev/go-ats-search/internal/db"
	"github.com/gin-gonic/gin"
)

type listQueueEventsRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending processing completed failed"`
	Limit  int32  `form:"limit,default=100" binding:"omitempty,min=1,max=1000"`
}

// listQueueEvents surfaces the sync queue to observers, oldest first.
// The log itself is append-only; this is a read-only window into it.
func (server *Server) listQueueEvents(ctx *gin.Context) {
	var request listQueueEventsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	events, err := server.store.ListSyncEvents(ctx, db.ListSyncEventsParams{
		Status: request.Status,
		Limit:  request.Limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if events == nil {
		events = []db.SyncEvent{}
	}
	ctx.JSON(http.StatusOK, events)
}
