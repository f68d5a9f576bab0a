package handlers

import (
	"github.com/gin-gonic/gin"

	"todoapp/internal/pagination"
	"todoapp/internal/response"
	"todoapp/internal/services"
)

// ActivityHandler serves the activity log
type ActivityHandler struct {
	activityService services.ActivityServicer
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService services.ActivityServicer) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListActivity handles the paginated activity log
// @Summary     List activity
// @Description Recorded mutations on todos and categories, newest first
// @Tags        activity
// @Produce     json
// @Param       page  query int false "Page number (default 1)"
// @Param       limit query int false "Items per page (default 10, max 100)"
// @Success     200 {object} response.Envelope{data=[]models.ActivityLog} "Page of activity entries"
// @Failure     400 {object} response.Envelope "Invalid query parameters"
// @Router      /activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	result, err := h.activityService.ListActivity(c.Request.Context(), page.Window())
	if err != nil {
		respondWithError(c, err)
		return
	}

	response.Paginated(c, result)
}
