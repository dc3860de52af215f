package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/exerlog/internal/api/dto"
	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/service"
)

type ExerciseHandler struct {
	exerciseService *service.ExerciseService
}

func NewExerciseHandler(exerciseService *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
	}
}

// CreateExercise handles POST /api/users/:_id/exercises
//
//	@Summary	Log an exercise for a user
//	@Tags		exercises
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		_id			path		string	true	"User ID"
//	@Param		description	formData	string	true	"Description"
//	@Param		duration	formData	int		true	"Duration in minutes"
//	@Param		date		formData	string	false	"Date (YYYY-MM-DD), defaults to today"
//	@Success	200			{object}	dto.ExerciseResponse
//	@Router		/api/users/{_id}/exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req dto.CreateExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	user, exercise, err := h.exerciseService.AddExercise(c.Request.Context(), c.Param("_id"), service.ExerciseInput{
		Description: req.Description,
		Duration:    req.Duration.String(),
		Date:        req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Date:        exercise.Date.Display(),
		Duration:    exercise.Duration,
		Description: exercise.Description,
	})
}

// GetLog handles GET /api/users/:_id/logs
//
//	@Summary	Get a user's exercise log
//	@Tags		exercises
//	@Produce	json
//	@Param		_id		path		string	true	"User ID"
//	@Param		from	query		string	false	"Earliest date, inclusive"
//	@Param		to		query		string	false	"Latest date, inclusive"
//	@Param		limit	query		int		false	"Maximum number of entries"
//	@Success	200		{object}	dto.LogResponse
//	@Router		/api/users/{_id}/logs [get]
func (h *ExerciseHandler) GetLog(c *gin.Context) {
	var req dto.LogQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	log, err := h.exerciseService.GetLog(c.Request.Context(), c.Param("_id"), service.LogParams{
		From:  req.From,
		To:    req.To,
		Limit: req.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toLogResponse(log))
}

func toLogResponse(log *service.ExerciseLog) dto.LogResponse {
	response := dto.LogResponse{
		ID:       log.User.ID,
		Username: log.User.Username,
		Count:    len(log.Entries),
		Log:      make([]dto.LogEntryResponse, len(log.Entries)),
	}

	for i, entry := range log.Entries {
		response.Log[i] = toLogEntryResponse(entry)
	}

	return response
}

func toLogEntryResponse(entry *domain.Exercise) dto.LogEntryResponse {
	return dto.LogEntryResponse{
		Description: entry.Description,
		Duration:    entry.Duration,
		Date:        entry.Date.Display(),
	}
}
