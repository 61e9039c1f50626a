package feedback

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Mocktail/internal/dto"
	"github.com/lshigami/Mocktail/internal/service"
)

type FeedbackController struct {
	feedbackService service.UserFeedbackService
}

func NewFeedbackController(feedbackService service.UserFeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// SubmitFeedback godoc
// @Summary Submit site feedback
// @Description Records a feedback entry about the application itself. Type must be one of general, feature, bug, improvement.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param feedback body dto.UserFeedbackCreateDTO true "Feedback entry"
// @Success 201 {object} dto.UserFeedbackResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or feedback type"
// @Failure 500 {object} dto.ErrorResponse
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var req dto.UserFeedbackCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid feedback", Details: []string{err.Error()}})
		return
	}

	resp, err := c.feedbackService.SubmitFeedback(req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store feedback", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListFeedback godoc
// @Summary List site feedback entries
// @Tags Feedback
// @Produce json
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by feedback type"
// @Success 200 {object} dto.UserFeedbackListDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /feedback [get]
func (c *FeedbackController) ListFeedback(ctx *gin.Context) {
	resp, err := c.feedbackService.ListFeedback(ctx.Query("status"), ctx.Query("type"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve feedback", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
