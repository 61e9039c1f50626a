package interview

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Mocktail/config"
	"github.com/lshigami/Mocktail/internal/dto"
	"github.com/lshigami/Mocktail/internal/service"
	"github.com/rs/zerolog/log"
)

const maxResumeBytes = 10 * 1024 * 1024 // 10MB upload cap

type InterviewController struct {
	generationService service.InterviewGenerationService
	interviewService  service.InterviewService
	gradingService    service.GradingService
	cfg               *config.Config
}

func NewInterviewController(
	generationService service.InterviewGenerationService,
	interviewService service.InterviewService,
	gradingService service.GradingService,
	cfg *config.Config,
) *InterviewController {
	return &InterviewController{
		generationService: generationService,
		interviewService:  interviewService,
		gradingService:    gradingService,
		cfg:               cfg,
	}
}

// CreateInterview godoc
// @Summary Generate a new mock interview
// @Description Generates an AI question set for the given job role, description and experience, and stores the session.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param interview body dto.InterviewCreateDTO true "Job details"
// @Success 201 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "Question generation failed; the caller may retry"
// @Router /interviews [post]
func (c *InterviewController) CreateInterview(ctx *gin.Context) {
	var req dto.InterviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Str("jobPosition", req.JobPosition).Msg("Received request to generate interview")

	resp, err := c.generationService.GenerateInterview(ctx.Request.Context(), req)
	if err != nil {
		// Setup-time generation failures are recoverable; the client retries.
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Failed to generate interview questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateInterviewFromResume godoc
// @Summary Generate a mock interview from a resume PDF
// @Description Uploads a resume PDF, sends it to the AI for analysis and returns two rounds of generated questions.
// @Tags Interviews
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume PDF (max 10MB)"
// @Param job_position formData string true "Target job position"
// @Param resume_text formData string false "Optional plain-text resume for skills extraction"
// @Param created_by formData string false "Owner identity"
// @Success 201 {object} dto.ResumeInterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing file, wrong type, or file too large"
// @Failure 502 {object} dto.ErrorResponse "Resume analysis failed"
// @Router /interviews/resume [post]
func (c *InterviewController) CreateInterviewFromResume(ctx *gin.Context) {
	jobPosition := ctx.PostForm("job_position")
	if jobPosition == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Job position is required"})
		return
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No resume file provided", Details: []string{err.Error()}})
		return
	}
	if fileHeader.Size > maxResumeBytes {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "File size must be less than 10MB"})
		return
	}
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != "application/pdf" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "File must be a PDF"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read resume file", Details: []string{err.Error()}})
		return
	}
	defer file.Close()

	pdfData, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read resume file", Details: []string{err.Error()}})
		return
	}

	log.Info().Str("jobPosition", jobPosition).Int("pdfBytes", len(pdfData)).Msg("Received resume for interview generation")

	resp, err := c.generationService.GenerateFromResume(
		ctx.Request.Context(), pdfData, jobPosition, ctx.PostForm("resume_text"), ctx.PostForm("created_by"),
	)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Failed to generate interview questions from resume", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetInterview godoc
// @Summary Get a mock interview with its question set
// @Tags Interviews
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Success 200 {object} dto.InterviewResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{mock_id} [get]
func (c *InterviewController) GetInterview(ctx *gin.Context) {
	resp, err := c.interviewService.GetInterview(ctx.Param("mock_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListInterviews godoc
// @Summary List interviews, optionally filtered by creator
// @Tags Interviews
// @Produce json
// @Param created_by query string false "Owner identity to filter by"
// @Success 200 {array} dto.InterviewSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /interviews [get]
func (c *InterviewController) ListInterviews(ctx *gin.Context) {
	resp, err := c.interviewService.ListInterviews(ctx.Query("created_by"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve interviews", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteInterview godoc
// @Summary Delete an interview and its graded answers
// @Tags Interviews
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{mock_id} [delete]
func (c *InterviewController) DeleteInterview(ctx *gin.Context) {
	if err := c.interviewService.DeleteInterview(ctx.Param("mock_id")); err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SubmitAnswer godoc
// @Summary Grade a transcript for one question directly
// @Description Grades the transcript against the indexed question and stores the result. Transcripts of 10 characters or fewer are rejected without a write.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Param answer body dto.AnswerSubmitDTO true "Question index and transcript"
// @Success 201 {object} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or index"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 422 {object} dto.ErrorResponse "Transcript too short to grade"
// @Router /interviews/{mock_id}/answers [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	mockID := ctx.Param("mock_id")

	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	questions, _, err := c.interviewService.GetQuestions(mockID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	if req.QuestionIndex < 0 || req.QuestionIndex >= len(questions) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Question index out of range",
			Details: []string{"valid range is [0," + strconv.Itoa(len(questions)) + ")"},
		})
		return
	}
	if len(req.Transcript) <= c.cfg.Interview.MinTranscriptChars {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: "Transcript too short to grade"})
		return
	}

	answer, err := c.gradingService.GradeAndStore(ctx.Request.Context(), mockID, req.UserEmail, questions[req.QuestionIndex], req.Transcript)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store graded answer", Details: []string{err.Error()}})
		return
	}

	ctx.JSON(http.StatusCreated, dto.AnswerResponseDTO{
		ID:            answer.ID,
		Question:      answer.Question,
		CorrectAnswer: answer.CorrectAnswer,
		UserAnswer:    answer.UserAnswer,
		Feedback:      answer.Feedback,
		Rating:        answer.Rating,
		CreatedAt:     answer.CreatedAt,
	})
}

// GetInterviewFeedback godoc
// @Summary Get the graded summary for an interview
// @Description Returns the graded answers of the most recent attempt (rows sharing the latest creation date) and the overall average rating.
// @Tags Interviews
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Success 200 {object} dto.FeedbackSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{mock_id}/feedback [get]
func (c *InterviewController) GetInterviewFeedback(ctx *gin.Context) {
	resp, err := c.interviewService.GetFeedbackSummary(ctx.Param("mock_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
