package interview

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Mocktail/internal/dto"
	"github.com/lshigami/Mocktail/internal/service"
	"github.com/lshigami/Mocktail/internal/session"
	"github.com/rs/zerolog/log"
)

// SessionController drives the live practice session state machine over HTTP.
// One live session per interview token; starting again replaces the old one.
type SessionController struct {
	manager          *session.Manager
	interviewService service.InterviewService
}

func NewSessionController(manager *session.Manager, interviewService service.InterviewService) *SessionController {
	return &SessionController{manager: manager, interviewService: interviewService}
}

func toSessionStateDTO(snap session.Snapshot) dto.SessionStateDTO {
	state := dto.SessionStateDTO{
		MockID:          snap.MockID,
		State:           string(snap.State),
		QuestionIndex:   snap.Index,
		QuestionCount:   snap.QuestionCount,
		Recording:       snap.Recording,
		TranscriptChars: snap.TranscriptChars,
	}
	if snap.Current != nil {
		var q dto.QuestionDTO
		if err := copier.Copy(&q, snap.Current); err == nil {
			state.CurrentQuestion = &q
		}
	}
	return state
}

// StartSession godoc
// @Summary Start a live practice session for an interview
// @Description Loads the stored question set and opens the session at question zero. An existing session for the same interview is replaced.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Param session body dto.SessionStartDTO false "Answering identity"
// @Success 201 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 422 {object} dto.ErrorResponse "Interview has no questions"
// @Router /interviews/{mock_id}/session [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	mockID := ctx.Param("mock_id")

	var req dto.SessionStartDTO
	// Body is optional; identity defaults to empty.
	_ = ctx.ShouldBindJSON(&req)

	questions, _, err := c.interviewService.GetQuestions(mockID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}

	ctrl, err := c.manager.Start(mockID, req.UserEmail, questions)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
		return
	}

	log.Info().Str("mockId", mockID).Int("questions", len(questions)).Msg("Live session started")
	ctx.JSON(http.StatusCreated, toSessionStateDTO(ctrl.Snapshot()))
}

// GetSession godoc
// @Summary Get the current state of a live session
// @Tags Sessions
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "No live session for this interview"
// @Router /interviews/{mock_id}/session [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	ctrl, err := c.manager.Get(ctx.Param("mock_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toSessionStateDTO(ctrl.Snapshot()))
}

// EndSession godoc
// @Summary End a live session
// @Description Stops any recording in progress and discards the in-memory session. Stored answers are untouched.
// @Tags Sessions
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Success 204 "Session ended"
// @Router /interviews/{mock_id}/session [delete]
func (c *SessionController) EndSession(ctx *gin.Context) {
	c.manager.End(ctx.Param("mock_id"))
	ctx.Status(http.StatusNoContent)
}

// AdvanceSession godoc
// @Summary Move the session to the next question
// @Description Advancing past the last question completes the session. Advancing a completed session is a no-op.
// @Tags Sessions
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "No live session for this interview"
// @Router /interviews/{mock_id}/session/advance [post]
func (c *SessionController) AdvanceSession(ctx *gin.Context) {
	ctrl, err := c.manager.Get(ctx.Param("mock_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctrl.Advance()
	ctx.JSON(http.StatusOK, toSessionStateDTO(ctrl.Snapshot()))
}

// RetreatSession godoc
// @Summary Move the session to the previous question
// @Description Retreating at the first question is a no-op.
// @Tags Sessions
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "No live session for this interview"
// @Router /interviews/{mock_id}/session/retreat [post]
func (c *SessionController) RetreatSession(ctx *gin.Context) {
	ctrl, err := c.manager.Get(ctx.Param("mock_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctrl.Retreat()
	ctx.JSON(http.StatusOK, toSessionStateDTO(ctrl.Snapshot()))
}

// JumpSession godoc
// @Summary Jump the session to a specific question index
// @Tags Sessions
// @Accept json
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Param jump body dto.SessionJumpDTO true "Target index"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Index out of range"
// @Failure 404 {object} dto.ErrorResponse "No live session for this interview"
// @Router /interviews/{mock_id}/session/jump [post]
func (c *SessionController) JumpSession(ctx *gin.Context) {
	ctrl, err := c.manager.Get(ctx.Param("mock_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}

	var req dto.SessionJumpDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := ctrl.JumpTo(req.Index); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toSessionStateDTO(ctrl.Snapshot()))
}

// StartRecording godoc
// @Summary Start capturing an answer for the current question
// @Description Starting while already recording is a no-op. Fails if speech capture was marked unsupported or the session is completed.
// @Tags Sessions
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "No live session for this interview"
// @Failure 409 {object} dto.ErrorResponse "Capture unavailable or session completed"
// @Router /interviews/{mock_id}/session/recording/start [post]
func (c *SessionController) StartRecording(ctx *gin.Context) {
	ctrl, err := c.manager.Get(ctx.Param("mock_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	if err := ctrl.StartRecording(); err != nil {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toSessionStateDTO(ctrl.Snapshot()))
}

// PushFragment godoc
// @Summary Append a transcribed speech fragment to the current answer
// @Description Finalized fragments accumulate in order of arrival. Pass interim=true for a provisional fragment that is replaced by the next push.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Param interim query bool false "Provisional fragment, replaced rather than appended"
// @Param fragment body dto.FragmentDTO true "Transcribed text"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "No live session for this interview"
// @Failure 409 {object} dto.ErrorResponse "Not recording"
// @Router /interviews/{mock_id}/session/recording/fragments [post]
func (c *SessionController) PushFragment(ctx *gin.Context) {
	ctrl, err := c.manager.Get(ctx.Param("mock_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}

	var req dto.FragmentDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if ctx.Query("interim") == "true" {
		err = ctrl.PushInterim(req.Text)
	} else {
		err = ctrl.PushFragment(req.Text)
	}
	if err != nil {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toSessionStateDTO(ctrl.Snapshot()))
}

// StopRecording godoc
// @Summary Stop capturing and grade the accumulated transcript
// @Description Grading runs in the background and is not cancelled by navigating away. Transcripts at or below the minimum length are discarded without grading. Stopping while not recording is a no-op.
// @Tags Sessions
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Success 202 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "No live session for this interview"
// @Router /interviews/{mock_id}/session/recording/stop [post]
func (c *SessionController) StopRecording(ctx *gin.Context) {
	ctrl, err := c.manager.Get(ctx.Param("mock_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctrl.StopRecording()
	ctx.JSON(http.StatusAccepted, toSessionStateDTO(ctrl.Snapshot()))
}

// MarkUnsupported godoc
// @Summary Mark speech capture as unavailable for this session
// @Description Terminal for the session. Further recording attempts fail; the client falls back to typed answers via the direct answer endpoint.
// @Tags Sessions
// @Produce json
// @Param mock_id path string true "Interview session token"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "No live session for this interview"
// @Router /interviews/{mock_id}/session/recording/unsupported [post]
func (c *SessionController) MarkUnsupported(ctx *gin.Context) {
	ctrl, err := c.manager.Get(ctx.Param("mock_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctrl.MarkUnsupported()
	ctx.JSON(http.StatusOK, toSessionStateDTO(ctrl.Snapshot()))
}
