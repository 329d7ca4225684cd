package controller

import (
	"coding_lessons_backend/internal/model"
	"coding_lessons_backend/internal/service"
	"coding_lessons_backend/internal/util"
	"coding_lessons_backend/pkg/logger"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResponseController handles answer submission and per-lesson progress.
type ResponseController struct {
	Identity  service.IdentityResolver
	Responses *service.ResponseService
	Progress  *service.ProgressService
}

func NewResponseController(identity service.IdentityResolver, responses *service.ResponseService, progress *service.ProgressService) *ResponseController {
	return &ResponseController{
		Identity:  identity,
		Responses: responses,
		Progress:  progress,
	}
}

type SaveResponseRequest struct {
	StudentDBID   uint            `json:"student_db_id"`
	LessonSlug    string          `json:"lesson_slug"`
	QuestionType  string          `json:"question_type"`
	QuestionID    string          `json:"question_id"`
	StudentAnswer json.RawMessage `json:"student_answer"`
	IsCorrect     bool            `json:"is_correct"`
}

// Save godoc
// @Summary Save a student's answer
// @Description Idempotent upsert keyed on (student, lesson, question type, question id)
// @Tags response
// @Accept json
// @Produce json
// @Router /api/response/save [post]
func (c *ResponseController) Save(ctx *gin.Context) {
	var req SaveResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	studentID, err := c.Identity.ResolveStudentID(ctx, req.StudentDBID)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err = c.Responses.Submit(studentID, req.LessonSlug, req.QuestionType, req.QuestionID, req.StudentAnswer, req.IsCorrect)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, util.ErrMissingFields):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
	case errors.Is(err, model.ErrMalformedAnswer):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Malformed answer payload"})
	case errors.Is(err, util.ErrLessonNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
	default:
		logger.Log.Error("response save failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// GetProgress godoc
// @Summary Get a student's progress in one lesson
// @Description Responses ordered by update time, most recent first
// @Tags response
// @Produce json
// @Router /api/student/{id}/lesson/{slug}/progress [get]
func (c *ResponseController) GetProgress(ctx *gin.Context) {
	studentID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student id"})
		return
	}

	responses, err := c.Progress.GetProgress(uint(studentID), ctx.Param("slug"))
	if err != nil {
		logger.Log.Error("progress query failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"responses": responses})
}
