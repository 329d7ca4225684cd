package controller

import (
	"coding_lessons_backend/internal/service"
	"coding_lessons_backend/internal/util"
	"coding_lessons_backend/pkg/logger"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TeacherController serves the dashboard read paths, behind basic auth.
type TeacherController struct {
	Teacher *service.TeacherService
}

func NewTeacherController(teacher *service.TeacherService) *TeacherController {
	return &TeacherController{Teacher: teacher}
}

// GetAllStudents godoc
// @Summary Roster with per-student activity counts
// @Tags teacher
// @Produce json
// @Router /api/teacher/students [get]
func (c *TeacherController) GetAllStudents(ctx *gin.Context) {
	students, err := c.Teacher.ListStudents()
	if err != nil {
		logger.Log.Error("roster query failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"students": students})
}

// GetStudentDetails godoc
// @Summary One student's responses with lesson metadata
// @Tags teacher
// @Produce json
// @Router /api/teacher/student/{id}/details [get]
func (c *TeacherController) GetStudentDetails(ctx *gin.Context) {
	studentID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student id"})
		return
	}

	detail, err := c.Teacher.GetStudentDetail(uint(studentID))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
			return
		}
		logger.Log.Error("student detail query failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"student":       detail.Student,
		"responses":     detail.Responses,
		"last_activity": detail.LastActivity,
	})
}
