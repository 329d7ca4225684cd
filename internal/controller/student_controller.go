package controller

import (
	"coding_lessons_backend/internal/service"
	"coding_lessons_backend/internal/util"
	"coding_lessons_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StudentController serves the anonymous-mode identification route. Response
// bodies keep the original frontend's wire shapes.
type StudentController struct {
	Identity *service.AnonymousIdentityService
}

func NewStudentController(identity *service.AnonymousIdentityService) *StudentController {
	return &StudentController{Identity: identity}
}

type StudentLoginRequest struct {
	StudentName string `json:"student_name"`
	StudentCode string `json:"student_id"`
	ClassName   string `json:"class_name"`
}

// Login godoc
// @Summary Identify a student by name and school code
// @Description Looks the student up by (name, code), creating the record on first sight
// @Tags student
// @Accept json
// @Produce json
// @Router /api/student/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := c.Identity.Login(req.StudentName, req.StudentCode, req.ClassName)
	if err != nil {
		if errors.Is(err, util.ErrStudentNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Student name is required"})
			return
		}
		logger.Log.Error("student login failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"student": student})
}
