package controller

import (
	"coding_lessons_backend/internal/service"
	"coding_lessons_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	Lessons *service.LessonService
}

func NewLessonController(lessons *service.LessonService) *LessonController {
	return &LessonController{Lessons: lessons}
}

// List godoc
// @Summary Lesson catalog
// @Tags lesson
// @Produce json
// @Router /api/lessons [get]
func (c *LessonController) List(ctx *gin.Context) {
	lessons, err := c.Lessons.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}
