package controller

import (
	"coding_lessons_backend/internal/config"
	"coding_lessons_backend/internal/service"
	"coding_lessons_backend/internal/util"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthController serves the credentialed-mode account routes.
type AuthController struct {
	Identity  *service.CredentialedIdentityService
	Cfg       *config.Config
	IsRelease bool
}

func NewAuthController(identity *service.CredentialedIdentityService, cfg *config.Config) *AuthController {
	return &AuthController{
		Identity:  identity,
		Cfg:       cfg,
		IsRelease: cfg.Server.Mode == "release",
	}
}

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Name            string `json:"name" binding:"required"`
	StudentCode     string `json:"student_id"`
	ClassName       string `json:"class_name"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

// Register godoc
// @Summary Register a new student account
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, token, err := c.Identity.Register(service.RegisterInput{
		Email:           req.Email,
		Name:            req.Name,
		StudentCode:     req.StudentCode,
		ClassName:       req.ClassName,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered):
			util.Error(ctx, 409, "Email already registered")
		case errors.Is(err, util.ErrPasswordMismatch),
			errors.Is(err, util.ErrStudentNameRequired),
			errors.Is(err, util.ErrMissingFields):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.setSessionCookie(ctx, token)
	util.Created(ctx, gin.H{"student": student, "token": token})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log a student in
// @Tags auth
// @Accept json
// @Produce json
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, token, err := c.Identity.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidCredentials), errors.Is(err, util.ErrAccountDisabled):
			util.Unauthorized(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.setSessionCookie(ctx, token)
	util.Success(ctx, gin.H{"student": student, "token": token})
}

// Logout godoc
// @Summary Invalidate the current session
// @Tags auth
// @Produce json
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	tokenString, _ := ctx.Cookie(c.Cfg.Auth.CookieName)
	if tokenString == "" {
		authHeader := ctx.GetHeader("Authorization")
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	if err := c.Identity.Logout(ctx.Request.Context(), tokenString); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.SetCookie(c.Cfg.Auth.CookieName, "", -1, "/", "", c.IsRelease, true)
	util.Success(ctx, gin.H{"message": "logged out"})
}

// GetProfile godoc
// @Summary Current student's profile
// @Tags auth
// @Produce json
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	student := c.Identity.CurrentStudent(ctx)
	if student == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, student)
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string) {
	maxAge := int(c.Cfg.Auth.SessionExpire.Seconds())
	ctx.SetCookie(c.Cfg.Auth.CookieName, token, maxAge, "/", "", c.IsRelease, true)
}
