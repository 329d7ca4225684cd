package service

import (
	"coding_lessons_backend/internal/config"

	"github.com/gin-gonic/gin"
)

// IdentityResolver is the single identity capability both deployment variants
// implement. The variant is picked once at startup from auth.mode; request
// handling never branches on it beyond route registration.
type IdentityResolver interface {
	Mode() config.AuthMode

	// ResolveStudentID returns the surrogate id a request acts as.
	// Anonymous mode trusts the presented id; credentialed mode takes it
	// from the session and ignores whatever the client presented.
	ResolveStudentID(c *gin.Context, presented uint) (uint, error)
}
