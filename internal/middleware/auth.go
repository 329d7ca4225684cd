package middleware

import (
	"coding_lessons_backend/internal/config"
	"coding_lessons_backend/internal/util"
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionRevocations answers whether a session id was killed by logout.
type SessionRevocations interface {
	IsRevoked(ctx context.Context, jti string) bool
}

// SessionMiddleware gates lesson-content routes in credentialed mode. The
// token is read from the session cookie or a bearer header.
func SessionMiddleware(provider *config.Provider, revocations SessionRevocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := provider.Get()

		tokenString, _ := c.Cookie(cfg.Auth.CookieName)
		if tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseSessionToken(tokenString, cfg.Auth.JWTSecret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if revocations != nil && revocations.IsRevoked(c.Request.Context(), claims.ID) {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("session", claims)
		c.Next()
	}
}

// TeacherAuthMiddleware guards the dashboard with the shared basic-auth
// credential. Credentials come from config (hot-reloadable), compared in
// constant time. The 401 body keeps the original wire shape.
func TeacherAuthMiddleware(provider *config.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := provider.Get()

		username, password, ok := c.Request.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Teacher.Username)) != 1 ||
			subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Teacher.Password)) != 1 {
			c.Header("WWW-Authenticate", `Basic realm="teacher"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Next()
	}
}
