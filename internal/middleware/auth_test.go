package middleware

import (
	"coding_lessons_backend/internal/config"
	"coding_lessons_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func teacherProvider() *config.Provider {
	return config.NewProvider(&config.Config{
		Teacher: config.TeacherConfig{Username: "teacher", Password: "education123"},
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret-for-unit-tests-only-000000",
			SessionExpire: time.Hour,
			CookieName:    "session_token",
		},
	})
}

func TestTeacherAuthMiddleware(t *testing.T) {
	router := newTestRouter()
	router.GET("/api/teacher/students", TeacherAuthMiddleware(teacherProvider()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"students": []string{}})
	})

	tests := []struct {
		name       string
		username   string
		password   string
		noAuth     bool
		wantStatus int
	}{
		{name: "no credentials", noAuth: true, wantStatus: http.StatusUnauthorized},
		{name: "wrong password", username: "teacher", password: "nope", wantStatus: http.StatusUnauthorized},
		{name: "wrong username", username: "admin", password: "education123", wantStatus: http.StatusUnauthorized},
		{name: "valid", username: "teacher", password: "education123", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/teacher/students", nil)
			if !tt.noAuth {
				req.SetBasicAuth(tt.username, tt.password)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusUnauthorized && w.Header().Get("WWW-Authenticate") == "" {
				t.Error("401 without WWW-Authenticate challenge")
			}
		})
	}
}

func TestSessionMiddleware(t *testing.T) {
	provider := teacherProvider()
	router := newTestRouter()
	router.GET("/api/profile", SessionMiddleware(provider, nil), func(c *gin.Context) {
		claims := util.GetSessionFromContext(c)
		c.JSON(http.StatusOK, gin.H{"student_id": claims.StudentID})
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("valid token via bearer header", func(t *testing.T) {
		token, err := util.GenerateSessionToken(7, "ada@example.com", "test-secret-for-unit-tests-only-000000", time.Hour)
		if err != nil {
			t.Fatal(err)
		}
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}
	})

	t.Run("valid token via cookie", func(t *testing.T) {
		token, err := util.GenerateSessionToken(7, "ada@example.com", "test-secret-for-unit-tests-only-000000", time.Hour)
		if err != nil {
			t.Fatal(err)
		}
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}
	})
}
