package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"blogapi/internal/handlers"
	"blogapi/internal/middleware"
	"blogapi/internal/repositories"
	"blogapi/internal/utils"
)

const testJWTSecret = "blogapi_test_jwt_secret_key_1234567890"

type testEnv struct {
	mock   sqlmock.Sqlmock
	tokens *utils.TokenManager
	auth   *handlers.AuthHandler
	blogs  *handlers.BlogHandler
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	tokens := utils.NewTokenManager(testJWTSecret)
	users := repositories.NewUserStore(db, false)
	blogs := repositories.NewBlogStore(db, false)

	return &testEnv{
		mock:   mock,
		tokens: tokens,
		auth:   handlers.NewAuthHandler(users, tokens),
		blogs:  handlers.NewBlogHandler(blogs, users),
	}
}

// blogRouter wires the blog routes behind the real auth middleware, the way
// the production route table does.
func (env *testEnv) blogRouter() *gin.Engine {
	router := gin.New()
	group := router.Group("/api/blogs")
	group.Use(middleware.Auth(env.tokens))
	group.GET("", env.blogs.List)
	group.POST("", env.blogs.Create)
	group.GET("/:id", env.blogs.Get)
	group.PUT("/:id", env.blogs.Update)
	group.DELETE("/:id", env.blogs.Delete)
	return router
}

func (env *testEnv) authRouter() *gin.Engine {
	router := gin.New()
	router.POST("/api/register", env.auth.Register)
	router.POST("/api/login", env.auth.Login)
	router.POST("/api/logout", env.auth.Logout)
	return router
}

func (env *testEnv) sessionCookie(t *testing.T, username string) *http.Cookie {
	t.Helper()
	token, err := env.tokens.Generate(username)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	return out
}

func mustStatus(t *testing.T, actual int, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}

func expectMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
