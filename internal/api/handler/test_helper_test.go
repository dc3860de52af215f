package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/exerlog/internal/api/dto"
	"github.com/martijn/exerlog/internal/core/service"
	"github.com/martijn/exerlog/internal/infrastructure/memory"
	"github.com/martijn/exerlog/pkg/logger"
)

// testNow is the clock used for missing and invalid dates
var testNow = time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)

// testEnv holds all test dependencies
type testEnv struct {
	router          *gin.Engine
	userService     *service.UserService
	exerciseService *service.ExerciseService
}

// setupTestEnv creates a test environment backed by the memory store
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	exerciseRepo := memory.NewExerciseRepository(store)
	log := logger.Discard()

	userService := service.NewUserService(userRepo, nil, log)
	exerciseService := service.NewExerciseService(userRepo, exerciseRepo, log).
		WithClock(func() time.Time { return testNow })

	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	// Setup gin router in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/api/users", userHandler.CreateUser)
	router.GET("/api/users", userHandler.ListUsers)
	router.POST("/api/users/:_id/exercises", exerciseHandler.CreateExercise)
	router.GET("/api/users/:_id/logs", exerciseHandler.GetLog)

	return &testEnv{
		router:          router,
		userService:     userService,
		exerciseService: exerciseService,
	}
}

// makeRequest performs a GET request and returns the response
func (env *testEnv) makeRequest(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// postForm performs a url-encoded POST request and returns the response
func (env *testEnv) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// postJSON performs a JSON POST request and returns the response
func (env *testEnv) postJSON(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// registerUser creates a user through the API and returns it
func (env *testEnv) registerUser(t *testing.T, username string) dto.UserResponse {
	t.Helper()

	w := env.postForm(t, "/api/users", url.Values{"username": {username}})
	if w.Code != http.StatusOK {
		t.Fatalf("failed to register %s: status %d, body %s", username, w.Code, w.Body.String())
	}
	return parseJSON[dto.UserResponse](t, w)
}

// addExercise logs an exercise through the API and fails the test on an error body
func (env *testEnv) addExercise(t *testing.T, userID, description, duration, date string) dto.ExerciseResponse {
	t.Helper()

	form := url.Values{"description": {description}, "duration": {duration}}
	if date != "" {
		form.Set("date", date)
	}

	w := env.postForm(t, "/api/users/"+userID+"/exercises", form)
	if w.Code != http.StatusOK {
		t.Fatalf("failed to add exercise: status %d, body %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), `"error"`) {
		t.Fatalf("failed to add exercise: %s", w.Body.String())
	}
	return parseJSON[dto.ExerciseResponse](t, w)
}

// parseJSON parses the response body into T
func parseJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}
