package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/ahassan/unisync/internal/app/auth"
	"github.com/ahassan/unisync/internal/app/controllers"
	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/app/reminder"
	"github.com/ahassan/unisync/internal/app/routes"
	"github.com/ahassan/unisync/internal/app/store"
	"github.com/ahassan/unisync/internal/app/viewmodels"
	"github.com/ahassan/unisync/internal/middleware"
	"github.com/ahassan/unisync/internal/pkg/apperrors"
	pkgauth "github.com/ahassan/unisync/internal/pkg/auth"
)

type fakePrincipalRepo struct {
	byEmail map[string]*models.Principal
}

func (r *fakePrincipalRepo) CreatePrincipal(_ context.Context, p *models.Principal) error {
	if _, exists := r.byEmail[p.Email]; exists {
		return apperrors.ErrEmailAlreadyExists
	}
	p.CreatedAt = time.Now()
	r.byEmail[p.Email] = p
	return nil
}

func (r *fakePrincipalRepo) GetPrincipalByEmail(_ context.Context, email string) (*models.Principal, error) {
	p, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.ErrPrincipalNotFound
	}
	return p, nil
}

type silentSink struct{}

func (silentSink) ScheduleAt(string, string, time.Time) {}
func (silentSink) RequestPermission()                   {}

type testApp struct {
	router  *gin.Engine
	store   *store.MemoryStore
	session *appauth.Session
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lgr := zerolog.Nop()
	session := appauth.NewSession()
	ms := store.NewMemoryStore()
	codec := store.NewCodec("Fall 2025")
	scheduler := reminder.NewScheduler(silentSink{})

	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "unisync.test",
	})
	authService := appauth.NewService(&fakePrincipalRepo{byEmail: map[string]*models.Principal{}}, jwtService, session, lgr)

	coursesVM := viewmodels.NewCoursesViewModel(ms, codec, session, lgr)
	assignmentsVM := viewmodels.NewAssignmentsViewModel(ms, codec, scheduler, session, lgr)
	goalsVM := viewmodels.NewStudyGoalsViewModel(ms, codec, session, lgr)
	settingsVM := viewmodels.NewSettingsViewModel(ms, codec, session, lgr)
	dashboardVM := viewmodels.NewDashboardViewModel(ms, codec, session, lgr)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(authService),
		controllers.NewCourseController(coursesVM),
		controllers.NewAssignmentController(assignmentsVM),
		controllers.NewGoalController(goalsVM),
		controllers.NewSettingsController(settingsVM),
		controllers.NewDashboardController(dashboardVM),
		middleware.NewAuthMiddleware(jwtService, session),
	)

	return &testApp{router: router, store: ms, session: session}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) registerAndSignIn(t *testing.T) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    "student@test.test",
		"password": "passw0rd!",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app := setupApp(t)
	app.registerAndSignIn(t)

	rec := app.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    "student@test.test",
		"password": "passw0rd!",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	app := setupApp(t)
	app.registerAndSignIn(t)

	rec := app.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "student@test.test",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/v1/dashboard", "not.a.token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCourseCRUDFlow(t *testing.T) {
	app := setupApp(t)
	token := app.registerAndSignIn(t)

	rec := app.do(t, http.MethodPost, "/api/v1/courses", token, gin.H{
		"code":  "CS101",
		"name":  "Intro to CS",
		"color": "#FF8800",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data models.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	rec = app.do(t, http.MethodGet, "/api/v1/courses", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPut, "/api/v1/courses/"+created.Data.ID, token, gin.H{
		"code": "CS101",
		"name": "Intro to Computer Science",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPut, "/api/v1/courses/missing", token, gin.H{
		"code": "CS101",
		"name": "x",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/v1/courses/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Deleting an absent id stays a no-op.
	rec = app.do(t, http.MethodDelete, "/api/v1/courses/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateCourseValidation(t *testing.T) {
	app := setupApp(t)
	token := app.registerAndSignIn(t)

	rec := app.do(t, http.MethodPost, "/api/v1/courses", token, gin.H{
		"code": "CS101",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "name is required")

	rec = app.do(t, http.MethodPost, "/api/v1/courses", token, gin.H{
		"code":  "CS101",
		"name":  "Intro",
		"color": "orange",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "color must be a hex color")
}

func TestAssignmentToggleAndLogHours(t *testing.T) {
	app := setupApp(t)
	token := app.registerAndSignIn(t)

	rec := app.do(t, http.MethodPost, "/api/v1/assignments", token, gin.H{
		"title":    "Essay",
		"courseId": "c1",
		"dueDate":  time.Now().AddDate(0, 0, 10).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data models.Assignment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.PriorityMedium, created.Data.Priority, "absent priority defaults to medium")

	rec = app.do(t, http.MethodPost, "/api/v1/assignments/"+created.Data.ID+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var toggled struct {
		Data models.Assignment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.True(t, toggled.Data.Completed)

	rec = app.do(t, http.MethodPost, "/api/v1/study-goals", token, gin.H{
		"title":       "Revision",
		"courseId":    "c1",
		"targetHours": 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var goal struct {
		Data models.StudyGoal `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &goal))

	rec = app.do(t, http.MethodPost, "/api/v1/study-goals/"+goal.Data.ID+"/log-hours", token, gin.H{
		"hours": 7,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var logged struct {
		Data models.StudyGoal `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logged))
	assert.Equal(t, 5.0, logged.Data.CompletedHours, "hours clamp at the target")
}

func TestSettingsRoundTrip(t *testing.T) {
	app := setupApp(t)
	token := app.registerAndSignIn(t)

	rec := app.do(t, http.MethodGet, "/api/v1/settings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPut, "/api/v1/settings", token, gin.H{
		"theme":                "dark",
		"notificationsEnabled": false,
		"semester":             "Spring 2026",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPut, "/api/v1/settings", token, gin.H{
		"theme": "sepia",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardEndpoint(t *testing.T) {
	app := setupApp(t)
	token := app.registerAndSignIn(t)

	for _, body := range []gin.H{
		{"title": "Pending 1", "courseId": "c1", "dueDate": time.Now().AddDate(0, 0, 3).Format(time.RFC3339)},
		{"title": "Pending 2", "courseId": "c1", "dueDate": time.Now().AddDate(0, 0, 5).Format(time.RFC3339)},
	} {
		rec := app.do(t, http.MethodPost, "/api/v1/assignments", token, body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	assert.Eventually(t, func() bool {
		return app.store.Count(app.session.PrincipalID(), store.KindAssignments) == 2
	}, time.Second, 5*time.Millisecond)

	rec := app.do(t, http.MethodPost, "/api/v1/dashboard/reload", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			PendingCount int `json:"pendingCount"`
			Upcoming     []struct {
				CourseName string `json:"courseName,omitempty"`
			} `json:"upcoming"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.PendingCount)
	assert.Len(t, resp.Data.Upcoming, 2)
}

func TestLogoutInvalidatesSessionScopedAccess(t *testing.T) {
	app := setupApp(t)
	token := app.registerAndSignIn(t)

	rec := app.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The token itself is still well formed, but it no longer matches
	// the (now empty) session.
	rec = app.do(t, http.MethodGet, "/api/v1/courses", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
