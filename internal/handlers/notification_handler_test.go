package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campuscare/backend/internal/models"
	"github.com/campuscare/backend/internal/sentiment"
	"github.com/campuscare/backend/internal/services"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Concern{},
		&models.AnonymousMessage{},
		&models.UrgentNotification{},
	))
	return db
}

// newNotificationApp wires the urgent-notification endpoints without
// the auth middleware; middleware behavior is covered elsewhere.
func newNotificationApp(t *testing.T) (*fiber.App, *services.NotificationService) {
	t.Helper()
	svc := services.NewNotificationService(newTestDB(t))
	h := NewNotificationHandler(svc)

	app := fiber.New()
	app.Get("/api/admin/urgent", h.ListUrgent)
	app.Delete("/api/admin/urgent/:id", h.Resolve)
	return app, svc
}

func seedNotification(t *testing.T, svc *services.NotificationService, createdAt time.Time) *models.UrgentNotification {
	t.Helper()
	n := &models.UrgentNotification{
		Message:        "URGENT: Negative anonymous message detected",
		Type:           models.SubmissionAnonymous,
		ReportID:       uuid.New(),
		SentimentScore: -0.75,
		CreatedAt:      createdAt,
	}
	require.NoError(t, svc.Create(n))
	return n
}

func TestListUrgentReturnsNewestFirst(t *testing.T) {
	app, svc := newNotificationApp(t)

	base := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	seedNotification(t, svc, base)
	newest := seedNotification(t, svc, base.Add(time.Minute))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/urgent", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []models.UrgentNotification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, newest.ID, got[0].ID)
}

func TestResolveUrgent(t *testing.T) {
	app, svc := newNotificationApp(t)
	n := seedNotification(t, svc, time.Now())

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/admin/urgent/"+n.ID.String(), nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	remaining, err := svc.ListRecent(0)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestResolveUrgentUnknownID(t *testing.T) {
	app, _ := newNotificationApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/admin/urgent/"+uuid.NewString(), nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResolveUrgentMalformedID(t *testing.T) {
	app, _ := newNotificationApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/admin/urgent/not-a-uuid", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnonymousCreateEndpoint(t *testing.T) {
	db := newTestDB(t)
	notifications := services.NewNotificationService(db)
	svc := services.NewAnonymousService(db, sentiment.NewAnalyzer(), services.NewUrgencyPolicy(), notifications)
	h := NewAnonymousHandler(svc)

	app := fiber.New()
	app.Post("/api/anonymous/create", h.Create)

	body := strings.NewReader(`{"message": "I hate everything here, nothing ever works"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/anonymous/create", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var msg models.AnonymousMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, sentiment.LabelNegative, msg.Sentiment)

	raised, err := notifications.ListRecent(0)
	require.NoError(t, err)
	require.Len(t, raised, 1)
	assert.Equal(t, msg.ID, raised[0].ReportID)
}

func TestAnonymousCreateEndpointEmptyMessage(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAnonymousService(db, sentiment.NewAnalyzer(), services.NewUrgencyPolicy(), services.NewNotificationService(db))
	h := NewAnonymousHandler(svc)

	app := fiber.New()
	app.Post("/api/anonymous/create", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/anonymous/create", strings.NewReader(`{"message": ""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
