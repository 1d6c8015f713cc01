package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campuscare/backend/internal/apperrors"
	"github.com/campuscare/backend/internal/dto"
	"github.com/campuscare/backend/internal/models"
	"github.com/campuscare/backend/internal/sentiment"
)

func newConcernService(t *testing.T) (*ConcernService, *NotificationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	notifications := NewNotificationService(db)
	svc := NewConcernService(db, sentiment.NewAnalyzer(), NewUrgencyPolicy(), notifications)
	return svc, notifications, db
}

func hostelRequest(description string) *dto.CreateConcernRequest {
	return &dto.CreateConcernRequest{
		Phone:       "0712345678",
		Category:    models.CategoryHostel,
		Description: description,
		Hostel: &models.HostelDetails{
			Name:      "Block C",
			Room:      "C-214",
			IssueType: "maintenance",
		},
	}
}

func TestConcernIntakeBenignReport(t *testing.T) {
	svc, notifications, _ := newConcernService(t)
	user := seedUser(t, svc.db, "Jane Doe", "jane@uni.example", "SCT-221-001")

	concern, err := svc.Create(user.ID, hostelRequest("The hostel is fine, just wanted to say thanks"))
	require.NoError(t, err)

	assert.Equal(t, user.ID, concern.UserID)
	assert.Equal(t, "Jane Doe", concern.FullName)
	assert.Equal(t, "jane@uni.example", concern.Email)
	assert.Equal(t, "SCT-221-001", concern.StudentRef)
	assert.Equal(t, models.ConcernStatusOpen, concern.Status)
	assert.NotEqual(t, sentiment.LabelNegative, concern.Sentiment)

	raised, err := notifications.ListRecent(0)
	require.NoError(t, err)
	assert.Empty(t, raised, "a benign report must not raise an urgent notification")

	details, err := concern.DecodeDetails()
	require.NoError(t, err)
	hostel, ok := details.(*models.HostelDetails)
	require.True(t, ok)
	assert.Equal(t, "Block C", hostel.Name)
	assert.Equal(t, "C-214", hostel.Room)
}

func TestConcernIntakeMissingDescription(t *testing.T) {
	svc, _, db := newConcernService(t)
	user := seedUser(t, svc.db, "Jane Doe", "jane@uni.example", "SCT-221-001")

	req := hostelRequest("")
	_, err := svc.Create(user.ID, req)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err),
		"validation must fail before classification is attempted")

	var count int64
	require.NoError(t, db.Model(&models.Concern{}).Count(&count).Error)
	assert.Zero(t, count, "no partial record may be persisted")
}

func TestConcernIntakeUnknownUser(t *testing.T) {
	svc, _, _ := newConcernService(t)

	_, err := svc.Create(uuid.New(), hostelRequest("anything"))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestConcernIntakeInvalidCategory(t *testing.T) {
	svc, _, _ := newConcernService(t)
	user := seedUser(t, svc.db, "Jane Doe", "jane@uni.example", "SCT-221-001")

	req := &dto.CreateConcernRequest{
		Phone:       "0712345678",
		Category:    "gossip",
		Description: "something",
	}
	_, err := svc.Create(user.ID, req)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestConcernIntakeDetailsMustMatchCategory(t *testing.T) {
	svc, _, _ := newConcernService(t)
	user := seedUser(t, svc.db, "Jane Doe", "jane@uni.example", "SCT-221-001")

	req := &dto.CreateConcernRequest{
		Phone:       "0712345678",
		Category:    models.CategoryAcademic,
		Description: "exam scheduling clashes with labs",
		Hostel:      &models.HostelDetails{Name: "Block C", Room: "C-214", IssueType: "noise"},
	}
	_, err := svc.Create(user.ID, req)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestConcernStatusLifecycle(t *testing.T) {
	svc, _, _ := newConcernService(t)
	user := seedUser(t, svc.db, "Jane Doe", "jane@uni.example", "SCT-221-001")

	concern, err := svc.Create(user.ID, hostelRequest("The hot water has been broken for a week"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(concern.ID, models.ConcernStatusResolved))

	reloaded, err := svc.GetByID(concern.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConcernStatusResolved, reloaded.Status)

	err = svc.UpdateStatus(concern.ID, "archived")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	err = svc.UpdateStatus(uuid.New(), models.ConcernStatusResolved)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestConcernListByUser(t *testing.T) {
	svc, _, _ := newConcernService(t)
	jane := seedUser(t, svc.db, "Jane Doe", "jane@uni.example", "SCT-221-001")
	omar := seedUser(t, svc.db, "Omar Musa", "omar@uni.example", "SCT-221-002")

	_, err := svc.Create(jane.ID, hostelRequest("room allocation mix-up"))
	require.NoError(t, err)
	_, err = svc.Create(omar.ID, hostelRequest("leaking roof in my room"))
	require.NoError(t, err)

	mine, err := svc.ListByUser(jane.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, jane.ID, mine[0].UserID)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// The notification's report reference is weak: deleting the report
// leaves the notification for the administrator to resolve explicitly.
func TestConcernDeleteKeepsNotification(t *testing.T) {
	svc, notifications, _ := newConcernService(t)
	user := seedUser(t, svc.db, "Jane Doe", "jane@uni.example", "SCT-221-001")

	concern, err := svc.Create(user.ID, hostelRequest("all good here"))
	require.NoError(t, err)

	n := &models.UrgentNotification{
		Message:        "URGENT: Negative report from Jane Doe",
		Type:           models.SubmissionIdentified,
		ReportID:       concern.ID,
		SentimentScore: -0.8,
	}
	require.NoError(t, notifications.Create(n))

	require.NoError(t, svc.Delete(concern.ID))

	raised, err := notifications.ListRecent(0)
	require.NoError(t, err)
	require.Len(t, raised, 1)
	assert.Equal(t, concern.ID, raised[0].ReportID)
}
