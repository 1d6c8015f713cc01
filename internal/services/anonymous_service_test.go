package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campuscare/backend/internal/apperrors"
	"github.com/campuscare/backend/internal/models"
	"github.com/campuscare/backend/internal/sentiment"
)

func newAnonymousService(t *testing.T) (*AnonymousService, *NotificationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	notifications := NewNotificationService(db)
	svc := NewAnonymousService(db, sentiment.NewAnalyzer(), NewUrgencyPolicy(), notifications)
	return svc, notifications, db
}

// Strongly negative anonymous messages must raise an urgent
// notification carrying the submission's own compound score.
func TestAnonymousIntakeRaisesUrgentNotification(t *testing.T) {
	svc, notifications, _ := newAnonymousService(t)

	msg, err := svc.Create("I hate everything here, nothing ever works")
	require.NoError(t, err)

	assert.Equal(t, sentiment.LabelNegative, msg.Sentiment)
	assert.LessOrEqual(t, msg.CompoundScore, -0.5)

	raised, err := notifications.ListRecent(0)
	require.NoError(t, err)
	require.Len(t, raised, 1)
	assert.Equal(t, models.SubmissionAnonymous, raised[0].Type)
	assert.Equal(t, msg.ID, raised[0].ReportID)
	assert.Equal(t, msg.CompoundScore, raised[0].SentimentScore)
}

func TestAnonymousIntakeBenignMessageRaisesNothing(t *testing.T) {
	svc, notifications, _ := newAnonymousService(t)

	msg, err := svc.Create("Campus life has been lovely this semester, thank you all")
	require.NoError(t, err)
	assert.NotEqual(t, sentiment.LabelNegative, msg.Sentiment)

	raised, err := notifications.ListRecent(0)
	require.NoError(t, err)
	assert.Empty(t, raised)
}

func TestAnonymousIntakeRejectsEmptyMessage(t *testing.T) {
	svc, _, db := newAnonymousService(t)

	for _, text := range []string{"", "   "} {
		_, err := svc.Create(text)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}

	var count int64
	require.NoError(t, db.Model(&models.AnonymousMessage{}).Count(&count).Error)
	assert.Zero(t, count, "no partial record may be persisted on validation failure")
}

func TestAnonymousListNewestFirst(t *testing.T) {
	svc, _, db := newAnonymousService(t)

	_, err := svc.Create("first message, all good")
	require.NoError(t, err)
	second, err := svc.Create("second message, also fine")
	require.NoError(t, err)

	// Force a strict ordering regardless of clock granularity.
	require.NoError(t, db.Model(&models.AnonymousMessage{}).
		Where("id = ?", second.ID).
		Update("created_at", second.CreatedAt.Add(time.Second)).Error)

	messages, err := svc.List()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, second.ID, messages[0].ID)
}

func TestAnonymousDelete(t *testing.T) {
	svc, _, _ := newAnonymousService(t)

	msg, err := svc.Create("nothing special to report")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(msg.ID))

	_, err = svc.GetByID(msg.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

// Deleting a message must not cascade to the urgent notification it
// raised; the notification only points at the submission.
func TestAnonymousDeleteKeepsNotification(t *testing.T) {
	svc, notifications, _ := newAnonymousService(t)

	msg, err := svc.Create("I hate everything here, nothing ever works")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(msg.ID))

	raised, err := notifications.ListRecent(0)
	require.NoError(t, err)
	require.Len(t, raised, 1)
	assert.Equal(t, msg.ID, raised[0].ReportID)
}
