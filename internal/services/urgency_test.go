package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscare/backend/internal/models"
)

func TestUrgencyThresholdAnonymous(t *testing.T) {
	policy := NewUrgencyPolicy()
	reportID := uuid.New()

	tests := []struct {
		name    string
		score   float64
		trigger bool
	}{
		{"exactly at threshold", -0.5, true},
		{"just above threshold", -0.499, false},
		{"well below threshold", -0.9, true},
		{"neutral", 0, false},
		{"positive", 0.8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := policy.Evaluate(models.SubmissionAnonymous, tt.score, reportID, "")
			if !tt.trigger {
				assert.Nil(t, n)
				return
			}
			require.NotNil(t, n)
			assert.Equal(t, models.SubmissionAnonymous, n.Type)
			assert.Equal(t, "URGENT: Negative anonymous message detected", n.Message)
			assert.Equal(t, reportID, n.ReportID)
			assert.Equal(t, tt.score, n.SentimentScore)
		})
	}
}

func TestUrgencyThresholdIdentified(t *testing.T) {
	policy := NewUrgencyPolicy()
	reportID := uuid.New()

	tests := []struct {
		name    string
		score   float64
		trigger bool
	}{
		{"exactly at threshold", -0.7, true},
		{"just above threshold", -0.699, false},
		{"well below threshold", -0.95, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := policy.Evaluate(models.SubmissionIdentified, tt.score, reportID, "Jane Doe")
			if !tt.trigger {
				assert.Nil(t, n)
				return
			}
			require.NotNil(t, n)
			assert.Equal(t, models.SubmissionIdentified, n.Type)
			assert.Equal(t, "URGENT: Negative report from Jane Doe", n.Message)
			assert.Equal(t, reportID, n.ReportID)
			assert.Equal(t, tt.score, n.SentimentScore)
		})
	}
}

// The thresholds are intentionally asymmetric: the same score can
// escalate an anonymous message but not an identified report.
func TestUrgencyAsymmetry(t *testing.T) {
	policy := NewUrgencyPolicy()
	reportID := uuid.New()
	score := -0.6

	assert.NotNil(t, policy.Evaluate(models.SubmissionAnonymous, score, reportID, ""))
	assert.Nil(t, policy.Evaluate(models.SubmissionIdentified, score, reportID, "Jane Doe"))
}

func TestUrgencyUnknownTypeNeverTriggers(t *testing.T) {
	policy := NewUrgencyPolicy()
	assert.Nil(t, policy.Evaluate("telepathic", -1.0, uuid.New(), ""))
}

func TestUrgencyConfiguredThresholds(t *testing.T) {
	policy := NewUrgencyPolicyWithThresholds(-0.3, -0.4)
	reportID := uuid.New()

	assert.NotNil(t, policy.Evaluate(models.SubmissionAnonymous, -0.3, reportID, ""))
	assert.Nil(t, policy.Evaluate(models.SubmissionAnonymous, -0.29, reportID, ""))
	assert.NotNil(t, policy.Evaluate(models.SubmissionIdentified, -0.4, reportID, "x"))
	assert.Nil(t, policy.Evaluate(models.SubmissionIdentified, -0.39, reportID, "x"))
}
