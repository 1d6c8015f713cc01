package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/campuscare/backend/internal/models"
)

// Default urgency thresholds on the compound score. The asymmetry is
// intentional: anonymous messages escalate earlier because there is no
// identified submitter an administrator could follow up with directly.
const (
	DefaultAnonymousUrgencyThreshold  = -0.5
	DefaultIdentifiedUrgencyThreshold = -0.7
)

// UrgencyPolicy decides whether a classified submission warrants an
// urgent notification. It is the single owner of both thresholds; no
// intake path carries its own copy. The policy constructs the
// notification record but never persists it.
type UrgencyPolicy struct {
	anonymousThreshold  float64
	identifiedThreshold float64
}

// NewUrgencyPolicy builds a policy with the default thresholds.
func NewUrgencyPolicy() *UrgencyPolicy {
	return NewUrgencyPolicyWithThresholds(
		DefaultAnonymousUrgencyThreshold,
		DefaultIdentifiedUrgencyThreshold,
	)
}

// NewUrgencyPolicyWithThresholds builds a policy with explicit
// thresholds, used when config overrides the defaults.
func NewUrgencyPolicyWithThresholds(anonymous, identified float64) *UrgencyPolicy {
	return &UrgencyPolicy{
		anonymousThreshold:  anonymous,
		identifiedThreshold: identified,
	}
}

// Evaluate returns the notification to raise for the given submission,
// or nil when the score does not cross the type's threshold. The
// non-trigger path is the normal case and is never an error.
// submitter is the display name for identified reports and ignored for
// anonymous ones.
func (p *UrgencyPolicy) Evaluate(submissionType string, compoundScore float64, reportID uuid.UUID, submitter string) *models.UrgentNotification {
	switch submissionType {
	case models.SubmissionAnonymous:
		if compoundScore > p.anonymousThreshold {
			return nil
		}
		return &models.UrgentNotification{
			Message:        "URGENT: Negative anonymous message detected",
			Type:           models.SubmissionAnonymous,
			ReportID:       reportID,
			SentimentScore: compoundScore,
		}
	case models.SubmissionIdentified:
		if compoundScore > p.identifiedThreshold {
			return nil
		}
		return &models.UrgentNotification{
			Message:        fmt.Sprintf("URGENT: Negative report from %s", submitter),
			Type:           models.SubmissionIdentified,
			ReportID:       reportID,
			SentimentScore: compoundScore,
		}
	default:
		return nil
	}
}
