// Package sentiment classifies free text with a lexicon-and-rule VADER
// model. Classification happens exactly once per submission, at intake;
// the resulting annotation is stored and never recomputed.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/campuscare/backend/internal/apperrors"
)

// Labels derived from the compound score.
const (
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
	LabelPositive = "positive"
)

// Label thresholds on the compound score. These are the conventional
// VADER cut-offs and are relied on by the urgency tests; do not tune
// them independently of the urgency policy.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Annotation is the immutable result of classifying one text.
type Annotation struct {
	Label         string  `json:"label"`
	CompoundScore float64 `json:"compound_score"`
}

// Analyzer wraps a VADER intensity analyzer. It is stateless between
// calls and safe for concurrent use by independent request handlers.
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer builds an analyzer with the default VADER lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Analyze scores text and derives the discrete label. Empty or
// whitespace-only input is a classification error: it must surface to
// the intake path as a client failure, never default to neutral.
func (a *Analyzer) Analyze(text string) (Annotation, error) {
	if strings.TrimSpace(text) == "" {
		return Annotation{}, apperrors.Classification("text must not be empty")
	}
	scores := a.sia.PolarityScores(text)
	return Annotation{
		Label:         labelFor(scores.Compound),
		CompoundScore: scores.Compound,
	}, nil
}

func labelFor(compound float64) string {
	switch {
	case compound >= positiveThreshold:
		return LabelPositive
	case compound <= negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
