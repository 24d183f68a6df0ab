// Package diagnostic runs the full qualification pipeline: scoring,
// archetype classification and insight generation, assembled into a single
// immutable DiagnosticResult.
package diagnostic

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andes-consulting/readiness-cli/internal/archetype"
	"github.com/andes-consulting/readiness-cli/internal/insight"
	"github.com/andes-consulting/readiness-cli/internal/model"
	"github.com/andes-consulting/readiness-cli/internal/scoring"
)

// Suggested amount ranges by tier, COP.
const (
	tierAAmountMin = 25_000_000
	tierAAmountMax = 45_000_000
	tierBAmountMin = 12_000_000
	tierBAmountMax = 25_000_000
	tierCAmountMin = 0
	tierCAmountMax = 5_000_000
)

// Service wires the three engines together. All of them are stateless, so a
// single Service is safe for concurrent use.
type Service struct {
	engine     *scoring.Engine
	classifier *archetype.Classifier
	insights   *insight.Generator
}

// NewService builds the diagnostic pipeline.
func NewService() *Service {
	return &Service{
		engine:     scoring.NewEngine(),
		classifier: archetype.NewClassifier(),
		insights:   insight.NewGenerator(),
	}
}

// Run executes one diagnostic and returns the fully populated result. It
// never fails: unrecognized answers degrade to zero points and are logged as
// warnings for the intake layer to chase.
func (s *Service) Run(prospect model.ProspectInfo, responses model.DiagnosticResponses) *model.DiagnosticResult {
	score := s.engine.CalculateFullScore(responses, prospect)
	if len(score.Unrecognized) > 0 {
		zap.L().Warn("diagnostic: unrecognized answers scored zero",
			zap.String("company", prospect.CompanyName),
			zap.Strings("fields", score.Unrecognized),
		)
	}

	arch := s.classifier.Classify(score, responses, prospect)

	result := &model.DiagnosticResult{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Prospect:  prospect,
		Responses: responses,
		Score:     score,
		Archetype: arch,
		QuickWins: s.insights.QuickWins(score, responses, arch),
		RedFlags:  s.insights.RedFlags(score, responses, prospect),
		Insights:  s.insights.Insights(score, responses, arch),

		MeetingPrep: s.insights.MeetingPrep(score, responses, arch, prospect),
	}
	result.SuggestedService, result.SuggestedAmountMin, result.SuggestedAmountMax = suggestedService(score.Tier)

	zap.L().Info("diagnostic: completed",
		zap.String("diagnostic_id", result.ID),
		zap.String("company", prospect.CompanyName),
		zap.Int("score_final", score.Final),
		zap.String("tier", string(score.Tier)),
		zap.String("archetype", string(arch.ID)),
		zap.Float64("confidence", score.Confidence),
	)

	return result
}

// suggestedService maps the tier to the recommended engagement and its COP
// amount range.
func suggestedService(tier model.Tier) (string, int64, int64) {
	switch tier {
	case model.TierA:
		return model.ServiceFullImplementation, tierAAmountMin, tierAAmountMax
	case model.TierB:
		return model.ServiceDeepDiagnostic, tierBAmountMin, tierBAmountMax
	default:
		return model.ServiceWorkshop, tierCAmountMin, tierCAmountMax
	}
}
