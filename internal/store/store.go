// Package store persists diagnostic results and computes the aggregate
// analytics behind the dashboard.
package store

import (
	"context"
	"time"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

// Filter specifies criteria for listing diagnostics.
type Filter struct {
	Tier      model.Tier        `json:"tier,omitempty"`
	Archetype model.ArchetypeID `json:"archetype,omitempty"`
	Sector    string            `json:"sector,omitempty"`
	Limit     int               `json:"limit,omitempty"`
	Offset    int               `json:"offset,omitempty"`
}

// Store defines the persistence interface for diagnostic results.
type Store interface {
	SaveDiagnostic(ctx context.Context, result *model.DiagnosticResult) error
	GetDiagnostic(ctx context.Context, id string) (*model.DiagnosticResult, error)
	ListDiagnostics(ctx context.Context, filter Filter) ([]model.DiagnosticResult, error)

	// HasRecentDiagnostic reports whether the contact already submitted a
	// diagnostic after the given instant. Used for the resubmission window.
	HasRecentDiagnostic(ctx context.Context, contactEmail string, since time.Time) (bool, error)

	Analytics(ctx context.Context) (*model.DashboardData, error)

	Migrate(ctx context.Context) error
	Close() error
}

// statsRow is the lean projection both backends feed into aggregate.
type statsRow struct {
	tier      string
	archetype string
	sector    string
	score     int
	closeProb int
	amountMin int64
	amountMax int64
}

// aggregate computes dashboard analytics over the projected rows. Pipeline
// value weighs the midpoint of each suggested amount range by its close
// probability; conversion is the tier A share.
func aggregate(rows []statsRow) *model.DashboardData {
	data := &model.DashboardData{
		ArchetypeDistribution: map[string]int{},
		SectorDistribution:    map[string]int{},
	}

	var scoreSum, probSum int
	var pipeline float64
	for _, r := range rows {
		data.TotalDiagnostics++
		switch model.Tier(r.tier) {
		case model.TierA:
			data.TierACount++
		case model.TierB:
			data.TierBCount++
		case model.TierC:
			data.TierCCount++
		}
		data.ArchetypeDistribution[r.archetype]++
		data.SectorDistribution[r.sector]++

		scoreSum += r.score
		probSum += r.closeProb
		pipeline += float64(r.amountMin+r.amountMax) / 2 * float64(r.closeProb) / 100
	}

	if data.TotalDiagnostics > 0 {
		n := float64(data.TotalDiagnostics)
		data.AverageScore = float64(scoreSum) / n
		data.AverageCloseProb = float64(probSum) / n
		data.EstimatedConversion = float64(data.TierACount) / n * 100
	}
	data.EstimatedPipelineValue = int64(pipeline)

	return data
}
