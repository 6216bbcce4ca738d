package ports

import "go.trai.ch/oematch/internal/core/domain"

// Metrics records resolution and remediation outcomes.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	ObserveMatch(result domain.MatchResult)
	ObserveRemediation(report domain.RemediationReport)
	// WriteFile exports every recorded metric in text exposition format.
	WriteFile(path string) error
}
