package ports

import (
	"io"

	"go.trai.ch/oematch/internal/core/domain"
)

// ReportRenderer prints resolution and remediation results for humans or machines.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ReportRenderer interface {
	RenderSummary(w io.Writer, summary domain.Summary, opts domain.ReportOptions) error
	RenderUnmatched(w io.Writer, recipes []*domain.LocalRecipe, opts domain.ReportOptions) error
	RenderRemediation(w io.Writer, report domain.RemediationReport, opts domain.ReportOptions) error
}
