package detector

import "go.trai.ch/oematch/internal/core/domain"

// Detect exposes detect for testing.
func Detect(isTTY bool, ci string) domain.ReportFormat {
	return detect(isTTY, ci)
}
