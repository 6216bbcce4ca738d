package domain

// ReportFormat selects how results are printed.
type ReportFormat string

const (
	// FormatStyled renders coloured tables for an interactive terminal.
	FormatStyled ReportFormat = "styled"
	// FormatPlain renders plain text for CI logs and pipes.
	FormatPlain ReportFormat = "plain"
	// FormatJSON renders machine-readable JSON.
	FormatJSON ReportFormat = "json"
)

// ReportOptions configures a report renderer call.
type ReportOptions struct {
	Format ReportFormat
}
