// Package report prints resolution and remediation results as styled tables,
// plain text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/ui/output"
	"go.trai.ch/oematch/internal/ui/style"
)

const labelWidth = 24

// row is one labelled count of a report table.
type row struct {
	label  string
	value  int
	indent int
	icon   string
	style  lipgloss.Style
}

// Renderer implements ports.ReportRenderer.
type Renderer struct{}

// NewRenderer creates a Renderer and applies the terminal color profile to lipgloss.
func NewRenderer() *Renderer {
	lipgloss.SetColorProfile(output.ColorProfile())
	return &Renderer{}
}

// RenderSummary prints the match summary.
func (r *Renderer) RenderSummary(w io.Writer, s domain.Summary, opts domain.ReportOptions) error {
	if opts.Format == domain.FormatJSON {
		return writeJSON(w, s)
	}

	rows := []row{
		{label: "Total recipes", value: s.Total, icon: style.Dot, style: style.Count},
		{label: "Found in layer index", value: s.Found, icon: style.Check, style: style.Good},
		{label: "exact version", value: s.Exact, indent: 1, icon: style.Check, style: style.Good},
		{label: "close version", value: s.Close, indent: 1, icon: style.Tilde, style: style.Warn},
		{label: "same layer", value: s.SameLayer, indent: 1, icon: style.Check, style: style.Good},
		{label: "different layer", value: s.DifferentLayer, indent: 1, icon: style.Arrow, style: style.Warn},
		{label: "Not found", value: s.Total - s.Found, icon: style.Cross, style: style.Bad},
		{label: "Without reported layer", value: s.WithoutLayer, icon: style.Warning, style: style.Warn},
	}
	return r.table(w, "Layer index match summary", rows, opts.Format)
}

type unmatchedJSON struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Layer   string `json:"layer,omitempty"`
}

// RenderUnmatched lists recipes without a catalog match.
func (r *Renderer) RenderUnmatched(w io.Writer, recipes []*domain.LocalRecipe, opts domain.ReportOptions) error {
	var unmatched []*domain.LocalRecipe
	for _, rec := range recipes {
		if !rec.Match.Found() {
			unmatched = append(unmatched, rec)
		}
	}

	if opts.Format == domain.FormatJSON {
		out := make([]unmatchedJSON, 0, len(unmatched))
		for _, rec := range unmatched {
			out = append(out, unmatchedJSON{Name: rec.Name, Version: rec.FullVersion(), Layer: rec.Layer})
		}
		return writeJSON(w, out)
	}

	title := fmt.Sprintf("Recipes not found in layer index (%d)", len(unmatched))
	lines := make([]string, 0, len(unmatched))
	for _, rec := range unmatched {
		line := rec.Name + " " + rec.FullVersion()
		if rec.Layer != "" {
			line += " [" + rec.Layer + "]"
		}
		lines = append(lines, line)
	}

	if opts.Format == domain.FormatStyled {
		var b strings.Builder
		b.WriteString(style.Title.Render(title))
		for _, l := range lines {
			b.WriteString("\n" + style.Bad.Render(style.Cross) + " " + l)
		}
		_, err := fmt.Fprintln(w, style.Box.Render(b.String()))
		return err
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	for _, l := range lines {
		b.WriteString("  - " + l + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type failureJSON struct {
	Vulnerability string `json:"vulnerability"`
	Component     string `json:"component"`
	Error         string `json:"error"`
}

type remediationJSON struct {
	Eligible   int           `json:"eligible"`
	Remediated int           `json:"remediated"`
	Skipped    int           `json:"skipped"`
	Failed     int           `json:"failed"`
	Failures   []failureJSON `json:"failures"`
}

// RenderRemediation prints the outcome of a remediation run.
func (r *Renderer) RenderRemediation(w io.Writer, report domain.RemediationReport, opts domain.ReportOptions) error {
	failures := make([]failureJSON, 0, len(report.Failures))
	for _, f := range report.Failures {
		failures = append(failures, failureJSON{
			Vulnerability: f.Vulnerability.Name,
			Component:     f.Vulnerability.ComponentName + "/" + f.Vulnerability.ComponentVersion,
			Error:         f.Err.Error(),
		})
	}

	if opts.Format == domain.FormatJSON {
		return writeJSON(w, remediationJSON{
			Eligible:   report.Eligible,
			Remediated: report.Remediated,
			Skipped:    report.Skipped,
			Failed:     report.Failed(),
			Failures:   failures,
		})
	}

	rows := []row{
		{label: "Eligible", value: report.Eligible, icon: style.Dot, style: style.Count},
		{label: "Remediated", value: report.Remediated, icon: style.Check, style: style.Good},
		{label: "Already remediated", value: report.Skipped, icon: style.Tilde, style: style.Label},
		{label: "Failed", value: report.Failed(), icon: style.Cross, style: style.Bad},
	}
	if err := r.table(w, "Remediation summary", rows, opts.Format); err != nil {
		return err
	}

	for _, f := range failures {
		line := fmt.Sprintf("%s %s: %s", f.Vulnerability, f.Component, f.Error)
		if opts.Format == domain.FormatStyled {
			line = style.Bad.Render(style.Cross) + " " + line
		} else {
			line = "  - " + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) table(w io.Writer, title string, rows []row, format domain.ReportFormat) error {
	if format == domain.FormatStyled {
		return styledTable(w, title, rows)
	}
	return plainTable(w, title, rows)
}

func plainTable(w io.Writer, title string, rows []row) error {
	var b strings.Builder
	b.WriteString(title + "\n")
	for _, rw := range rows {
		label := strings.Repeat("  ", rw.indent) + rw.label
		fmt.Fprintf(&b, "  %-*s %d\n", labelWidth, label, rw.value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func styledTable(w io.Writer, title string, rows []row) error {
	lines := []string{style.Title.Render(title)}
	for _, rw := range rows {
		label := strings.Repeat("  ", rw.indent) + rw.label
		lines = append(lines, fmt.Sprintf("%s %s %s",
			rw.style.Render(rw.icon),
			style.Label.Render(fmt.Sprintf("%-*s", labelWidth, label)),
			style.Count.Render(fmt.Sprintf("%d", rw.value)),
		))
	}
	_, err := fmt.Fprintln(w, style.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
