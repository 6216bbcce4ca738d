package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RemediationStatus is the remediation state applied to a vulnerability record.
type RemediationStatus string

const (
	// StatusPatched marks a vulnerability as fixed by a local patch.
	StatusPatched RemediationStatus = "PATCHED"
	// StatusIgnored marks a vulnerability as not applicable.
	StatusIgnored RemediationStatus = "IGNORED"
)

// ParseRemediationStatus validates a remediation status, case-insensitively.
func ParseRemediationStatus(s string) (RemediationStatus, error) {
	switch RemediationStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPatched:
		return StatusPatched, nil
	case StatusIgnored:
		return StatusIgnored, nil
	default:
		return "", zerr.With(ErrInvalidRemediationStatus, "status", s)
	}
}

const (
	// SourceNVD is the vulnerability source for CVE records.
	SourceNVD = "NVD"
	// SourceBDSA is the vulnerability source for Black Duck advisories.
	SourceBDSA = "BDSA"
)

// Vulnerability is a vulnerability record attached to a BOM component.
type Vulnerability struct {
	Name                 string
	Source               string
	Severity             string
	RemediationStatus    RemediationStatus
	RelatedVulnerability string
	ComponentName        string
	ComponentVersion     string
	// Href is the URL of the component vulnerability record.
	Href string
}

// CVE returns the CVE id this record refers to, if known without a lookup.
// NVD records are CVEs themselves; BDSA records carry the CVE as the last
// path element of their related vulnerability link.
func (v *Vulnerability) CVE() string {
	switch v.Source {
	case SourceNVD:
		return v.Name
	case SourceBDSA:
		if v.RelatedVulnerability == "" {
			return ""
		}
		return v.RelatedVulnerability[strings.LastIndex(v.RelatedVulnerability, "/")+1:]
	default:
		return ""
	}
}

// RemediationFailure records a single vulnerability that could not be updated.
type RemediationFailure struct {
	Vulnerability Vulnerability
	Err           error
}

// RemediationReport summarizes one remediation run.
type RemediationReport struct {
	Eligible   int
	Remediated int
	Skipped    int
	Failures   []RemediationFailure
}

// Failed returns the number of records that could not be updated.
func (r RemediationReport) Failed() int {
	return len(r.Failures)
}
