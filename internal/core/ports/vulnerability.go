package ports

import (
	"context"

	"go.trai.ch/oematch/internal/core/domain"
)

//go:generate mockgen -source=vulnerability.go -destination=mocks/mock_vulnerability.go -package=mocks

// PatchedCVESource reads the CVEs a build reports as patched.
type PatchedCVESource interface {
	// Load returns patched CVE ids for recipes accepted by known.
	// A nil known accepts every package.
	Load(path string, known func(recipe string) bool) ([]string, error)
}

// VulnerabilityService opens authenticated sessions against a vulnerability server.
type VulnerabilityService interface {
	Connect(ctx context.Context, server domain.BlackDuckServer) (VulnerabilitySession, error)
}

// VulnerabilitySession reads and updates vulnerability records of a project version.
type VulnerabilitySession interface {
	// ProjectVersion resolves the URL of a project version by names.
	ProjectVersion(ctx context.Context, project, version string) (string, error)

	// Vulnerabilities lists every vulnerable BOM component record of the project version.
	Vulnerabilities(ctx context.Context, versionURL string) ([]domain.Vulnerability, error)

	// LinkedCVE looks up the NVD id linked to a BDSA record; "" when there is none.
	LinkedCVE(ctx context.Context, vuln domain.Vulnerability) (string, error)

	// Remediate sets the remediation status of a record.
	Remediate(ctx context.Context, vuln domain.Vulnerability, status domain.RemediationStatus, comment string) error
}
