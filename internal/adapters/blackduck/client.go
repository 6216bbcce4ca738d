// Package blackduck implements the vulnerability service over the Black Duck REST API.
package blackduck

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/core/ports"
	"go.trai.ch/zerr"
)

const pageSize = 100

// Service implements ports.VulnerabilityService.
type Service struct {
	logger ports.Logger
	client *http.Client
}

// NewService creates a Service. The HTTP client is built per Connect so the
// server's trust_cert setting applies.
func NewService(logger ports.Logger) *Service {
	return &Service{logger: logger}
}

// newServiceWithClient creates a Service with a fixed HTTP client (used for testing).
func newServiceWithClient(logger ports.Logger, client *http.Client) *Service {
	return &Service{logger: logger, client: client}
}

// Connect exchanges the API token for a bearer token and returns a session.
// The token comes from server.Token, or from the server.TokenEnv variable.
func (s *Service) Connect(ctx context.Context, server domain.BlackDuckServer) (ports.VulnerabilitySession, error) {
	token := server.Token
	if token == "" && server.TokenEnv != "" {
		token = os.Getenv(server.TokenEnv)
	}
	if server.URL == "" || token == "" {
		return nil, domain.ErrMissingServerConfig
	}

	client := s.client
	if client == nil {
		client = &http.Client{Timeout: domain.DefaultHTTPTimeout, Transport: transport(server.TrustCert)}
	}

	base := strings.TrimSuffix(server.URL, "/")
	authURL := base + "/api/tokens/authenticate"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrBlackDuckAuthFailed.Error())
	}
	req.Header.Set("Authorization", "token "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBlackDuckAuthFailed.Error()), "url", authURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.With(domain.ErrBlackDuckAuthFailed, "status_code", resp.StatusCode), "url", authURL)
	}

	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, zerr.Wrap(err, domain.ErrBlackDuckAuthFailed.Error())
	}
	if auth.BearerToken == "" {
		return nil, zerr.With(domain.ErrBlackDuckAuthFailed, "url", authURL)
	}

	s.logger.Debug("authenticated with " + base)
	return &Session{
		base:   base,
		token:  auth.BearerToken,
		client: client,
		logger: s.logger,
	}, nil
}

func transport(trustCert bool) http.RoundTripper {
	if !trustCert {
		return http.DefaultTransport
	}
	t := http.DefaultTransport.(*http.Transport).Clone()
	//nolint:gosec // G402: certificate checks are disabled only when trust_cert is set
	t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	return t
}

// Session is an authenticated connection to a Black Duck server.
type Session struct {
	base   string
	token  string
	client *http.Client
	logger ports.Logger
}

// ProjectVersion returns the href of the named project version.
func (s *Session) ProjectVersion(ctx context.Context, projectName, versionName string) (string, error) {
	notFound := zerr.With(zerr.With(domain.ErrProjectVersionNotFound, "project", projectName), "version", versionName)

	q := url.Values{"q": {"name:" + projectName}, "limit": {strconv.Itoa(pageSize)}}
	var projects page[project]
	if err := s.get(ctx, s.base+"/api/projects?"+q.Encode(), mediaProject, &projects); err != nil {
		return "", err
	}

	var projectHref string
	for _, p := range projects.Items {
		if p.Name == projectName {
			projectHref = p.Meta.Href
			break
		}
	}
	if projectHref == "" {
		return "", notFound
	}

	q = url.Values{"q": {"versionName:" + versionName}, "limit": {strconv.Itoa(pageSize)}}
	var versions page[projectVersion]
	if err := s.get(ctx, projectHref+"/versions?"+q.Encode(), mediaProject, &versions); err != nil {
		return "", err
	}
	for _, v := range versions.Items {
		if v.VersionName == versionName {
			return v.Meta.Href, nil
		}
	}
	return "", notFound
}

// Vulnerabilities pages through the vulnerable BOM components of a project version.
func (s *Session) Vulnerabilities(ctx context.Context, versionURL string) ([]domain.Vulnerability, error) {
	var vulns []domain.Vulnerability

	for offset := 0; ; offset += pageSize {
		q := url.Values{"limit": {strconv.Itoa(pageSize)}, "offset": {strconv.Itoa(offset)}}
		var p page[vulnerableComponent]
		if err := s.get(ctx, versionURL+"/vulnerable-bom-components?"+q.Encode(), mediaBOM, &p); err != nil {
			return nil, err
		}

		for i := range p.Items {
			vulns = append(vulns, toVulnerability(&p.Items[i]))
		}
		s.logger.Debug(fmt.Sprintf("fetched %d of %d vulnerable components", len(vulns), p.TotalCount))

		if len(p.Items) == 0 || offset+pageSize >= p.TotalCount {
			break
		}
	}

	return vulns, nil
}

// LinkedCVE resolves the NVD record linked to a BDSA advisory. Non-BDSA
// records are their own CVE.
func (s *Session) LinkedCVE(ctx context.Context, vuln domain.Vulnerability) (string, error) {
	var detail vulnerabilityDetail
	if err := s.get(ctx, s.base+"/api/vulnerabilities/"+url.PathEscape(vuln.Name), mediaVulnerability, &detail); err != nil {
		return "", err
	}

	if detail.Source != domain.SourceBDSA {
		return vuln.Name, nil
	}
	for _, l := range detail.Meta.Links {
		if l.Rel != "related-vulnerability" {
			continue
		}
		if l.Label == domain.SourceNVD {
			return l.Href[strings.LastIndex(l.Href, "/")+1:], nil
		}
		break
	}
	return "", nil
}

// Remediate sets the remediation status and comment of a vulnerability record.
func (s *Session) Remediate(ctx context.Context, vuln domain.Vulnerability, status domain.RemediationStatus, comment string) error {
	if vuln.Href == "" {
		return zerr.With(domain.ErrBlackDuckRequestFailed, "vulnerability", vuln.Name)
	}
	body := remediation{RemediationStatus: string(status), Comment: comment}
	return s.do(ctx, http.MethodPut, vuln.Href, mediaBOM, body, nil)
}

func (s *Session) get(ctx context.Context, target, accept string, out any) error {
	return s.do(ctx, http.MethodGet, target, accept, nil, out)
}

func (s *Session) do(ctx context.Context, method, target, accept string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return zerr.Wrap(err, domain.ErrBlackDuckRequestFailed.Error())
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBlackDuckRequestFailed.Error()), "url", target)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", accept)
	if in != nil {
		req.Header.Set("Content-Type", accept)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBlackDuckRequestFailed.Error()), "url", target)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zerr.With(zerr.With(domain.ErrBlackDuckRequestFailed, "status_code", resp.StatusCode), "url", target)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBlackDuckRequestFailed.Error()), "url", target)
	}
	return nil
}

func toVulnerability(c *vulnerableComponent) domain.Vulnerability {
	v := c.Vulnerability
	return domain.Vulnerability{
		Name:                 v.VulnerabilityName,
		Source:               v.Source,
		Severity:             v.Severity,
		RemediationStatus:    domain.RemediationStatus(v.RemediationStatus),
		RelatedVulnerability: v.RelatedVulnerability,
		ComponentName:        c.ComponentName,
		ComponentVersion:     c.ComponentVersionName,
		Href:                 c.Meta.Href,
	}
}
