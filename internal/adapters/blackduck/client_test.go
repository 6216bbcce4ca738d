package blackduck_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/oematch/internal/adapters/blackduck"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/core/ports"
	"go.trai.ch/oematch/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const serverURL = "https://bd.example.com"

// MockRoundTripper serves canned responses without a network.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) *http.Response
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req), nil
}

func newMockClient(handler func(req *http.Request) *http.Response) *http.Client {
	return &http.Client{Transport: &MockRoundTripper{RoundTripFunc: handler}}
}

func respond(status int, body any) *http.Response {
	var data []byte
	switch b := body.(type) {
	case string:
		data = []byte(b)
	default:
		data, _ = json.Marshal(b)
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     make(http.Header),
	}
}

func newService(t *testing.T, handler func(req *http.Request) *http.Response) *blackduck.Service {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return blackduck.NewServiceWithClient(log, newMockClient(handler))
}

// fakeServer routes requests by method and path after authentication.
func fakeServer(t *testing.T, routes map[string]func(req *http.Request) *http.Response) func(req *http.Request) *http.Response {
	t.Helper()
	return func(req *http.Request) *http.Response {
		if req.Method == http.MethodPost && req.URL.Path == "/api/tokens/authenticate" {
			if req.Header.Get("Authorization") != "token secret" {
				return respond(http.StatusUnauthorized, "")
			}
			return respond(http.StatusOK, map[string]any{"bearerToken": "bearer-1", "expiresInMilliseconds": 7200000})
		}
		if req.Header.Get("Authorization") != "Bearer bearer-1" {
			return respond(http.StatusUnauthorized, "")
		}
		if h, ok := routes[req.Method+" "+req.URL.Path]; ok {
			return h(req)
		}
		return respond(http.StatusNotFound, "")
	}
}

func connect(t *testing.T, routes map[string]func(req *http.Request) *http.Response) ports.VulnerabilitySession {
	t.Helper()
	svc := newService(t, fakeServer(t, routes))
	session, err := svc.Connect(context.Background(), domain.BlackDuckServer{URL: serverURL + "/", Token: "secret"})
	require.NoError(t, err)
	return session
}

func TestConnect_MissingConfig(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(*http.Request) *http.Response { return respond(http.StatusOK, "") })

	_, err := svc.Connect(context.Background(), domain.BlackDuckServer{Token: "secret"})
	require.ErrorIs(t, err, domain.ErrMissingServerConfig)

	_, err = svc.Connect(context.Background(), domain.BlackDuckServer{URL: serverURL, TokenEnv: "OEMATCH_TEST_UNSET_TOKEN"})
	require.ErrorIs(t, err, domain.ErrMissingServerConfig)
}

func TestConnect_TokenFromEnv(t *testing.T) {
	t.Setenv("OEMATCH_TEST_TOKEN", "secret")

	svc := newService(t, fakeServer(t, nil))
	_, err := svc.Connect(context.Background(), domain.BlackDuckServer{URL: serverURL, TokenEnv: "OEMATCH_TEST_TOKEN"})
	require.NoError(t, err)
}

func TestConnect_Rejected(t *testing.T) {
	t.Parallel()

	svc := newService(t, fakeServer(t, nil))
	_, err := svc.Connect(context.Background(), domain.BlackDuckServer{URL: serverURL, Token: "wrong"})
	require.EqualError(t, err, domain.ErrBlackDuckAuthFailed.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, http.StatusUnauthorized, zErr.Metadata()["status_code"])
}

func TestConnect_EmptyBearerToken(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(*http.Request) *http.Response {
		return respond(http.StatusOK, `{"bearerToken":""}`)
	})
	_, err := svc.Connect(context.Background(), domain.BlackDuckServer{URL: serverURL, Token: "secret"})
	require.EqualError(t, err, domain.ErrBlackDuckAuthFailed.Error())
}

func projectRoutes() map[string]func(req *http.Request) *http.Response {
	return map[string]func(req *http.Request) *http.Response{
		"GET /api/projects": func(req *http.Request) *http.Response {
			if req.URL.Query().Get("q") != "name:my-image" {
				return respond(http.StatusOK, `{"totalCount":0,"items":[]}`)
			}
			return respond(http.StatusOK, map[string]any{
				"totalCount": 2,
				"items": []any{
					map[string]any{"name": "my-image-extra", "_meta": map[string]any{"href": serverURL + "/api/projects/p2"}},
					map[string]any{"name": "my-image", "_meta": map[string]any{"href": serverURL + "/api/projects/p1"}},
				},
			})
		},
		"GET /api/projects/p1/versions": func(req *http.Request) *http.Response {
			if req.URL.Query().Get("q") != "versionName:1.0" {
				return respond(http.StatusOK, `{"totalCount":0,"items":[]}`)
			}
			return respond(http.StatusOK, map[string]any{
				"totalCount": 1,
				"items": []any{
					map[string]any{"versionName": "1.0", "_meta": map[string]any{"href": serverURL + "/api/projects/p1/versions/v1"}},
				},
			})
		},
	}
}

func TestSession_ProjectVersion(t *testing.T) {
	t.Parallel()

	session := connect(t, projectRoutes())

	href, err := session.ProjectVersion(context.Background(), "my-image", "1.0")
	require.NoError(t, err)
	assert.Equal(t, serverURL+"/api/projects/p1/versions/v1", href)

	_, err = session.ProjectVersion(context.Background(), "my-image", "2.0")
	require.EqualError(t, err, domain.ErrProjectVersionNotFound.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "my-image", zErr.Metadata()["project"])
	assert.Equal(t, "2.0", zErr.Metadata()["version"])

	_, err = session.ProjectVersion(context.Background(), "other", "1.0")
	require.EqualError(t, err, domain.ErrProjectVersionNotFound.Error())
}

func vulnItem(i int) map[string]any {
	return map[string]any{
		"componentName":        "busybox",
		"componentVersionName": "1.36.1",
		"vulnerabilityWithRemediation": map[string]any{
			"vulnerabilityName": fmt.Sprintf("CVE-2024-%04d", i),
			"source":            "NVD",
			"severity":          "HIGH",
			"remediationStatus": "NEW",
		},
		"_meta": map[string]any{"href": fmt.Sprintf("%s/api/vulns/%d", serverURL, i)},
	}
}

func TestSession_VulnerabilitiesPaging(t *testing.T) {
	t.Parallel()

	const total = 150
	var offsets []string
	versionURL := serverURL + "/api/projects/p1/versions/v1"

	session := connect(t, map[string]func(req *http.Request) *http.Response{
		"GET /api/projects/p1/versions/v1/vulnerable-bom-components": func(req *http.Request) *http.Response {
			offset, _ := strconv.Atoi(req.URL.Query().Get("offset"))
			limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
			offsets = append(offsets, req.URL.Query().Get("offset"))

			items := []any{}
			for i := offset; i < offset+limit && i < total; i++ {
				items = append(items, vulnItem(i))
			}
			return respond(http.StatusOK, map[string]any{"totalCount": total, "items": items})
		},
	})

	vulns, err := session.Vulnerabilities(context.Background(), versionURL)
	require.NoError(t, err)
	require.Len(t, vulns, total)
	assert.Equal(t, []string{"0", "100"}, offsets)

	first := vulns[0]
	assert.Equal(t, "CVE-2024-0000", first.Name)
	assert.Equal(t, domain.SourceNVD, first.Source)
	assert.Equal(t, "HIGH", first.Severity)
	assert.Equal(t, domain.RemediationStatus("NEW"), first.RemediationStatus)
	assert.Equal(t, "busybox", first.ComponentName)
	assert.Equal(t, "1.36.1", first.ComponentVersion)
	assert.Equal(t, serverURL+"/api/vulns/0", first.Href)
}

func TestSession_VulnerabilitiesError(t *testing.T) {
	t.Parallel()

	session := connect(t, map[string]func(req *http.Request) *http.Response{
		"GET /api/projects/p1/versions/v1/vulnerable-bom-components": func(*http.Request) *http.Response {
			return respond(http.StatusInternalServerError, "")
		},
	})

	_, err := session.Vulnerabilities(context.Background(), serverURL+"/api/projects/p1/versions/v1")
	require.EqualError(t, err, domain.ErrBlackDuckRequestFailed.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, http.StatusInternalServerError, zErr.Metadata()["status_code"])
}

func TestSession_LinkedCVE(t *testing.T) {
	t.Parallel()

	details := map[string]string{
		"/api/vulnerabilities/BDSA-2024-0001": `{"name":"BDSA-2024-0001","source":"BDSA","_meta":{"links":[
			{"rel":"related-vulnerability","label":"NVD","href":"https://bd.example.com/api/vulnerabilities/CVE-2024-1111"}]}}`,
		"/api/vulnerabilities/BDSA-2024-0002": `{"name":"BDSA-2024-0002","source":"BDSA","_meta":{"links":[
			{"rel":"related-vulnerability","label":"OTHER","href":"https://bd.example.com/api/vulnerabilities/X-1"},
			{"rel":"related-vulnerability","label":"NVD","href":"https://bd.example.com/api/vulnerabilities/CVE-2024-2222"}]}}`,
		"/api/vulnerabilities/CVE-2024-3333": `{"name":"CVE-2024-3333","source":"NVD","_meta":{"links":[]}}`,
	}
	session := connect(t, map[string]func(req *http.Request) *http.Response{
		"GET /api/vulnerabilities/BDSA-2024-0001": func(req *http.Request) *http.Response {
			return respond(http.StatusOK, details[req.URL.Path])
		},
		"GET /api/vulnerabilities/BDSA-2024-0002": func(req *http.Request) *http.Response {
			return respond(http.StatusOK, details[req.URL.Path])
		},
		"GET /api/vulnerabilities/CVE-2024-3333": func(req *http.Request) *http.Response {
			return respond(http.StatusOK, details[req.URL.Path])
		},
	})

	tests := []struct {
		name string
		want string
	}{
		{"BDSA-2024-0001", "CVE-2024-1111"},
		{"BDSA-2024-0002", ""},
		{"CVE-2024-3333", "CVE-2024-3333"},
	}
	for _, tt := range tests {
		cve, err := session.LinkedCVE(context.Background(), domain.Vulnerability{Name: tt.name, Source: domain.SourceBDSA})
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, cve, tt.name)
	}

	_, err := session.LinkedCVE(context.Background(), domain.Vulnerability{Name: "BDSA-missing"})
	require.EqualError(t, err, domain.ErrBlackDuckRequestFailed.Error())
}

func TestSession_Remediate(t *testing.T) {
	t.Parallel()

	var got map[string]string
	var contentType string
	session := connect(t, map[string]func(req *http.Request) *http.Response{
		"PUT /api/vulns/7": func(req *http.Request) *http.Response {
			contentType = req.Header.Get("Content-Type")
			if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
				return respond(http.StatusBadRequest, "")
			}
			return respond(http.StatusAccepted, "")
		},
		"PUT /api/vulns/8": func(*http.Request) *http.Response {
			return respond(http.StatusForbidden, "")
		},
	})

	vuln := domain.Vulnerability{Name: "CVE-2024-7", Href: serverURL + "/api/vulns/7"}
	require.NoError(t, session.Remediate(context.Background(), vuln, domain.StatusPatched, "Patched by bitbake recipe"))
	assert.Equal(t, map[string]string{"remediationStatus": "PATCHED", "comment": "Patched by bitbake recipe"}, got)
	assert.Equal(t, "application/vnd.blackducksoftware.bill-of-materials-6+json", contentType)

	err := session.Remediate(context.Background(), domain.Vulnerability{Href: serverURL + "/api/vulns/8"}, domain.StatusIgnored, "")
	require.EqualError(t, err, domain.ErrBlackDuckRequestFailed.Error())

	err = session.Remediate(context.Background(), domain.Vulnerability{Name: "no-href"}, domain.StatusPatched, "")
	require.EqualError(t, err, domain.ErrBlackDuckRequestFailed.Error())
}
