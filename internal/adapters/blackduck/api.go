package blackduck

// Media types accepted by the Black Duck REST API.
const (
	mediaBOM           = "application/vnd.blackducksoftware.bill-of-materials-6+json"
	mediaVulnerability = "application/vnd.blackducksoftware.vulnerability-4+json"
	mediaProject       = "application/vnd.blackducksoftware.project-detail-4+json"
)

type link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Label string `json:"label,omitempty"`
}

type meta struct {
	Href  string `json:"href"`
	Links []link `json:"links"`
}

type authResponse struct {
	BearerToken           string `json:"bearerToken"`
	ExpiresInMilliseconds int64  `json:"expiresInMilliseconds"`
}

type page[T any] struct {
	TotalCount int `json:"totalCount"`
	Items      []T `json:"items"`
}

type project struct {
	Name string `json:"name"`
	Meta meta   `json:"_meta"`
}

type projectVersion struct {
	VersionName string `json:"versionName"`
	Meta        meta   `json:"_meta"`
}

type vulnerableComponent struct {
	ComponentName        string `json:"componentName"`
	ComponentVersionName string `json:"componentVersionName"`
	Vulnerability        struct {
		VulnerabilityName    string `json:"vulnerabilityName"`
		Source               string `json:"source"`
		Severity             string `json:"severity"`
		RemediationStatus    string `json:"remediationStatus"`
		RelatedVulnerability string `json:"relatedVulnerability"`
	} `json:"vulnerabilityWithRemediation"`
	Meta meta `json:"_meta"`
}

type vulnerabilityDetail struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Meta   meta   `json:"_meta"`
}

type remediation struct {
	RemediationStatus string `json:"remediationStatus"`
	Comment           string `json:"comment"`
}
