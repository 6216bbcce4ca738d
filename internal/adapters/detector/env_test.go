package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/oematch/internal/adapters/detector"
	"go.trai.ch/oematch/internal/core/domain"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		isTTY    bool
		ci       string
		expected domain.ReportFormat
	}{
		{"tty outside CI is styled", true, "", domain.FormatStyled},
		{"CI=true forces plain", true, "true", domain.FormatPlain},
		{"CI=1 forces plain", true, "1", domain.FormatPlain},
		{"CI=false does not force plain", true, "false", domain.FormatStyled},
		{"pipe is plain", false, "", domain.FormatPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, domain.FormatPlain, detector.DetectEnvironment())
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		detected domain.ReportFormat
		flag     string
		json     bool
		expected domain.ReportFormat
	}{
		{"auto keeps styled", domain.FormatStyled, "auto", false, domain.FormatStyled},
		{"empty keeps plain", domain.FormatPlain, "", false, domain.FormatPlain},
		{"styled override", domain.FormatPlain, "styled", false, domain.FormatStyled},
		{"plain override", domain.FormatStyled, "plain", false, domain.FormatPlain},
		{"ci alias", domain.FormatStyled, "ci", false, domain.FormatPlain},
		{"json flag wins", domain.FormatStyled, "styled", true, domain.FormatJSON},
		{"json format", domain.FormatPlain, "json", false, domain.FormatJSON},
		{"unknown keeps detected", domain.FormatPlain, "fancy", false, domain.FormatPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, detector.ResolveFormat(tt.detected, tt.flag, tt.json))
		})
	}
}
