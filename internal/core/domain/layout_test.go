package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/oematch/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultOematchPath",
			got:      domain.DefaultOematchPath(),
			expected: ".oematch",
		},
		{
			name:     "DefaultCatalogCachePath",
			got:      domain.DefaultCatalogCachePath(),
			expected: filepath.Join(".oematch", "catalog"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}
