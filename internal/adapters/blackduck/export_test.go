package blackduck

import (
	"net/http"

	"go.trai.ch/oematch/internal/core/ports"
)

// NewServiceWithClient exposes newServiceWithClient for testing.
func NewServiceWithClient(logger ports.Logger, client *http.Client) *Service {
	return newServiceWithClient(logger, client)
}
