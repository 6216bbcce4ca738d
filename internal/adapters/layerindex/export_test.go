package layerindex

import (
	"net/http"

	"go.trai.ch/oematch/internal/core/ports"
)

// NewSourceWithClient exports newSourceWithClient for testing.
func NewSourceWithClient(store ports.SnapshotStore, logger ports.Logger, client *http.Client) *Source {
	return newSourceWithClient(store, logger, client)
}
