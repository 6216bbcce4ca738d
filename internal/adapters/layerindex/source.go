// Package layerindex loads catalog snapshots from the OpenEmbedded layer index API.
package layerindex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Snapshot kinds and the API endpoints serving them.
const (
	KindLayers        = "layers"
	KindBranches      = "branches"
	KindLayerBranches = "layerbranches"
	KindRecipes       = "recipes"
)

var endpoints = map[string]string{
	KindLayers:        "layerItems/",
	KindBranches:      "branches/",
	KindLayerBranches: "layerBranches/",
	KindRecipes:       "recipes/",
}

var kinds = []string{KindLayers, KindBranches, KindLayerBranches, KindRecipes}

// Source implements ports.CatalogSource over HTTP with a snapshot cache.
type Source struct {
	store  ports.SnapshotStore
	logger ports.Logger
	client *http.Client
}

// NewSource creates a Source. The HTTP client is built per Load from the
// configured timeout.
func NewSource(store ports.SnapshotStore, logger ports.Logger) *Source {
	return &Source{store: store, logger: logger}
}

// newSourceWithClient creates a Source with a fixed HTTP client (used for testing).
func newSourceWithClient(store ports.SnapshotStore, logger ports.Logger, client *http.Client) *Source {
	return &Source{store: store, logger: logger, client: client}
}

// Load returns a complete catalog. Each of the four tables comes from the
// snapshot cache unless opts.Refresh is set, and is downloaded otherwise.
// Downloads run concurrently; in offline mode a missing table is an error.
func (s *Source) Load(ctx context.Context, opts domain.CatalogOptions) (*domain.Catalog, error) {
	client := s.client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	raw := make([][]byte, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			data, err := s.snapshot(gctx, client, opts, kind)
			raw[i] = data
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var c domain.Catalog
	if err := decode(KindLayers, raw[0], &c.Layers); err != nil {
		return nil, err
	}
	if err := decode(KindBranches, raw[1], &c.Branches); err != nil {
		return nil, err
	}
	if err := decode(KindLayerBranches, raw[2], &c.LayerBranches); err != nil {
		return nil, err
	}
	if err := decode(KindRecipes, raw[3], &c.Recipes); err != nil {
		return nil, err
	}

	s.logger.Debug(fmt.Sprintf("catalog loaded: %d layers, %d branches, %d layer branches, %d recipes",
		len(c.Layers), len(c.Branches), len(c.LayerBranches), len(c.Recipes)))
	return &c, nil
}

func (s *Source) snapshot(ctx context.Context, client *http.Client, opts domain.CatalogOptions, kind string) ([]byte, error) {
	if !opts.Refresh || opts.Offline {
		data, err := s.store.Get(opts.CacheDir, kind)
		switch {
		case err != nil && opts.Offline:
			return nil, err
		case err != nil:
			s.logger.Warn(fmt.Sprintf("ignoring cached %s: %v", kind, err))
		case data != nil:
			s.logger.Debug("using cached " + kind)
			return data, nil
		}
	}

	if opts.Offline {
		return nil, zerr.With(zerr.With(domain.ErrCatalogUnavailable, "kind", kind), "cache_dir", opts.CacheDir)
	}

	data, err := fetch(ctx, client, opts.BaseURL, kind)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(opts.CacheDir, kind, data); err != nil {
		s.logger.Warn(fmt.Sprintf("could not cache %s: %v", kind, err))
	}
	return data, nil
}

func fetch(ctx context.Context, client *http.Client, baseURL, kind string) ([]byte, error) {
	url := strings.TrimRight(baseURL, "/") + "/" + endpoints[kind]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogFetchFailed.Error()), "url", url)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogFetchFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(domain.ErrCatalogFetchFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(apiErr, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogFetchFailed.Error()), "url", url)
	}
	if !json.Valid(body) {
		return nil, zerr.With(zerr.With(domain.ErrCatalogParseFailed, "kind", kind), "url", url)
	}
	return body, nil
}

func decode[T any](kind string, data []byte, target *[]T) error {
	if err := json.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCatalogParseFailed.Error()), "kind", kind)
	}
	return nil
}
