package bitbake_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/oematch/internal/adapters/bitbake"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func newLoader(t *testing.T) *bitbake.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return bitbake.NewLoader(log)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), domain.FilePerm)
}

func byName(recipes []*domain.LocalRecipe) map[string]*domain.LocalRecipe {
	out := make(map[string]*domain.LocalRecipe, len(recipes))
	for _, r := range recipes {
		out[r.Name] = r
	}
	return out
}

func TestLoad_Manifest(t *testing.T) {
	t.Parallel()

	recipes, err := newLoader(t).Load(context.Background(), domain.InventorySources{
		LicenseManifest: fixture("license.manifest"),
		KernelRecipe:    domain.DefaultKernelRecipe,
	})
	require.NoError(t, err)

	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"busybox", "zlib", "linux-yocto", "openssl"}, names)

	m := byName(recipes)
	assert.Equal(t, "1.36.1", m["busybox"].Version)
	assert.Equal(t, "GPL-2.0-only AND bzip2-1.0.4", m["busybox"].License)
	assert.Equal(t, "Apache-2.0 OR OpenSSL", m["openssl"].License)
	assert.Equal(t, []string{"bzImage", "bzImage-6.6.21-yocto-standard"}, m["linux-yocto"].Files)
	assert.Nil(t, m["busybox"].Files)
	assert.Empty(t, m["busybox"].Layer)
}

func TestLoad_ManifestWithLayers(t *testing.T) {
	t.Parallel()

	recipes, err := newLoader(t).Load(context.Background(), domain.InventorySources{
		LicenseManifest: fixture("license.manifest"),
		LayersReport:    fixture("show-recipes.txt"),
	})
	require.NoError(t, err)
	require.Len(t, recipes, 4)

	m := byName(recipes)

	assert.Equal(t, "meta", m["busybox"].Layer)

	assert.Equal(t, "meta", m["zlib"].Layer)
	assert.Equal(t, "1", m["zlib"].Epoch)
	assert.Equal(t, "1.3.1", m["zlib"].Version)

	// Reported version does not contain the manifest version.
	assert.Empty(t, m["openssl"].Layer)
	assert.Equal(t, "3.2.1", m["openssl"].Version)
	assert.Empty(t, m["linux-yocto"].Layer)
}

func TestLoad_TaskDependsOnly(t *testing.T) {
	t.Parallel()

	recipes, err := newLoader(t).Load(context.Background(), domain.InventorySources{
		TaskDepends:  fixture("task-depends.dot"),
		Target:       "core-image-minimal",
		LayersReport: fixture("show-recipes.txt"),
	})
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	assert.Equal(t, "busybox", recipes[0].Name)
	assert.Equal(t, "1.36.1", recipes[0].Version)
	assert.Equal(t, "r0", recipes[0].Release)
	assert.Equal(t, "meta", recipes[0].Layer)

	assert.Equal(t, "zlib", recipes[1].Name)
	assert.Equal(t, "1", recipes[1].Epoch)
	assert.Equal(t, "1.3.1", recipes[1].Version)
	assert.Equal(t, "r2", recipes[1].Release)
}

func TestLoad_ManifestAndTaskDepends(t *testing.T) {
	t.Parallel()

	recipes, err := newLoader(t).Load(context.Background(), domain.InventorySources{
		LicenseManifest: fixture("license.manifest"),
		TaskDepends:     fixture("task-depends.dot"),
		Target:          "core-image-minimal",
	})
	require.NoError(t, err)
	require.Len(t, recipes, 4)

	m := byName(recipes)
	assert.Equal(t, "r0", m["busybox"].Release)
	assert.Equal(t, "r2", m["zlib"].Release)
	assert.Empty(t, m["openssl"].Release)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no source", func(t *testing.T) {
		t.Parallel()
		_, err := newLoader(t).Load(context.Background(), domain.InventorySources{})
		require.ErrorIs(t, err, domain.ErrInventoryMissingSource)
	})

	t.Run("task depends without target", func(t *testing.T) {
		t.Parallel()
		_, err := newLoader(t).Load(context.Background(), domain.InventorySources{
			TaskDepends: fixture("task-depends.dot"),
		})
		require.ErrorIs(t, err, domain.ErrMissingTarget)
	})

	t.Run("unknown target", func(t *testing.T) {
		t.Parallel()
		_, err := newLoader(t).Load(context.Background(), domain.InventorySources{
			TaskDepends: fixture("task-depends.dot"),
			Target:      "core-image-full",
		})
		require.EqualError(t, err, domain.ErrTargetNotFound.Error())

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "core-image-full", zErr.Metadata()["target"])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		path := fixture("does-not-exist.manifest")
		_, err := newLoader(t).Load(context.Background(), domain.InventorySources{
			LicenseManifest: path,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrInventoryReadFailed.Error())

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, path, zErr.Metadata()["path"])
	})

	t.Run("empty inventory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "license.manifest")
		require.NoError(t, writeFile(path, "PACKAGE NAME: x\n"))

		_, err := newLoader(t).Load(context.Background(), domain.InventorySources{
			LicenseManifest: path,
		})
		require.ErrorIs(t, err, domain.ErrInventoryEmpty)
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newLoader(t).Load(ctx, domain.InventorySources{
			LicenseManifest: fixture("license.manifest"),
			LayersReport:    fixture("show-recipes.txt"),
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}
