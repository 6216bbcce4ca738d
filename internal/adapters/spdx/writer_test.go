package spdx_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/oematch/internal/adapters/spdx"
	"go.trai.ch/oematch/internal/core/domain"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
	}
}

func fixedClock() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func newWriter() *spdx.Writer {
	return spdx.NewWriter(spdx.WithIDGenerator(sequentialIDs()), spdx.WithClock(fixedClock))
}

func fixtureRecipes() []*domain.LocalRecipe {
	busybox := domain.NewLocalRecipe("busybox", "1.36.1")
	busybox.Layer = "meta"
	busybox.License = "GPL-2.0-only AND bzip2-1.0.4"
	busybox.Match = domain.MatchResult{
		Recipe: &domain.CatalogRecipe{
			ID: 1, Name: "busybox", Version: "1.36.1", Release: "r0",
			Summary: "Tiny versions of many common UNIX utilities",
		},
		Layer:        &domain.Layer{ID: 1, Name: domain.CoreLayerName},
		ExactVersion: true,
		SameLayer:    true,
	}

	zlib := domain.NewLocalRecipe("zlib", "1:1.3.1+git")
	zlib.Layer = "meta-oe"
	zlib.Match = domain.MatchResult{
		Recipe: &domain.CatalogRecipe{ID: 2, Name: "zlib", Version: "1.3.1+git", Epoch: "1", License: "Zlib"},
		Layer:  &domain.Layer{ID: 2, Name: "meta-oe"},
	}

	gtk := domain.NewLocalRecipe("gtk+3", "2:3.24.38")
	gtk.Release = "r1"

	return []*domain.LocalRecipe{busybox, zlib, gtk}
}

func TestWriter_Golden(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newWriter().Write(&buf, "my-image", "1.0", fixtureRecipes()))

	goldie.New(t).Assert(t, "document", buf.Bytes())
}

func TestWriter_Structure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	recipes := fixtureRecipes()
	require.NoError(t, newWriter().Write(&buf, "proj", "2.0", recipes))

	var doc spdx.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Packages, len(recipes)+1)
	require.Len(t, doc.Relationships, len(recipes))
	root := doc.Packages[0].SPDXID
	assert.Equal(t, []string{root}, doc.DocumentDescribes)

	seen := map[string]bool{}
	for i, rel := range doc.Relationships {
		assert.Equal(t, "DYNAMIC_LINK", rel.RelationshipType)
		assert.Equal(t, root, rel.RelatedSPDXElement)
		assert.Equal(t, doc.Packages[i+1].SPDXID, rel.SPDXElementID)
		assert.False(t, seen[rel.SPDXElementID], "element ids must be unique")
		seen[rel.SPDXElementID] = true
	}
	assert.Equal(t, "https://blackducksoftware.github.io/spdx/proj-00000000-0000-0000-0000-000000000002", doc.DocumentNamespace)
}

func TestWriter_Purls(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newWriter().Write(&buf, "proj", "1", fixtureRecipes()))

	var doc spdx.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	purls := make([]string, 0, len(doc.Packages)-1)
	for _, p := range doc.Packages[1:] {
		require.Len(t, p.ExternalRefs, 1)
		purls = append(purls, p.ExternalRefs[0].ReferenceLocator)
	}
	assert.Equal(t, []string{
		"pkg:openembedded/meta/busybox@1.36.1-r0",
		"pkg:openembedded/meta-oe/zlib@1%3A1.3.1%2Bgit-r0",
		"pkg:openembedded/meta/gtk%2B3@2%3A3.24.38-r1",
	}, purls)

	assert.Equal(t, "Zlib", doc.Packages[2].LicenseDeclared)
	assert.Equal(t, "NOASSERTION", doc.Packages[3].LicenseConcluded)
}

func TestWriter_RandomIDs(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	w := spdx.NewWriter(spdx.WithClock(fixedClock))
	require.NoError(t, w.Write(&a, "p", "1", nil))
	require.NoError(t, w.Write(&b, "p", "1", nil))

	assert.NotEqual(t, a.String(), b.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_WriteError(t *testing.T) {
	t.Parallel()

	err := newWriter().Write(failingWriter{}, "p", "1", fixtureRecipes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSBOMWriteFailed.Error())
	assert.Contains(t, err.Error(), "disk full")
}
