// Package spdx writes resolved recipes as an SPDX 2.3 JSON document.
package spdx

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/oematch/internal/build"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	documentID      = "SPDXRef-DOCUMENT"
	specVersion     = "SPDX-2.3"
	dataLicense     = "CC0-1.0"
	noAssertion     = "NOASSERTION"
	namespacePrefix = "https://blackducksoftware.github.io/spdx/"
	idPrefix        = "SPDXRef-package-"
	defaultRelease  = "r0"
	licenseListVer  = "3.21"
	createdLayout   = "2006-01-02T15:04:05Z"
)

// Writer implements ports.SBOMWriter.
type Writer struct {
	newID func() string
	now   func() time.Time
}

// Option configures a Writer.
type Option func(*Writer)

// WithIDGenerator replaces the uuid generator used for element ids and the
// namespace suffix.
func WithIDGenerator(fn func() string) Option {
	return func(w *Writer) {
		w.newID = fn
	}
}

// WithClock replaces the clock used for the creation timestamp.
func WithClock(fn func() time.Time) Option {
	return func(w *Writer) {
		w.now = fn
	}
}

// NewWriter creates a Writer with random uuids and the system clock.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write renders recipes as packages linked to a root package for
// project/version and encodes the document to out.
func (w *Writer) Write(out io.Writer, project, version string, recipes []*domain.LocalRecipe) error {
	doc := w.document(project, version, recipes)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return zerr.Wrap(err, domain.ErrSBOMWriteFailed.Error())
	}
	return nil
}

func (w *Writer) document(project, version string, recipes []*domain.LocalRecipe) Document {
	rootID := idPrefix + w.newID()

	doc := Document{
		SPDXID:      documentID,
		SPDXVersion: specVersion,
		CreationInfo: CreationInfo{
			Created:            w.now().UTC().Format(createdLayout),
			Creators:           []string{"Tool: oematch-" + build.Version},
			LicenseListVersion: licenseListVer,
		},
		Name:              project + "-" + version,
		DataLicense:       dataLicense,
		DocumentDescribes: []string{rootID},
		DocumentNamespace: namespacePrefix + project + "-" + w.newID(),
		Packages: []Package{{
			SPDXID:           rootID,
			Name:             project,
			VersionInfo:      version,
			DownloadLocation: noAssertion,
			LicenseConcluded: noAssertion,
			LicenseDeclared:  noAssertion,
			Supplier:         noAssertion,
			Originator:       noAssertion,
		}},
		Relationships: make([]Relationship, 0, len(recipes)),
	}

	for _, rec := range recipes {
		id := idPrefix + w.newID()
		pkg := recipePackage(rec)
		pkg.SPDXID = id
		doc.Packages = append(doc.Packages, pkg)
		doc.Relationships = append(doc.Relationships, Relationship{
			SPDXElementID:      id,
			RelationshipType:   "DYNAMIC_LINK",
			RelatedSPDXElement: rootID,
		})
	}

	return doc
}

// recipePackage describes a recipe by its catalog match when there is one,
// and by its local build data otherwise.
func recipePackage(rec *domain.LocalRecipe) Package {
	layer, name, version, release := rec.Layer, rec.Name, rec.FullVersion(), rec.Release
	license := rec.License
	var summary string

	if m := rec.Match; m.Found() {
		name = m.Recipe.Name
		version = m.Recipe.FullVersion()
		release = m.Recipe.Release
		summary = m.Recipe.Summary
		if m.Layer != nil {
			layer = m.Layer.Name
		}
		if license == "" {
			license = m.Recipe.License
		}
	}

	if layer == "" || layer == domain.CoreLayerName {
		layer = domain.CoreLayerAlias
	}
	if release == "" {
		release = defaultRelease
	}
	if license == "" {
		license = noAssertion
	}

	name = escape(name)
	version = escape(version)

	return Package{
		Name:             name,
		VersionInfo:      version,
		DownloadLocation: noAssertion,
		LicenseConcluded: license,
		LicenseDeclared:  license,
		Summary:          summary,
		ExternalRefs: []ExternalRef{{
			ReferenceCategory: "PACKAGE-MANAGER",
			ReferenceType:     "purl",
			ReferenceLocator:  Purl(layer, name, version, release),
		}},
	}
}

// Purl renders an openembedded package url. name and version must already be
// escaped.
func Purl(layer, name, version, release string) string {
	return "pkg:openembedded/" + layer + "/" + name + "@" + version + "-" + release
}

var escaper = strings.NewReplacer(":", "%3A", "+", "%2B")

func escape(s string) string {
	return escaper.Replace(s)
}
