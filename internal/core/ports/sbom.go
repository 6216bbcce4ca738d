package ports

import (
	"io"

	"go.trai.ch/oematch/internal/core/domain"
)

// SBOMWriter renders resolved recipes as a bill of materials.
//
//go:generate mockgen -source=sbom.go -destination=mocks/mock_sbom.go -package=mocks
type SBOMWriter interface {
	Write(w io.Writer, project, version string, recipes []*domain.LocalRecipe) error
}
