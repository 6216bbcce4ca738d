package bitbake

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/oematch/internal/core/domain"
)

// manifestEntry is one package block of a license.manifest file.
type manifestEntry struct {
	recipe  string
	version string
	license string
	files   []string
}

// parseManifest reads a bitbake license.manifest. Packages are grouped into
// one recipe per distinct recipe name; the first package seen wins. Files are
// only retained for recipes whose name is kernelRecipe.
func parseManifest(r io.Reader, kernelRecipe string) ([]*domain.LocalRecipe, error) {
	var (
		recipes []*domain.LocalRecipe
		seen    = make(map[string]bool)
		cur     manifestEntry
	)

	flush := func() {
		if cur.recipe != "" && cur.version != "" && !seen[cur.recipe] {
			seen[cur.recipe] = true
			rec := domain.NewLocalRecipe(cur.recipe, cur.version)
			rec.License = licenseExpression(cur.license)
			if kernelRecipe != "" && cur.recipe == kernelRecipe {
				rec.Files = cur.files
			}
			recipes = append(recipes, rec)
		}
		cur = manifestEntry{}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case "PACKAGE NAME":
			// A new block may start without a separating blank line.
			if cur.recipe != "" {
				flush()
			}
		case "PACKAGE VERSION", "VERSION":
			cur.version = value
		case "RECIPE NAME":
			cur.recipe = value
		case "LICENSE":
			cur.license = value
		case "FILES":
			cur.files = strings.Fields(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return recipes, nil
}

// licenseExpression rewrites bitbake license operators as SPDX operators.
func licenseExpression(s string) string {
	s = strings.ReplaceAll(s, " & ", " AND ")
	return strings.ReplaceAll(s, " | ", " OR ")
}
