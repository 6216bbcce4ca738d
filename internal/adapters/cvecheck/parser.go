// Package cvecheck reads the patched CVE list produced by the Yocto cve-check class.
package cvecheck

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/core/ports"
	"go.trai.ch/zerr"
)

const statusPatched = "Patched"

// summary is the cve-summary.json layout.
type summary struct {
	Package []struct {
		Name  string `json:"name"`
		Issue []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"issue"`
	} `json:"package"`
}

// Parser implements ports.PatchedCVESource.
type Parser struct {
	logger ports.Logger
}

// NewParser creates a new Parser.
func NewParser(logger ports.Logger) *Parser {
	return &Parser{logger: logger}
}

// Load reads a cve-check output file, either cve-summary.json or the
// image-level .cve text file, and returns the patched CVE ids without
// duplicates. In the JSON format only packages accepted by known contribute;
// the text format reports every patched CVE and uses known for counting only.
func (p *Parser) Load(path string, known func(recipe string) bool) ([]string, error) {
	if known == nil {
		known = func(string) bool { return true }
	}

	var parse func(io.Reader, func(string) bool) ([]string, int, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parse = parseSummary
	case ".cve":
		parse = parseText
	default:
		return nil, zerr.With(domain.ErrUnsupportedCVEFormat, "path", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCVEFileReadFailed.Error()), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	cves, inImage, err := parse(f, known)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCVEFileReadFailed.Error()), "path", path)
	}
	cves = lo.Uniq(cves)

	p.logger.Info(fmt.Sprintf("%d patched CVEs in %s, %d for recipes in the image", len(cves), path, inImage))
	return cves, nil
}

func parseSummary(r io.Reader, known func(string) bool) ([]string, int, error) {
	var s summary
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, 0, err
	}

	var cves []string
	for _, pkg := range s.Package {
		if !known(pkg.Name) {
			continue
		}
		for _, issue := range pkg.Issue {
			if issue.Status == statusPatched {
				cves = append(cves, issue.ID)
			}
		}
	}
	return cves, len(cves), nil
}

// parseText reads records of "PACKAGE NAME:", "CVE:" and "CVE STATUS:" lines.
// A record ends with its status line.
func parseText(r io.Reader, known func(string) bool) ([]string, int, error) {
	var (
		cves    []string
		inImage int
		pkg     string
		cve     string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case "PACKAGE NAME":
			pkg = value
		case "CVE":
			cve = value
		case "CVE STATUS":
			if value == statusPatched && cve != "" {
				cves = append(cves, cve)
				if known(pkg) {
					inImage++
				}
			}
			pkg, cve = "", ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return cves, inImage, nil
}
