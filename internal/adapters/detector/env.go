// Package detector selects the report format from the environment.
package detector

import (
	"os"

	"go.trai.ch/oematch/internal/core/domain"
	"golang.org/x/term"
)

// DetectEnvironment returns the recommended report format for stdout.
// Styled output needs a TTY outside CI; everything else gets plain text.
func DetectEnvironment() domain.ReportFormat {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) domain.ReportFormat {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return domain.FormatPlain
	}
	return domain.FormatStyled
}

// ResolveFormat applies the user's flags to the detected format. JSON wins
// over everything; userFlag is one of "auto", "styled", "plain", "ci" or empty.
func ResolveFormat(detected domain.ReportFormat, userFlag string, jsonOutput bool) domain.ReportFormat {
	if jsonOutput {
		return domain.FormatJSON
	}
	switch userFlag {
	case "styled":
		return domain.FormatStyled
	case "plain", "ci":
		return domain.FormatPlain
	case "json":
		return domain.FormatJSON
	default:
		return detected
	}
}
