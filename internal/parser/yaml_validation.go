package parser

import (
	"fmt"
	"strings"

	"github.com/harrison/different/internal/models"
)

// NormalizeKind lowercases a check type and accepts "varset" and
// "var-set" as spellings of var_set.
func NormalizeKind(kind string) string {
	normalized := strings.ToLower(strings.TrimSpace(kind))
	switch normalized {
	case "varset", "var-set":
		return models.KindVarSet
	}
	return normalized
}

// ValidateCheck validates the fields required by the check's kind
func ValidateCheck(check models.Check) error {
	if strings.TrimSpace(check.Name) == "" {
		return fmt.Errorf("check name is required")
	}

	switch c := check.Type.(type) {
	case models.FileCheck:
		return validatePath(check.Name, c.Path)
	case models.DirectoryCheck:
		return validatePath(check.Name, c.Path)
	case models.CommandCheck:
		if strings.TrimSpace(c.Cmd) == "" {
			return fmt.Errorf("%q: command check requires cmd", check.Name)
		}
	case models.HTTPCheck:
		if c.URL == "" {
			return fmt.Errorf("%q: http check requires url", check.Name)
		}
	case models.VarSetCheck:
		if c.Key == "" {
			return fmt.Errorf("%q: var_set check requires key", check.Name)
		}
	default:
		return fmt.Errorf("%q: unsupported check type %T", check.Name, check.Type)
	}
	return nil
}

// validatePath requires a non-empty path. Relative paths are resolved
// against the base directory; absolute and ".." paths are allowed.
func validatePath(name, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%q: path is required", name)
	}
	return nil
}
