package vulnscan

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Database maps lowercase package names to known-vulnerability records.
// It is supplied at scanner construction and read-only thereafter.
type Database map[string]Record

// DefaultDatabase returns the built-in table.
func DefaultDatabase() Database {
	return Database{
		"outdated-package": {Version: "1.2.3", Severity: SeverityHigh, CVE: "CVE-2024-12345", Summary: "Remote Code Execution"},
		"insecure-lib":     {Version: "2.1.0", Severity: SeverityMedium, CVE: "CVE-2024-67890", Summary: "Cross-Site Scripting (XSS)"},
		"django":           {Version: "3.2.1", Severity: SeverityLow, CVE: "CVE-2024-11111", Summary: "Denial of Service possibility"},
	}
}

// LoadDatabase reads a vulnerability table from a YAML file mapping
// package names to records. Keys are lower-cased on load.
func LoadDatabase(path string) (Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vulnerability database %s: %w", path, err)
	}

	var raw map[string]Record
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse vulnerability database %s: %w", path, err)
	}

	db := make(Database, len(raw))
	for name, rec := range raw {
		db[strings.ToLower(name)] = rec
	}

	return db, nil
}
