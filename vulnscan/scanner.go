// Package vulnscan scans dependency manifests against a fixed table of
// known-vulnerable packages. It is a closed-world scanner: any package
// absent from the table is treated as clean, and no network lookups are
// made.
package vulnscan

import (
	"regexp"
	"strings"
)

// packageNamePattern matches the bare package name at the start of a
// declaration, before any version specifier (==, >=, ~, extras).
var packageNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+`)

// Scanner looks up manifest declarations in an immutable Database.
// Scanners are safe for concurrent use.
type Scanner struct {
	db Database
}

// New creates a Scanner over the given table. A nil table falls back to
// DefaultDatabase.
func New(db Database) *Scanner {
	if db == nil {
		db = DefaultDatabase()
	}
	return &Scanner{db: db}
}

// Scan parses manifest text line by line, skipping blanks and comments,
// and reports every declaration whose package name appears in the table.
func (s *Scanner) Scan(manifest string) *ScanReport {
	report := &ScanReport{
		Status:         StatusScanComplete,
		Recommendation: Recommendation,
	}

	for _, line := range strings.Split(manifest, "\n") {
		dep := strings.TrimSpace(line)
		if dep == "" || strings.HasPrefix(dep, "#") {
			continue
		}

		name := packageNamePattern.FindString(dep)
		if name == "" {
			continue
		}

		if rec, ok := s.db[strings.ToLower(name)]; ok {
			report.Vulnerabilities = append(report.Vulnerabilities, Finding{
				Dependency:   dep,
				IssueDetails: rec,
			})
		}
	}

	if len(report.Vulnerabilities) == 0 {
		report.Summary = NoVulnerabilitiesFound
	}

	return report
}
