package vulnscan

// Severity classifies how serious a known vulnerability is.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// StatusScanComplete is the status of every finished scan.
const StatusScanComplete = "scan_complete"

// NoVulnerabilitiesFound is the summary used when no declaration matched
// the table.
const NoVulnerabilitiesFound = "No known vulnerabilities found in the provided dependencies."

// Recommendation is appended to every scan report.
const Recommendation = "Always keep dependencies up to date and review their security advisories."

// Record is one entry in the vulnerability table.
type Record struct {
	Version  string   `json:"version" yaml:"version"`
	Severity Severity `json:"severity" yaml:"severity"`
	CVE      string   `json:"cve" yaml:"cve"`
	Summary  string   `json:"summary" yaml:"summary"`
}

// Finding pairs a manifest declaration line with the table record that
// matched its package name.
type Finding struct {
	Dependency   string `json:"dependency"`
	IssueDetails Record `json:"issue_details"`
}

// ScanReport is the result of scanning one manifest.
type ScanReport struct {
	Status          string    `json:"status"`
	Vulnerabilities []Finding `json:"vulnerabilities,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	Recommendation  string    `json:"recommendation"`
}
