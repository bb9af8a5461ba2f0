package report

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// vulnEntry beskriver en kjent sårbarhet: alle versjoner under Below er
// sårbare. Tabellen er en kuratert heuristikk, ikke en CVE-database.
type vulnEntry struct {
	Below    string
	Severity string
	Desc     string
}

var knownVulnerable = map[string]vulnEntry{
	// npm
	"lodash":       {"4.17.21", "high", "Prototype pollution"},
	"minimist":     {"1.2.6", "critical", "Prototype pollution"},
	"node-fetch":   {"2.6.7", "medium", "Exposure of sensitive information"},
	"express":      {"4.17.3", "medium", "Open redirect"},
	"axios":        {"0.21.2", "high", "Server-Side Request Forgery"},
	"jsonwebtoken": {"9.0.0", "high", "Insecure defaults"},
	"tar":          {"6.1.9", "high", "Arbitrary file creation"},
	// pip
	"django":       {"4.2.8", "high", "Multiple vulnerabilities"},
	"flask":        {"2.3.2", "medium", "Security fixes"},
	"requests":     {"2.31.0", "medium", "Unintended leak of Proxy-Authorization header"},
	"pillow":       {"10.0.1", "high", "Multiple image processing vulns"},
	"numpy":        {"1.22.0", "low", "Buffer overflow on complex arrays"},
	"urllib3":      {"2.0.7", "medium", "Cookie leak on cross-origin redirects"},
	"cryptography": {"41.0.4", "high", "Multiple OpenSSL vulns"},
}

var versionDigits = regexp.MustCompile(`\d+(\.\d+)*`)

// ScanVulnerabilities sjekker avhengighetslisten mot tabellen over kjente
// sårbare pakker. Versjoner som ikke lar seg tolke regnes som trygge.
func ScanVulnerabilities(a models.RepoAnalysis) models.VulnerabilityScan {
	findings := []models.VulnerabilityFinding{}
	scanned := 0

	for _, dep := range a.Dependencies {
		scanned++
		entry, ok := knownVulnerable[strings.ToLower(dep.Name)]
		if !ok {
			continue
		}
		if dep.Version == "" || !versionBelow(dep.Version, entry.Below) {
			continue
		}
		findings = append(findings, models.VulnerabilityFinding{
			Package:          dep.Name,
			InstalledVersion: dep.Version,
			FixVersion:       entry.Below,
			Severity:         entry.Severity,
			Description:      entry.Desc,
		})
	}

	breakdown := map[string]int{"critical": 0, "high": 0, "medium": 0, "low": 0}
	for _, f := range findings {
		breakdown[f.Severity]++
	}

	risk := "low"
	switch {
	case breakdown["critical"] > 0:
		risk = "critical"
	case breakdown["high"] > 0:
		risk = "high"
	case breakdown["medium"] > 0:
		risk = "medium"
	}

	return models.VulnerabilityScan{
		TotalDependencies:    len(a.Dependencies),
		Scanned:              scanned,
		VulnerabilitiesFound: len(findings),
		RiskLevel:            risk,
		SeverityBreakdown:    breakdown,
		Findings:             findings,
	}
}

// versionBelow sammenligner installert versjon mot terskelen. Prefikser som
// ^, ~ og >= strippes før tolkning; uleselige versjoner gir false.
func versionBelow(installed, threshold string) bool {
	iv := versionDigits.FindString(installed)
	tv := versionDigits.FindString(threshold)
	if iv == "" || tv == "" {
		return false
	}
	inst, err := semver.NewVersion(iv)
	if err != nil {
		return false
	}
	thresh, err := semver.NewVersion(tv)
	if err != nil {
		return false
	}
	return inst.LessThan(thresh)
}
