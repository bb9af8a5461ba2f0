package report

import (
	"testing"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

func TestScanVulnerabilitiesFunn(t *testing.T) {
	a := models.RepoAnalysis{
		Dependencies: []models.Dependency{
			{Name: "lodash", Version: "4.17.0", Kind: models.KindRuntime},
			{Name: "react", Version: "18.2.0", Kind: models.KindRuntime},
			{Name: "minimist", Version: "1.2.5", Kind: models.KindRuntime},
		},
	}
	scan := ScanVulnerabilities(a)

	if scan.TotalDependencies != 3 || scan.Scanned != 3 {
		t.Errorf("forventet 3 skannet, fikk total=%d scanned=%d", scan.TotalDependencies, scan.Scanned)
	}
	if scan.VulnerabilitiesFound != 2 {
		t.Fatalf("forventet 2 funn, fikk %d", scan.VulnerabilitiesFound)
	}
	if scan.RiskLevel != "critical" {
		t.Errorf("minimist under 1.2.6 er kritisk, fikk risiko %s", scan.RiskLevel)
	}
	if scan.SeverityBreakdown["critical"] != 1 || scan.SeverityBreakdown["high"] != 1 {
		t.Errorf("feil alvorlighetsfordeling: %v", scan.SeverityBreakdown)
	}
}

func TestScanVulnerabilitiesTrygeVersjoner(t *testing.T) {
	a := models.RepoAnalysis{
		Dependencies: []models.Dependency{
			{Name: "lodash", Version: "4.17.21", Kind: models.KindRuntime},
			{Name: "django", Version: "5.0.1", Kind: models.KindRuntime},
		},
	}
	scan := ScanVulnerabilities(a)
	if scan.VulnerabilitiesFound != 0 {
		t.Errorf("forventet ingen funn, fikk %d", scan.VulnerabilitiesFound)
	}
	if scan.RiskLevel != "low" {
		t.Errorf("forventet lav risiko, fikk %s", scan.RiskLevel)
	}
}

func TestScanVulnerabilitiesUtenVersjon(t *testing.T) {
	// Avhengigheter uten versjon kan ikke vurderes og gir aldri funn.
	a := models.RepoAnalysis{
		Dependencies: []models.Dependency{
			{Name: "lodash", Kind: models.KindRuntime},
		},
	}
	scan := ScanVulnerabilities(a)
	if scan.VulnerabilitiesFound != 0 {
		t.Errorf("forventet ingen funn uten versjon, fikk %d", scan.VulnerabilitiesFound)
	}
}

func TestVersionBelow(t *testing.T) {
	cases := []struct {
		installed string
		threshold string
		want      bool
	}{
		{"4.17.0", "4.17.21", true},
		{"4.17.21", "4.17.21", false},
		{"5.0.0", "4.17.21", false},
		{"^4.17.0", "4.17.21", true}, // npm-prefiks strippes
		{"~1.2", "1.2.6", true},
		{">=2.31.0", "2.31.0", false},
		{"latest", "1.0.0", false}, // uleselig versjon regnes som trygg
		{"", "1.0.0", false},
	}
	for _, c := range cases {
		if got := versionBelow(c.installed, c.threshold); got != c.want {
			t.Errorf("versionBelow(%q, %q) = %v, forventet %v", c.installed, c.threshold, got, c.want)
		}
	}
}

func TestScanStoreBokstaverIPakkenavn(t *testing.T) {
	a := models.RepoAnalysis{
		Dependencies: []models.Dependency{
			{Name: "Django", Version: "3.2.0", Kind: models.KindRuntime},
		},
	}
	scan := ScanVulnerabilities(a)
	if scan.VulnerabilitiesFound != 1 {
		t.Errorf("oppslaget skal være uavhengig av store/små bokstaver, fikk %d funn", scan.VulnerabilitiesFound)
	}
}
