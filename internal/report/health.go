package report

import (
	"fmt"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// rubricEntry er én vektet sjekk i helsevurderingen. Tabellen er
// uforanderlig konfigurasjon; rekkefølgen er rapportrekkefølgen.
type rubricEntry struct {
	Key    string
	Weight int
	Label  string
}

var healthRubric = []rubricEntry{
	{"has_readme", 15, "README present"},
	{"has_tests", 15, "Test suite"},
	{"has_ci", 12, "CI/CD pipeline"},
	{"has_docker", 8, "Containerized"},
	{"has_license", 8, "License file"},
	{"has_env_example", 5, ".env example"},
	{"has_gitignore", 5, ".gitignore"},
	{"code_org", 12, "Code organization"},
	{"doc_density", 10, "Documentation density"},
	{"dep_management", 10, "Dependency management"},
}

// orgDirs er katalognavn som tyder på organisert kodestruktur.
var orgDirs = map[string]bool{
	"src": true, "lib": true, "app": true, "pkg": true, "cmd": true,
	"internal": true, "components": true, "services": true,
	"utils": true, "models": true,
}

var gradeSummaries = map[string]string{
	"A+": "Exceptional! This repo follows nearly all best practices.",
	"A":  "Excellent engineering quality. Well-maintained and documented.",
	"B":  "Good quality. A few improvements would make it great.",
	"C":  "Average. Several important areas need attention.",
	"D":  "Below average. Significant improvements needed.",
	"F":  "Needs work. Missing most software engineering best practices.",
}

type check struct {
	passed  bool
	message string
}

// ComputeHealthScore vurderer repoet A-F ut fra rene kvalitetssignaler i
// analysen. Ingen I/O – kan kjøres parallelt med de andre rapportene.
func ComputeHealthScore(a models.RepoAnalysis) models.CodeHealthScore {
	checks := map[string]check{}

	hasReadme := false
	for k := range a.KeyFiles {
		if strings.HasPrefix(strings.ToLower(k), "readme") {
			hasReadme = true
			break
		}
	}
	checks["has_readme"] = boolCheck(hasReadme, "README.md found", "No README found")
	checks["has_tests"] = boolCheck(a.HasTests, "Tests detected", "No tests found")
	checks["has_ci"] = boolCheck(a.HasCI, "CI/CD found", "No CI/CD")
	checks["has_docker"] = boolCheck(a.HasDocker, "Docker found", "No Docker")
	if a.License != "" {
		checks["has_license"] = check{true, "License: " + a.License}
	} else {
		checks["has_license"] = check{false, "No license"}
	}

	envFound := false
	for k := range a.KeyFiles {
		lower := strings.ToLower(k)
		if strings.Contains(lower, "env") && strings.Contains(lower, "example") {
			envFound = true
			break
		}
	}
	checks["has_env_example"] = boolCheck(envFound, ".env.example found", "No .env.example")

	// .gitignore hoppes over av filvandringen, så vi ser etter spor av den
	// blant nøkkelfilene. Finnes den ikke der, teller sjekken som feilet.
	_, gitignore := a.KeyFiles[".gitignore"]
	checks["has_gitignore"] = boolCheck(gitignore, ".gitignore present", "Missing .gitignore")

	hasOrg := false
	for _, dir := range a.TopDirs() {
		if orgDirs[strings.ToLower(dir)] {
			hasOrg = true
			break
		}
	}
	checks["code_org"] = boolCheck(hasOrg, "Organized directory structure", "Flat file structure")

	mdLines := a.LanguageLines("Markdown")
	codeLines := a.TotalLines - mdLines
	if codeLines < 1 {
		codeLines = 1
	}
	docRatio := float64(mdLines) / float64(codeLines)
	if docRatio >= 0.05 {
		checks["doc_density"] = check{true, fmt.Sprintf("%.1f%% doc-to-code ratio", docRatio*100)}
	} else {
		checks["doc_density"] = check{false, fmt.Sprintf("Low docs (%.1f%%)", docRatio*100)}
	}

	if len(a.Dependencies) > 0 {
		checks["dep_management"] = check{true, fmt.Sprintf("%d deps managed", len(a.Dependencies))}
	} else {
		checks["dep_management"] = check{false, "No package manager detected"}
	}

	total, maxTotal := 0, 0
	details := make([]models.HealthCheckDetail, 0, len(healthRubric))
	for _, entry := range healthRubric {
		maxTotal += entry.Weight
		c := checks[entry.Key]
		if c.passed {
			total += entry.Weight
		}
		details = append(details, models.HealthCheckDetail{
			Check:   entry.Label,
			Passed:  c.passed,
			Message: c.message,
			Weight:  entry.Weight,
		})
	}

	pct := 0.0
	if maxTotal > 0 {
		pct = float64(total) / float64(maxTotal) * 100
	}
	grade := pctToGrade(pct)

	return models.CodeHealthScore{
		Score:    int(pct + 0.5),
		Grade:    grade,
		MaxScore: 100,
		Details:  details,
		Summary:  gradeSummaries[grade],
	}
}

func boolCheck(passed bool, yes, no string) check {
	if passed {
		return check{true, yes}
	}
	return check{false, no}
}

func pctToGrade(pct float64) string {
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B"
	case pct >= 60:
		return "C"
	case pct >= 50:
		return "D"
	default:
		return "F"
	}
}
