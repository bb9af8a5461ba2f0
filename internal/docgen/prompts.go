package docgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// SectionBreak skiller dokumentasjonsseksjoner i LLM-svaret.
const SectionBreak = "---SECTION_BREAK---"

// ReviewBreak skiller seksjoner i kodegjennomgangen.
const ReviewBreak = "---REVIEW_BREAK---"

const analysisSystemPrompt = "You are repodokka, an expert software documentation generator.\n" +
	"You analyze codebases and produce comprehensive, well-structured Markdown documentation.\n" +
	"Be thorough but concise. Include code examples where relevant.\n" +
	"Always structure your output with clear headings and sections."

const reviewSystemPrompt = "You are an expert Senior Software Engineer performing a code review. " +
	"Analyze the codebase and provide actionable feedback across: " +
	"security, performance, code quality, best practices, and architecture. " +
	"Be specific - reference file names and patterns. " +
	"Rate each area 1-10 and give concrete improvement suggestions."

// BuildAnalysisPrompt bygger system- og brukerprompt for hoveddokumentasjonen.
// Nøkkelfiler tas i sortert rekkefølge slik at prompten er deterministisk.
func BuildAnalysisPrompt(a models.RepoAnalysis) (system, user string) {
	var kf strings.Builder
	for i, path := range sortedKeys(a.KeyFiles) {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&kf, "\n### %s\n```\n%s\n```\n", path, truncate(a.KeyFiles[path], 3000))
	}

	var fws []string
	for _, fw := range a.Frameworks {
		fws = append(fws, fmt.Sprintf("%s (%s)", fw.Name, fw.Category))
	}
	fwStr := strings.Join(fws, ", ")
	if fwStr == "" {
		fwStr = "None detected"
	}

	var deps []string
	for i, d := range a.Dependencies {
		if i >= 30 {
			break
		}
		deps = append(deps, d.Name)
	}
	depStr := strings.Join(deps, ", ")
	if depStr == "" {
		depStr = "None detected"
	}

	var langs []string
	for i, l := range a.Languages {
		if i >= 10 {
			break
		}
		langs = append(langs, fmt.Sprintf("%s: %d lines", l.Language, l.Lines))
	}

	desc := a.Description
	if desc == "" {
		desc = "Not provided"
	}
	license := a.License
	if license == "" {
		license = "Not specified"
	}
	entry := strings.Join(a.EntryPoints, ", ")
	if entry == "" {
		entry = "Not detected"
	}

	user = fmt.Sprintf(`Analyze this repository and generate comprehensive documentation.

## Repository Information
- **Name**: %s
- **Description**: %s
- **Languages**: %s
- **Frameworks**: %s
- **Dependencies**: %s
- **Total Files**: %d
- **Total Lines**: %d
- **Has Tests**: %t
- **Has CI/CD**: %t
- **Has Docker**: %t
- **License**: %s
- **Entry Points**: %s

## Key Files Content
%s

## Generate the following documentation sections:

1. **Project Overview** – clear description of purpose, features, and value proposition (3-5 paragraphs).
2. **Architecture Overview** – high-level architecture, component interaction, design patterns.
3. **Technology Stack** – detailed breakdown of every technology, framework, and tool.
4. **Getting Started / Setup Guide** – step-by-step: prerequisites, install, configure, run.
5. **API Documentation** – endpoints with methods, paths, request/response. If none, state so.
6. **Project Structure** – directory layout explanation.
7. **Key Features** – list the main features.
8. **Configuration** – env vars, config files, settings.

Format each section with ## headings.  Separate sections with "%s".
Be specific and reference actual files from the analysis.`,
		a.RepoName, desc, strings.Join(langs, ", "), fwStr, depStr,
		a.FileCount, a.TotalLines, a.HasTests, a.HasCI, a.HasDocker,
		license, entry, kf.String(), SectionBreak)

	return analysisSystemPrompt, user
}

var reviewSourceExts = []string{".py", ".js", ".ts", ".tsx", ".jsx", ".go", ".rs", ".java"}

// BuildReviewPrompt bygger promptene for AI-kodegjennomgangen. Kun
// kildekodefiler blant nøkkelfilene tas med som eksempler.
func BuildReviewPrompt(a models.RepoAnalysis) (system, user string) {
	var snippets strings.Builder
	count := 0
	for _, path := range sortedKeys(a.KeyFiles) {
		if count >= 8 {
			break
		}
		if !hasSourceExt(path) {
			continue
		}
		count++
		fmt.Fprintf(&snippets, "\n### %s\n```\n%s\n```\n", path, truncate(a.KeyFiles[path], 2500))
	}

	var fws []string
	for _, fw := range a.Frameworks {
		fws = append(fws, fw.Name)
	}
	fwStr := strings.Join(fws, ", ")
	if fwStr == "" {
		fwStr = "None"
	}

	var deps []string
	for i, d := range a.Dependencies {
		if i >= 20 {
			break
		}
		deps = append(deps, d.Name)
	}
	depStr := strings.Join(deps, ", ")
	if depStr == "" {
		depStr = "None"
	}

	var langs []string
	for _, l := range a.Languages {
		langs = append(langs, l.Language)
	}

	user = fmt.Sprintf(`Perform a thorough code review for this project:

**Project**: %s
**Languages**: %s
**Frameworks**: %s
**Dependencies**: %s
**Has Tests**: %t
**Has CI/CD**: %t

## Source Code Samples:
%s

## Provide review in these sections:

1. **Security** (1-10): Authentication, input validation, secrets management, SQL injection, XSS
2. **Performance** (1-10): Caching, query optimization, memory management, async patterns
3. **Code Quality** (1-10): Readability, DRY, naming, error handling, SOLID principles
4. **Architecture** (1-10): Separation of concerns, scalability, design patterns
5. **Best Practices** (1-10): Testing, CI/CD, Docker, env management, documentation

For each section give:
- Score (1-10)
- Key findings (bullet points)
- Specific suggestions with file references

End with **Overall Score** (average) and **Top 3 Priority Actions**.

Separate sections with "%s".`,
		a.RepoName, strings.Join(langs, ", "), fwStr, depStr,
		a.HasTests, a.HasCI, snippets.String(), ReviewBreak)

	return reviewSystemPrompt, user
}

func hasSourceExt(path string) bool {
	for _, ext := range reviewSourceExts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
