package analyzer

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

var testIndicators = []string{"test", "spec", "__tests__", "tests"}

var ciPaths = []string{
	".github/workflows", ".gitlab-ci.yml", ".travis.yml",
	"Jenkinsfile", ".circleci", "azure-pipelines.yml",
}

var dockerFiles = []string{"Dockerfile", "docker-compose.yml", "docker-compose.yaml"}

var licenseFiles = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "LICENCE"}

var licenseKeywords = []string{"MIT", "Apache", "GPL", "BSD"}

// entryPointNames er konvensjonelle navn på "hovedprogram"-filer,
// uavhengig av språk.
var entryPointNames = map[string]bool{
	"main": true, "index": true, "app": true,
	"server": true, "manage": true, "cli": true, "run": true,
}

// DetectEntryPoints finner filene hvis basenavn (uten endelse) matcher et
// konvensjonelt inngangspunkt-navn.
func DetectEntryPoints(files []models.FileInfo) []string {
	var entries []string
	for _, f := range files {
		base := filepath.Base(f.Path)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		if entryPointNames[strings.ToLower(name)] {
			entries = append(entries, f.Path)
		}
	}
	return entries
}

// HasTests er sann hvis noen filsti inneholder en testindikator.
func HasTests(files []models.FileInfo) bool {
	for _, f := range files {
		lower := strings.ToLower(f.Path)
		for _, ind := range testIndicators {
			if strings.Contains(lower, ind) {
				return true
			}
		}
	}
	return false
}

// HasCI sjekker om noen av de velkjente CI-konfigurasjonsstiene finnes.
func HasCI(root string) bool {
	for _, p := range ciPaths {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(p))); err == nil {
			return true
		}
	}
	return false
}

// HasDocker sjekker om en container-manifestfil finnes i roten.
func HasDocker(root string) bool {
	for _, name := range dockerFiles {
		if info, err := os.Stat(filepath.Join(root, name)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// DetectLicense leser de første 2000 bytene av første lisensfil som finnes.
// Første gjenkjente nøkkelord vinner; ellers "Custom". Tom streng hvis ingen
// lisensfil finnes eller den ikke kan leses.
func DetectLicense(root string) string {
	for _, name := range licenseFiles {
		path := filepath.Join(root, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		head, err := io.ReadAll(io.LimitReader(f, 2000))
		f.Close()
		if err != nil {
			continue
		}
		content := string(head)
		for _, kw := range licenseKeywords {
			if strings.Contains(content, kw) {
				return kw
			}
		}
		return "Custom"
	}
	return ""
}

// ExtractDescription foretrekker description-feltet i package.json, ellers
// første linje over 20 tegn i en readme som ikke er overskrift eller badge.
func ExtractDescription(keyFiles map[string]string) string {
	if content, ok := keyFiles["package.json"]; ok {
		var pkg struct {
			Description string `json:"description"`
		}
		if err := json.Unmarshal([]byte(content), &pkg); err == nil && pkg.Description != "" {
			return pkg.Description
		}
	}

	for _, readme := range []string{"README.md", "README.rst", "README.txt", "README"} {
		content, ok := keyFiles[readme]
		if !ok {
			continue
		}
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || len(line) <= 20 {
				continue
			}
			switch line[0] {
			case '#', '=', '[', '!':
				continue
			}
			if len(line) > 500 {
				line = line[:500]
			}
			return line
		}
	}
	return ""
}
