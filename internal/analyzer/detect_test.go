package analyzer

import (
	"strings"
	"testing"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

func TestHasTests(t *testing.T) {
	with := []models.FileInfo{{Path: "pkg/Widget_Test.go"}}
	if !HasTests(with) {
		t.Error("case-insensitive testindikator skal gi true")
	}

	without := []models.FileInfo{{Path: "src/main.go"}, {Path: "README.md"}}
	if HasTests(without) {
		t.Error("expected false without test indicators")
	}
}

func TestHasCI(t *testing.T) {
	root := t.TempDir()
	if HasCI(root) {
		t.Error("expected false for empty repo")
	}

	writeFile(t, root, ".github/workflows/ci.yml", []byte("name: CI\n"))
	if !HasCI(root) {
		t.Error("expected true with .github/workflows present")
	}
}

func TestHasDocker(t *testing.T) {
	root := t.TempDir()
	if HasDocker(root) {
		t.Error("expected false for empty repo")
	}

	writeFile(t, root, "docker-compose.yaml", []byte("services:\n"))
	if !HasDocker(root) {
		t.Error("expected true with docker-compose.yaml")
	}
}

func TestDetectLicense(t *testing.T) {
	root := t.TempDir()
	if lic := DetectLicense(root); lic != "" {
		t.Errorf("expected empty license, got %q", lic)
	}

	writeFile(t, root, "LICENSE", []byte("MIT License\n\nPermission is hereby granted..."))
	if lic := DetectLicense(root); lic != "MIT" {
		t.Errorf("expected MIT, got %q", lic)
	}
}

func TestDetectLicenseCustom(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "LICENSE", []byte("Dette er en hjemmesnekret lisens.\n"))
	if lic := DetectLicense(root); lic != "Custom" {
		t.Errorf("expected Custom, got %q", lic)
	}
}

func TestDetectLicenseOnlyReadsHead(t *testing.T) {
	root := t.TempDir()
	// Nøkkelordet ligger etter 2000-byte-grensen og skal ikke ses
	content := strings.Repeat("x", 2500) + " MIT"
	writeFile(t, root, "LICENSE", []byte(content))
	if lic := DetectLicense(root); lic != "Custom" {
		t.Errorf("expected Custom (keyword beyond 2000 bytes), got %q", lic)
	}
}

func TestExtractDescriptionFromPackageJSON(t *testing.T) {
	keyFiles := map[string]string{
		"package.json": `{"description": "Et lite demoprosjekt"}`,
		"README.md":    "# Demo\n\nDenne beskrivelsen skal ikke brukes nå.\n",
	}
	if got := ExtractDescription(keyFiles); got != "Et lite demoprosjekt" {
		t.Errorf("unexpected description: %q", got)
	}
}

func TestExtractDescriptionFromReadme(t *testing.T) {
	keyFiles := map[string]string{
		"README.md": "# Tittel\n\n![badge](x)\n[lenke](y)\nkort\nDette er en lang nok beskrivelseslinje fra readme.\n",
	}
	got := ExtractDescription(keyFiles)
	if got != "Dette er en lang nok beskrivelseslinje fra readme." {
		t.Errorf("unexpected description: %q", got)
	}
}

func TestDetectEntryPoints(t *testing.T) {
	files := []models.FileInfo{
		{Path: "src/Main.py"},
		{Path: "web/index.html"},
		{Path: "cmd/server.go"},
		{Path: "pkg/helper.go"},
	}

	entries := DetectEntryPoints(files)

	if len(entries) != 3 {
		t.Fatalf("expected 3 entry points, got %+v", entries)
	}
}
