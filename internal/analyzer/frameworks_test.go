package analyzer

import (
	"testing"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

func TestDetectFrameworksKeywordOnly(t *testing.T) {
	root := t.TempDir()
	deps := []models.Dependency{
		{Name: "react", Version: "^18.0.0", Kind: models.KindRuntime},
		{Name: "jest", Version: "^29.0.0", Kind: models.KindDev},
	}

	frameworks := DetectFrameworks(root, deps)

	if len(frameworks) != 1 {
		t.Fatalf("expected only react, got %+v", frameworks)
	}
	fw := frameworks[0]
	if fw.Name != "react" || fw.Category != "frontend" || fw.Confidence != 0.5 {
		t.Errorf("unexpected framework: %+v", fw)
	}
}

func TestDetectFrameworksMarkerFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Dockerfile", []byte("FROM alpine\n"))

	frameworks := DetectFrameworks(root, nil)

	if len(frameworks) != 1 || frameworks[0].Name != "docker" {
		t.Fatalf("expected docker from marker file, got %+v", frameworks)
	}
	if frameworks[0].Confidence != 0.5 {
		t.Errorf("expected 0.5, got %f", frameworks[0].Confidence)
	}
}

func TestDetectFrameworksConfidenceCap(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Dockerfile", []byte("FROM alpine\n"))
	writeFile(t, root, "docker-compose.yml", []byte("services:\n"))
	writeFile(t, root, "docker-compose.yaml", []byte("services:\n"))

	frameworks := DetectFrameworks(root, nil)

	if len(frameworks) != 1 || frameworks[0].Confidence != 1.0 {
		t.Fatalf("konfidens skal ha tak på 1.0: %+v", frameworks)
	}
}

func TestDetectFrameworksMonotonic(t *testing.T) {
	root := t.TempDir()
	deps := []models.Dependency{{Name: "django", Kind: models.KindRuntime}}

	before := DetectFrameworks(root, deps)

	// Mer bevis kan aldri senke konfidensen
	writeFile(t, root, "manage.py", []byte(""))
	after := DetectFrameworks(root, deps)

	if after[0].Confidence < before[0].Confidence {
		t.Errorf("confidence dropped: %f -> %f", before[0].Confidence, after[0].Confidence)
	}
	if after[0].Confidence != 1.0 {
		t.Errorf("expected 1.0 with marker and keyword, got %f", after[0].Confidence)
	}
}

func TestDetectFrameworksSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "manage.py", []byte(""))
	deps := []models.Dependency{
		{Name: "django", Kind: models.KindRuntime},
		{Name: "redis", Kind: models.KindRuntime},
	}

	frameworks := DetectFrameworks(root, deps)

	if len(frameworks) != 2 {
		t.Fatalf("expected 2 frameworks, got %+v", frameworks)
	}
	// django har markørfil + nøkkelord (1.0), redis bare nøkkelord (0.5)
	if frameworks[0].Name != "django" || frameworks[1].Name != "redis" {
		t.Errorf("expected descending confidence order, got %+v", frameworks)
	}
	for i := 1; i < len(frameworks); i++ {
		if frameworks[i].Confidence > frameworks[i-1].Confidence {
			t.Errorf("not sorted: %+v", frameworks)
		}
	}
}
