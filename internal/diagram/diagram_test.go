package diagram

import (
	"strings"
	"testing"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

func fullstackAnalyse() models.RepoAnalysis {
	return models.RepoAnalysis{
		RepoName: "webshop",
		Languages: []models.LanguageCount{
			{Language: "TypeScript", Lines: 4000},
			{Language: "Python", Lines: 2000},
		},
		Frameworks: []models.FrameworkInfo{
			{Name: "react", Category: "frontend", Confidence: 1.0},
			{Name: "django", Category: "backend", Confidence: 1.0},
			{Name: "postgresql", Category: "database", Confidence: 0.5},
			{Name: "docker", Category: "devops", Confidence: 0.5},
		},
		FileTree: map[string]*models.TreeNode{
			"src": {Children: map[string]*models.TreeNode{
				"app.ts": {File: &models.FileLeaf{Type: "file", Language: "TypeScript", Lines: 100}},
			}},
			"README.md": {File: &models.FileLeaf{Type: "file", Language: "Markdown", Lines: 20}},
		},
		HasTests:  true,
		HasCI:     true,
		HasDocker: true,
	}
}

func TestGenerateAllFireDiagrammer(t *testing.T) {
	diagrams := GenerateAll(fullstackAnalyse())
	if len(diagrams) != 4 {
		t.Fatalf("forventet 4 diagrammer, fikk %d", len(diagrams))
	}
	titles := []string{"Architecture Overview", "Project Structure", "Technology Stack", "Data Flow"}
	for i, want := range titles {
		if diagrams[i].Title != want {
			t.Errorf("diagram %d: forventet %q, fikk %q", i, want, diagrams[i].Title)
		}
		if diagrams[i].MermaidCode == "" {
			t.Errorf("diagram %q mangler mermaid-kode", diagrams[i].Title)
		}
	}
}

func TestArchitectureDiagramLagOgKanter(t *testing.T) {
	d := ArchitectureDiagram(fullstackAnalyse())
	m := d.MermaidCode

	for _, want := range []string{
		"graph TB",
		`UI["🖥️ Frontend<br/>react"]`,
		`API["⚙️ Backend API<br/>django"]`,
		`DB["🗄️ Database<br/>postgresql"]`,
		"UI -->|HTTP/REST| API",
		"API -->|Query| DB",
		"DEVOPS -.->|Deploy| UI",
		"classDef frontend",
		"class UI frontend",
	} {
		if !strings.Contains(m, want) {
			t.Errorf("mangler %q i:\n%s", want, m)
		}
	}
}

func TestArchitectureDiagramUtenRammeverk(t *testing.T) {
	a := models.RepoAnalysis{
		Languages: []models.LanguageCount{{Language: "Go", Lines: 100}},
	}
	d := ArchitectureDiagram(a)
	if !strings.Contains(d.MermaidCode, `APP["📦 Application<br/>Go"]`) {
		t.Errorf("uten rammeverk skal det tegnes en enkel applikasjonsnode:\n%s", d.MermaidCode)
	}
}

func TestStructureDiagramIkonerOgBarn(t *testing.T) {
	d := StructureDiagram(fullstackAnalyse())
	m := d.MermaidCode

	if !strings.Contains(m, `ROOT["📁 webshop"]`) {
		t.Errorf("mangler rotnode:\n%s", m)
	}
	if !strings.Contains(m, "📦 src/") {
		t.Errorf("src skal få pakkeikon:\n%s", m)
	}
	if !strings.Contains(m, "📄 app.ts") {
		t.Errorf("barn av src skal vises:\n%s", m)
	}
	if !strings.Contains(m, "📄 README.md") {
		t.Errorf("toppnivåfiler skal vises:\n%s", m)
	}
}

func TestStructureDiagramDeterministisk(t *testing.T) {
	a := fullstackAnalyse()
	first := StructureDiagram(a).MermaidCode
	for i := 0; i < 10; i++ {
		if got := StructureDiagram(a).MermaidCode; got != first {
			t.Fatal("diagrammet skal være likt for hver kjøring")
		}
	}
}

func TestTechStackDiagramSeksjoner(t *testing.T) {
	d := TechStackDiagram(fullstackAnalyse())
	m := d.MermaidCode

	for _, want := range []string{
		`subgraph "Languages"`,
		`L0["💻 TypeScript<br/>4000 lines"]`,
		`subgraph "Frameworks & Libraries"`,
		"🎨 react",
		`subgraph "Infrastructure"`,
		"🐳 Docker",
		"🔄 CI/CD",
		"✅ Tests",
	} {
		if !strings.Contains(m, want) {
			t.Errorf("mangler %q i:\n%s", want, m)
		}
	}
}

func TestDataFlowDiagramFullstack(t *testing.T) {
	d := DataFlowDiagram(fullstackAnalyse())
	m := d.MermaidCode

	for _, want := range []string{
		"sequenceDiagram",
		"participant F as 🖥️ react",
		"participant B as ⚙️ django",
		"participant D as 🗄️ postgresql",
		"U->>F: User Action",
		"B->>D: Query Data",
		"F-->>U: Update UI",
	} {
		if !strings.Contains(m, want) {
			t.Errorf("mangler %q i:\n%s", want, m)
		}
	}
}

func TestDataFlowDiagramKunBackend(t *testing.T) {
	a := models.RepoAnalysis{
		Frameworks: []models.FrameworkInfo{{Name: "fastapi", Category: "backend"}},
	}
	m := DataFlowDiagram(a).MermaidCode
	if !strings.Contains(m, "U->>B: Request") || strings.Contains(m, "participant F") {
		t.Errorf("kun backend skal gi direkte bruker-til-backend-flyt:\n%s", m)
	}
}

func TestDataFlowDiagramUtenRammeverk(t *testing.T) {
	m := DataFlowDiagram(models.RepoAnalysis{}).MermaidCode
	if !strings.Contains(m, "participant APP as 📦 Application") {
		t.Errorf("uten rammeverk skal det vises en generisk applikasjon:\n%s", m)
	}
}
