package models

import (
	"encoding/json"
	"fmt"
)

// FileInfo beskriver én fil funnet under filvandringen.
// Lines er 0 for filer som er for store (>1 MiB) eller ikke kunne leses.
type FileInfo struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Size     int64  `json:"size"`
	Lines    int    `json:"lines"`
}

// LanguageCount er ett innslag i språkhistogrammet. Rekkefølgen i slicen
// er visningsrekkefølgen (synkende linjetall) og bevares ved serialisering.
type LanguageCount struct {
	Language string `json:"language"`
	Lines    int    `json:"lines"`
}

type FrameworkInfo struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"` // frontend, backend, database, ml, ai, devops
	Confidence float64 `json:"confidence"`
}

// TreeNode er en node i filtreet. Enten File (løvnode) eller Children
// (katalog) er satt, aldri begge.
type TreeNode struct {
	File     *FileLeaf
	Children map[string]*TreeNode
}

type FileLeaf struct {
	Type     string `json:"type"`
	Language string `json:"language"`
	Lines    int    `json:"lines"`
}

func (n *TreeNode) IsDir() bool {
	return n != nil && n.File == nil
}

// MarshalJSON gir samme form som analysen eksponerer utad:
// filer som {"type":"file",...}, kataloger som navn → barn.
func (n *TreeNode) MarshalJSON() ([]byte, error) {
	if n.File != nil {
		return json.Marshal(n.File)
	}
	return json.Marshal(n.Children)
}

func (n *TreeNode) UnmarshalJSON(data []byte) error {
	var leaf FileLeaf
	if err := json.Unmarshal(data, &leaf); err == nil && leaf.Type == "file" {
		n.File = &leaf
		return nil
	}
	n.File = nil
	return json.Unmarshal(data, &n.Children)
}

// RepoAnalysis er det samlede resultatet av analysen av ett repo.
// Uforanderlig etter at den er bygget.
type RepoAnalysis struct {
	RepoName     string               `json:"repo_name"`
	Description  string               `json:"description,omitempty"`
	Languages    []LanguageCount      `json:"languages"`
	Frameworks   []FrameworkInfo      `json:"frameworks"`
	Dependencies []Dependency         `json:"dependencies"`
	FileTree     map[string]*TreeNode `json:"file_tree"`
	FileCount    int                  `json:"file_count"`
	TotalLines   int                  `json:"total_lines"`
	KeyFiles     map[string]string    `json:"key_files"`
	EntryPoints  []string             `json:"entry_points"`
	HasTests     bool                 `json:"has_tests"`
	HasCI        bool                 `json:"has_ci"`
	HasDocker    bool                 `json:"has_docker"`
	License      string               `json:"license,omitempty"`
}

// LanguageLines slår opp linjetallet for et språk, 0 hvis ukjent.
func (a RepoAnalysis) LanguageLines(name string) int {
	for _, l := range a.Languages {
		if l.Language == name {
			return l.Lines
		}
	}
	return 0
}

// TopLanguage er språket med flest linjer, eller "" hvis ingen.
func (a RepoAnalysis) TopLanguage() string {
	if len(a.Languages) == 0 {
		return ""
	}
	return a.Languages[0].Language
}

// HasLanguage sier om språket finnes i histogrammet.
func (a RepoAnalysis) HasLanguage(name string) bool {
	for _, l := range a.Languages {
		if l.Language == name {
			return true
		}
	}
	return false
}

// TopDirs er navnene på katalogene på toppnivå i filtreet.
func (a RepoAnalysis) TopDirs() []string {
	var dirs []string
	for name, node := range a.FileTree {
		if node.IsDir() {
			dirs = append(dirs, name)
		}
	}
	return dirs
}

type DependencyKind string

const (
	KindRuntime DependencyKind = "runtime"
	KindDev     DependencyKind = "dev"
)

// Dependency er en generisk representasjon av et avhengighetsforhold i et
// prosjekt. Kan komme fra npm, pip, go, cargo, osv. Version valideres aldri
// mot noe register, og duplikater på tvers av manifester beholdes.
type Dependency struct {
	Name    string         `json:"name"`
	Version string         `json:"version,omitempty"`
	Kind    DependencyKind `json:"kind"`
	Path    string         `json:"path,omitempty"`
}

// ─── Genererte dokumenter ───────────────────────────────────────────────

type DocSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

type DiagramData struct {
	Title       string `json:"title"`
	MermaidCode string `json:"mermaid_code"`
	Description string `json:"description"`
}

type HealthCheckDetail struct {
	Check   string `json:"check"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
	Weight  int    `json:"weight"`
}

type CodeHealthScore struct {
	Score    int                 `json:"score"`
	Grade    string              `json:"grade"`
	MaxScore int                 `json:"max_score"`
	Details  []HealthCheckDetail `json:"details"`
	Summary  string              `json:"summary"`
}

type VulnerabilityFinding struct {
	Package          string `json:"package"`
	InstalledVersion string `json:"installed_version,omitempty"`
	FixVersion       string `json:"fix_version"`
	Severity         string `json:"severity"`
	Description      string `json:"description"`
}

type VulnerabilityScan struct {
	TotalDependencies    int                    `json:"total_dependencies"`
	Scanned              int                    `json:"scanned"`
	VulnerabilitiesFound int                    `json:"vulnerabilities_found"`
	RiskLevel            string                 `json:"risk_level"`
	SeverityBreakdown    map[string]int         `json:"severity_breakdown"`
	Findings             []VulnerabilityFinding `json:"findings"`
}

type BadgeInfo struct {
	Label    string `json:"label"`
	Message  string `json:"message"`
	Color    string `json:"color"`
	Markdown string `json:"markdown"`
}

type LanguageShare struct {
	Language   string  `json:"language"`
	Lines      int     `json:"lines"`
	Percentage float64 `json:"percentage"`
}

type DependencyStats struct {
	Total   int `json:"total"`
	Runtime int `json:"runtime"`
	Dev     int `json:"dev"`
}

type ComplexityMetrics struct {
	TotalFiles           int                 `json:"total_files"`
	TotalLines           int                 `json:"total_lines"`
	AvgLinesPerFile      float64             `json:"avg_lines_per_file"`
	LanguageDistribution []LanguageShare     `json:"language_distribution"`
	TopModules           []string            `json:"top_modules"`
	FrameworkCategories  map[string][]string `json:"framework_categories"`
	DependencyStats      DependencyStats     `json:"dependency_stats"`
	CodebaseSize         string              `json:"codebase_size"`
}

type GeneratedDocs struct {
	RepoName          string             `json:"repo_name"`
	Overview          string             `json:"overview"`
	Sections          []DocSection       `json:"sections"`
	Diagrams          []DiagramData      `json:"diagrams"`
	TechStack         string             `json:"tech_stack"`
	SetupGuide        string             `json:"setup_guide"`
	APIDocs           string             `json:"api_docs,omitempty"`
	HealthScore       *CodeHealthScore   `json:"health_score,omitempty"`
	VulnerabilityScan *VulnerabilityScan `json:"vulnerability_scan,omitempty"`
	Badges            []BadgeInfo        `json:"badges,omitempty"`
	ComplexityMetrics *ComplexityMetrics `json:"complexity_metrics,omitempty"`
	ContributingMD    string             `json:"contributing_md,omitempty"`
	AICodeReview      string             `json:"ai_code_review,omitempty"`
	FullMarkdown      string             `json:"full_markdown,omitempty"`
}

// ─── Oppgavesporing ─────────────────────────────────────────────────────

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusCloning    TaskStatus = "cloning"
	StatusAnalyzing  TaskStatus = "analyzing"
	StatusGenerating TaskStatus = "generating"
	StatusComplete   TaskStatus = "complete"
	StatusError      TaskStatus = "error"
)

type TaskProgress struct {
	Status   TaskStatus     `json:"status"`
	Progress int            `json:"progress"` // 0-100
	Message  string         `json:"message"`
	Result   *GeneratedDocs `json:"result,omitempty"`
}

func (p TaskProgress) String() string {
	return fmt.Sprintf("%s (%d%%): %s", p.Status, p.Progress, p.Message)
}
