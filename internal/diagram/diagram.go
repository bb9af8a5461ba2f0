// Package diagram genererer Mermaid.js-diagrammer fra en repoanalyse.
// All generering er deterministisk: kartnøkler sorteres før bruk.
package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// GenerateAll lager alle diagrammene i fast rekkefølge.
func GenerateAll(a models.RepoAnalysis) []models.DiagramData {
	return []models.DiagramData{
		ArchitectureDiagram(a),
		StructureDiagram(a),
		TechStackDiagram(a),
		DataFlowDiagram(a),
	}
}

type layerInfo struct {
	id    string
	label string
}

var layerMap = map[string]layerInfo{
	"frontend": {"UI", "🖥️ Frontend"},
	"backend":  {"API", "⚙️ Backend API"},
	"database": {"DB", "🗄️ Database"},
	"ml":       {"ML", "🧠 AI / ML"},
	"ai":       {"ML", "🧠 AI / ML"},
	"devops":   {"DEVOPS", "🔧 DevOps"},
}

// layerOrder gir stabil rekkefølge på lagene i arkitekturdiagrammet.
var layerOrder = []string{"frontend", "backend", "database", "ml", "ai", "devops"}

var layerColors = []struct{ class, color string }{
	{"frontend", "#42b883,stroke:#35495e,color:#fff"},
	{"backend", "#3178c6,stroke:#1a4a7a,color:#fff"},
	{"database", "#f29111,stroke:#c77700,color:#fff"},
	{"ml", "#ee4c2c,stroke:#c9302c,color:#fff"},
	{"devops", "#326ce5,stroke:#1a4a7a,color:#fff"},
}

var nodeClasses = []struct{ node, class string }{
	{"UI", "frontend"},
	{"API", "backend"},
	{"DB", "database"},
	{"ML", "ml"},
	{"DEVOPS", "devops"},
}

// ArchitectureDiagram grupperer rammeverkene i lag og tegner flyten mellom dem.
func ArchitectureDiagram(a models.RepoAnalysis) models.DiagramData {
	cats := map[string][]string{}
	for _, fw := range a.Frameworks {
		cats[fw.Category] = append(cats[fw.Category], fw.Name)
	}

	var m strings.Builder
	m.WriteString("graph TB\n    subgraph \"Application Architecture\"\n")

	nodes := map[string]bool{}
	var nodeList []string
	for _, cat := range layerOrder {
		fws, ok := cats[cat]
		if !ok {
			continue
		}
		info := layerMap[cat]
		if nodes[info.id] {
			continue
		}
		nodes[info.id] = true
		nodeList = append(nodeList, info.id)
		fmt.Fprintf(&m, "        %s[\"%s<br/>%s\"]\n", info.id, info.label, strings.Join(fws, ", "))
	}

	if len(nodeList) == 0 {
		var langs []string
		for i, l := range a.Languages {
			if i >= 3 {
				break
			}
			langs = append(langs, l.Language)
		}
		top := strings.Join(langs, ", ")
		if top == "" {
			top = "Code"
		}
		fmt.Fprintf(&m, "        APP[\"📦 Application<br/>%s\"]\n", top)
		nodes["APP"] = true
		nodeList = append(nodeList, "APP")
	}

	m.WriteString("    end\n\n")

	edges := []struct{ src, dst, label string }{
		{"UI", "API", "HTTP/REST"},
		{"API", "DB", "Query"},
		{"API", "ML", "Inference"},
	}
	for _, e := range edges {
		if nodes[e.src] && nodes[e.dst] {
			fmt.Fprintf(&m, "    %s -->|%s| %s\n", e.src, e.label, e.dst)
		}
	}

	if nodes["DEVOPS"] {
		for _, n := range nodeList {
			if n != "DEVOPS" {
				fmt.Fprintf(&m, "    DEVOPS -.->|Deploy| %s\n", n)
			}
		}
	}

	for _, c := range layerColors {
		fmt.Fprintf(&m, "\n    classDef %s fill:%s", c.class, c.color)
	}
	m.WriteString("\n")
	for _, nc := range nodeClasses {
		if nodes[nc.node] {
			fmt.Fprintf(&m, "    class %s %s\n", nc.node, nc.class)
		}
	}

	return models.DiagramData{
		Title:       "Architecture Overview",
		MermaidCode: m.String(),
		Description: "High-level architecture showing major components and interactions.",
	}
}

// StructureDiagram viser toppnivået i filtreet, inntil 12 innslag med
// inntil 5 barn hver.
func StructureDiagram(a models.RepoAnalysis) models.DiagramData {
	var m strings.Builder
	fmt.Fprintf(&m, "graph LR\n    ROOT[\"📁 %s\"]\n", a.RepoName)

	for idx, key := range sortedNodeKeys(a.FileTree) {
		if idx >= 12 {
			break
		}
		node := a.FileTree[key]
		nid := fmt.Sprintf("N%d", idx)
		if node.IsDir() {
			fmt.Fprintf(&m, "    %s[\"%s %s/\"]\n    ROOT --> %s\n", nid, folderIcon(key), key, nid)
			children := sortedNodeKeys(node.Children)
			for si, sk := range children {
				if si >= 5 {
					break
				}
				sid := fmt.Sprintf("S%d_%d", idx, si)
				icon := "📄"
				if node.Children[sk].IsDir() {
					icon = "📁"
				}
				fmt.Fprintf(&m, "    %s[\"%s %s\"]\n    %s --> %s\n", sid, icon, sk, nid, sid)
			}
			if len(children) > 5 {
				fmt.Fprintf(&m, "    MORE%d[\"…\"]\n    %s --> MORE%d\n", idx, nid, idx)
			}
		} else {
			fmt.Fprintf(&m, "    %s[\"📄 %s\"]\n    ROOT --> %s\n", nid, key, nid)
		}
	}

	return models.DiagramData{
		Title:       "Project Structure",
		MermaidCode: m.String(),
		Description: "Visual map of the project's directory layout.",
	}
}

var categoryIcons = map[string]string{
	"frontend": "🎨", "backend": "⚙️", "database": "🗄️", "ml": "🧠", "ai": "🧠",
}

// TechStackDiagram viser språk, rammeverk og infrastruktur som undergrafer.
func TechStackDiagram(a models.RepoAnalysis) models.DiagramData {
	var m strings.Builder
	m.WriteString("graph TD\n    subgraph \"Technology Stack\"\n")

	m.WriteString("        subgraph \"Languages\"\n")
	for i, l := range a.Languages {
		if i >= 6 {
			break
		}
		fmt.Fprintf(&m, "            L%d[\"💻 %s<br/>%d lines\"]\n", i, l.Language, l.Lines)
	}
	m.WriteString("        end\n")

	if len(a.Frameworks) > 0 {
		m.WriteString("        subgraph \"Frameworks & Libraries\"\n")
		for i, fw := range a.Frameworks {
			if i >= 8 {
				break
			}
			icon, ok := categoryIcons[fw.Category]
			if !ok {
				icon = "🔧"
			}
			fmt.Fprintf(&m, "            F%d[\"%s %s\"]\n", i, icon, fw.Name)
		}
		m.WriteString("        end\n")
	}

	var infra []string
	if a.HasDocker {
		infra = append(infra, "🐳 Docker")
	}
	if a.HasCI {
		infra = append(infra, "🔄 CI/CD")
	}
	if a.HasTests {
		infra = append(infra, "✅ Tests")
	}
	if len(infra) > 0 {
		m.WriteString("        subgraph \"Infrastructure\"\n")
		for i, item := range infra {
			fmt.Fprintf(&m, "            I%d[\"%s\"]\n", i, item)
		}
		m.WriteString("        end\n")
	}

	m.WriteString("    end\n")
	return models.DiagramData{
		Title:       "Technology Stack",
		MermaidCode: m.String(),
		Description: "Complete technology stack.",
	}
}

// DataFlowDiagram lager et sekvensdiagram ut fra hvilke lag som finnes.
func DataFlowDiagram(a models.RepoAnalysis) models.DiagramData {
	var fe, be, db []models.FrameworkInfo
	for _, fw := range a.Frameworks {
		switch fw.Category {
		case "frontend":
			fe = append(fe, fw)
		case "backend":
			be = append(be, fw)
		case "database":
			db = append(db, fw)
		}
	}

	var m strings.Builder
	m.WriteString("sequenceDiagram\n    participant U as 👤 User\n")
	if len(fe) > 0 {
		fmt.Fprintf(&m, "    participant F as 🖥️ %s\n", fe[0].Name)
	}
	if len(be) > 0 {
		fmt.Fprintf(&m, "    participant B as ⚙️ %s\n", be[0].Name)
	}
	if len(db) > 0 {
		fmt.Fprintf(&m, "    participant D as 🗄️ %s\n", db[0].Name)
	}

	switch {
	case len(fe) > 0 && len(be) > 0:
		m.WriteString("    U->>F: User Action\n    F->>B: API Request\n")
		if len(db) > 0 {
			m.WriteString("    B->>D: Query Data\n    D-->>B: Return Results\n")
		}
		m.WriteString("    B-->>F: API Response\n    F-->>U: Update UI\n")
	case len(be) > 0:
		m.WriteString("    U->>B: Request\n")
		if len(db) > 0 {
			m.WriteString("    B->>D: Query\n    D-->>B: Results\n")
		}
		m.WriteString("    B-->>U: Response\n")
	default:
		m.WriteString("    participant APP as 📦 Application\n    U->>APP: Interact\n    APP-->>U: Response\n")
	}

	return models.DiagramData{
		Title:       "Data Flow",
		MermaidCode: m.String(),
		Description: "Typical request/response flow.",
	}
}

var folderIcons = map[string]string{
	"src": "📦", "lib": "📚", "test": "🧪", "tests": "🧪",
	"docs": "📖", "public": "🌐", "static": "🌐",
	"config": "⚙️", "scripts": "📜", "utils": "🔧",
	"components": "🧩", "pages": "📄", "api": "🔌",
	"models": "📊", "views": "👁️", "controllers": "🎮",
	"routes": "🛤️", "middleware": "🔗", "services": "⚡",
	"assets": "🎨", "styles": "🎨", "images": "🖼️",
	"database": "🗄️", "migrations": "📋", "prisma": "🗄️",
}

func folderIcon(name string) string {
	if icon, ok := folderIcons[strings.ToLower(name)]; ok {
		return icon
	}
	return "📁"
}

func sortedNodeKeys(m map[string]*models.TreeNode) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
