package analyzer

import (
	"path/filepath"
	"strings"
)

// OtherLanguage er merkelappen for filtyper vi ikke kjenner igjen.
// Filer med denne merkelappen telles aldri med i språkhistogrammet.
const OtherLanguage = "Other"

// languageMap er eneste kilde til sannhet for filendelse → språk.
var languageMap = map[string]string{
	".py":         "Python",
	".js":         "JavaScript",
	".ts":         "TypeScript",
	".jsx":        "JavaScript (JSX)",
	".tsx":        "TypeScript (TSX)",
	".java":       "Java",
	".cpp":        "C++",
	".c":          "C",
	".h":          "C/C++ Header",
	".cs":         "C#",
	".go":         "Go",
	".rs":         "Rust",
	".rb":         "Ruby",
	".php":        "PHP",
	".swift":      "Swift",
	".kt":         "Kotlin",
	".scala":      "Scala",
	".r":          "R",
	".html":       "HTML",
	".css":        "CSS",
	".scss":       "SCSS",
	".sass":       "SASS",
	".vue":        "Vue",
	".svelte":     "Svelte",
	".sql":        "SQL",
	".sh":         "Shell",
	".bash":       "Shell",
	".yml":        "YAML",
	".yaml":       "YAML",
	".json":       "JSON",
	".xml":        "XML",
	".md":         "Markdown",
	".dockerfile": "Dockerfile",
	".proto":      "Protocol Buffers",
	".graphql":    "GraphQL",
	".gql":        "GraphQL",
}

// ClassifyExtension mapper en filendelse (med punktum, små bokstaver)
// til en språkmerkelapp. Ukjente endelser blir "Other".
func ClassifyExtension(ext string) string {
	if lang, ok := languageMap[ext]; ok {
		return lang
	}
	return OtherLanguage
}

// LanguageForFile klassifiserer et filnavn. Filer som heter nøyaktig
// "Dockerfile" behandles som .dockerfile uansett endelse.
func LanguageForFile(filename string) string {
	if filename == "Dockerfile" {
		return languageMap[".dockerfile"]
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return ClassifyExtension(ext)
}
