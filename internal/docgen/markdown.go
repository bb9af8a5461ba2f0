package docgen

import (
	"fmt"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// RenderMarkdown setter sammen hele dokumentasjonen til én Markdown-fil.
func RenderMarkdown(docs models.GeneratedDocs) string {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", docs.RepoName)

	if docs.Overview != "" {
		fmt.Fprintf(&md, "## Overview\n\n%s\n\n", docs.Overview)
	}
	if docs.TechStack != "" {
		fmt.Fprintf(&md, "## Technology Stack\n\n%s\n\n", docs.TechStack)
	}

	for _, d := range docs.Diagrams {
		fmt.Fprintf(&md, "## %s\n\n%s\n\n```mermaid\n%s\n```\n\n", d.Title, d.Description, d.MermaidCode)
	}

	if docs.SetupGuide != "" {
		fmt.Fprintf(&md, "## Getting Started\n\n%s\n\n", docs.SetupGuide)
	}
	if docs.APIDocs != "" {
		fmt.Fprintf(&md, "## API Documentation\n\n%s\n\n", docs.APIDocs)
	}

	for _, sec := range docs.Sections {
		fmt.Fprintf(&md, "%s\n\n", sec.Content)
	}

	md.WriteString("---\n\n*Generert av [repodokka](https://github.com/jonmartinstorm/repodokka) - AI-dreven dokumentasjon*\n")
	return md.String()
}
