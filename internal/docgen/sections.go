package docgen

import (
	"fmt"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// ParseSections deler LLM-svaret i seksjoner. Primært på seksjonsskillet,
// ellers på "## "-overskrifter. Tittelen hentes fra første overskriftslinje,
// med "Section N" som reserve.
func ParseSections(raw string) []models.DocSection {
	var parts []string
	if strings.Contains(raw, SectionBreak) {
		parts = strings.Split(raw, SectionBreak)
	} else {
		var buf strings.Builder
		for _, line := range strings.Split(raw, "\n") {
			if strings.HasPrefix(line, "## ") && buf.Len() > 0 {
				parts = append(parts, buf.String())
				buf.Reset()
			}
			buf.WriteString(line)
			buf.WriteString("\n")
		}
		if buf.Len() > 0 {
			parts = append(parts, buf.String())
		}
	}

	var sections []models.DocSection
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		title := fmt.Sprintf("Section %d", i+1)
		for _, line := range strings.Split(part, "\n") {
			if strings.HasPrefix(line, "#") {
				title = strings.TrimSpace(strings.TrimLeft(line, "#"))
				break
			}
		}
		sections = append(sections, models.DocSection{
			Title:   title,
			Content: part,
			Order:   i,
		})
	}
	return sections
}
