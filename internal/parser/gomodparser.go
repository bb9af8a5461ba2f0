package parser

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

type GoModParser struct{}

func (p GoModParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, "go.mod")
}

// Parse leser require-linjer, både enkeltstående og i blokk. Direktiver,
// kommentarer og blokk-delimitere gir ingen poster.
func (p GoModParser) Parse(path string, data []byte) ([]models.Dependency, error) {
	var deps []models.Dependency
	scanner := bufio.NewScanner(bytes.NewReader(data))

	inRequireBlock := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "require (") {
			inRequireBlock = true
			continue
		}
		if inRequireBlock && line == ")" {
			inRequireBlock = false
			continue
		}
		if strings.HasPrefix(line, "require ") {
			line = strings.TrimPrefix(line, "require ")
		} else if !inRequireBlock {
			continue
		}

		line = strings.TrimSpace(strings.Split(line, "//")[0]) // Fjern kommentarer
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if parts[0] == "(" || parts[0] == ")" {
			continue
		}

		version := ""
		if len(parts) > 1 {
			version = parts[1]
		}
		deps = append(deps, models.Dependency{
			Name:    parts[0],
			Version: version,
			Kind:    models.KindRuntime,
			Path:    path,
		})
	}
	return deps, scanner.Err()
}
