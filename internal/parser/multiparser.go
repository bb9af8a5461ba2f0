package parser

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// MultiParser kjører alle dialektparserne over nøkkelfilene. Manifester som
// mangler bidrar bare med null poster.
type MultiParser struct {
	all []Parser
}

func NewMultiParser() *MultiParser {
	return &MultiParser{
		all: []Parser{
			&PackageJSONParser{},
			&RequirementsParser{},
			&PyProjectParser{},
			&GoModParser{},
			&CargoTomlParser{},
		},
	}
}

// ParseFiles returnerer alle avhengigheter funnet i filene. Duplikater på
// tvers av manifester beholdes med vilje. Parsefeil i én dialekt logges og
// absorberes – resten fortsetter.
func (m *MultiParser) ParseFiles(files map[string]string) []models.Dependency {
	// Sortert sti-rekkefølge gjør resultatet deterministisk.
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var result []models.Dependency
	for _, p := range m.all {
		for _, path := range paths {
			if !p.CanParse(path) {
				continue
			}
			deps, err := p.Parse(path, []byte(files[path]))
			if err != nil {
				slog.Debug("Manifestparser feilet, hopper over fil",
					"parser", fmt.Sprintf("%T", p), "fil", path, "error", err)
				continue
			}
			result = append(result, deps...)
		}
	}
	return result
}

// ExtractDependencies er den vanlige inngangen: kjør alle dialektene over
// innholdet fra nøkkelfil-lesingen.
func ExtractDependencies(keyFiles map[string]string) []models.Dependency {
	return NewMultiParser().ParseFiles(keyFiles)
}
