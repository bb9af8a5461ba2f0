package parser

import (
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
	"github.com/pelletier/go-toml"
)

type CargoTomlParser struct{}

func (p CargoTomlParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, "Cargo.toml")
}

// Parse leser dependency-tabellene i en Cargo.toml. Verdier kan være en
// ren versjonsstreng eller en tabell med version-felt; alt annet gir tom
// versjon (akseptabelt presisjonstap).
func (p CargoTomlParser) Parse(path string, data []byte) ([]models.Dependency, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, err
	}

	var deps []models.Dependency
	sections := []struct {
		name string
		kind models.DependencyKind
	}{
		{"dependencies", models.KindRuntime},
		{"dev-dependencies", models.KindDev},
		{"build-dependencies", models.KindDev},
	}

	for _, section := range sections {
		sub, ok := tree.Get(section.name).(*toml.Tree)
		if !ok {
			continue
		}
		m := sub.ToMap()
		for _, name := range sortedAnyKeys(m) {
			version := ""
			switch v := m[name].(type) {
			case string:
				version = v
			case map[string]interface{}:
				if ver, ok := v["version"].(string); ok {
					version = ver
				}
			}
			deps = append(deps, models.Dependency{
				Name:    name,
				Version: version,
				Kind:    section.kind,
				Path:    path,
			})
		}
	}

	return deps, nil
}
