package parser

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

type PackageJSONParser struct{}

func (p PackageJSONParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, "package.json")
}

// Parse henter dependencies og devDependencies fra en package.json.
// Nøklene sorteres slik at rekkefølgen er stabil fra kjøring til kjøring.
func (p PackageJSONParser) Parse(path string, data []byte) ([]models.Dependency, error) {
	var raw struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var deps []models.Dependency
	for _, name := range sortedKeys(raw.Dependencies) {
		deps = append(deps, models.Dependency{
			Name:    name,
			Version: raw.Dependencies[name],
			Kind:    models.KindRuntime,
			Path:    path,
		})
	}
	for _, name := range sortedKeys(raw.DevDependencies) {
		deps = append(deps, models.Dependency{
			Name:    name,
			Version: raw.DevDependencies[name],
			Kind:    models.KindDev,
			Path:    path,
		})
	}
	return deps, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
