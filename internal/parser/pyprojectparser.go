package parser

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jonmartinstorm/repodokka/internal/models"
)

type PyProjectParser struct{}

func (p PyProjectParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, "pyproject.toml")
}

// Parse leser både PEP 621 ([project].dependencies) og Poetry
// ([tool.poetry.dependencies]). Python-versjonen i Poetry-tabellen er ikke
// en avhengighet og hoppes over.
func (p PyProjectParser) Parse(path string, data []byte) ([]models.Dependency, error) {
	var raw map[string]interface{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, err
	}

	var deps []models.Dependency

	// PEP 621
	if project, ok := raw["project"].(map[string]interface{}); ok {
		if dependencies, ok := project["dependencies"].([]interface{}); ok {
			for _, dep := range dependencies {
				depStr, ok := dep.(string)
				if !ok {
					continue
				}
				name, version := splitPythonDep(depStr)
				deps = append(deps, models.Dependency{
					Name:    name,
					Version: version,
					Kind:    models.KindRuntime,
					Path:    path,
				})
			}
		}
	}

	// Poetry
	if tool, ok := raw["tool"].(map[string]interface{}); ok {
		if poetry, ok := tool["poetry"].(map[string]interface{}); ok {
			if dependencies, ok := poetry["dependencies"].(map[string]interface{}); ok {
				for _, name := range sortedAnyKeys(dependencies) {
					if name == "python" {
						continue
					}
					version := ""
					switch v := dependencies[name].(type) {
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
						Kind:    models.KindRuntime,
						Path:    path,
					})
				}
			}
		}
	}

	return deps, nil
}

// splitPythonDep deler "navn>=1.2" i navn og versjon med operator.
func splitPythonDep(dep string) (string, string) {
	for _, sep := range []string{">=", "==", "<=", "~=", "!=", "<", ">", "="} {
		if parts := strings.SplitN(dep, sep, 2); len(parts) == 2 {
			return strings.TrimSpace(parts[0]), sep + strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(dep), ""
}

func sortedAnyKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
