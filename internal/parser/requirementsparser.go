package parser

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

type RequirementsParser struct{}

func (p RequirementsParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, "requirements.txt")
}

// Parse leser én avhengighet per linje. Versjonsoperatorene ==, >=, <= og ~=
// strippes fra navnet; versjon settes bare når linjen bruker ==.
func (p RequirementsParser) Parse(path string, data []byte) ([]models.Dependency, error) {
	var deps []models.Dependency
	scanner := bufio.NewScanner(bytes.NewReader(data))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name := line
		version := ""
		if parts := strings.SplitN(line, "==", 2); len(parts) == 2 {
			name = parts[0]
			version = strings.TrimSpace(parts[1])
		}
		for _, op := range []string{">=", "<=", "~="} {
			name = strings.SplitN(name, op, 2)[0]
		}

		deps = append(deps, models.Dependency{
			Name:    strings.TrimSpace(name),
			Version: version,
			Kind:    models.KindRuntime,
			Path:    path,
		})
	}

	return deps, scanner.Err()
}
