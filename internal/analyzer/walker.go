package analyzer

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// maxReadSize er taket for hvor store filer vi leser innholdet av.
// Større filer registreres med Lines = 0 uten at de åpnes.
const maxReadSize = 1 << 20 // 1 MiB

// ignoreDirs er kataloger som aldri traverseres: versjonskontroll,
// avhengighetscacher, byggeartefakter og IDE-tilstand.
var ignoreDirs = map[string]bool{
	".git": true, "node_modules": true, "__pycache__": true,
	".venv": true, "venv": true, "env": true,
	".next": true, ".nuxt": true, "dist": true, "build": true,
	".cache": true, "coverage": true,
	".idea": true, ".vscode": true, ".vs": true,
	"vendor": true, "target": true, "bin": true, "obj": true,
	".tox": true, ".mypy_cache": true, ".pytest_cache": true, "eggs": true,
}

// ignoreFiles er filer som hoppes over helt – de teller verken som fil
// eller linjer.
var ignoreFiles = map[string]bool{
	".DS_Store": true, "Thumbs.db": true,
	".gitignore": true, ".gitattributes": true,
	"package-lock.json": true, "yarn.lock": true, "pnpm-lock.yaml": true,
	"poetry.lock": true, "Pipfile.lock": true, "composer.lock": true,
}

// WalkFiles traverserer repoet og returnerer alle kvalifiserende filer.
// Enkeltfiler som ikke lar seg lese hoppes stille over – bare en rot som
// ikke finnes eller ikke kan leses gir feil.
func WalkFiles(root string) ([]models.FileInfo, error) {
	var files []models.FileInfo

	walkErr := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			slog.Debug("Hopper over uleselig sti", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && ignoreDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if ignoreFiles[d.Name()] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			slog.Debug("Stat feilet, hopper over fil", "path", rel, "error", err)
			return nil
		}

		lang := LanguageForFile(d.Name())
		size := info.Size()

		if size > maxReadSize {
			files = append(files, models.FileInfo{Path: rel, Language: lang, Size: size, Lines: 0})
			return nil
		}

		lines, err := countLines(path)
		if err != nil {
			slog.Debug("Klarte ikke å lese fil", "path", rel, "error", err)
			return nil
		}

		files = append(files, models.FileInfo{Path: rel, Language: lang, Size: size, Lines: lines})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return files, nil
}

// countLines teller linjer best-effort. Ugyldige bytesekvenser er
// uproblematiske – vi teller bare linjeskift.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	lines := 0
	sawAny := false
	for {
		chunk, err := r.ReadString('\n')
		if len(chunk) > 0 {
			sawAny = true
			if strings.HasSuffix(chunk, "\n") {
				lines++
			}
		}
		if err == io.EOF {
			// Siste linje uten avsluttende linjeskift teller også
			if sawAny && !strings.HasSuffix(chunk, "\n") {
				lines++
			}
			return lines, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
