package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jonmartinstorm/repodokka/internal/models"
	"github.com/jonmartinstorm/repodokka/internal/parser"
)

// Analyze vandrer gjennom et utsjekket repo og bygger det samlede
// analyseresultatet. Ren lesing – repoet endres aldri. En rot som ikke
// finnes eller ikke kan leses gir feil; alle feil på enkeltfiler absorberes
// underveis.
func Analyze(root string) (models.RepoAnalysis, error) {
	info, err := os.Stat(root)
	if err != nil {
		return models.RepoAnalysis{}, fmt.Errorf("analyse feilet, fant ikke rotkatalog %s: %w", root, err)
	}
	if !info.IsDir() {
		return models.RepoAnalysis{}, fmt.Errorf("analyse feilet, %s er ikke en katalog", root)
	}

	files, err := WalkFiles(root)
	if err != nil {
		return models.RepoAnalysis{}, fmt.Errorf("analyse feilet for %s: %w", root, err)
	}

	tree, err := BuildFileTree(files)
	if err != nil {
		return models.RepoAnalysis{}, fmt.Errorf("analyse feilet for %s: %w", root, err)
	}

	keyFiles := ReadKeyFiles(root)
	deps := parser.ExtractDependencies(keyFiles)

	totalLines := 0
	for _, f := range files {
		totalLines += f.Lines
	}

	return models.RepoAnalysis{
		RepoName:     filepath.Base(root),
		Description:  ExtractDescription(keyFiles),
		Languages:    CountLanguages(files),
		Frameworks:   DetectFrameworks(root, deps),
		Dependencies: deps,
		FileTree:     tree,
		FileCount:    len(files),
		TotalLines:   totalLines,
		KeyFiles:     keyFiles,
		EntryPoints:  DetectEntryPoints(files),
		HasTests:     HasTests(files),
		HasCI:        HasCI(root),
		HasDocker:    HasDocker(root),
		License:      DetectLicense(root),
	}, nil
}

// CountLanguages summerer linjetall per språk. "Other" og filer med 0 linjer
// holdes utenfor. Resultatet sorteres synkende på linjetall; navnesortering
// ved likhet gjør rekkefølgen deterministisk.
func CountLanguages(files []models.FileInfo) []models.LanguageCount {
	counts := map[string]int{}
	for _, f := range files {
		if f.Language != OtherLanguage && f.Lines > 0 {
			counts[f.Language] += f.Lines
		}
	}

	langs := make([]models.LanguageCount, 0, len(counts))
	for lang, lines := range counts {
		langs = append(langs, models.LanguageCount{Language: lang, Lines: lines})
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Lines != langs[j].Lines {
			return langs[i].Lines > langs[j].Lines
		}
		return langs[i].Language < langs[j].Language
	})
	return langs
}
