package analyzer

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// maxKeyFileRead er taket for hvor mye vi leser av hver nøkkelfil.
const maxKeyFileRead = 50_000

// keyFiles er den faste, ordnede listen over interessante filer i repo-roten:
// manifester, readme-er og vanlige innganspunkter.
var keyFiles = []string{
	"README.md", "README.rst", "README.txt", "README",
	"package.json", "requirements.txt", "Pipfile", "pyproject.toml",
	"pom.xml", "build.gradle", "Cargo.toml", "go.mod",
	"Dockerfile", "docker-compose.yml", "docker-compose.yaml",
	".env.example", "example.env",
	"Makefile", "Procfile",
	"app.py", "main.py", "index.js", "index.ts",
	"server.js", "server.ts", "app.js", "app.ts",
}

// nestedKeyFiles er vanlige kildefil-innganger under underkataloger.
var nestedKeyFiles = []string{
	"src/index.ts", "src/index.js", "src/main.ts", "src/main.js",
	"src/app.ts", "src/app.js", "src/App.tsx", "src/App.jsx",
	"src/main.py", "app/__init__.py", "cmd/main.go",
	"src/lib.rs", "src/main.rs",
}

// ReadKeyFiles leser nøkkelfilene som finnes, avkortet til maxKeyFileRead
// bytes. Filer som mangler er bare fraværende i resultatet – aldri en feil.
func ReadKeyFiles(root string) map[string]string {
	result := map[string]string{}

	readInto := func(rel string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return
		}
		content, err := readCapped(path, maxKeyFileRead)
		if err != nil {
			slog.Debug("Klarte ikke å lese nøkkelfil", "path", rel, "error", err)
			return
		}
		result[rel] = content
	}

	for _, name := range keyFiles {
		readInto(name)
	}
	for _, name := range nestedKeyFiles {
		readInto(name)
	}

	return result
}

func readCapped(path string, limit int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
