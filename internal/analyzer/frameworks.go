package analyzer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// frameworkIndicator er én rad i indikatortabellen: markørfiler hvis blotte
// eksistens er bevis, og nøkkelord som matches mot avhengighetsnavn.
type frameworkIndicator struct {
	Name     string
	Files    []string
	Keywords []string
	Category string
}

// frameworkIndicators er uforanderlig konfigurasjon, lastet én gang.
// Rekkefølgen i tabellen avgjør rekkefølgen ved lik konfidens.
var frameworkIndicators = []frameworkIndicator{
	{"react", nil, []string{"react", "react-dom"}, "frontend"},
	{"next.js", []string{"next.config.js", "next.config.mjs", "next.config.ts"}, []string{"next"}, "frontend"},
	{"vue", []string{"vue.config.js"}, []string{"vue"}, "frontend"},
	{"angular", []string{"angular.json"}, []string{"@angular/core"}, "frontend"},
	{"svelte", []string{"svelte.config.js"}, []string{"svelte"}, "frontend"},
	{"express", nil, []string{"express"}, "backend"},
	{"fastapi", nil, []string{"fastapi"}, "backend"},
	{"django", []string{"manage.py"}, []string{"django"}, "backend"},
	{"flask", nil, []string{"flask"}, "backend"},
	{"spring", []string{"pom.xml", "build.gradle"}, []string{"spring-boot", "springframework"}, "backend"},
	{"nestjs", []string{"nest-cli.json"}, []string{"@nestjs/core"}, "backend"},
	{"mongodb", nil, []string{"mongoose", "mongodb", "pymongo"}, "database"},
	{"postgresql", nil, []string{"pg", "psycopg2", "postgres"}, "database"},
	{"mysql", nil, []string{"mysql", "mysql2"}, "database"},
	{"redis", nil, []string{"redis", "ioredis"}, "database"},
	{"docker", []string{"Dockerfile", "docker-compose.yml", "docker-compose.yaml"}, nil, "devops"},
	{"kubernetes", nil, []string{"kubernetes"}, "devops"},
	{"tailwindcss", []string{"tailwind.config.js", "tailwind.config.ts"}, []string{"tailwindcss"}, "frontend"},
	{"prisma", []string{"prisma/schema.prisma"}, []string{"prisma", "@prisma/client"}, "database"},
	{"pytorch", nil, []string{"torch", "pytorch"}, "ml"},
	{"tensorflow", nil, []string{"tensorflow", "tf"}, "ml"},
	{"langchain", nil, []string{"langchain"}, "ai"},
	{"transformers", nil, []string{"transformers"}, "ai"},
}

// DetectFrameworks skårer rammeverk ut fra markørfiler på disk og
// avhengighetsnavn: 0,5 per treff, tak på 1,0. Rammeverk uten treff
// utelates. Resultatet sorteres synkende på konfidens, med tabellrekkefølge
// ved likhet.
func DetectFrameworks(root string, deps []models.Dependency) []models.FrameworkInfo {
	depNames := map[string]bool{}
	for _, d := range deps {
		depNames[strings.ToLower(d.Name)] = true
	}

	var frameworks []models.FrameworkInfo
	for _, ind := range frameworkIndicators {
		confidence := 0.0
		for _, marker := range ind.Files {
			path := filepath.Join(root, filepath.FromSlash(marker))
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				confidence += 0.5
			}
		}
		for _, kw := range ind.Keywords {
			if depNames[strings.ToLower(kw)] {
				confidence += 0.5
			}
		}
		if confidence == 0 {
			continue
		}
		if confidence > 1.0 {
			confidence = 1.0
		}
		frameworks = append(frameworks, models.FrameworkInfo{
			Name:       ind.Name,
			Category:   ind.Category,
			Confidence: confidence,
		})
	}

	sort.SliceStable(frameworks, func(i, j int) bool {
		return frameworks[i].Confidence > frameworks[j].Confidence
	})
	return frameworks
}
