package report

import (
	"fmt"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

var langColors = map[string]string{
	"Python": "3776AB", "JavaScript": "F7DF1E", "TypeScript": "3178C6",
	"Java": "ED8B00", "Go": "00ADD8", "Rust": "000000", "C++": "00599C",
	"C#": "239120", "Ruby": "CC342D", "PHP": "777BB4", "Swift": "FA7343",
	"Kotlin": "7F52FF", "Scala": "DC322F",
}

var gradeColors = map[string]string{
	"A+": "brightgreen", "A": "green", "B": "yellowgreen",
	"C": "yellow", "D": "orange", "F": "red",
}

// GenerateBadges lager shields.io-badger for toppspråk, rammeverk,
// helsekarakter, flagg og lisens. Rekkefølgen er fast.
func GenerateBadges(a models.RepoAnalysis, health models.CodeHealthScore) []models.BadgeInfo {
	var badges []models.BadgeInfo

	if top := a.TopLanguage(); top != "" {
		color := langColor(top)
		badges = append(badges, models.BadgeInfo{
			Label:    "Language",
			Message:  top,
			Color:    color,
			Markdown: fmt.Sprintf("![%s](https://img.shields.io/badge/Language-%s-%s)", top, encodeBadge(top), color),
		})
	}

	for i, fw := range a.Frameworks {
		if i >= 3 {
			break
		}
		badges = append(badges, models.BadgeInfo{
			Label:    "Framework",
			Message:  fw.Name,
			Color:    "blue",
			Markdown: fmt.Sprintf("![%s](https://img.shields.io/badge/Framework-%s-blue)", fw.Name, encodeBadge(fw.Name)),
		})
	}

	grade := health.Grade
	if grade == "" {
		grade = "?"
	}
	gradeColor, ok := gradeColors[grade]
	if !ok {
		gradeColor = "gray"
	}
	badges = append(badges, models.BadgeInfo{
		Label:    "Code Health",
		Message:  grade,
		Color:    gradeColor,
		Markdown: fmt.Sprintf("![Health](https://img.shields.io/badge/Code%%20Health-%s-%s)", grade, gradeColor),
	})

	if a.HasTests {
		badges = append(badges, models.BadgeInfo{
			Label: "Tests", Message: "✓", Color: "green",
			Markdown: "![Tests](https://img.shields.io/badge/Tests-Passing-green)",
		})
	}
	if a.HasCI {
		badges = append(badges, models.BadgeInfo{
			Label: "CI/CD", Message: "✓", Color: "blue",
			Markdown: "![CI](https://img.shields.io/badge/CI%2FCD-Configured-blue)",
		})
	}
	if a.HasDocker {
		badges = append(badges, models.BadgeInfo{
			Label: "Docker", Message: "✓", Color: "2496ED",
			Markdown: "![Docker](https://img.shields.io/badge/Docker-Ready-2496ED)",
		})
	}
	if a.License != "" {
		badges = append(badges, models.BadgeInfo{
			Label: "License", Message: a.License, Color: "lightgrey",
			Markdown: fmt.Sprintf("![License](https://img.shields.io/badge/License-%s-lightgrey)", encodeBadge(a.License)),
		})
	}

	return badges
}

func langColor(lang string) string {
	if c, ok := langColors[lang]; ok {
		return c
	}
	return "555555"
}

func encodeBadge(s string) string {
	return strings.ReplaceAll(s, " ", "%20")
}
