package parser

import "github.com/jonmartinstorm/repodokka/internal/models"

// Parser er én dialekt-spesifikk manifestparser. Hver parser er uavhengig
// og best-effort: en feil i én dialekt påvirker aldri de andre.
type Parser interface {
	CanParse(filename string) bool
	Parse(path string, content []byte) ([]models.Dependency, error)
}
