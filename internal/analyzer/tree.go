package analyzer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jonmartinstorm/repodokka/internal/models"
)

// ErrTreeConflict betyr at en sti krever at samme segment er både fil og
// katalog. Det skal ikke kunne skje i et ekte filtre, så vi feiler høyt i
// stedet for å overskrive i stillhet.
var ErrTreeConflict = errors.New("filtre-konflikt: segment er både fil og katalog")

// BuildFileTree folder en flat filliste til et nøstet tre over stisegmenter.
func BuildFileTree(files []models.FileInfo) (map[string]*models.TreeNode, error) {
	tree := map[string]*models.TreeNode{}

	for _, f := range files {
		parts := strings.Split(strings.ReplaceAll(f.Path, "\\", "/"), "/")
		current := tree

		for i, part := range parts {
			if i == len(parts)-1 {
				if existing, ok := current[part]; ok && existing.IsDir() {
					return nil, fmt.Errorf("%w: %s", ErrTreeConflict, f.Path)
				}
				current[part] = &models.TreeNode{
					File: &models.FileLeaf{Type: "file", Language: f.Language, Lines: f.Lines},
				}
				continue
			}

			node, ok := current[part]
			if !ok {
				node = &models.TreeNode{Children: map[string]*models.TreeNode{}}
				current[part] = node
			} else if !node.IsDir() {
				return nil, fmt.Errorf("%w: %s", ErrTreeConflict, f.Path)
			}
			current = node.Children
		}
	}

	return tree, nil
}

// FlattenTree gjør det motsatte av BuildFileTree: alle løvnoder tilbake til
// stier med metadata. Brukes i tester og ved eksport.
func FlattenTree(tree map[string]*models.TreeNode) []models.FileInfo {
	var out []models.FileInfo
	flattenInto(tree, "", &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func flattenInto(nodes map[string]*models.TreeNode, prefix string, out *[]models.FileInfo) {
	for name, node := range nodes {
		path := name
		if prefix != "" {
			path = prefix + "/" + name
		}
		if node.File != nil {
			*out = append(*out, models.FileInfo{
				Path:     path,
				Language: node.File.Language,
				Lines:    node.File.Lines,
			})
			continue
		}
		flattenInto(node.Children, path, out)
	}
}
