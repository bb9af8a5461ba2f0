// Package gitclone henter GitHub-repo lokalt med grunn kloning.
package gitclone

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var repoURLPattern = regexp.MustCompile(`github\.com[/:]([^/]+)/([^/.]+)`)

const cloneTimeout = 120 * time.Second

// Cloner kloner repo til en felles katalog, én underkatalog per eier/navn.
type Cloner struct {
	cloneDir string
	token    string // valgfritt, for private repo
}

func NewCloner(cloneDir, token string) (*Cloner, error) {
	if err := os.MkdirAll(cloneDir, 0o755); err != nil {
		return nil, fmt.Errorf("kunne ikke opprette klonekatalog: %w", err)
	}
	return &Cloner{cloneDir: cloneDir, token: token}, nil
}

// ParseRepoURL finner eier og reponavn i en GitHub-URL. Både https- og
// ssh-form støttes.
func ParseRepoURL(url string) (owner, repo string, err error) {
	m := repoURLPattern.FindStringSubmatch(strings.TrimRight(url, "/"))
	if m == nil {
		return "", "", fmt.Errorf("ugyldig GitHub-URL: %s", url)
	}
	return m[1], m[2], nil
}

// Clone gjør en grunn kloning (dybde 1) og returnerer lokal sti. Hvis den
// angitte grenen ikke finnes, prøves standardgrenen i stedet. Eksisterende
// klone av samme repo fjernes først. Token fra forespørselen går foran
// klonerens standardtoken.
func (c *Cloner) Clone(ctx context.Context, repoURL, branch, token string) (string, error) {
	owner, repo, err := ParseRepoURL(repoURL)
	if err != nil {
		return "", err
	}
	localPath := filepath.Join(c.cloneDir, owner+"_"+repo)

	if err := os.RemoveAll(localPath); err != nil {
		return "", fmt.Errorf("kunne ikke rydde gammel klone: %w", err)
	}

	if token == "" {
		token = c.token
	}
	cloneURL := repoURL
	if token != "" {
		cloneURL = strings.Replace(repoURL, "https://", "https://"+token+"@", 1)
	}

	slog.Info("kloner repo", "owner", owner, "repo", repo, "branch", branch)

	if err := c.gitClone(ctx, cloneURL, localPath, branch, token); err != nil {
		// Grenen kan hete noe annet enn forventet, fall tilbake til standard.
		slog.Debug("kloning med gren feilet, prøver standardgren", "branch", branch, "error", err)
		if err := c.gitClone(ctx, cloneURL, localPath, "", token); err != nil {
			return "", fmt.Errorf("kloning feilet: %w", err)
		}
	}
	return localPath, nil
}

func (c *Cloner) gitClone(ctx context.Context, url, dest, branch, token string) error {
	ctx, cancel := context.WithTimeout(ctx, cloneTimeout)
	defer cancel()

	args := []string{"clone", "--depth", "1"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, dest)

	cmd := exec.CommandContext(ctx, "git", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(dest)
		return fmt.Errorf("%w: %s", err, sanitize(string(out), token))
	}
	return nil
}

// Cleanup fjerner en klonet katalog.
func (c *Cloner) Cleanup(localPath string) {
	if err := os.RemoveAll(localPath); err != nil {
		slog.Warn("kunne ikke fjerne klone", "path", localPath, "error", err)
	}
}

// sanitize fjerner tokenet fra git-utdata før det havner i feilmeldinger.
func sanitize(out, token string) string {
	out = strings.TrimSpace(out)
	if token != "" {
		out = strings.ReplaceAll(out, token, "***")
	}
	return out
}
