package gitclone

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRepoURL(t *testing.T) {
	cases := []struct {
		url         string
		owner, repo string
		wantErr     bool
	}{
		{"https://github.com/octocat/hello-world", "octocat", "hello-world", false},
		{"https://github.com/octocat/hello-world/", "octocat", "hello-world", false},
		{"https://github.com/octocat/hello-world.git", "octocat", "hello-world", false},
		{"git@github.com:octocat/hello-world.git", "octocat", "hello-world", false},
		{"https://gitlab.com/noen/annet", "", "", true},
		{"ikke en url", "", "", true},
	}

	for _, c := range cases {
		owner, repo, err := ParseRepoURL(c.url)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseRepoURL(%q): forventet feil", c.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRepoURL(%q): uventet feil: %v", c.url, err)
			continue
		}
		if owner != c.owner || repo != c.repo {
			t.Errorf("ParseRepoURL(%q) = %s/%s, forventet %s/%s", c.url, owner, repo, c.owner, c.repo)
		}
	}
}

func TestNewClonerOppretterKatalog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kloner")
	if _, err := NewCloner(dir, ""); err != nil {
		t.Fatalf("uventet feil: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("klonekatalogen skal opprettes: %v", err)
	}
}

func TestCleanupFjernerKatalog(t *testing.T) {
	base := t.TempDir()
	c, err := NewCloner(base, "")
	if err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(base, "octocat_hello-world")
	if err := os.MkdirAll(filepath.Join(target, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	c.Cleanup(target)
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("katalogen skal være fjernet")
	}
}

func TestSanitizeSkjulerToken(t *testing.T) {
	out := sanitize("fatal: https://hemmelig123@github.com/x/y not found\n", "hemmelig123")
	if got, want := out, "fatal: https://***@github.com/x/y not found"; got != want {
		t.Errorf("sanitize = %q, forventet %q", got, want)
	}
}
