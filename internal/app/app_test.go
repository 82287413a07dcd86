package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

const oneBook = `
[[book]]
id = 7
name = "Dune"
author = "Frank Herbert"
pages = 412
publish_date = "1965-08-01"
`

func TestLoadSeed_DefaultsToBuiltIn(t *testing.T) {
	seed, source, err := loadSeed("", "")
	if err != nil {
		t.Fatalf("loadSeed returned error: %v", err)
	}
	if len(seed) != 5 || source != "built-in" {
		t.Fatalf("loadSeed = %d books from %q, want 5 built-in", len(seed), source)
	}
}

func TestLoadSeed_ConfigPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "books.toml", oneBook)

	seed, source, err := loadSeed("", path)
	if err != nil {
		t.Fatalf("loadSeed returned error: %v", err)
	}
	if len(seed) != 1 || seed[0].ID != 7 || seed[0].Name != "Dune" {
		t.Fatalf("seed = %#v", seed)
	}
	if source != path {
		t.Fatalf("source = %q, want %q", source, path)
	}
}

func TestLoadSeed_FlagWinsOverConfig(t *testing.T) {
	dir := t.TempDir()
	flagPath := writeFile(t, dir, "flag.toml", oneBook)
	configPath := filepath.Join(dir, "missing.toml")

	seed, _, err := loadSeed(flagPath, configPath)
	if err != nil {
		t.Fatalf("loadSeed returned error: %v", err)
	}
	if len(seed) != 1 {
		t.Fatalf("seed has %d books, want 1", len(seed))
	}
}

func TestLoadSeed_MissingFileFails(t *testing.T) {
	_, _, err := loadSeed(filepath.Join(t.TempDir(), "nope.toml"), "")
	if err == nil {
		t.Fatal("loadSeed returned nil error for a missing file")
	}
	if !strings.Contains(err.Error(), "load seed") {
		t.Fatalf("error = %q, want it to mention load seed", err)
	}
}
