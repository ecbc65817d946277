package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docdistance/internal/domain"
)

func writeCorpus(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	world := filepath.Join(dir, "hello_world.txt")
	friends := filepath.Join(dir, "hello_friends.txt")
	for path, text := range map[string]string{
		world:   "Hello, world!",
		friends: "Hello friends.",
	} {
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := filepath.Join(dir, "docdistance.yaml")
	if err := os.WriteFile(cfg, []byte("log:\n  level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfg, world, friends
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWordsCommand(t *testing.T) {
	cfg, _, _ := writeCorpus(t)
	out, err := run(t, "--config", cfg, "words", "toes", "that")
	if err != nil {
		t.Fatalf("words error = %v", err)
	}
	for _, want := range []string{"toes: {e:1 o:1 s:1 t:1}", "that: {a:1 h:1 t:2}", "similarity: 0.25", "most frequent: t"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWordsCommandDegenerate(t *testing.T) {
	cfg, _, _ := writeCorpus(t)
	_, err := run(t, "--config", cfg, "words", "", "")
	if !errors.Is(err, domain.ErrDegenerateInput) {
		t.Errorf("words error = %v, want ErrDegenerateInput", err)
	}
}

func TestCompareCommand(t *testing.T) {
	cfg, world, friends := writeCorpus(t)
	out, err := run(t, "--config", cfg, "compare", world, friends)
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}
	for _, want := range []string{"{hello:1 world:1}", "{friends:1 hello:1}", "similarity: 0.50", "most frequent: hello"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCompareCommandAnyNamedFile(t *testing.T) {
	cfg, world, _ := writeCorpus(t)
	other := filepath.Join(t.TempDir(), "friends.csv")
	if err := os.WriteFile(other, []byte("hello friends"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "--config", cfg, "compare", world, other)
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}
	if !strings.Contains(out, "similarity: 0.50") {
		t.Errorf("compare output:\n%s", out)
	}
}

func TestTFIDFCommand(t *testing.T) {
	cfg, world, friends := writeCorpus(t)
	out, err := run(t, "--config", cfg, "tfidf", world, friends)
	if err != nil {
		t.Fatalf("tfidf error = %v", err)
	}
	hello := strings.Index(out, "hello")
	worldIdx := strings.Index(out, "world")
	if hello < 0 || worldIdx < 0 || hello > worldIdx {
		t.Errorf("tfidf order wrong:\n%s", out)
	}
	if !strings.Contains(out, "0.1505") || !strings.Contains(out, "0.0000") {
		t.Errorf("tfidf scores missing:\n%s", out)
	}
	if strings.Contains(out, "friends") {
		t.Errorf("tfidf listed a term outside the target:\n%s", out)
	}
}

func TestTFAndIDFCommands(t *testing.T) {
	cfg, world, friends := writeCorpus(t)

	out, err := run(t, "--config", cfg, "tf", world)
	if err != nil {
		t.Fatalf("tf error = %v", err)
	}
	if strings.Count(out, "0.5000") != 2 {
		t.Errorf("tf output:\n%s", out)
	}

	out, err = run(t, "--config", cfg, "idf", world, friends)
	if err != nil {
		t.Fatalf("idf error = %v", err)
	}
	if strings.Count(out, "0.3010") != 2 || !strings.Contains(out, "0.0000") {
		t.Errorf("idf output:\n%s", out)
	}
}

func TestNearestCommand(t *testing.T) {
	cfg, world, friends := writeCorpus(t)
	out, err := run(t, "--config", cfg, "nearest", world, friends, "--top", "1")
	if err != nil {
		t.Fatalf("nearest error = %v", err)
	}
	if !strings.Contains(out, friends) || !strings.Contains(out, "0.50") {
		t.Errorf("nearest output:\n%s", out)
	}
}

func TestExploreRequiresTerminal(t *testing.T) {
	cfg, world, _ := writeCorpus(t)
	if _, err := run(t, "--config", cfg, "explore", world); err == nil {
		t.Error("explore error = nil, want terminal error")
	}
}

func TestMissingFile(t *testing.T) {
	cfg, _, _ := writeCorpus(t)
	if _, err := run(t, "--config", cfg, "tf", filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("tf on missing file error = nil")
	}
}
