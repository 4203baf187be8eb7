package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

const testDataJSON = `{
  "cards": [
    {"id": 1, "title": "The Hermit", "description": "A lantern in the dark."},
    {"id": 2, "title": "The Tower", "description": "Everything falls."},
    {"id": 3, "title": "The Moon", "description": "Not all is as it seems."},
    {"id": 4, "title": "The Sun", "description": "Plain daylight."}
  ],
  "ui_text": {"identify_prompt": "Identify your card."}
}`

func writeTestData(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(testDataJSON), 0o644); err != nil {
		t.Fatalf("write data fixture: %v", err)
	}
	return path
}

func runCmd(t *testing.T, args ...string) (map[string]any, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	var env map[string]any
	if out.Len() > 0 {
		if jerr := json.Unmarshal(out.Bytes(), &env); jerr != nil {
			t.Fatalf("unmarshal stdout as json: %v\nstdout:\n%s", jerr, out.String())
		}
	}
	return env, errOut.String(), err
}

func mustRun(t *testing.T, args ...string) map[string]any {
	t.Helper()
	env, stderr, err := runCmd(t, args...)
	if err != nil {
		t.Fatalf("command failed: grimoire %v\nerr: %v\nstderr:\n%s", args, err, stderr)
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected JSON envelope with data key, got: %v", env)
	}
	return env
}

func dataMap(t *testing.T, env map[string]any) map[string]any {
	t.Helper()
	m, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %#v", env["data"])
	}
	return m
}

func dataList(t *testing.T, env map[string]any) []any {
	t.Helper()
	l, ok := env["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %#v", env["data"])
	}
	return l
}

func TestCLI_RevealLifecycle(t *testing.T) {
	t.Setenv("GRIMOIRE_CONFIG_DIR", t.TempDir())
	dataPath := writeTestData(t)

	cards := dataList(t, mustRun(t, "--data", dataPath, "cards", "list"))
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(cards))
	}
	for _, c := range cards {
		if c.(map[string]any)["seen"].(bool) {
			t.Fatalf("fresh deck must have no seen cards: %v", c)
		}
	}

	rev := dataMap(t, mustRun(t, "--data", dataPath, "reveal", "2"))
	if rev["alreadySeen"].(bool) {
		t.Fatalf("first reveal must not be alreadySeen")
	}
	if rev["seen"].(float64) != 1 {
		t.Fatalf("expected seen=1 after one reveal, got %v", rev["seen"])
	}

	// Repeat reveals do not double count.
	rev = dataMap(t, mustRun(t, "--data", dataPath, "reveal", "2"))
	if !rev["alreadySeen"].(bool) || rev["seen"].(float64) != 1 {
		t.Fatalf("expected idempotent repeat reveal, got %v", rev)
	}

	all := dataMap(t, mustRun(t, "--data", dataPath, "reveal", "--all"))
	if all["seen"].(float64) != all["total"].(float64) {
		t.Fatalf("expected full deck revealed, got %v", all)
	}

	prog := dataMap(t, mustRun(t, "--data", dataPath, "progress", "--history"))
	if prog["seen"].(float64) != 4 {
		t.Fatalf("expected progress seen=4, got %v", prog["seen"])
	}
	hist, ok := prog["history"].([]any)
	if !ok || len(hist) == 0 {
		t.Fatalf("expected non-empty reveal history, got %#v", prog["history"])
	}

	// Sealing requires the explicit confirmation flag.
	if _, _, err := runCmd(t, "--data", dataPath, "seal"); err == nil {
		t.Fatalf("expected seal without --all to fail")
	}
	sealed := dataMap(t, mustRun(t, "--data", dataPath, "seal", "--all"))
	if sealed["seen"].(float64) != 0 {
		t.Fatalf("expected empty seen set after sealing, got %v", sealed)
	}
	prog = dataMap(t, mustRun(t, "--data", dataPath, "progress", "--history"))
	if hist, _ := prog["history"].([]any); len(hist) != 0 {
		t.Fatalf("expected history cleared by sealing, got %#v", prog["history"])
	}
}

func TestCLI_CardsShowAndSearch(t *testing.T) {
	t.Setenv("GRIMOIRE_CONFIG_DIR", t.TempDir())
	dataPath := writeTestData(t)

	card := dataMap(t, mustRun(t, "--data", dataPath, "cards", "show", "3"))
	if card["title"].(string) != "The Moon" {
		t.Fatalf("expected The Moon, got %v", card["title"])
	}
	if card["description"].(string) == "" {
		t.Fatalf("expected full description in show output")
	}

	if _, _, err := runCmd(t, "--data", dataPath, "cards", "show", "99"); err == nil {
		t.Fatalf("expected error for unknown card id")
	}
	if _, _, err := runCmd(t, "--data", dataPath, "cards", "show", "nope"); err == nil {
		t.Fatalf("expected error for non-numeric card id")
	}

	found := dataList(t, mustRun(t, "--data", dataPath, "cards", "search", "moon"))
	if len(found) != 1 || found[0].(map[string]any)["title"].(string) != "The Moon" {
		t.Fatalf("expected fuzzy search to find The Moon, got %#v", found)
	}
}

func TestCLI_SettingsShowAndReset(t *testing.T) {
	t.Setenv("GRIMOIRE_CONFIG_DIR", t.TempDir())
	dataPath := writeTestData(t)

	mustRun(t, "--data", dataPath, "reveal", "1")

	s := dataMap(t, mustRun(t, "settings", "show"))
	if s["themeColor"].(string) == "" {
		t.Fatalf("expected a theme color in settings, got %v", s)
	}
	if seen, _ := s["seenCards"].([]any); len(seen) != 1 {
		t.Fatalf("expected one seen card in settings, got %#v", s["seenCards"])
	}

	def := dataMap(t, mustRun(t, "settings", "reset"))
	if seen, _ := def["seenCards"].([]any); len(seen) != 0 {
		t.Fatalf("expected reset to clear seen cards, got %#v", def["seenCards"])
	}

	s = dataMap(t, mustRun(t, "settings", "show"))
	if seen, _ := s["seenCards"].([]any); len(seen) != 0 {
		t.Fatalf("expected cleared settings persisted, got %#v", s["seenCards"])
	}
}

func TestCLI_DataErrorsSurface(t *testing.T) {
	t.Setenv("GRIMOIRE_CONFIG_DIR", t.TempDir())

	_, stderr, err := runCmd(t, "--data", filepath.Join(t.TempDir(), "missing.json"), "cards", "list")
	if err == nil {
		t.Fatalf("expected missing data document to fail")
	}
	if stderr == "" {
		t.Fatalf("expected the error on stderr")
	}
}
