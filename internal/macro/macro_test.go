package macro

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	macros, err := parseMacros([]byte(defaultMacrosTOML))
	if err != nil {
		t.Fatalf("default macros invalid: %v", err)
	}
	if len(macros) != 3 {
		t.Fatalf("got %d default macros, want 3", len(macros))
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{"empty name", "[[macros]]\nname = \"\"\n[[macros.rules]]\nfind = \"x\"\nreplace = \"y\"\n"},
		{"no rules", "[[macros]]\nname = \"m\"\n"},
		{"empty find", "[[macros]]\nname = \"m\"\n[[macros.rules]]\nfind = \"\"\nreplace = \"y\"\n"},
		{"bad regex", "[[macros]]\nname = \"m\"\n[[macros.rules]]\nfind = \"([\"\nreplace = \"\"\nregex = true\n"},
		{"duplicate", "[[macros]]\nname = \"m\"\n[[macros.rules]]\nfind = \"x\"\n\n[[macros]]\nname = \"m\"\n[[macros.rules]]\nfind = \"y\"\n"},
	}
	for _, tc := range cases {
		if _, err := parseMacros([]byte(tc.toml)); err == nil {
			t.Errorf("%s: expected parse error", tc.name)
		}
	}
}

func TestApplyStripFillers(t *testing.T) {
	macros, err := parseMacros([]byte(defaultMacrosTOML))
	if err != nil {
		t.Fatal(err)
	}
	strip := macros[0]
	got, changed := strip.Apply("Um, I think, you know, the mix is fine.")
	if changed == 0 {
		t.Fatal("no rules reported a change")
	}
	if got != "I think the mix is fine." {
		t.Fatalf("got %q", got)
	}
	// Idempotent on already-clean text.
	clean, changed := strip.Apply("The mix is fine.")
	if changed != 0 || clean != "The mix is fine." {
		t.Fatalf("clean text altered: %q (changed=%d)", clean, changed)
	}
}

func TestApplyTidyWhitespace(t *testing.T) {
	macros, _ := parseMacros([]byte(defaultMacrosTOML))
	tidy := macros[1]
	got, _ := tidy.Apply("too   many  spaces , and a gap .")
	if got != "too many spaces, and a gap." {
		t.Fatalf("got %q", got)
	}
}

func TestDryRunReportsOnlyChanges(t *testing.T) {
	macros, _ := parseMacros([]byte(defaultMacrosTOML))
	strip := macros[0]
	pairs := strip.DryRun([]string{"Um, hello.", "Nothing to do here."})
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0][0] != "Um, hello." || pairs[0][1] != "hello." {
		t.Fatalf("unexpected pair %v", pairs[0])
	}
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "macros.toml")
	macros, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(macros) != 3 {
		t.Fatalf("got %d macros, want 3", len(macros))
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default file not written: %v", err)
	}
	// Second load reads the written file.
	again, err := Load(path)
	if err != nil || len(again) != 3 {
		t.Fatalf("reload: %v (%d macros)", err, len(again))
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.toml")
	if err := os.WriteFile(path, []byte("macros = 12"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for broken file")
	}
}
