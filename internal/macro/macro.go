package macro

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Rule is one find/replace step. With Regex set, Find is compiled as a
// regular expression and Replace may use $1-style group references.
type Rule struct {
	Find    string `toml:"find"`
	Replace string `toml:"replace"`
	Regex   bool   `toml:"regex"`

	compiled *regexp.Regexp
}

// Macro is a named sequence of rules applied to segment text in order.
type Macro struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Rules       []Rule `toml:"rules"`
}

type macroFile struct {
	Macros []Macro `toml:"macros"`
}

func (m *Macro) validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("macro with empty name")
	}
	if len(m.Rules) == 0 {
		return fmt.Errorf("macro %q has no rules", m.Name)
	}
	for i := range m.Rules {
		r := &m.Rules[i]
		if r.Find == "" {
			return fmt.Errorf("macro %q rule %d has empty find", m.Name, i+1)
		}
		if r.Regex {
			re, err := regexp.Compile(r.Find)
			if err != nil {
				return fmt.Errorf("macro %q rule %d: %w", m.Name, i+1, err)
			}
			r.compiled = re
		}
	}
	return nil
}

// Apply runs every rule over text and reports the result plus how many
// rules changed something.
func (m *Macro) Apply(text string) (string, int) {
	changed := 0
	for i := range m.Rules {
		r := &m.Rules[i]
		var next string
		if r.Regex {
			if r.compiled == nil {
				r.compiled = regexp.MustCompile(r.Find)
			}
			next = r.compiled.ReplaceAllString(text, r.Replace)
		} else {
			next = strings.ReplaceAll(text, r.Find, r.Replace)
		}
		if next != text {
			changed++
		}
		text = next
	}
	return strings.TrimSpace(text), changed
}

// DryRun applies the macro without committing, returning before/after
// pairs only for texts that would change.
func (m *Macro) DryRun(texts []string) [][2]string {
	var out [][2]string
	for _, t := range texts {
		after, n := m.Apply(t)
		if n > 0 && after != t {
			out = append(out, [2]string{t, after})
		}
	}
	return out
}

func parseMacros(data []byte) ([]Macro, error) {
	var f macroFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing macros: %w", err)
	}
	seen := map[string]bool{}
	for i := range f.Macros {
		if err := f.Macros[i].validate(); err != nil {
			return nil, err
		}
		name := f.Macros[i].Name
		if seen[name] {
			return nil, fmt.Errorf("duplicate macro %q", name)
		}
		seen[name] = true
	}
	return f.Macros, nil
}

// Load reads macros from path, writing the default set there first if
// the file does not exist.
func Load(path string) ([]Macro, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating macro dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultMacrosTOML), 0o644); err != nil {
			return nil, fmt.Errorf("writing default macros: %w", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading macros: %w", err)
	}
	return parseMacros(data)
}

const defaultMacrosTOML = `# Text cleanup macros, applied per segment.

[[macros]]
name = "strip-fillers"
description = "Remove um/uh/you know fillers"

[[macros.rules]]
find = '(?i)\b(um|uh|erm)\b[,.]?\s*'
replace = ""
regex = true

[[macros.rules]]
find = '(?i),?\s*you know,?\s*'
replace = " "
regex = true

[[macros]]
name = "tidy-whitespace"
description = "Collapse runs of spaces and fix space before punctuation"

[[macros.rules]]
find = '\s{2,}'
replace = " "
regex = true

[[macros.rules]]
find = '\s+([,.!?;:])'
replace = "$1"
regex = true

[[macros]]
name = "spell-out-okay"
description = "Normalise ok/OK to okay"

[[macros.rules]]
find = '\b[oO][kK]\b'
replace = "okay"
regex = true
`
