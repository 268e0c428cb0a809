package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// Search returns commands visible in scope matching query, enabled first,
// then by edit distance of the query against the command name, then name.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	type ranked struct {
		CommandResult
		dist int
	}
	results := make([]ranked, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		haystack := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
		if q != "" && !strings.Contains(haystack, q) {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		dist := 0
		if q != "" {
			dist = levenshtein.ComputeDistance(q, strings.ToLower(c.Name))
		}
		results = append(results, ranked{
			CommandResult: CommandResult{
				CommandID: c.ID,
				Name:      c.Name,
				Desc:      c.Description,
				Disabled:  disabled,
				Reason:    reason,
			},
			dist: dist,
		})
	}
	slices.SortFunc(results, func(a, b ranked) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		if a.dist != b.dist {
			return cmp.Compare(a.dist, b.dist)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	out := make([]CommandResult, len(results))
	for i, r := range results {
		out[i] = r.CommandResult
	}
	return out
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
