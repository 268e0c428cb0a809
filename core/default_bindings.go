package core

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "timeline", Scopes: []string{"*"}},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "transcript", Scopes: []string{"*"}},
		{Keys: []string{"3"}, Action: "switch-tab-3", Description: "macros", Scopes: []string{"*"}},
		{Keys: []string{"4"}, Action: "switch-tab-4", Description: "export", Scopes: []string{"*"}},
		{Keys: []string{"5"}, Action: "switch-tab-5", Description: "settings", Scopes: []string{"*"}},

		{Keys: []string{"j", "down"}, Action: "row-down", Description: "next segment", Scopes: []string{"tab:transcript", "tab:macros"}},
		{Keys: []string{"k", "up"}, Action: "row-up", Description: "prev segment", Scopes: []string{"tab:transcript", "tab:macros"}},
		{Keys: []string{"enter"}, Action: "edit", Description: "edit text", Scopes: []string{"tab:transcript"}},
		{Keys: []string{"s"}, Action: "cycle-speaker", Description: "speaker", Scopes: []string{"tab:transcript"}},
		{Keys: []string{"r"}, Action: "regenerate", Description: "regen voice", Scopes: []string{"tab:transcript"}},
		{Keys: []string{"="}, Action: "split-reset", Description: "reset split", Scopes: []string{"tab:transcript"}},
		{Keys: []string{"["}, Action: "collapse-left", Description: "collapse list", Scopes: []string{"tab:transcript"}},
		{Keys: []string{"]"}, Action: "collapse-right", Description: "collapse detail", Scopes: []string{"tab:transcript"}},
		{Keys: []string{"H", "shift+left"}, Action: "split-narrow", Description: "narrow list", Scopes: []string{"tab:transcript"}},
		{Keys: []string{"L", "shift+right"}, Action: "split-widen", Description: "widen list", Scopes: []string{"tab:transcript"}},

		{Keys: []string{"h", "left"}, Action: "seek-back", Description: "seek -5s", Scopes: []string{"tab:timeline"}},
		{Keys: []string{"l", "right"}, Action: "seek-fwd", Description: "seek +5s", Scopes: []string{"tab:timeline"}},
		{Keys: []string{" "}, Action: "play-pause", Description: "play/pause", Scopes: []string{"tab:timeline"}},
		{Keys: []string{"g"}, Action: "seek-start", Description: "to start", Scopes: []string{"tab:timeline"}},
		{Keys: []string{"G"}, Action: "seek-end", Description: "to end", Scopes: []string{"tab:timeline"}},

		{Keys: []string{"enter"}, Action: "apply-macro", Description: "apply", Scopes: []string{"tab:macros"}},
		{Keys: []string{"enter"}, Action: "start-export", Description: "run export", Scopes: []string{"tab:export"}},
		{Keys: []string{"f"}, Action: "cycle-format", Description: "format", Scopes: []string{"tab:export"}},
		{Keys: []string{"t"}, Action: "toggle-timestamps", Description: "timestamps", Scopes: []string{"tab:export"}},
		{Keys: []string{"n"}, Action: "toggle-speakers", Description: "speakers", Scopes: []string{"tab:export"}},

		{Keys: []string{"f"}, Action: "cycle-format", Description: "default format", Scopes: []string{"tab:settings"}},
		{Keys: []string{"t"}, Action: "toggle-timestamps", Description: "timestamps", Scopes: []string{"tab:settings"}},
		{Keys: []string{"n"}, Action: "toggle-speakers", Description: "speakers", Scopes: []string{"tab:settings"}},
		{Keys: []string{"+"}, Action: "confidence-up", Description: "raise conf bar", Scopes: []string{"tab:settings"}},
		{Keys: []string{"-"}, Action: "confidence-down", Description: "lower conf bar", Scopes: []string{"tab:settings"}},

		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:command"}},
	}
}
