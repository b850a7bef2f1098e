// Package config provides the configuration system for gridview.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by cmd)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← GRIDVIEW_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/gridview/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: TOML file and environment variable loading, map merging
//
// # Basic Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	markers, _ := cfg.Markers()
//	km, _ := cfg.Keymap()
//
// # File Format
//
//	[ui]
//	highlight = "green"      # color name, "#rrggbb", or SGR params like "1;32"
//	backend = "tcell"        # tcell or ansi
//	showHelp = true
//
//	[keys]
//	up = ["k", "up"]         # replaces the default keys for the action
//	quit = ["q", "esc"]
//
//	[source]
//	path = "grid.csv"
//	watch = false
//	debounceMs = 200
//	formatScript = ""
//
//	[logging]
//	level = "info"
//	file = ""                # logging is off without a file
package config
