// Package renderer provides the display layer for gridview.
//
// The renderer is responsible for:
//   - Collecting table lines, which already carry their highlight markup
//   - Collecting status footer lines
//   - Skipping redraws when nothing visible changed
//   - Backend abstraction for terminal output
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├─────────────────────────────────────────┤
//	│  TableSource       │  FooterSource      │
//	│  (table.Table)     │  (statusline)      │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell)  │  ANSI (raw stdout) │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b)
//	r.SetTable(tbl)
//	r.SetFooter(status)
//	r.Render()
package renderer
