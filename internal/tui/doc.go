// Package tui implements the launcher's terminal UI.
//
// The UI has two panes. The participants pane lists the roster with an
// active/total counter and edits it in place. The visualizations pane shows
// the discovered visualizations as cards and launches the selected one. Every
// call goes through [service.Launcher], so the UI never touches the store or
// the visualizations folder.
//
// Mutations are never applied optimistically: once the host confirms a call
// the affected list is fetched again. Text coming from participants and
// manifests is sanitized before it is drawn.
package tui
