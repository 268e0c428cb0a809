// Package core is the application engine: the bubbletea model, tab and
// screen routing, scoped key bindings, and the command registry.
//
// core knows nothing about individual tabs beyond the Tab interface;
// tab implementations live in the app package and are injected at
// construction time.
package core
