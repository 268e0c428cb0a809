// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, popup overlay compositor)
// - the split view's geometry/drag state, which is pure cell arithmetic
//
// Not allowed here:
// - key handling, app state transitions, scope logic, or tab policy
package widgets
