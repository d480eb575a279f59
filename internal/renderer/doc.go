// Package renderer draws the calculator screen: header, display line,
// button grid, history pane, and status footer. It owns no calculator
// state; callers hand it a state snapshot (or it pulls one when a bus
// event arrives) and it repaints the backend.
package renderer
