// Package cli provides the interactive datekeeper command-line client.
//
// It wires configuration, the selected storage backend, and the AI date-guide
// client into an interactive REPL. Typical flow: onboard a profile, add a
// partner, walk the planner steps (phase, experiences, start time), then
// generate and browse venue recommendations.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
