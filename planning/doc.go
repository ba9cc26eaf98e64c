// Package planning contains the stateless policy layer of the agent:
// response-style selection, tool selection, lexical information
// extraction (decision.go) and advisory conversation planning
// (planner.go).
//
// Everything here is deliberately plain keyword and substring matching
// over fixed ordered tables. The match priorities are observable
// behavior relied on by the orchestrator and its tests; do not replace
// them with fuzzier text analysis.
package planning
