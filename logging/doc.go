// Package logging provides a small abstraction over slog so the agent
// core can depend on a minimal Logger interface while callers plug in
// any structured logger. NoOpLogger keeps tests quiet.
package logging
