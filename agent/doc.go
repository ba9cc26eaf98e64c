// Package agent implements the conversational orchestrator. Process
// turns one raw user message into a model request: it resolves the
// user's session, extracts and merges context facts, consults the
// planning policies, optionally runs a catalog tool, assembles the
// system prompt and bounded history, and post-processes the reply.
//
// Process never fails from the caller's point of view. Any collaborator
// error or internal panic degrades to a deterministic fallback reply.
package agent
