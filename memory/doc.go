// Package memory implements the per-user state the agent accumulates
// across turns: a bounded rolling buffer of conversational messages
// (Conversation) and a bag of semantic facts about the user
// (UserContext).
//
// Both types are plain in-memory structures without internal locking;
// the session registry serializes access per user id.
package memory
