// Package core contains the shared value types exchanged between the
// conversational components: role-tagged messages and the roles the
// model collaborator understands. Higher layers (memory, model, agent)
// depend on core; core depends on nothing but the standard library.
package core
