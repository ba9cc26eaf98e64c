// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing context summaries and seeded
// conversations. These helpers are intentionally minimal and are not
// intended for production usage.
package testutil
