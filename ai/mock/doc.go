// Package mock provides test doubles for the ai interfaces.
//
// Each mock has overridable function fields and records call counts, so
// tests can inject failures and assert interaction patterns without an
// external model server. Default behaviors are deterministic: summaries
// echo a bounded prefix of the chunk, compression returns the first half
// of the context, and answers are always "A".
package mock
