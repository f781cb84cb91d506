// Package batch runs a solver over many tasks concurrently using a
// bounded worker pool. Each task succeeds or fails independently; the
// runner collects per-task outcomes rather than aborting on first error.
package batch
