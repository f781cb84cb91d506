// Package task loads multiple-choice question tasks from disk and writes
// prediction results. Files are JSON; loaded tasks are validated before
// being returned.
package task
