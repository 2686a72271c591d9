// Package reindex provides batch re-indexing of stored notes, the manual
// re-trigger for notes whose background indexing run failed. It combines a
// batch iterator over the note repository, per-note retry with exponential
// backoff, and progress reporting to a configurable writer.
package reindex
