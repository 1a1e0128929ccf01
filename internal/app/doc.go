// Package app implements the ingestion pipeline orchestrator.
//
// The Service wires the cleaner, scorer, and history buffer into a single
// Ingest path, seeds the startup corpus, and exposes read-only snapshots
// and summary stats to external presentation layers.
package app
