// Package domain defines the core domain types and interfaces.
//
// This package contains the review model (raw, cleaned, scored) and the
// cross-cutting interfaces implemented elsewhere. No implementation code -
// just contracts. Prevents circular imports by keeping interfaces on the
// consumer side.
package domain
