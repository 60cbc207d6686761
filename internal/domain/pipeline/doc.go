// Package pipeline derives the sales pipeline from quotes and invoices.
//
// Every function in this package is pure: inputs are never mutated and the
// same inputs always produce the same output, so callers may invoke them on
// every request without coordination.
package pipeline
