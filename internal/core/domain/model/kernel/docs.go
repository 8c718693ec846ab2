// Package kernel provides the domain primitives shared by the order and user
// aggregates.
//
// The package includes:
//   - ID: a positive, store-generated identifier with validation and parsing
//
// Primitives are immutable values and safe for concurrent use.
package kernel
