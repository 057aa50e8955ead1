// Package domain defines the core business entities for quotient.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawContent: Opaque bytes returned by a fetcher
//   - Mode: How markup is treated before extraction
//   - Sequence: An ordered run of single ASCII characters
//   - ChunkResult: Fixed-size chunks (quotient) plus a remainder
//   - Report: Everything produced by one pipeline run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
