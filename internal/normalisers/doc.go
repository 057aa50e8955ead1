// Package normalisers provides the markup strippers applied before
// character extraction. Each normaliser handles a single parse mode.
//
// Normalisers are registered with the Registry at startup; asking the
// registry for an unknown mode is a configuration error.
package normalisers
