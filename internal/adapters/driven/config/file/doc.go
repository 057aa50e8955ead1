// Package file provides the file-based ConfigStore.
//
// Settings live in a TOML file (config.toml) inside the quotient config
// directory. Nested tables are flattened to dot-notation keys on load, so
// [fetch] max_retries = 5 is read back as "fetch.max_retries".
package file
