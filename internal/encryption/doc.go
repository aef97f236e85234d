// Package encryption seals and opens files as capsules.
// Files are processed concurrently and written atomically next to their inputs.
package encryption
