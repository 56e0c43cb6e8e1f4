// Package startup handles command line parsing and build metadata for the
// playlist-gen binary.
package startup
