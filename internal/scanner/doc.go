// Package scanner discovers audio files in directory trees.
//
// It walks each source directory recursively, filters entries through the
// mediatypes classifier, and returns matching paths in a deterministic
// (lexical) order. Hidden files and directories are skipped.
package scanner
