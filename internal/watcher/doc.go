// Package watcher keeps a generated playlist in sync with its source trees.
//
// It watches every directory under the playlist's sources with fsnotify and
// reruns generation after a debounced batch of changes. The watch list is
// refreshed after each regeneration so newly created subdirectories are
// picked up.
package watcher
