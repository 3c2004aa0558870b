// File: walk.go
// Title: Registry Traversal
// Description: Depth-first traversal over the nested group structure of a
//              command table, and the flattened dotted-path enumeration of
//              every registered command.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-08-24
//
// Change History:
// - 2026-07-12 v0.1.0: Initial implementation

package registry

import (
	"sort"
)

// WalkFunc visits one registered command with its full path, top-level
// name first. The path slice is reused between calls; callers keeping it
// must copy.
type WalkFunc func(path []string, ref CommandRef)

// Walk visits every command in the table depth-first. Children are
// visited in ascending name order so traversal is deterministic. The
// walk operates on a snapshot; writers racing the walk are reflected for
// some top-level names and not others.
func Walk(t *Table, fn WalkFunc) {
	if t == nil || fn == nil {
		return
	}

	snapshot := t.Snapshot()
	for _, name := range sortedNames(snapshot) {
		walkEntry([]string{name}, snapshot[name], fn)
	}
}

// walkEntry recurses into one entry, extending the path prefix.
func walkEntry(prefix []string, entry Entry, fn WalkFunc) {
	switch e := entry.(type) {
	case Leaf:
		fn(prefix, e.Ref)
	case Group:
		for _, name := range e.Names() {
			walkEntry(append(prefix, name), e[name], fn)
		}
	}
}

// Paths returns the dotted path of every registered command, in
// ascending order.
func Paths(t *Table) []string {
	var paths []string
	Walk(t, func(path []string, _ CommandRef) {
		paths = append(paths, JoinPath(path))
	})
	sort.Strings(paths)
	return paths
}

// sortedNames returns the snapshot's top-level names in ascending order.
func sortedNames(snapshot map[string]Entry) []string {
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
