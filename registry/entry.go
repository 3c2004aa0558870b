// File: entry.go
// Title: Registry Entry Model
// Description: Defines the recursive entry model of the command registry:
//              an Entry is either a Leaf holding an opaque command reference
//              or a Group mapping names to further entries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-08-24
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation

package registry

import (
	"github.com/msto63/cmdreg/utils/mapx"
)

// CommandRef is an opaque handle to a registered command handler. It is
// supplied by the caller, stored verbatim, and never inspected by the
// registry.
type CommandRef interface{}

// Entry is a single value in the registry: either a Leaf or a Group.
type Entry interface {
	// IsEmpty reports whether the entry contains no commands. A Leaf is
	// never empty; a Group is empty when every child is empty, so a group
	// of empty subgroups counts as empty itself.
	IsEmpty() bool

	// isEntry restricts implementations to this package's Leaf and Group.
	isEntry()
}

// Leaf is a terminal entry holding a command reference.
type Leaf struct {
	Ref CommandRef
}

func (Leaf) isEntry() {}

// IsEmpty always returns false: a lone command is never prunable.
func (Leaf) IsEmpty() bool {
	return false
}

// Group is a named collection of entries, nested to unbounded depth.
type Group map[string]Entry

func (Group) isEntry() {}

// IsEmpty reports whether the group contains no commands at any depth.
func (g Group) IsEmpty() bool {
	for _, child := range g {
		if !child.IsEmpty() {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of the group. Children are shared; the
// registry never mutates committed entries in place, so sharing is safe.
func (g Group) Clone() Group {
	return Group(mapx.Clone(g))
}

// Names returns the child names of the group in ascending order.
func (g Group) Names() []string {
	return mapx.SortedKeys(g)
}
