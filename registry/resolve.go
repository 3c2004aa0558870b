// File: resolve.go
// Title: Path Resolver and Mutator
// Description: Pure recursive algorithms over a single top-level entry:
//              inserting a command at a nested path (creating intermediate
//              groups on demand), removing a nested path with recursive
//              pruning of emptied groups, and the leaf-collision rule that
//              protects terminal commands from being traversed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-08-24
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation

package registry

import (
	regerror "github.com/msto63/cmdreg/core/error"
	"github.com/msto63/cmdreg/utils/mapx"
)

// insertEntry inserts ref at path inside existing and returns the updated
// group. existing is the current value below one top-level key, or nil when
// the key is absent. The input is never mutated: the result is a fresh value
// the caller commits with a single table write, so a failed insert leaves
// no partial structure behind.
//
// Missing intermediate groups are created. If any path segment resolves to
// a Leaf before the final segment, the insert fails with a leaf-collision
// error and nothing is returned.
func insertEntry(existing Entry, path []string, ref CommandRef) (Group, error) {
	base := Group{}
	switch e := existing.(type) {
	case nil:
	case Group:
		base = e
	case Leaf:
		return nil, leafCollisionError(path)
	}

	head, rest := path[0], path[1:]

	if len(rest) == 0 {
		return Group(mapx.Merge(base, Group{head: Leaf{Ref: ref}})), nil
	}

	child := base[head]
	if _, ok := child.(Leaf); ok {
		return nil, leafCollisionError(path)
	}

	sub, err := insertEntry(child, rest, ref)
	if err != nil {
		return nil, err
	}

	updated := base.Clone()
	updated[head] = sub
	return updated, nil
}

// removeEntry removes path from existing and returns the updated entry.
// The second result reports whether the entry is now empty and its
// top-level key should be deleted instead of written back.
//
// A path that does not exist at any level is a no-op: the entry is returned
// unchanged. Descending through a Leaf while path segments remain is a
// leaf-collision error; the input is never mutated.
func removeEntry(existing Entry, path []string) (Entry, bool, error) {
	switch existing.(type) {
	case nil:
		return nil, false, nil
	case Leaf:
		return nil, false, leafCollisionError(path)
	}
	g := existing.(Group)

	head, rest := path[0], path[1:]

	updated := g.Clone()
	if len(rest) == 0 {
		if _, ok := updated[head]; !ok {
			return g, false, nil
		}
		delete(updated, head)
	} else {
		child, ok := updated[head]
		if !ok {
			return g, false, nil
		}
		if _, isLeaf := child.(Leaf); isLeaf {
			return nil, false, leafCollisionError(path)
		}

		sub, subEmpty, err := removeEntry(child, rest)
		if err != nil {
			return nil, false, err
		}
		if subEmpty {
			delete(updated, head)
		} else {
			updated[head] = sub
		}
	}

	// Keep only children that still contain commands.
	kept := Group(mapx.Filter(updated, func(_ string, e Entry) bool {
		return !e.IsEmpty()
	}))
	if len(kept) == 0 {
		return nil, true, nil
	}
	return kept, false, nil
}

// leafCollisionError reports an attempt to traverse through a terminal
// command. path is the remaining subpath at the point of the collision;
// the table operations wrap this with the blocking top-level name.
func leafCollisionError(path []string) *regerror.Error {
	return regerror.New("existing command blocks subcommand path").
		WithCode(regerror.CodeLeafCollision).
		WithSeverity(regerror.SeverityMedium).
		WithDetail("subpath", JoinPath(path))
}
