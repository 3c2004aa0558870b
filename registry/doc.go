// Package registry implements a hierarchical, name-addressed registry for
// command handlers.
//
// Package: registry
// Title: cmdreg Hierarchical Command Registry
// Description: Commands are registered under segmented paths such as
//              ["mod", "ban"]. The first segment addresses a top-level entry
//              in a concurrent table; deeper segments resolve inside that
//              entry's recursive group structure. Intermediate groups are
//              created on demand during registration and pruned automatically
//              when removal empties them. Handlers are opaque references: the
//              registry stores them verbatim and never inspects, validates,
//              or invokes them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-08-24
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation
//
// # Data model
//
// An Entry is either a Leaf (an opaque CommandRef) or a Group (a map from
// name to Entry, nested to unbounded depth). A top-level name maps to exactly
// one Entry. Committed groups are never empty: removing the last command
// below a group removes the group itself, and emptying a top-level entry
// deletes its table key.
//
// Leaves are terminal. Registering a subcommand below an existing leaf fails
// with a leaf-collision error and leaves the table untouched. Removing a path
// that does not exist is a benign no-op, not an error.
//
// # Concurrency
//
// The table is backed by sync.Map: reads are lock-free and writes to distinct
// top-level keys proceed independently. Multi-segment updates perform an
// uncoordinated read-modify-write of one top-level entry. Two writers racing
// on subpaths of the same top-level name can lose one of the two updates
// (last write wins). This is a deliberate weak-consistency tradeoff; callers
// that need serialized updates under a single top-level name must coordinate
// externally.
//
// # Usage
//
//   owner, err := registry.Start("commands", registry.DefaultOptions())
//   if err != nil { ... }
//   defer owner.Stop()
//
//   table := owner.TableHandle()
//   _ = registry.Add(table, []string{"mod", "ban"}, banHandler)
//   entry, ok := registry.Lookup(table, "mod")
//   all := registry.All(table)
//   _ = registry.Remove(table, []string{"mod", "ban"})
package registry
