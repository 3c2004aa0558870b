// File: registry.go
// Title: Registry Table Operations
// Description: Implements the command operations against a table handle:
//              add with nested insertion, remove with recursive pruning,
//              top-level lookup, and snapshot enumeration. Also provides
//              the TableStorage behaviour implementation that defaults to
//              the well-known global table.
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
	"github.com/msto63/cmdreg/core/log"
)

// Add registers ref under path in the table.
//
// A single-segment path overwrites the top-level entry unconditionally,
// replacing a prior command or an entire prior group subtree under that
// name. A multi-segment path reads the current top-level entry, inserts
// into its group structure (creating missing intermediate groups), and
// commits the result with one write. The read and the write are not
// coordinated: concurrent multi-segment writers under the same top-level
// name follow last-write-wins semantics.
//
// Descending through an existing terminal command fails with a
// leaf-collision error and leaves the table unchanged.
func Add(t *Table, path []string, ref CommandRef) error {
	if t == nil {
		return noTableError("Add")
	}
	if err := validatePath(path); err != nil {
		return err
	}
	if err := t.checkWritable("Add"); err != nil {
		return err
	}

	head := path[0]

	if len(path) == 1 {
		t.store(head, Leaf{Ref: ref})
		t.logger.Debug("command registered", log.String("path", head))
		return nil
	}

	existing, _ := t.load(head)
	updated, err := insertEntry(existing, path[1:], ref)
	if err != nil {
		collision := regerror.Wrap(err, "cannot register command below existing command "+head).
			WithOperation("Add").
			WithDetail("table", t.name).
			WithDetail("name", head).
			WithDetail("path", JoinPath(path))
		t.logger.LogError(collision)
		return collision
	}

	t.store(head, updated)
	t.logger.Debug("command registered", log.String("path", JoinPath(path)))
	return nil
}

// Remove deletes the entry at path from the table.
//
// A single-segment path deletes the top-level key unconditionally. A
// multi-segment path removes the nested entry and prunes groups that are
// left empty; when the whole top-level entry empties out, its key is
// deleted. Removing a path that is not registered is a no-op success.
// Descending through a terminal command while path segments remain fails
// with a leaf-collision error and leaves the table unchanged.
func Remove(t *Table, path []string) error {
	if t == nil {
		return noTableError("Remove")
	}
	if err := validatePath(path); err != nil {
		return err
	}
	if err := t.checkWritable("Remove"); err != nil {
		return err
	}

	head := path[0]

	if len(path) == 1 {
		t.delete(head)
		t.logger.Debug("command removed", log.String("path", head))
		return nil
	}

	existing, ok := t.load(head)
	if !ok {
		return nil
	}

	updated, empty, err := removeEntry(existing, path[1:])
	if err != nil {
		collision := regerror.Wrap(err, "cannot remove command below existing command "+head).
			WithOperation("Remove").
			WithDetail("table", t.name).
			WithDetail("name", head).
			WithDetail("path", JoinPath(path))
		t.logger.LogError(collision)
		return collision
	}

	if empty {
		t.delete(head)
	} else {
		t.store(head, updated)
	}
	t.logger.Debug("command removed", log.String("path", JoinPath(path)))
	return nil
}

// Lookup returns the top-level entry stored under name: the terminal
// command or the full group subtree. Absent names report false.
func Lookup(t *Table, name string) (Entry, bool) {
	if t == nil {
		return nil, false
	}
	return t.load(name)
}

// All returns a snapshot copy of every top-level entry at call time.
// Concurrent writers may be reflected for some keys and not others.
func All(t *Table) map[string]Entry {
	if t == nil {
		return map[string]Entry{}
	}
	return t.Snapshot()
}

// Keys returns the registered top-level names, sorted for tables created
// with OrderedKeys.
func Keys(t *Table) []string {
	if t == nil {
		return nil
	}
	return t.Keys()
}

// noTableError reports an operation against a nil table handle.
func noTableError(operation string) error {
	return regerror.New("no command table handle").
		WithCode(regerror.CodeNoSuchTable).
		WithSeverity(regerror.SeverityHigh).
		WithOperation(operation)
}

// TableStorage implements the Storage behaviour against one table handle.
// The zero value and NewStorage(nil) resolve the well-known default table
// on every call, so a storage can be constructed before the owner starts.
type TableStorage struct {
	table *Table
}

// NewStorage creates a Storage over the given table handle. A nil handle
// selects the well-known default table at call time.
func NewStorage(table *Table) *TableStorage {
	return &TableStorage{table: table}
}

// handle resolves the effective table for one operation.
func (s *TableStorage) handle() (*Table, error) {
	if s.table != nil {
		return s.table, nil
	}
	return Named(DefaultTableName)
}

// AddCommand registers a handler reference under a segmented path.
func (s *TableStorage) AddCommand(path []string, ref CommandRef) error {
	t, err := s.handle()
	if err != nil {
		return err
	}
	return Add(t, path, ref)
}

// RemoveCommand removes the entry at a segmented path.
func (s *TableStorage) RemoveCommand(path []string) error {
	t, err := s.handle()
	if err != nil {
		return err
	}
	return Remove(t, path)
}

// LookupCommand returns the top-level entry stored under name.
func (s *TableStorage) LookupCommand(name string) (Entry, bool) {
	t, err := s.handle()
	if err != nil {
		return nil, false
	}
	return Lookup(t, name)
}

// AllCommands returns a snapshot of every top-level entry.
func (s *TableStorage) AllCommands() map[string]Entry {
	t, err := s.handle()
	if err != nil {
		return map[string]Entry{}
	}
	return All(t)
}

// compile-time behaviour check
var _ Storage = (*TableStorage)(nil)
