// File: namespace.go
// Title: Global Table Namespace
// Description: Process-wide namespace of named command tables. Globally
//              named tables register here at start so collaborators can
//              obtain a handle by well-known name instead of threading the
//              handle through every call site.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-08-24
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation

package registry

import (
	"sync"

	regerror "github.com/msto63/cmdreg/core/error"
)

// DefaultTableName is the well-known name of the default command table.
const DefaultTableName = "commands"

// namespace maps table names to the owner-created tables.
var namespace sync.Map // string -> *Table

// Named returns a handle to the globally named table. For tables created
// without PubliclyWritable the returned handle is a read-only view; the
// owner keeps the only writable handle.
func Named(name string) (*Table, error) {
	v, ok := namespace.Load(name)
	if !ok {
		return nil, regerror.New("no command table registered under this name").
			WithCode(regerror.CodeNoSuchTable).
			WithSeverity(regerror.SeverityHigh).
			WithDetail("table", name)
	}

	t := v.(*Table)
	if !t.opts.PubliclyWritable {
		return t.ReadOnlyView(), nil
	}
	return t, nil
}

// registerTable claims the table's name in the namespace. Registration
// fails when another live table already holds the name.
func registerTable(t *Table) error {
	existing, loaded := namespace.LoadOrStore(t.name, t)
	if loaded {
		return regerror.New("a command table with this name already exists").
			WithCode(regerror.CodeTableExists).
			WithSeverity(regerror.SeverityMedium).
			WithDetail("table", t.name).
			WithDetail("existing_id", existing.(*Table).id.String())
	}
	return nil
}

// unregisterTable releases the name. Only the registered table itself may
// release it, so a replacement table started in the meantime is kept.
func unregisterTable(t *Table) {
	namespace.CompareAndDelete(t.name, t)
}
