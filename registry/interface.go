// File: interface.go
// Title: Registry Interface and Options
// Description: Defines the table options, the diagnostic table info value,
//              and the Storage behaviour handler frameworks implement
//              against to keep their command registration abstract from a
//              concrete table handle.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-08-24
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation

package registry

import (
	"github.com/google/uuid"

	"github.com/msto63/cmdreg/core/log"
)

// Options configures a command table.
type Options struct {
	// ConcurrentReads allows any number of readers without coordination.
	// The sync.Map backing store always provides this; the flag is carried
	// for table diagnostics and configuration parity.
	ConcurrentReads bool

	// OrderedKeys makes Keys and Paths return names in ascending order.
	OrderedKeys bool

	// PubliclyWritable allows mutating operations through handles obtained
	// from the global namespace. When false, Named returns read-only views
	// and only the owner's handle can write.
	PubliclyWritable bool

	// GloballyNamed registers the table under its name in the process-wide
	// namespace so collaborators can obtain a handle without threading it
	// through call sites.
	GloballyNamed bool

	// Logger receives lifecycle and operation logging. Defaults to the
	// package default logger.
	Logger *log.Logger
}

// DefaultOptions returns the default table options: concurrent reads,
// ordered keys, publicly writable, globally named.
func DefaultOptions() Options {
	return Options{
		ConcurrentReads:  true,
		OrderedKeys:      true,
		PubliclyWritable: true,
		GloballyNamed:    true,
	}
}

// Info is a diagnostic snapshot of a table's identity and shape.
type Info struct {
	Name     string
	ID       uuid.UUID
	Size     int
	ReadOnly bool
	Options  Options
}

// Storage is the behaviour handler frameworks implement against. All
// methods operate on one command table; implementations default to the
// well-known global table when constructed without an explicit handle.
type Storage interface {
	// AddCommand registers a handler reference under a segmented path.
	AddCommand(path []string, ref CommandRef) error

	// RemoveCommand removes the entry at a segmented path. Removing a
	// path that is not registered is a no-op success.
	RemoveCommand(path []string) error

	// LookupCommand returns the top-level entry stored under name, which
	// is either a Leaf or the full Group subtree, or absent.
	LookupCommand(name string) (Entry, bool)

	// AllCommands returns a snapshot of every top-level entry.
	AllCommands() map[string]Entry
}
