// File: table.go
// Title: Concurrent Command Table
// Description: Implements the process-wide concurrent store holding one
//              entry per top-level command name. Reads are lock-free and
//              writes to distinct keys proceed independently; the table
//              deliberately provides no atomic read-modify-write, so racing
//              multi-segment writers to the same key follow last-write-wins
//              semantics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-08-24
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with sync.Map store

package registry

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	regerror "github.com/msto63/cmdreg/core/error"
	"github.com/msto63/cmdreg/core/log"
	"github.com/msto63/cmdreg/utils/mapx"
)

// Table is a handle to a concurrent command table. Handles are cheap
// values over a shared store: the owner's handle is writable, while
// read-only views share the same entries but reject mutation.
type Table struct {
	name     string
	id       uuid.UUID
	opts     Options
	entries  *sync.Map // top-level name -> Entry
	closed   *atomic.Bool
	readOnly bool
	logger   *log.Logger
}

// NewTable creates an empty command table with the given options. The
// table is not registered in the global namespace; Start does that for
// globally named tables.
func NewTable(name string, opts Options) *Table {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}

	return &Table{
		name:    name,
		id:      uuid.New(),
		opts:    opts,
		entries: &sync.Map{},
		closed:  &atomic.Bool{},
		logger:  logger.WithFields(log.Fields{"component": "command-table", "table": name}),
	}
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// ID returns the unique id assigned to the table at creation.
func (t *Table) ID() uuid.UUID {
	return t.id
}

// Options returns the options the table was created with.
func (t *Table) Options() Options {
	return t.opts
}

// ReadOnly reports whether this handle rejects mutating operations.
func (t *Table) ReadOnly() bool {
	return t.readOnly
}

// ReadOnlyView returns a handle over the same entries that rejects
// mutating operations.
func (t *Table) ReadOnlyView() *Table {
	view := *t
	view.readOnly = true
	return &view
}

// Len returns the number of top-level entries.
func (t *Table) Len() int {
	if t.closed.Load() {
		return 0
	}

	n := 0
	t.entries.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// Snapshot returns a copy of every top-level entry. Concurrent mutation
// during iteration may yield a mix of pre- and post-mutation states across
// different keys; each single entry is consistent.
func (t *Table) Snapshot() map[string]Entry {
	result := make(map[string]Entry)
	if t.closed.Load() {
		return result
	}

	t.entries.Range(func(k, v interface{}) bool {
		result[k.(string)] = v.(Entry)
		return true
	})
	return result
}

// Keys returns the top-level names, sorted when the table was created
// with OrderedKeys.
func (t *Table) Keys() []string {
	snapshot := t.Snapshot()
	if t.opts.OrderedKeys {
		return mapx.SortedKeys(snapshot)
	}
	return mapx.Keys(snapshot)
}

// Info returns a diagnostic snapshot of the table.
func (t *Table) Info() Info {
	return Info{
		Name:     t.name,
		ID:       t.id,
		Size:     t.Len(),
		ReadOnly: t.readOnly,
		Options:  t.opts,
	}
}

// load returns the entry stored under a top-level name. A closed table
// reports every name as absent.
func (t *Table) load(name string) (Entry, bool) {
	if t.closed.Load() {
		return nil, false
	}

	v, ok := t.entries.Load(name)
	if !ok {
		return nil, false
	}
	return v.(Entry), true
}

// store commits an entry below a top-level name with a single write.
func (t *Table) store(name string, entry Entry) {
	t.entries.Store(name, entry)
}

// delete removes a top-level name; deleting an absent name is a no-op.
func (t *Table) delete(name string) {
	t.entries.Delete(name)
}

// checkWritable verifies that mutating operations are allowed through
// this handle.
func (t *Table) checkWritable(operation string) error {
	if t.closed.Load() {
		return regerror.New("command table is stopped").
			WithCode(regerror.CodeNoSuchTable).
			WithSeverity(regerror.SeverityHigh).
			WithOperation(operation).
			WithDetail("table", t.name)
	}
	if t.readOnly {
		return regerror.New("command table handle is read-only").
			WithCode(regerror.CodeReadOnlyTable).
			WithSeverity(regerror.SeverityMedium).
			WithOperation(operation).
			WithDetail("table", t.name)
	}
	return nil
}

// close marks the table stopped. Every handle over the same store observes
// the closed state; subsequent operations fail or report absence.
func (t *Table) close() {
	t.closed.Store(true)
}
