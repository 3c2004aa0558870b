// File: owner.go
// Title: Registry Owner Lifecycle
// Description: Implements the long-lived owner of a command table. The
//              owner creates the table, registers its name, publishes the
//              handle, and answers the handle query. It holds no other
//              state and is not on the hot path of table operations.
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

	"github.com/msto63/cmdreg/core/config"
	"github.com/msto63/cmdreg/core/log"
	"github.com/msto63/cmdreg/utils/stringx"
)

// Owner creates and owns one command table and publishes its handle.
type Owner struct {
	mu      sync.Mutex
	table   *Table
	logger  *log.Logger
	stopped bool
}

// Start creates an empty command table and, for globally named tables,
// claims the name in the process-wide namespace. A blank name selects
// DefaultTableName. Start fails when the name is already claimed.
func Start(name string, opts Options) (*Owner, error) {
	name = stringx.DefaultIfBlank(name, DefaultTableName)

	table := NewTable(name, opts)
	logger := table.logger.WithField("component", "registry-owner")

	if opts.GloballyNamed {
		if err := registerTable(table); err != nil {
			logger.LogError(err)
			return nil, err
		}
	}

	logger.Info("command table started", log.Fields{
		"id":                table.id.String(),
		"ordered_keys":      opts.OrderedKeys,
		"publicly_writable": opts.PubliclyWritable,
		"globally_named":    opts.GloballyNamed,
	})

	return &Owner{
		table:  table,
		logger: logger,
	}, nil
}

// StartWithConfig starts an owner with table settings read from the
// "table" section of the configuration, falling back to defaults for
// missing keys.
func StartWithConfig(cfg *config.Config) (*Owner, error) {
	name := cfg.GetString("table.name", DefaultTableName)
	return Start(name, OptionsFromConfig(cfg))
}

// OptionsFromConfig derives table options from the "table" section of the
// configuration. Missing keys keep their defaults.
func OptionsFromConfig(cfg *config.Config) Options {
	defaults := DefaultOptions()
	return Options{
		ConcurrentReads:  cfg.GetBool("table.concurrent_reads", defaults.ConcurrentReads),
		OrderedKeys:      cfg.GetBool("table.ordered_keys", defaults.OrderedKeys),
		PubliclyWritable: cfg.GetBool("table.publicly_writable", defaults.PubliclyWritable),
		GloballyNamed:    cfg.GetBool("table.globally_named", defaults.GloballyNamed),
	}
}

// TableHandle returns the owner's writable handle to the table. It
// returns nil once the owner has stopped.
func (o *Owner) TableHandle() *Table {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.stopped {
		return nil
	}
	return o.table
}

// Running reports whether the owner still holds a live table.
func (o *Owner) Running() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return !o.stopped
}

// Stop releases the table name and marks the table stopped. All entries
// are lost; handles still held by collaborators fail their operations
// afterwards. Stopping twice is a no-op.
func (o *Owner) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.stopped {
		return
	}
	o.stopped = true

	if o.table.opts.GloballyNamed {
		unregisterTable(o.table)
	}
	o.table.close()

	o.logger.Info("command table stopped", log.Fields{
		"id": o.table.id.String(),
	})
}
