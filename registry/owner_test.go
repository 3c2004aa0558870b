// File: owner_test.go
// Title: Registry Owner Tests
// Description: Tests for the owner lifecycle: table creation, global name
//              registration and duplicate rejection, handle publication,
//              stop semantics, and the storage behaviour defaulting to the
//              well-known table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-08-24

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/msto63/cmdreg/core/config"
	regerror "github.com/msto63/cmdreg/core/error"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStartAndHandle(t *testing.T) {
	owner, err := Start("owner-test-basic", DefaultOptions())
	require.NoError(t, err)
	defer owner.Stop()

	table := owner.TableHandle()
	require.NotNil(t, table)
	assert.Equal(t, "owner-test-basic", table.Name())
	assert.False(t, table.ReadOnly())
	assert.True(t, owner.Running())

	// The namespace resolves the same underlying table.
	named, err := Named("owner-test-basic")
	require.NoError(t, err)
	assert.Equal(t, table.ID(), named.ID())

	require.NoError(t, Add(table, []string{"mod", "ban"}, "H1"))
	entry, ok := Lookup(named, "mod")
	require.True(t, ok)
	assert.Equal(t, Entry(Group{"ban": Leaf{Ref: "H1"}}), entry)
}

func TestStartBlankNameUsesDefault(t *testing.T) {
	owner, err := Start("", DefaultOptions())
	require.NoError(t, err)
	defer owner.Stop()

	assert.Equal(t, DefaultTableName, owner.TableHandle().Name())

	named, err := Named(DefaultTableName)
	require.NoError(t, err)
	assert.Equal(t, owner.TableHandle().ID(), named.ID())
}

func TestStartRejectsDuplicateName(t *testing.T) {
	owner, err := Start("owner-test-dup", DefaultOptions())
	require.NoError(t, err)
	defer owner.Stop()

	second, err := Start("owner-test-dup", DefaultOptions())
	require.Error(t, err)
	assert.Nil(t, second)
	assert.True(t, regerror.IsCode(err, regerror.CodeTableExists))
}

func TestStartUnnamedSkipsNamespace(t *testing.T) {
	opts := DefaultOptions()
	opts.GloballyNamed = false

	owner, err := Start("owner-test-unnamed", opts)
	require.NoError(t, err)
	defer owner.Stop()

	_, err = Named("owner-test-unnamed")
	assert.True(t, regerror.IsCode(err, regerror.CodeNoSuchTable))
}

func TestStopReleasesNameAndTable(t *testing.T) {
	owner, err := Start("owner-test-stop", DefaultOptions())
	require.NoError(t, err)

	table := owner.TableHandle()
	require.NoError(t, Add(table, []string{"mod", "ban"}, "H1"))

	owner.Stop()
	assert.False(t, owner.Running())
	assert.Nil(t, owner.TableHandle())

	// The name is free again.
	_, err = Named("owner-test-stop")
	assert.True(t, regerror.IsCode(err, regerror.CodeNoSuchTable))

	// Stale handles fail their operations; entries are gone.
	err = Add(table, []string{"mod", "kick"}, "H2")
	assert.True(t, regerror.IsCode(err, regerror.CodeNoSuchTable))
	_, ok := Lookup(table, "mod")
	assert.False(t, ok)

	// Stopping twice is harmless, and the name can be reclaimed.
	owner.Stop()
	replacement, err := Start("owner-test-stop", DefaultOptions())
	require.NoError(t, err)
	replacement.Stop()
}

func TestProtectedTableNamespaceHandleIsReadOnly(t *testing.T) {
	opts := DefaultOptions()
	opts.PubliclyWritable = false

	owner, err := Start("owner-test-protected", opts)
	require.NoError(t, err)
	defer owner.Stop()

	// The owner's own handle writes.
	require.NoError(t, Add(owner.TableHandle(), []string{"mod", "ban"}, "H1"))

	// Namespace handles only read.
	named, err := Named("owner-test-protected")
	require.NoError(t, err)
	assert.True(t, named.ReadOnly())

	_, ok := Lookup(named, "mod")
	assert.True(t, ok)

	err = Add(named, []string{"mod", "kick"}, "H2")
	assert.True(t, regerror.IsCode(err, regerror.CodeReadOnlyTable))
}

func TestStartWithConfig(t *testing.T) {
	cfg := config.NewFromMap(map[string]interface{}{
		"table": map[string]interface{}{
			"name":              "owner-test-config",
			"ordered_keys":      true,
			"publicly_writable": false,
		},
	})

	owner, err := StartWithConfig(cfg)
	require.NoError(t, err)
	defer owner.Stop()

	table := owner.TableHandle()
	assert.Equal(t, "owner-test-config", table.Name())
	assert.True(t, table.Options().OrderedKeys)
	assert.False(t, table.Options().PubliclyWritable)
	assert.True(t, table.Options().GloballyNamed)
}

func TestStorageAgainstExplicitHandle(t *testing.T) {
	opts := DefaultOptions()
	opts.GloballyNamed = false
	table := NewTable("storage-test", opts)

	var storage Storage = NewStorage(table)

	require.NoError(t, storage.AddCommand([]string{"mod", "ban"}, "H1"))
	require.NoError(t, storage.AddCommand([]string{"mod", "kick"}, "H2"))

	entry, ok := storage.LookupCommand("mod")
	require.True(t, ok)
	assert.Equal(t, Entry(Group{"ban": Leaf{Ref: "H1"}, "kick": Leaf{Ref: "H2"}}), entry)

	require.NoError(t, storage.RemoveCommand([]string{"mod", "ban"}))
	all := storage.AllCommands()
	assert.Equal(t, map[string]Entry{"mod": Group{"kick": Leaf{Ref: "H2"}}}, all)
}

func TestStorageDefaultsToWellKnownTable(t *testing.T) {
	// Without an owner the default table does not exist.
	storage := NewStorage(nil)
	err := storage.AddCommand([]string{"mod", "ban"}, "H1")
	require.True(t, regerror.IsCode(err, regerror.CodeNoSuchTable))
	_, ok := storage.LookupCommand("mod")
	assert.False(t, ok)
	assert.Empty(t, storage.AllCommands())

	// Once the owner starts, the same storage reaches the table.
	owner, err := Start(DefaultTableName, DefaultOptions())
	require.NoError(t, err)
	defer owner.Stop()

	require.NoError(t, storage.AddCommand([]string{"mod", "ban"}, "H1"))
	entry, ok := storage.LookupCommand("mod")
	require.True(t, ok)
	assert.Equal(t, Entry(Group{"ban": Leaf{Ref: "H1"}}), entry)
}
