// File: example_test.go
// Title: Registry Usage Examples
// Description: Documented examples for starting a command table, registering
//              hierarchical commands, and enumerating them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-08-24

package registry_test

import (
	"fmt"
	"io"

	"github.com/msto63/cmdreg/core/log"
	"github.com/msto63/cmdreg/registry"
)

func Example() {
	opts := registry.DefaultOptions()
	opts.Logger = log.New().WithOutput(io.Discard)

	owner, err := registry.Start("example-commands", opts)
	if err != nil {
		fmt.Println("start failed:", err)
		return
	}
	defer owner.Stop()

	table := owner.TableHandle()
	_ = registry.Add(table, []string{"mod", "ban"}, "ban-handler")
	_ = registry.Add(table, []string{"mod", "kick"}, "kick-handler")
	_ = registry.Add(table, []string{"ping"}, "ping-handler")

	fmt.Println(registry.Paths(table))

	_ = registry.Remove(table, []string{"mod", "ban"})
	fmt.Println(registry.Paths(table))

	// Output:
	// [mod.ban mod.kick ping]
	// [mod.kick ping]
}

func ExampleParsePath() {
	path, _ := registry.ParsePath("admin.user.promote")
	fmt.Println(len(path), path[0], path[2])
	// Output: 3 admin promote
}

func ExampleTableStorage() {
	opts := registry.DefaultOptions()
	opts.GloballyNamed = false
	table := registry.NewTable("bot-commands", opts)

	var storage registry.Storage = registry.NewStorage(table)
	_ = storage.AddCommand([]string{"mod", "ban"}, "ban-handler")

	entry, ok := storage.LookupCommand("mod")
	fmt.Println(ok, entry.IsEmpty())
	// Output: true false
}
