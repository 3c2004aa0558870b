// File: mapx_test.go
// Title: Map Utility Tests
// Description: Unit tests for the generic map helpers used by the registry
//              resolver for copy-on-write group updates.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-05
// Modified: 2026-08-21

package mapx

import (
	"sort"
	"testing"
)

func TestKeys(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	keys := Keys(m)
	if len(keys) != 3 {
		t.Fatalf("len(keys) = %d, want 3", len(keys))
	}
	sort.Strings(keys)
	want := []string{"a", "b", "c"}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], k)
		}
	}

	if got := Keys[string, int](nil); got != nil {
		t.Errorf("Keys(nil) = %v, want nil", got)
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"kick": 1, "ban": 2, "mute": 3}

	keys := SortedKeys(m)
	want := []string{"ban", "kick", "mute"}
	if len(keys) != len(want) {
		t.Fatalf("len(keys) = %d, want %d", len(keys), len(want))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], k)
		}
	}
}

func TestValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}

	values := Values(m)
	sort.Ints(values)
	if len(values) != 2 || values[0] != 1 || values[1] != 2 {
		t.Errorf("Values = %v, want [1 2]", values)
	}

	if got := Values[string, int](nil); got != nil {
		t.Errorf("Values(nil) = %v, want nil", got)
	}
}

func TestClone(t *testing.T) {
	original := map[string]int{"a": 1, "b": 2}

	clone := Clone(original)
	if !Equal(original, clone) {
		t.Errorf("Clone = %v, want %v", clone, original)
	}

	clone["a"] = 99
	if original["a"] != 1 {
		t.Error("mutating the clone changed the original")
	}

	if got := Clone[string, int](nil); got != nil {
		t.Errorf("Clone(nil) = %v, want nil", got)
	}
}

func TestCloneIsShallow(t *testing.T) {
	inner := map[string]int{"x": 1}
	original := map[string]map[string]int{"a": inner}

	clone := Clone(original)
	clone["a"]["x"] = 2

	if inner["x"] != 2 {
		t.Error("shallow clone should share nested values")
	}
}

func TestFilter(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	evens := Filter(m, func(_ string, v int) bool { return v%2 == 0 })
	if !Equal(evens, map[string]int{"b": 2}) {
		t.Errorf("Filter = %v, want map[b:2]", evens)
	}

	none := Filter(m, func(string, int) bool { return false })
	if len(none) != 0 {
		t.Errorf("Filter(false) = %v, want empty", none)
	}

	if got := Filter[string, int](nil, func(string, int) bool { return true }); got != nil {
		t.Errorf("Filter(nil) = %v, want nil", got)
	}
}

func TestMerge(t *testing.T) {
	a := map[string]int{"x": 1, "y": 1}
	b := map[string]int{"y": 2, "z": 2}

	merged := Merge(a, b)
	want := map[string]int{"x": 1, "y": 2, "z": 2}
	if !Equal(merged, want) {
		t.Errorf("Merge = %v, want %v", merged, want)
	}

	// Merge never aliases its inputs.
	merged["x"] = 99
	if a["x"] != 1 {
		t.Error("mutating the merge result changed an input map")
	}

	empty := Merge[string, int]()
	if len(empty) != 0 {
		t.Errorf("Merge() = %v, want empty", empty)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]int
		want bool
	}{
		{"equal", map[string]int{"a": 1}, map[string]int{"a": 1}, true},
		{"different value", map[string]int{"a": 1}, map[string]int{"a": 2}, false},
		{"different key", map[string]int{"a": 1}, map[string]int{"b": 1}, false},
		{"different size", map[string]int{"a": 1}, map[string]int{"a": 1, "b": 2}, false},
		{"both nil", nil, nil, true},
		{"nil vs empty", nil, map[string]int{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
