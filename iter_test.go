// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build go1.23

package chainmap

import (
	"maps"
	"testing"
)

func TestRangeFuncs(t *testing.T) {
	m := NewString[string]()
	m.InsertPairs(
		Pair[string, string]{"Avenue", "AVE"},
		Pair[string, string]{"Street", "ST"},
		Pair[string, string]{"Court", "CT"},
	)

	t.Run("All", func(t *testing.T) {
		exp := map[string]string{
			"Avenue": "AVE",
			"Street": "ST",
			"Court":  "CT",
		}
		got := make(map[string]string)
		for k, v := range m.All() {
			got[k] = v
		}
		if !maps.Equal(exp, got) {
			t.Errorf("expected: %v got: %v", exp, got)
		}
	})

	t.Run("Keys", func(t *testing.T) {
		exp := map[string]struct{}{
			"Avenue": {},
			"Street": {},
			"Court":  {},
		}
		got := make(map[string]struct{})
		for k := range m.Keys() {
			got[k] = struct{}{}
		}
		if !maps.Equal(exp, got) {
			t.Errorf("expected: %v got: %v", exp, got)
		}
	})

	t.Run("Values", func(t *testing.T) {
		exp := map[string]struct{}{
			"AVE": {},
			"ST":  {},
			"CT":  {},
		}
		got := make(map[string]struct{})
		for v := range m.Values() {
			got[v] = struct{}{}
		}
		if !maps.Equal(exp, got) {
			t.Errorf("expected: %v got: %v", exp, got)
		}
	})

	t.Run("break", func(t *testing.T) {
		n := 0
		for range m.All() {
			n++
			break
		}
		if n != 1 {
			t.Errorf("expected 1 pair got: %d", n)
		}
	})
}

func TestInsertSeq(t *testing.T) {
	src := NewString[int]()
	src.Set("a", 1)
	src.Set("b", 2)
	dst := NewString[int]()
	dst.Set("b", 0)
	dst.Set("c", 3)
	dst.InsertSeq(src.All())
	exp := map[string]int{"a": 1, "b": 2, "c": 3}
	if got := ToMap(dst); !maps.Equal(got, exp) {
		t.Errorf("expected: %v got: %v", exp, got)
	}
}

func TestCollect(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2, "c": 3}
	m := Collect(func(a, b string) bool { return a == b }, HashString, maps.All(src))
	if m.Len() != len(src) {
		t.Fatalf("expected len: %d got: %d", len(src), m.Len())
	}
	if got := ToMap(m); !maps.Equal(got, src) {
		t.Errorf("expected: %v got: %v", src, got)
	}
}
