// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import (
	"strconv"
	"strings"
	"testing"
)

func TestHashStringBytes(t *testing.T) {
	for _, s := range []string{"", "a", "abc", "hello, world"} {
		if hs, hb := HashString(s), HashBytes([]byte(s)); hs != hb {
			t.Errorf("HashString(%q) = %#x but HashBytes = %#x", s, hs, hb)
		}
	}
	if HashString("abc") == HashString("abd") {
		t.Error("expected abc and abd to hash differently")
	}
}

func TestHashStringSpread(t *testing.T) {
	const n = 10000
	seen := make(map[uint32]struct{}, n)
	for i := 0; i < n; i++ {
		seen[HashString(strconv.Itoa(i))] = struct{}{}
	}
	// A handful of 32 bit collisions is possible, wholesale clumping
	// is not.
	if len(seen) < n-5 {
		t.Errorf("expected close to %d distinct hashes got: %d", n, len(seen))
	}
}

func TestNewString(t *testing.T) {
	m := NewString[int]()
	for i, w := range strings.Fields("the quick brown fox jumps over the lazy dog") {
		m.Set(w, i)
	}
	// "the" appears twice, so its second index wins.
	if m.Len() != 8 {
		t.Errorf("expected len: 8 got: %d", m.Len())
	}
	if v, ok := m.Get("the"); !ok || v != 6 {
		t.Errorf("expected 6, true got: %d, %t", v, ok)
	}
	if v, ok := m.Get("cat"); ok {
		t.Errorf("expected no value got: %d", v)
	}
	checkInvariants(t, m)
}
