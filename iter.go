// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build go1.23

package chainmap

import "iter"

// All returns an iterator over key-value pairs from m. The pairs come
// out in Iter order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in m.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Values returns an iterator over values in m.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// InsertSeq inserts every key-value pair from seq into m via Set. The
// sequence's size is not knowable up front, so no capacity hint is
// applied; call Grow first if the caller knows better.
func (m *Map[K, V]) InsertSeq(seq iter.Seq2[K, V]) {
	if m == nil {
		panic("chainmap: InsertSeq called on nil Map")
	}
	for k, v := range seq {
		m.Set(k, v)
	}
}

// Collect builds a new Map from the key-value pairs in seq. See [New]
// for discussion of the equal and hash arguments.
func Collect[K, V any](equal func(a, b K) bool, hash func(K) uint32,
	seq iter.Seq2[K, V]) *Map[K, V] {

	m := New[K, V](equal, hash)
	m.InsertSeq(seq)
	return m
}
