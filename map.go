// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chainmap provides the Map type, which implements a hash
// table. Keys are mapped to buckets by a user-provided hash function;
// colliding keys share a bucket on a singly-linked chain that is kept
// sorted by cached hash value, which keeps misses cheap and turns
// growth into pointer splitting instead of rehashing.
//
// The following requirements are the user's responsibility to follow:
//   - equal(a, b) => hash(a) == hash(b)
//   - equal(a, a) must be true for all values of a. Be careful around NaN
//     float values. Go's built-in `map` has special cases for handling
//     this, but `Map` does not.
//   - If a key in a `Map` contains references -- such as pointers, maps,
//     or slices -- modifying the referenced data in a way that affects
//     the result of the equal or hash functions will result in undefined
//     behavior.
//   - For good performance hash functions should return uniformly
//     distributed data across the entire 32 bits of the value.
package chainmap

// This file contains the Map implementation. The layout is classic
// chained hashing with one twist that the rest of the file leans on:
// ordered chains.
//
// The data is arranged into an array of buckets whose length is
// always a power of two. Each bucket holds the head of a singly-linked
// chain of entries; an entry carries its key, its value, and its
// hash, cached at insertion time after being "improved" (high bits
// folded into the low bits, so that power-of-two masking sees entropy
// from the whole word).
//
// Every chain is kept sorted by ascending cached hash. Sorted chains
// buy two things:
//
//   - Lookups for absent keys stop at the first entry whose hash
//     exceeds the query hash instead of scanning the whole chain.
//   - Growth never compares or rehashes anything. The table grows by
//     doubling; for each doubling, the chain at bucket i is
//     partitioned into the entries whose hash has the old-length bit
//     clear (they stay at i) and those that have it set (they all
//     move to bucket i+oldlen). Partitioning preserves relative
//     order, and a sorted chain partitioned this way yields two
//     sorted chains, so the invariant maintains itself.
//
// Growth triggers when one more insertion would reach threshold =
// len(table) * loadFactor, and runs before the new entry's bucket is
// computed, so a fresh entry never has to move right after being
// linked in.
//
// Iterators walk buckets in index order and each chain front to back.
// The order is unspecified -- it changes when the table grows -- but
// it is repeatable for a table that is not mutated in between.
//
// Map is not safe for concurrent use. There is no internal locking
// and, unlike Go's built-in map, no best-effort misuse detection: a
// racing write can corrupt chain links. A Map must be confined to one
// goroutine at a time.

import (
	"fmt"
	"math/bits"
)

const (
	// defaultCapacity is the bucket count New uses when no
	// WithCapacity option is given.
	defaultCapacity = 16

	// defaultLoadFactor is the entries-per-bucket ratio that triggers
	// growth when no WithLoadFactor option is given. 0.75 keeps the
	// expected chain length around one while wasting at most a third
	// of the bucket array.
	defaultLoadFactor = 0.75

	// minCapacity and maxCapacity bound the bucket array. Requested
	// capacities are rounded up to a power of two within this range;
	// anything beyond maxCapacity saturates silently.
	minCapacity = 4
	maxCapacity = 1 << 30
)

// Map implements a hash table with hash-ordered collision chains.
// The zero value is not usable; use [New].
type Map[K, V any] struct {
	// bucket array. len(table) is always a power of two in
	// [minCapacity, maxCapacity].
	table []*entry[K, V]
	// count of live entries. Reaching threshold triggers the next
	// doubling.
	threshold  int
	count      int
	loadFactor float64

	equal func(a, b K) bool
	hash  func(K) uint32
	def   func(K) V // MustGet fallback, nil unless set by NewWithDefault
}

// entry is a node in a collision chain. The chain owns every entry
// reachable through next; entries are never shared between buckets
// and never handed out to callers, only copies of their key and
// value are.
type entry[K, V any] struct {
	key  K
	hash uint32 // improved hash, cached so growth never rehashes
	val  V
	next *entry[K, V]
}

// Pair contains a Key and Value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Option configures a Map during construction.
type Option func(*config)

type config struct {
	capacity   int
	loadFactor float64
}

// WithCapacity sets the initial bucket-array capacity. The value is
// rounded up to a power of two, at least 4 and at most 2^30.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithLoadFactor sets the ratio of entries to buckets at which the
// table grows. It must be in (0, 1]: larger values trade longer
// chains for a denser table.
func WithLoadFactor(lf float64) Option {
	return func(c *config) { c.loadFactor = lf }
}

// New instantiates a new Map. The equal func must return true for two
// values of K that are equal and false otherwise. The hash func
// should return a uniformly distributed hash value; the Hash*
// functions in this package cover common key types. If equal(a, b)
// then hash(a) == hash(b).
func New[K, V any](equal func(a, b K) bool, hash func(K) uint32, opts ...Option) *Map[K, V] {
	cfg := config{capacity: defaultCapacity, loadFactor: defaultLoadFactor}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.loadFactor <= 0 || cfg.loadFactor > 1 {
		panic(fmt.Sprintf("chainmap: load factor %v out of range (0, 1]", cfg.loadFactor))
	}
	n := tableSizeFor(cfg.capacity)
	return &Map[K, V]{
		table:      make([]*entry[K, V], n),
		threshold:  newThreshold(cfg.loadFactor, n),
		loadFactor: cfg.loadFactor,
		equal:      equal,
		hash:       hash,
	}
}

// NewWithDefault instantiates a new Map whose MustGet returns
// def(key) for absent keys instead of panicking. def is evaluated on
// demand and its result is not inserted into the Map.
func NewWithDefault[K, V any](equal func(a, b K) bool, hash func(K) uint32,
	def func(K) V, opts ...Option) *Map[K, V] {

	m := New[K, V](equal, hash, opts...)
	m.def = def
	return m
}

// NewHint instantiates a new Map with a hint as to how many entries
// will be inserted: inserting up to hint entries triggers no growth.
// See [New] for discussion of the equal and hash arguments.
func NewHint[K, V any](hint int, equal func(a, b K) bool, hash func(K) uint32) *Map[K, V] {
	m := New[K, V](equal, hash)
	m.Grow(hint)
	return m
}

// tableSizeFor returns the smallest power of two >= capacity, at
// least minCapacity and capped at maxCapacity.
func tableSizeFor(capacity int) int {
	if capacity >= maxCapacity {
		return maxCapacity
	}
	n := capacity
	if n < minCapacity {
		n = minCapacity
	}
	return 1 << bits.Len(uint(n-1))
}

// newThreshold returns the entry count at which a table of size
// buckets grows.
func newThreshold(loadFactor float64, size int) int {
	return int(float64(size) * loadFactor)
}

// improveHash folds the high bits of h into the low bits consulted by
// index, protecting against hash functions with poor low-bit entropy.
func improveHash(h uint32) uint32 {
	return h ^ (h >> 16)
}

func (m *Map[K, V]) computeHash(key K) uint32 {
	return improveHash(m.hash(key))
}

// index relies on len(m.table) being a power of two.
func (m *Map[K, V]) index(hash uint32) int {
	return int(hash & uint32(len(m.table)-1))
}

// findEntry returns the entry for key, or nil if key is not in the
// Map. The chain is sorted by ascending cached hash, so the walk
// stops as soon as an entry's hash exceeds the query hash.
func (m *Map[K, V]) findEntry(key K, hash uint32) *entry[K, V] {
	for e := m.table[m.index(hash)]; e != nil && e.hash <= hash; e = e.next {
		if e.hash == hash && m.equal(key, e.key) {
			return e
		}
	}
	return nil
}

// Len returns the count of entries in m.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// IsEmpty reports whether m holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Get returns the value associated with key and true if that key is
// in the Map, otherwise it returns the zero value of V and false.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil || m.count == 0 {
		var zero V
		return zero, false
	}
	e := m.findEntry(key, m.computeHash(key))
	if e == nil {
		var zero V
		return zero, false
	}
	return e.val, true
}

// Contains reports whether key is in the Map.
func (m *Map[K, V]) Contains(key K) bool {
	return m != nil && m.count != 0 && m.findEntry(key, m.computeHash(key)) != nil
}

// GetOrElse returns the value associated with key, or def if key is
// not in the Map. It is the alternative to Get for callers that have
// a fallback value at hand and no use for the presence bool.
func (m *Map[K, V]) GetOrElse(key K, def V) V {
	if m == nil || m.count == 0 {
		return def
	}
	if e := m.findEntry(key, m.computeHash(key)); e != nil {
		return e.val
	}
	return def
}

// MustGet returns the value associated with key. If key is absent it
// returns the default provider's value when the Map was built with
// [NewWithDefault], and panics otherwise: a missing key that must
// exist is a bug in the caller, not a recoverable condition.
func (m *Map[K, V]) MustGet(key K) V {
	if m != nil && m.count != 0 {
		if e := m.findEntry(key, m.computeHash(key)); e != nil {
			return e.val
		}
	}
	if m != nil && m.def != nil {
		return m.def(key)
	}
	panic(fmt.Sprintf("chainmap: MustGet of missing key %v", key))
}

// Put associates key with value in m. It returns the value previously
// associated with key and true, or the zero value of V and false if
// key was not in the Map.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	if m == nil {
		// We have to panic here rather than initialize an empty map
		// because we need the user to pass in hash and equal
		// functions.
		panic("chainmap: Put called on nil Map")
	}
	return m.put(key, value, true)
}

// Set associates key with value in m. It is Put for callers that do
// not need the previous value, skipping the copy Put makes to report
// it.
func (m *Map[K, V]) Set(key K, value V) {
	if m == nil {
		panic("chainmap: Set called on nil Map")
	}
	m.put(key, value, false)
}

// Update associates key with the result of f applied to the value
// already associated with key, or to the zero value of V if key is
// not in the Map. It is a read-modify-write in one call:
//
//	m.Update(k, func(cur []int) []int { return append(cur, 1) })
func (m *Map[K, V]) Update(key K, f func(cur V) V) {
	if m == nil {
		panic("chainmap: Update called on nil Map")
	}
	if e := m.findEntry(key, m.computeHash(key)); e != nil {
		e.val = f(e.val)
		return
	}
	var zero V
	m.put(key, f(zero), false)
}

// put grows the table if one more entry would reach the threshold and
// then splices (key, value) into its chain. Growing first guarantees
// the new entry is never relocated by the growth it triggered.
func (m *Map[K, V]) put(key K, value V, getOld bool) (V, bool) {
	if m.count+1 >= m.threshold {
		m.growTable(len(m.table) * 2)
	}
	h := m.computeHash(key)
	return m.putAt(key, value, h, m.index(h), getOld)
}

// putAt walks the chain at idx keeping a trailing pointer. A matching
// key is overwritten in place; otherwise a new entry is linked at the
// position that keeps the chain sorted by cached hash. Entries with
// equal hashes stay contiguous: the walk advances past them, so new
// ties land at the end of their run.
func (m *Map[K, V]) putAt(key K, value V, hash uint32, idx int, getOld bool) (V, bool) {
	var zero V
	var prev *entry[K, V]
	for e := m.table[idx]; e != nil && e.hash <= hash; e = e.next {
		if e.hash == hash && m.equal(key, e.key) {
			old := e.val
			e.val = value
			if getOld {
				return old, true
			}
			return zero, true
		}
		prev = e
	}
	if prev == nil {
		m.table[idx] = &entry[K, V]{key: key, hash: hash, val: value, next: m.table[idx]}
	} else {
		prev.next = &entry[K, V]{key: key, hash: hash, val: value, next: prev.next}
	}
	m.count++
	return zero, false
}

// GetOrCompute returns the value associated with key if key is in the
// Map. Otherwise it calls compute exactly once, inserts its result
// under key and returns it.
//
// compute may insert other keys into m -- any growth that triggers is
// accounted for before the final insertion -- but it must not remove
// entries, clear the Map, or insert key itself.
func (m *Map[K, V]) GetOrCompute(key K, compute func() V) V {
	if m == nil {
		panic("chainmap: GetOrCompute called on nil Map")
	}
	h := m.computeHash(key)
	if e := m.findEntry(key, h); e != nil {
		return e.val
	}
	idx := m.index(h)
	table := m.table
	value := compute()
	if m.count+1 >= m.threshold {
		m.growTable(len(m.table) * 2)
	}
	// compute or the growth above may have replaced the bucket array,
	// invalidating idx. Replacement always changes the array's
	// length, so a length check detects it.
	if len(table) != len(m.table) {
		idx = m.index(h)
	}
	m.putAt(key, value, h, idx, false)
	return value
}

// Remove removes key and its associated value from the Map. It
// returns the removed value and true, or the zero value of V and
// false if key was not in the Map. Removing an absent key is not an
// error.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	var zero V
	if m == nil || m.count == 0 {
		return zero, false
	}
	h := m.computeHash(key)
	idx := m.index(h)
	e := m.table[idx]
	if e == nil {
		return zero, false
	}
	if e.hash == h && m.equal(key, e.key) {
		m.table[idx] = e.next
		m.count--
		return e.val, true
	}
	prev := e
	for n := e.next; n != nil && n.hash <= h; n = n.next {
		if n.hash == h && m.equal(key, n.key) {
			prev.next = n.next
			m.count--
			return n.val, true
		}
		prev = n
	}
	return zero, false
}

// Delete removes key and its associated value from the map. It is
// Remove for callers that do not need the removed value.
func (m *Map[K, V]) Delete(key K) {
	m.Remove(key)
}

// Clear deletes all keys from m. The bucket array keeps its capacity.
// Chains are dropped whole: no entry is ever referenced from outside
// the Map, so there is nothing to unlink one node at a time.
func (m *Map[K, V]) Clear() {
	if m == nil {
		return
	}
	for i := range m.table {
		m.table[i] = nil
	}
	m.count = 0
}

// Grow pre-sizes the bucket array so that n entries fit without
// further growth. It never shrinks the table.
func (m *Map[K, V]) Grow(n int) {
	if m == nil {
		panic("chainmap: Grow called on nil Map")
	}
	target := tableSizeFor(int(float64(n+1) / m.loadFactor))
	if target > len(m.table) {
		m.growTable(target)
	}
}

// InsertPairs inserts every pair into m via Set, growing at most once
// up front for the source's known size.
func (m *Map[K, V]) InsertPairs(pairs ...Pair[K, V]) {
	if m == nil {
		panic("chainmap: InsertPairs called on nil Map")
	}
	m.Grow(m.count + len(pairs))
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
}

// growTable replaces the bucket array with one of newlen slots.
// newlen saturates at maxCapacity; growth past that point is a no-op
// and chains simply keep lengthening.
func (m *Map[K, V]) growTable(newlen int) {
	if newlen < 0 || newlen > maxCapacity {
		// newlen < 0 is a doubling that overflowed int.
		newlen = maxCapacity
	}
	oldlen := len(m.table)
	if newlen <= oldlen {
		return
	}
	m.threshold = newThreshold(m.loadFactor, newlen)
	if m.count == 0 {
		m.table = make([]*entry[K, V], newlen)
		return
	}

	table := make([]*entry[K, V], newlen)
	copy(table, m.table)
	m.table = table

	// Split chains one doubling at a time. A Grow jump of more than
	// 2x repeats the split; each pass costs O(live entries), not
	// O(final capacity).
	for oldlen < newlen {
		for i := 0; i < oldlen; i++ {
			e := table[i]
			if e == nil {
				continue
			}
			// Partition the chain on the oldlen bit of each cached
			// hash, building both halves with local head/tail pairs
			// so relative order is preserved.
			var lowHead, lowTail *entry[K, V]
			var highHead, highTail *entry[K, V]
			for e != nil {
				next := e.next
				if e.hash&uint32(oldlen) == 0 {
					if lowTail == nil {
						lowHead = e
					} else {
						lowTail.next = e
					}
					lowTail = e
				} else {
					if highTail == nil {
						highHead = e
					} else {
						highTail.next = e
					}
					highTail = e
				}
				e = next
			}
			if lowTail != nil {
				lowTail.next = nil
			}
			table[i] = lowHead
			if highTail != nil {
				highTail.next = nil
				table[i+oldlen] = highHead
			}
		}
		oldlen *= 2
	}
}

// Iterator is instantiated by a call to Iter(). It allows iterating
// over a Map. An Iterator is a one-shot cursor: once Next has
// returned false it stays exhausted.
type Iterator[K, V any] struct {
	table []*entry[K, V]
	i     int          // next bucket to scan once the current chain runs out
	cur   *entry[K, V] // entry at the cursor, nil before the first Next and after exhaustion
	rest  *entry[K, V] // unvisited remainder of the current chain
}

// Iter instantiates an Iterator over the entries of the Map. The walk
// visits buckets in index order and each chain front to back, so two
// iterations of the same unmutated Map yield the same order; growing
// the table changes it. Mutating the Map while an Iterator is live is
// not detected and not supported.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	if m == nil || m.count == 0 {
		return &Iterator[K, V]{}
	}
	return &Iterator[K, V]{table: m.table}
}

// Next moves the iterator to the next entry. Next returns false when
// the iterator is complete.
func (it *Iterator[K, V]) Next() bool {
	for it.rest == nil {
		if it.i >= len(it.table) {
			it.cur = nil
			return false
		}
		it.rest = it.table[it.i]
		it.i++
	}
	it.cur = it.rest
	it.rest = it.rest.next
	return true
}

// Key returns the key at the iterator's current position. It panics
// unless the preceding call to Next returned true.
func (it *Iterator[K, V]) Key() K {
	if it.cur == nil {
		panic("chainmap: Key called past the end of the Iterator")
	}
	return it.cur.key
}

// Value returns the value at the iterator's current position. It
// panics unless the preceding call to Next returned true.
func (it *Iterator[K, V]) Value() V {
	if it.cur == nil {
		panic("chainmap: Value called past the end of the Iterator")
	}
	return it.cur.val
}
