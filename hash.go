// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import (
	"github.com/cespare/xxhash/v2"
)

// Stock hash functions for common key types, usable as the hash
// argument to [New]. String and byte-slice keys go through xxHash and
// fold the 64-bit digest onto 32 bits; integer keys fold their own
// bits, which is enough because Map improves every hash before use.
// All of them are deterministic across runs and across platforms.

// HashString hashes s.
func HashString(s string) uint32 {
	h := xxhash.Sum64String(s)
	return uint32(h) ^ uint32(h>>32)
}

// HashBytes hashes b. HashBytes(b) == HashString(string(b)) without
// the conversion.
func HashBytes(b []byte) uint32 {
	h := xxhash.Sum64(b)
	return uint32(h) ^ uint32(h>>32)
}

// HashInt hashes i.
func HashInt(i int) uint32 {
	return HashUint64(uint64(i))
}

// HashUint32 hashes u.
func HashUint32(u uint32) uint32 {
	return u
}

// HashUint64 hashes u.
func HashUint64(u uint64) uint32 {
	return uint32(u) ^ uint32(u>>32)
}

// NewString instantiates a new Map with string keys compared with ==
// and hashed by [HashString].
func NewString[V any](opts ...Option) *Map[string, V] {
	return New[string, V](
		func(a, b string) bool { return a == b },
		HashString,
		opts...)
}
