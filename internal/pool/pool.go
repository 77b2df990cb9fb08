// Package pool provides bucketed sync.Pool instances for the per-picture
// scratch planes used while hashing. Buffers are organized by element
// count to minimize waste across picture sizes.
package pool

import "sync"

// Size classes, in elements.
const (
	Size4K  = 4096
	Size64K = 65536
	Size1M  = 1048576
	Size4M  = 4194304
	Size16M = 16777216
)

var sizes = [5]int{Size4K, Size64K, Size1M, Size4M, Size16M}

// bucketIndex returns the pool index for a given element count.
func bucketIndex(n int) int {
	switch {
	case n <= Size4K:
		return 0
	case n <= Size64K:
		return 1
	case n <= Size1M:
		return 2
	case n <= Size4M:
		return 3
	default:
		return 4
	}
}

// buckets is one sync.Pool per size class holding *[]T.
type buckets[T any] struct {
	pools [len(sizes)]sync.Pool
}

func newBuckets[T any]() *buckets[T] {
	b := &buckets[T]{}
	for i := range b.pools {
		sz := sizes[i]
		b.pools[i].New = func() any {
			s := make([]T, sz)
			return &s
		}
	}
	return b
}

func (b *buckets[T]) get(n int) []T {
	bp := b.pools[bucketIndex(n)].Get().(*[]T)
	s := *bp
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}

func (b *buckets[T]) put(s []T) {
	c := cap(s)
	if c < Size4K {
		return
	}
	// A slice only goes back to a class it fully covers.
	idx := bucketIndex(c)
	if c < sizes[idx] {
		idx--
	}
	s = s[:c]
	b.pools[idx].Put(&s)
}

var (
	uint32s = newBuckets[uint32]()
	int8s   = newBuckets[int8]()
)

// GetUint32 returns a uint32 slice of length n. Contents are undefined.
// The caller must call PutUint32 when done.
func GetUint32(n int) []uint32 { return uint32s.get(n) }

// PutUint32 returns a slice obtained from GetUint32.
func PutUint32(s []uint32) { uint32s.put(s) }

// GetInt8 returns an int8 slice of length n. Contents are undefined.
// The caller must call PutInt8 when done.
func GetInt8(n int) []int8 { return int8s.get(n) }

// PutInt8 returns a slice obtained from GetInt8.
func PutInt8(s []int8) { int8s.put(s) }
