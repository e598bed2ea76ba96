// Package bucketset implements the bounded inline-array-with-overflow
// small-set container IR analyses use to track "set of node ids that
// reference this one": insertion order preserved on append, iteration
// order not otherwise meaningful, no allocation in the common case where
// the set fits in one bucket.
//
// Zero is not a storable value — callers that might otherwise store zero
// must offset it out of band before calling Append. This is load-bearing:
// zero is the in-bucket sentinel that marks the end of the used prefix.
package bucketset

import "github.com/riftcore/alucore/internal/buildoptions"

// InlineCapacity is the number of ids held inline per bucket before an
// overflow bucket is chained on. Chosen, together with the trailing Next
// pointer, so Set is a power-of-two number of bytes (6*4 + 8 = 32 on a
// 64-bit host) — the same reasoning the source applies to its own
// fixed-capacity array types.
const InlineCapacity = 6

const poisonValue = 0xDEADBEEF

// Set is a chain of fixed-capacity buckets of non-zero uint32 ids. The
// zero value is a valid empty set. Sets are single-writer: concurrent
// mutation, or mutation concurrent with iteration, is not synchronized by
// this package.
type Set struct {
	items [InlineCapacity]uint32
	next  *Set
}

// New returns an empty Set. Equivalent to the zero value; provided for
// parity with the source's explicit "construct" operation and for callers
// that want a *Set without declaring a local variable first.
func New() *Set {
	return &Set{}
}

func newOverflowBucket() *Set {
	b := &Set{}
	if buildoptions.IsDebugBuild {
		// Slot 0 must never read as the poison value: it is the sentinel
		// a fresh bucket's first Append relies on.
		for i := 1; i < InlineCapacity; i++ {
			b.items[i] = poisonValue
		}
	}
	return b
}

// firstZero returns the index of the first zero-valued slot, or
// InlineCapacity if the bucket holds no zero (is full).
func (b *Set) firstZero() int {
	for i, v := range b.items {
		if v == 0 {
			return i
		}
	}
	return InlineCapacity
}

func (b *Set) full() bool {
	return b.firstZero() == InlineCapacity
}

// Append inserts v, which must be non-zero. Order among existing elements
// is preserved; v is placed after the current tail.
func (s *Set) Append(v uint32) {
	if v == 0 {
		panic(errZeroValue)
	}
	tail := s
	for tail.next != nil {
		tail = tail.next
	}
	if tail.full() {
		// Erase can collapse a chain back to a tail bucket that is
		// completely full with no overflow Next — not corruption, just a
		// multiple-of-InlineCapacity element count with nothing trailing.
		// Grow the chain the same way a fill-triggered Append would have.
		tail.next = newOverflowBucket()
		tail = tail.next
	}
	i := tail.firstZero()
	tail.items[i] = v
	if i+1 < InlineCapacity {
		// Re-assert the sentinel: in a debug build this slot may hold the
		// poison value from newOverflowBucket, not a real terminator.
		tail.items[i+1] = 0
	} else {
		tail.next = newOverflowBucket()
	}
}

// locate returns the bucket and in-bucket index holding v, or (nil, -1)
// if v is not present.
func (s *Set) locate(v uint32) (*Set, int) {
	b := s
	for b != nil {
		for i, cur := range b.items {
			if cur == 0 {
				return nil, -1
			}
			if cur == v {
				return b, i
			}
		}
		b = b.next
	}
	return nil, -1
}

// tailPosition returns the bucket and index of the last occupied slot
// across the whole chain, or (nil, -1) if the set is empty. The chain's
// last bucket may legitimately be completely full with no overflow
// Next — Erase can leave the chain in exactly that state — in which
// case its own last slot is the answer.
func (s *Set) tailPosition() (*Set, int) {
	var prev *Set
	tail := s
	for tail.next != nil {
		prev = tail
		tail = tail.next
	}
	if fz := tail.firstZero(); fz > 0 {
		return tail, fz - 1
	}
	if prev != nil {
		return prev, InlineCapacity - 1
	}
	return nil, -1
}

// releaseTrailingEmptyBucket drops the tail bucket if erasing its last
// element emptied it and it is not the head of the chain.
func (s *Set) releaseTrailingEmptyBucket() {
	var prev *Set
	tail := s
	for tail.next != nil {
		prev = tail
		tail = tail.next
	}
	if prev != nil && tail.firstZero() == 0 {
		prev.next = nil
	}
}

// Erase removes v, which must be present. Order is not preserved: the
// vacated slot is backfilled with the chain's current last element.
func (s *Set) Erase(v uint32) {
	if v == 0 {
		panic(errZeroValue)
	}
	locBucket, locIdx := s.locate(v)
	if locBucket == nil {
		panic(errEraseAbsent)
	}
	tailBucket, tailIdx := s.tailPosition()
	if tailBucket == nil {
		panic(errCorruptTail)
	}
	locBucket.items[locIdx] = tailBucket.items[tailIdx]
	tailBucket.items[tailIdx] = 0
	s.releaseTrailingEmptyBucket()
}

// ForEach visits every element in chain order, stopping at the first zero
// slot encountered. A bucket may be completely full with no overflow
// Next — the chain simply ends there, which the loop's own b != nil
// condition already handles.
func (s *Set) ForEach(fn func(v uint32)) {
	b := s
	for b != nil {
		for i := 0; i < InlineCapacity; i++ {
			v := b.items[i]
			if v == 0 {
				return
			}
			fn(v)
		}
		b = b.next
	}
}

// Find reports whether any element satisfies pred, stopping at the first
// match or the first zero slot, whichever comes first.
func (s *Set) Find(pred func(v uint32) bool) bool {
	b := s
	for b != nil {
		for i := 0; i < InlineCapacity; i++ {
			v := b.items[i]
			if v == 0 {
				return false
			}
			if pred(v) {
				return true
			}
		}
		b = b.next
	}
	return false
}
