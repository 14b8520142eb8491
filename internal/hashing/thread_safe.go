package hashing

import (
	"sync"

	"github.com/lgbarn/shogi-core-go/internal/position"
)

// ThreadSafeDuplicateDetector guards a DuplicateDetector with a mutex.
// Signatures are computed outside the lock; only the table update is
// serialized.
type ThreadSafeDuplicateDetector struct {
	mu       sync.Mutex
	detector *DuplicateDetector
}

// NewThreadSafeDuplicateDetector creates a detector comparing final
// positions. maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return WrapDetector(NewDuplicateDetector(exactMatch, maxCapacity))
}

// WrapDetector makes an existing detector safe for concurrent use. The
// caller must not use d directly afterwards.
func WrapDetector(d *DuplicateDetector) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{detector: d}
}

// Signature computes the signature of pos without taking the lock.
func (d *ThreadSafeDuplicateDetector) Signature(pos *position.Position) GameSignature {
	return d.detector.Signature(pos)
}

// CheckAndAdd hashes pos, then checks and records it under the lock.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(pos *position.Position) bool {
	if pos == nil {
		return false
	}
	return d.CheckAndAddSignature(d.Signature(pos))
}

// CheckAndAddSignature checks and records a precomputed signature.
func (d *ThreadSafeDuplicateDetector) CheckAndAddSignature(sig GameSignature) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAddSignature(sig)
}

// Counts returns the duplicate and unique counts from one consistent view.
func (d *ThreadSafeDuplicateDetector) Counts() (duplicates, unique int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.DuplicateCount(), d.detector.UniqueCount()
}

// IsFull reports whether the capacity limit has been reached.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.IsFull()
}
