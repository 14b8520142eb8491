// Package hashing provides position hashing and duplicate detection for
// shogi game records.
package hashing

import (
	"encoding/binary"

	"github.com/cespare/xxhash"

	"github.com/lgbarn/shogi-core-go/internal/position"
	"github.com/lgbarn/shogi-core-go/internal/shogi"
)

// DuplicateDetector tracks seen final positions for duplicate record detection.
type DuplicateDetector struct {
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal move counts
	useExactMatch bool
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity    int
	stored         int
	duplicateCount int
	hasher         *GameHasher
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the game hash chosen by the detector's HashType
	Hash uint64
	// MoveCount is the number of plies in the record
	MoveCount int
	// WeakHash is an independent hash of the final position
	WeakHash uint64
}

// NewDuplicateDetector creates a detector comparing final positions.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return NewDuplicateDetectorWithHasher(NewGameHasher(HashFinalPosition), exactMatch, maxCapacity)
}

// NewDuplicateDetectorWithHasher creates a detector using the given hashing strategy.
func NewDuplicateDetectorWithHasher(h *GameHasher, exactMatch bool, maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
		hasher:        h,
	}
}

// Signature computes the signature of pos. It reads no detector state
// other than the hasher and may be called concurrently.
func (d *DuplicateDetector) Signature(pos *position.Position) GameSignature {
	return GameSignature{
		Hash:      d.hasher.HashGame(pos),
		MoveCount: len(pos.Moves()),
		WeakHash:  WeakHash(pos.Inner()),
	}
}

// CheckAndAdd reports whether pos duplicates a record seen before and
// remembers it otherwise. Once the detector is full, new records are
// still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(pos *position.Position) bool {
	if pos == nil {
		return false
	}
	return d.CheckAndAddSignature(d.Signature(pos))
}

// CheckAndAddSignature is CheckAndAdd for a signature computed earlier,
// possibly on another goroutine.
func (d *DuplicateDetector) CheckAndAddSignature(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.stored++
	}
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveCount != b.MoveCount {
		return false
	}
	return true
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored unique records.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.stored = 0
	d.duplicateCount = 0
}

// HashType specifies what to hash for duplicate detection.
type HashType int

const (
	// HashFinalPosition hashes only the final position
	HashFinalPosition HashType = iota
	// HashAllPositions hashes every position the game passed through
	HashAllPositions
	// HashMoveSequence hashes the initial position and the move sequence
	HashMoveSequence
)

// GameHasher provides different hashing strategies for games.
type GameHasher struct {
	hashType HashType
}

// NewGameHasher creates a new game hasher with the specified strategy.
func NewGameHasher(ht HashType) *GameHasher {
	return &GameHasher{hashType: ht}
}

// HashGame hashes pos according to the hasher's strategy.
func (gh *GameHasher) HashGame(pos *position.Position) uint64 {
	switch gh.hashType {
	case HashAllPositions:
		return gh.hashAllPositions(pos)
	case HashMoveSequence:
		return gh.hashMoveSequence(pos)
	default:
		return Key(pos.Inner())
	}
}

// hashAllPositions mixes the key of every position in order, so two games
// reaching the same end by different paths differ.
func (gh *GameHasher) hashAllPositions(pos *position.Position) uint64 {
	p := pos.Initial().Clone()
	hash := Key(p)
	for _, mv := range pos.Moves() {
		if !p.MakeMove(mv) {
			break
		}
		hash = hash*1099511628211 ^ Key(p)
	}
	return hash
}

// hashMoveSequence hashes the initial position key followed by each move
// in compact form.
func (gh *GameHasher) hashMoveSequence(pos *position.Position) uint64 {
	buf := make([]byte, 8, 8+2*len(pos.Moves()))
	binary.LittleEndian.PutUint64(buf, Key(pos.Initial()))
	for _, mv := range pos.Moves() {
		buf = binary.LittleEndian.AppendUint16(buf, shogi.CompactMoveFromMove(mv).Uint16())
	}
	return xxhash.Sum64(buf)
}
