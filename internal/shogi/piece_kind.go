package shogi

// PieceKind is a piece type without a color, 1..=14.
type PieceKind uint8

const (
	Pawn PieceKind = iota + 1
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	ProPawn
	ProLance
	ProKnight
	ProSilver
	ProBishop
	ProRook
)

// NumPieceKinds is the number of piece kinds, promoted kinds included.
const NumPieceKinds = 14

// NumHandKinds is the number of kinds that can be held in hand (Pawn..Rook).
const NumHandKinds = 7

// PieceKindFromUint8 converts a raw value, rejecting anything outside 1..=14.
func PieceKindFromUint8(v uint8) (PieceKind, bool) {
	if v-1 >= NumPieceKinds {
		return 0, false
	}
	return PieceKind(v), true
}

// ArrayIndex returns the zero-based index, 0..=13.
func (k PieceKind) ArrayIndex() int {
	return int(k) - 1
}

// IsValid reports whether k is in 1..=14.
func (k PieceKind) IsValid() bool {
	return k-1 < NumPieceKinds
}

// IsDroppable reports whether k can be held in hand and dropped.
func (k PieceKind) IsDroppable() bool {
	return k-1 < NumHandKinds
}

// IsPromoted reports whether k is one of the six promoted kinds.
func (k PieceKind) IsPromoted() bool {
	return k >= ProPawn && k <= ProRook
}

// Promote returns the promoted kind. Gold, King and already promoted kinds
// have none.
func (k PieceKind) Promote() (PieceKind, bool) {
	switch k {
	case Pawn:
		return ProPawn, true
	case Lance:
		return ProLance, true
	case Knight:
		return ProKnight, true
	case Silver:
		return ProSilver, true
	case Bishop:
		return ProBishop, true
	case Rook:
		return ProRook, true
	}
	return 0, false
}

// Unpromote returns the unpromoted kind. Only the six promoted kinds have one.
func (k PieceKind) Unpromote() (PieceKind, bool) {
	switch k {
	case ProPawn:
		return Pawn, true
	case ProLance:
		return Lance, true
	case ProKnight:
		return Knight, true
	case ProSilver:
		return Silver, true
	case ProBishop:
		return Bishop, true
	case ProRook:
		return Rook, true
	}
	return 0, false
}

// AllPieceKinds returns the fourteen kinds in value order.
func AllPieceKinds() [NumPieceKinds]PieceKind {
	var all [NumPieceKinds]PieceKind
	for i := range all {
		all[i] = PieceKind(i + 1)
	}
	return all
}

var pieceKindNames = [NumPieceKinds + 1]string{
	"PieceKind(?)",
	"Pawn", "Lance", "Knight", "Silver", "Gold", "Bishop", "Rook", "King",
	"ProPawn", "ProLance", "ProKnight", "ProSilver", "ProBishop", "ProRook",
}

func (k PieceKind) String() string {
	if !k.IsValid() {
		return pieceKindNames[0]
	}
	return pieceKindNames[k]
}
