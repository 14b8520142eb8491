package shogi

// GameResolution is how a game ended.
type GameResolution uint8

const (
	BlackWins GameResolution = iota + 1
	WhiteWins
	Draw
	Rematch
	Aborted
)

// GameResolutionFromUint8 converts a raw value, rejecting anything outside 1..=5.
func GameResolutionFromUint8(v uint8) (GameResolution, bool) {
	if v-1 >= 5 {
		return 0, false
	}
	return GameResolution(v), true
}

// Winner returns the winning color, if any.
func (r GameResolution) Winner() (Color, bool) {
	switch r {
	case BlackWins:
		return Black, true
	case WhiteWins:
		return White, true
	}
	return 0, false
}

func (r GameResolution) String() string {
	switch r {
	case BlackWins:
		return "BlackWins"
	case WhiteWins:
		return "WhiteWins"
	case Draw:
		return "Draw"
	case Rematch:
		return "Rematch"
	case Aborted:
		return "Aborted"
	}
	return "GameResolution(?)"
}

// IllegalMoveKind classifies why a move is illegal. It implements error so
// legality checkers can return it directly.
type IllegalMoveKind uint8

const (
	TwoPawns IllegalMoveKind = iota + 1
	IgnoredCheck
	DropPawnMate
	DropStuck
	NormalStuck
	GameFinished
	IncorrectMove
)

// IllegalMoveKindFromUint8 converts a raw value, rejecting anything outside 1..=7.
func IllegalMoveKindFromUint8(v uint8) (IllegalMoveKind, bool) {
	if v-1 >= 7 {
		return 0, false
	}
	return IllegalMoveKind(v), true
}

func (k IllegalMoveKind) Error() string {
	switch k {
	case TwoPawns:
		return "two unpromoted pawns on one file"
	case IgnoredCheck:
		return "king left in check"
	case DropPawnMate:
		return "checkmate by pawn drop"
	case DropStuck:
		return "dropped piece has no further move"
	case NormalStuck:
		return "moved piece has no further move"
	case GameFinished:
		return "game already finished"
	case IncorrectMove:
		return "move is not possible in this position"
	}
	return "unknown illegal move"
}
