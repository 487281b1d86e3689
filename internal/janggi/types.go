package janggi

// Color is fixed for a piece's lifetime. Blue moves first.
type Color int8

const (
	NoColor Color = -1
	Blue    Color = 0
	Red     Color = 1
)

func (c Color) Opponent() Color {
	switch c {
	case Blue:
		return Red
	case Red:
		return Blue
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	}
	return "none"
}

// forward is the row delta of a soldier's forward step: blue climbs toward rank 1, red toward rank 10.
func (c Color) forward() int {
	if c == Blue {
		return -1
	}
	if c == Red {
		return +1
	}
	return 0
}

type PieceKind int8

const (
	KindNone     PieceKind = iota
	KindGeneral            // 궁
	KindGuard              // 사
	KindElephant           // 상
	KindHorse              // 마
	KindChariot            // 차
	KindCannon             // 포
	KindSoldier            // 졸 / 병
)

var kindNames = [...]string{
	KindNone:     "none",
	KindGeneral:  "general",
	KindGuard:    "guard",
	KindElephant: "elephant",
	KindHorse:    "horse",
	KindChariot:  "chariot",
	KindCannon:   "cannon",
	KindSoldier:  "soldier",
}

func (k PieceKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// PieceID indexes the board's piece arena. NoPiece marks an empty cell.
type PieceID int16

const NoPiece PieceID = 0

// Piece is an arena entry. Cells and players only ever hold its ID.
type Piece struct {
	ID     PieceID
	Kind   PieceKind
	Color  Color
	Square Square
	Alive  bool
}

// Move is a (source, destination) request. From == To is a turn pass.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// State is the terminal-or-not status of a match. It only moves forward.
type State int8

const (
	Unfinished State = iota
	BlueWon
	RedWon
)

func (s State) String() string {
	switch s {
	case Unfinished:
		return "UNFINISHED"
	case BlueWon:
		return "BLUE_WON"
	case RedWon:
		return "RED_WON"
	}
	return "UNKNOWN"
}

func wonBy(c Color) State {
	if c == Blue {
		return BlueWon
	}
	return RedWon
}
