package janggi

import "fmt"

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols
)

// Square is a zero-based grid index: row*Cols + col. Row 0 is rank "1", col 0 is file "a".
type Square int8

const NoSquare Square = -1

func SquareAt(row, col int) Square {
	if !onBoard(row, col) {
		return NoSquare
	}
	return Square(row*Cols + col)
}

func (sq Square) Row() int { return int(sq) / Cols }
func (sq Square) Col() int { return int(sq) % Cols }

func (sq Square) Valid() bool { return sq >= 0 && int(sq) < NumSquares }

// XY returns the (column, row) grid pair for renderers; it carries no pixel geometry.
func (sq Square) XY() (x, y int) { return sq.Col(), sq.Row() }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return Encode(sq.Row(), sq.Col())
}

func (sq Square) MarshalText() ([]byte, error) {
	if !sq.Valid() {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidCoordinate, int(sq))
	}
	return []byte(sq.String()), nil
}

func (sq *Square) UnmarshalText(text []byte) error {
	parsed, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*sq = parsed
	return nil
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Decode turns "a1".."i10" into (row, col). The letter is lower case and the
// number has no leading zero or sign.
func Decode(text string) (row, col int, err error) {
	if len(text) < 2 || len(text) > 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, text)
	}
	letter := text[0]
	if letter < 'a' || letter > 'i' {
		return 0, 0, fmt.Errorf("%w: %q: file must be a-i", ErrInvalidCoordinate, text)
	}
	n := 0
	for i := 1; i < len(text); i++ {
		ch := text[i]
		if ch < '0' || ch > '9' {
			return 0, 0, fmt.Errorf("%w: %q: rank must be numeric", ErrInvalidCoordinate, text)
		}
		n = n*10 + int(ch-'0')
	}
	if text[1] == '0' || n < 1 || n > Rows {
		return 0, 0, fmt.Errorf("%w: %q: rank must be 1-10", ErrInvalidCoordinate, text)
	}
	return n - 1, int(letter - 'a'), nil
}

// Encode is the inverse of Decode. Out-of-range indices yield "".
func Encode(row, col int) string {
	if !onBoard(row, col) {
		return ""
	}
	return fmt.Sprintf("%c%d", 'a'+col, row+1)
}

func ParseSquare(text string) (Square, error) {
	row, col, err := Decode(text)
	if err != nil {
		return NoSquare, err
	}
	return SquareAt(row, col), nil
}

// MustSquare is for compiled-in coordinates; it panics on malformed input.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
