package janggi

import (
	"fmt"
	"strings"
	"unicode"
)

// Layouts are 10 lines of 9 cells, rank 1 first. '.' is empty, upper case is
// blue, lower case is red.
var letterToKind = map[rune]PieceKind{
	'k': KindGeneral,
	'a': KindGuard,
	'e': KindElephant,
	'h': KindHorse,
	'r': KindChariot,
	'c': KindCannon,
	'p': KindSoldier,
}

var kindToLetter = map[PieceKind]rune{
	KindGeneral:  'k',
	KindGuard:    'a',
	KindElephant: 'e',
	KindHorse:    'h',
	KindChariot:  'r',
	KindCannon:   'c',
	KindSoldier:  'p',
}

// 한 (red) on ranks 1-4, 초 (blue) on ranks 7-10.
const openingLayout = `reha.aehr
....k....
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
....K....
REHA.AEHR`

// OpeningLayout returns the standard starting position in layout form.
func OpeningLayout() string { return openingLayout }

func splitLayout(text string) ([]string, error) {
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrInvalidLayout, len(lines), Rows)
	}
	return lines, nil
}

func (b *Board) placeLayout(text string) error {
	lines, err := splitLayout(text)
	if err != nil {
		return err
	}
	for r, line := range lines {
		cells := []rune(line)
		if len(cells) != Cols {
			return fmt.Errorf("%w: rank %d has %d cells, want %d", ErrInvalidLayout, r+1, len(cells), Cols)
		}
		for c, ch := range cells {
			if ch == '.' {
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return fmt.Errorf("%w: unknown piece %q at %s", ErrInvalidLayout, ch, Encode(r, c))
			}
			color := Red
			if unicode.IsUpper(ch) {
				color = Blue
			}
			b.place(color, kind, SquareAt(r, c))
		}
	}
	return nil
}

// ParseLayout builds a board from a layout. Each colour must have exactly one
// General, standing in its own palace.
func ParseLayout(text string) (*Board, error) {
	b := NewBoard()
	if err := b.placeLayout(text); err != nil {
		return nil, err
	}
	for _, c := range []Color{Blue, Red} {
		generals := 0
		for _, id := range b.players[c].Pieces() {
			pc := b.pieces[id]
			if pc.Kind != KindGeneral {
				continue
			}
			generals++
			if !inPalace(c, pc.Square) {
				return nil, fmt.Errorf("%w: %s general outside its palace at %s", ErrInvalidLayout, c, pc.Square)
			}
		}
		if generals != 1 {
			return nil, fmt.Errorf("%w: %s has %d generals", ErrInvalidLayout, c, generals)
		}
	}
	return b, nil
}

func pieceLetter(pc Piece) rune {
	ch, ok := kindToLetter[pc.Kind]
	if !ok {
		return '?'
	}
	if pc.Color == Blue {
		return unicode.ToUpper(ch)
	}
	return ch
}

// Ranks renders each rank as a 9-cell string, rank 1 first.
func (b *Board) Ranks() []string {
	out := make([]string, 0, Rows)
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		sb.Reset()
		for c := 0; c < Cols; c++ {
			pc, ok := b.At(SquareAt(r, c))
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteRune(pieceLetter(pc))
		}
		out = append(out, sb.String())
	}
	return out
}

func (b *Board) Layout() string {
	return strings.Join(b.Ranks(), "\n")
}
