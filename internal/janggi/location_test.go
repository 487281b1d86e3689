package janggi

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestLocationRoundTrip(t *testing.T) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			text := Encode(row, col)
			r, c, err := Decode(text)
			if err != nil {
				t.Fatalf("Decode(%q): %v", text, err)
			}
			if r != row || c != col {
				t.Fatalf("Decode(Encode(%d,%d)) = (%d,%d)", row, col, r, c)
			}
			if got := Encode(r, c); got != text {
				t.Fatalf("Encode(Decode(%q)) = %q", text, got)
			}
		}
	}
}

func TestDecodeKnownSquares(t *testing.T) {
	tests := []struct {
		text     string
		row, col int
	}{
		{"a1", 0, 0},
		{"i1", 0, 8},
		{"e2", 1, 4},
		{"e7", 6, 4},
		{"a10", 9, 0},
		{"i10", 9, 8},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r, c, err := Decode(tt.text)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if r != tt.row || c != tt.col {
				t.Fatalf("got=(%d,%d) want=(%d,%d)", r, c, tt.row, tt.col)
			}
			sq := MustSquare(tt.text)
			if x, y := sq.XY(); x != tt.col || y != tt.row {
				t.Fatalf("XY got=(%d,%d) want=(%d,%d)", x, y, tt.col, tt.row)
			}
		})
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, text := range []string{"", "a", "j1", "A1", "a0", "a11", "a01", "a1x", "e-1", "e 5", "a100", "1a"} {
		t.Run(text, func(t *testing.T) {
			_, _, err := Decode(text)
			if !errors.Is(err, ErrInvalidCoordinate) {
				t.Fatalf("Decode(%q) err=%v, want ErrInvalidCoordinate", text, err)
			}
		})
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	if got := Encode(10, 0); got != "" {
		t.Fatalf("Encode(10,0) = %q", got)
	}
	if got := Encode(0, -1); got != "" {
		t.Fatalf("Encode(0,-1) = %q", got)
	}
	if got := SquareAt(0, 9); got != NoSquare {
		t.Fatalf("SquareAt(0,9) = %d", got)
	}
}

func TestMoveJSONUsesCoordinates(t *testing.T) {
	data, err := json.Marshal(Move{From: sq("e7"), To: sq("e6")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"from":"e7","to":"e6"}` {
		t.Fatalf("got=%s", data)
	}

	var m Move
	if err := json.Unmarshal([]byte(`{"from":"a10","to":"a8"}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.From != sq("a10") || m.To != sq("a8") {
		t.Fatalf("got=%v", m)
	}

	err = json.Unmarshal([]byte(`{"from":"z9","to":"a8"}`), &m)
	if !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("err=%v, want ErrInvalidCoordinate", err)
	}
}
