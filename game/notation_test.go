package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		active uint8
		want   Move
		err    error
	}{
		{"full notation", "e5", FreeChoice, NewMove(4, 4), nil},
		{"upper case and padding", " C9\n", FreeChoice, NewMove(2, 8), nil},
		{"full notation ignores active", "a1", 7, NewMove(0, 0), nil},
		{"shorthand in forced board", "3", 7, NewMove(7, 2), nil},
		{"empty", "", FreeChoice, NoMove, ErrMoveLength},
		{"too long", "a10", FreeChoice, NoMove, ErrMoveLength},
		{"shorthand without forced board", "5", FreeChoice, NoMove, ErrShorthand},
		{"board out of range", "j1", FreeChoice, NoMove, ErrBoardLetter},
		{"board not a letter", "11", FreeChoice, NoMove, ErrBoardLetter},
		{"zero cell", "a0", FreeChoice, NoMove, ErrCellIndex},
		{"cell not a digit", "ax", FreeChoice, NoMove, ErrCellIndex},
		{"shorthand not a digit", "x", 2, NoMove, ErrCellIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.input, tt.active)

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveRoundTrip(t *testing.T) {
	g := New()
	for _, m := range LegalMoves(&g) {
		got, err := ParseMove(m.String(), FreeChoice)

		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}
