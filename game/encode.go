package game

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// EncodedSize is the length of a game encoded by MarshalBinary.
const EncodedSize = 9*4 + 2

var ErrCorruptEncoding = errors.New("corrupt game encoding")

// MarshalBinary encodes the nine boards as little-endian uint32s followed by
// the active board and the overall status.
func (g Game) MarshalBinary() ([]byte, error) {
	buf := make([]byte, EncodedSize)
	for i, b := range g.Boards {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(b))
	}
	buf[36] = g.Active
	buf[37] = uint8(g.Status)
	return buf, nil
}

// UnmarshalBinary decodes data written by MarshalBinary and rejects anything
// that is not a consistent position.
func (g *Game) UnmarshalBinary(data []byte) error {
	if len(data) != EncodedSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrCorruptEncoding, EncodedSize, len(data))
	}

	var boards [9]BitBoard
	for i := range boards {
		v := binary.LittleEndian.Uint32(data[i*4:])
		xs, os, es := v&cellMask, v>>oOffset&cellMask, v>>emptyOffset&cellMask
		if xs&os != 0 || xs&es != 0 || os&es != 0 || xs|os|es != cellMask {
			return fmt.Errorf("%w: board %d cells do not partition", ErrCorruptEncoding, i)
		}
		st := v >> statusOffset
		if st > uint32(Tied) {
			return fmt.Errorf("%w: board %d status %d", ErrCorruptEncoding, i, st)
		}
		boards[i] = BitBoard(v)
	}

	active, st := data[36], Status(data[37])
	if active > FreeChoice {
		return fmt.Errorf("%w: active board %d", ErrCorruptEncoding, active)
	}

	decoded := NewFromBoards(boards, active)
	for i, b := range decoded.Boards {
		if b != boards[i] {
			return fmt.Errorf("%w: board %d status does not match its cells", ErrCorruptEncoding, i)
		}
	}
	if decoded.Active != active {
		return fmt.Errorf("%w: active board %d is decided", ErrCorruptEncoding, active)
	}
	if decoded.Status != st {
		return fmt.Errorf("%w: game status %d does not match its boards", ErrCorruptEncoding, st)
	}

	*g = decoded
	return nil
}
