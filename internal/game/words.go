package game

import (
	"context"
	"math/rand/v2"
)

// WordSupplier returns a random word from a category, or an error wrapping
// ErrUnknownCategory.
type WordSupplier interface {
	RandomWord(ctx context.Context, category string) (string, error)
}

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewRoomCode draws 4 uppercase letters. Codes are not unique; callers re-check.
func NewRoomCode(rnd *rand.Rand) string {
	b := make([]byte, 4)
	for i := range b {
		b[i] = roomCodeAlphabet[rnd.IntN(len(roomCodeAlphabet))]
	}
	return string(b)
}

// ValidRoomCode reports whether s looks like a room code.
func ValidRoomCode(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
