package jspp

import "github.com/pkg/errors"

// ErrFragmentTooLarge is reported by Err after Start or Continue is
// given a fragment longer than the parser's uint16 offsets can
// address. The parser still reports Invalid for the token outcome;
// Err carries the detail a sticky Invalid can't.
var ErrFragmentTooLarge = errors.New("jspp: fragment exceeds maximum addressable length")

const maxFragmentLength = 1<<16 - 1

func checkFragmentLength(n int) error {
	if n > maxFragmentLength {
		return errors.Wrapf(ErrFragmentTooLarge, "got %d bytes, max %d", n, maxFragmentLength)
	}
	return nil
}
